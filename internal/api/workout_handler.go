package api

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/wodmeet/wodmeet/internal/api/shared"
	"github.com/wodmeet/wodmeet/internal/domain"
	"github.com/wodmeet/wodmeet/internal/service"
)

// WorkoutHandler handles workout and exercise requests.
type WorkoutHandler struct {
	workoutService service.WorkoutService
	logger         *slog.Logger
}

// NewWorkoutHandler creates a new WorkoutHandler.
func NewWorkoutHandler(workoutService service.WorkoutService, logger *slog.Logger) *WorkoutHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &WorkoutHandler{
		workoutService: workoutService,
		logger:         logger.With("component", "workout_handler"),
	}
}

// CreateWorkout handles POST /api/workouts.
func (h *WorkoutHandler) CreateWorkout(w http.ResponseWriter, r *http.Request) {
	var req CreateWorkoutRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	workout, err := h.workoutService.CreateWorkout(r.Context(), actorID(r), req.Name, req.Description, req.Exercises)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create workout")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, workout.Snapshot())
}

// GetWorkout handles GET /api/workouts/{id}.
func (h *WorkoutHandler) GetWorkout(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	workout, err := h.workoutService.GetWorkout(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get workout")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, workout.Snapshot())
}

// UpdatePlan handles PUT /api/workouts/{id}/plan.
func (h *WorkoutHandler) UpdatePlan(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req UpdatePlanRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	workout, err := h.workoutService.UpdatePlan(r.Context(), actorID(r), id, req.Exercises)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update plan")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, workout.Snapshot())
}

// CreateExercise handles POST /api/exercises.
func (h *WorkoutHandler) CreateExercise(w http.ResponseWriter, r *http.Request) {
	var req CreateExerciseRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	exercise, err := h.workoutService.CreateExercise(r.Context(), actorID(r), service.ExerciseInput{
		Name:      req.Name,
		ShortName: req.ShortName,
		Link:      req.Link,
		Type:      req.Type,
		MaxRep:    req.MaxRep,
		Duration:  req.Duration,
	})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create exercise")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, exercise.Snapshot())
}

// GetExercise handles GET /api/exercises/{id}.
func (h *WorkoutHandler) GetExercise(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	exercise, err := h.workoutService.GetExercise(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get exercise")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, exercise.Snapshot())
}

// ListExercises handles GET /api/exercises?user_id=. Without user_id the
// acting user's exercises are listed.
func (h *WorkoutHandler) ListExercises(w http.ResponseWriter, r *http.Request) {
	userID, err := getQueryUUID(r, "user_id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	if userID == uuid.Nil {
		userID = actorID(r)
	}

	exercises, err := h.workoutService.ListExercises(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list exercises")
		return
	}

	snapshots := make([]domain.ExerciseSnapshot, 0, len(exercises))
	for _, e := range exercises {
		snapshots = append(snapshots, e.Snapshot())
	}
	shared.RespondWithJSON(w, r, http.StatusOK, snapshots)
}
