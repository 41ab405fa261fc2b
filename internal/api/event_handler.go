package api

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/wodmeet/wodmeet/internal/api/shared"
	"github.com/wodmeet/wodmeet/internal/domain"
	"github.com/wodmeet/wodmeet/internal/service"
)

// EventHandler handles event requests. Events are addressed by ident.
type EventHandler struct {
	eventService service.EventService
	logger       *slog.Logger
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(eventService service.EventService, logger *slog.Logger) *EventHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &EventHandler{
		eventService: eventService,
		logger:       logger.With("component", "event_handler"),
	}
}

// CreateEvent handles POST /api/events. The acting user owns the event.
func (h *EventHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req CreateEventRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	event, err := h.eventService.CreateEvent(r.Context(), actorID(r), req.Name, req.Description)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create event")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, event.Snapshot())
}

// ListEvents handles GET /api/events?user_id=. Without user_id the acting
// user's events are listed.
func (h *EventHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	userID, err := getQueryUUID(r, "user_id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	if userID == uuid.Nil {
		userID = actorID(r)
	}

	events, err := h.eventService.ListEvents(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list events")
		return
	}

	snapshots := make([]domain.EventSnapshot, 0, len(events))
	for _, e := range events {
		snapshots = append(snapshots, e.Snapshot())
	}
	shared.RespondWithJSON(w, r, http.StatusOK, snapshots)
}

// GetEvent handles GET /api/events/{ident}.
func (h *EventHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	ident, err := getIdent(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	event, err := h.eventService.GetEvent(r.Context(), ident)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get event")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, event.Snapshot())
}

// AssignWorkouts handles PUT /api/events/{ident}/workouts.
func (h *EventHandler) AssignWorkouts(w http.ResponseWriter, r *http.Request) {
	ident, err := getIdent(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req AssignWorkoutsRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	h.respondWithEvent(w, r, "Failed to assign workouts", func() (*domain.Event, error) {
		return h.eventService.AssignWorkouts(r.Context(), actorID(r), ident, req.Workouts)
	})
}

// SetSequence handles PUT /api/events/{ident}/sequence.
func (h *EventHandler) SetSequence(w http.ResponseWriter, r *http.Request) {
	ident, err := getIdent(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req SetSequenceRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	h.respondWithEvent(w, r, "Failed to set sequence", func() (*domain.Event, error) {
		return h.eventService.SetSequence(r.Context(), actorID(r), ident, req.Sequence)
	})
}

// CloseEvent handles POST /api/events/{ident}/close.
func (h *EventHandler) CloseEvent(w http.ResponseWriter, r *http.Request) {
	ident, err := getIdent(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	h.respondWithEvent(w, r, "Failed to close event", func() (*domain.Event, error) {
		return h.eventService.CloseEvent(r.Context(), actorID(r), ident)
	})
}

// IncrementNamed handles POST /api/events/{ident}/named.
func (h *EventHandler) IncrementNamed(w http.ResponseWriter, r *http.Request) {
	ident, err := getIdent(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	h.respondWithEvent(w, r, "Failed to update event", func() (*domain.Event, error) {
		return h.eventService.IncrementNamed(r.Context(), ident)
	})
}

// RegenerateIdent handles POST /api/events/{ident}/ident. The response
// carries the new ident; the old one stops resolving.
func (h *EventHandler) RegenerateIdent(w http.ResponseWriter, r *http.Request) {
	ident, err := getIdent(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	h.respondWithEvent(w, r, "Failed to regenerate ident", func() (*domain.Event, error) {
		return h.eventService.RegenerateIdent(r.Context(), actorID(r), ident)
	})
}

func (h *EventHandler) respondWithEvent(
	w http.ResponseWriter,
	r *http.Request,
	failMsg string,
	op func() (*domain.Event, error),
) {
	event, err := op()
	if err != nil {
		HandleAPIError(w, r, err, failMsg)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, event.Snapshot())
}
