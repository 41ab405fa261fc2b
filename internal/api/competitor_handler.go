package api

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/wodmeet/wodmeet/internal/api/shared"
	"github.com/wodmeet/wodmeet/internal/domain"
	"github.com/wodmeet/wodmeet/internal/export"
	"github.com/wodmeet/wodmeet/internal/service"
)

// xlsxContentType is the media type of standings workbooks.
const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// CompetitorHandler handles competitor registration, results and standings.
type CompetitorHandler struct {
	competitorService service.CompetitorService
	logger            *slog.Logger
}

// NewCompetitorHandler creates a new CompetitorHandler.
func NewCompetitorHandler(competitorService service.CompetitorService, logger *slog.Logger) *CompetitorHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CompetitorHandler{
		competitorService: competitorService,
		logger:            logger.With("component", "competitor_handler"),
	}
}

// RegisterCompetitor handles POST /api/events/{ident}/competitors.
func (h *CompetitorHandler) RegisterCompetitor(w http.ResponseWriter, r *http.Request) {
	ident, err := getIdent(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req RegisterCompetitorRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	competitor, err := h.competitorService.RegisterCompetitor(r.Context(), ident, service.CompetitorInput{
		Name:        req.Name,
		Association: req.Association,
		Weight:      req.Weight,
		YearOfBirth: req.YearOfBirth,
		Gender:      domain.Gender(req.Gender),
		WorkoutID:   req.WorkoutID,
	})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to register competitor")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, competitor.Snapshot())
}

// ListCompetitors handles GET /api/events/{ident}/competitors.
func (h *CompetitorHandler) ListCompetitors(w http.ResponseWriter, r *http.Request) {
	ident, err := getIdent(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	competitors, err := h.competitorService.ListCompetitors(r.Context(), ident)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list competitors")
		return
	}

	snapshots := make([]domain.CompetitorSnapshot, 0, len(competitors))
	for _, c := range competitors {
		snapshots = append(snapshots, c.Snapshot())
	}
	shared.RespondWithJSON(w, r, http.StatusOK, snapshots)
}

// Standings handles GET /api/events/{ident}/standings.
func (h *CompetitorHandler) Standings(w http.ResponseWriter, r *http.Request) {
	ident, err := getIdent(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	standings, err := h.competitorService.Standings(r.Context(), ident)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to compute standings")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, standings)
}

// StandingsWorkbook handles GET /api/events/{ident}/standings.xlsx.
func (h *CompetitorHandler) StandingsWorkbook(w http.ResponseWriter, r *http.Request) {
	ident, err := getIdent(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	standings, err := h.competitorService.Standings(r.Context(), ident)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to compute standings")
		return
	}

	var buf bytes.Buffer
	if err := export.WriteStandings(&buf, standings); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to export standings", err)
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="standings-%s.xlsx"`, ident))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		h.logger.Error("failed to write standings workbook", "error", err, "ident", ident)
	}
}

// IncrementResult handles POST /api/competitors/{id}/result.
func (h *CompetitorHandler) IncrementResult(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req IncrementResultRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	h.respondWithCompetitor(w, r, "Failed to update result", func() (*domain.Competitor, error) {
		return h.competitorService.IncrementResult(r.Context(), id, req.Points)
	})
}

// RecalculateCategory handles POST /api/competitors/{id}/category.
func (h *CompetitorHandler) RecalculateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	h.respondWithCompetitor(w, r, "Failed to recalculate category", func() (*domain.Competitor, error) {
		return h.competitorService.RecalculateCategory(r.Context(), id)
	})
}

// MarkFinished handles POST /api/competitors/{id}/finish.
func (h *CompetitorHandler) MarkFinished(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	h.respondWithCompetitor(w, r, "Failed to mark competitor finished", func() (*domain.Competitor, error) {
		return h.competitorService.MarkFinished(r.Context(), id)
	})
}

func (h *CompetitorHandler) respondWithCompetitor(
	w http.ResponseWriter,
	r *http.Request,
	failMsg string,
	op func() (*domain.Competitor, error),
) {
	competitor, err := op()
	if err != nil {
		HandleAPIError(w, r, err, failMsg)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, competitor.Snapshot())
}
