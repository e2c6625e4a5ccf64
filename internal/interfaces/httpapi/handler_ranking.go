package httpapi

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/futebolao/futebolao/internal/usecase"
)

func (h *Handler) GetChampionshipRanking(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetChampionshipRanking")
	defer span.End()

	championshipID := r.PathValue("championshipID")
	entries, err := h.rankingService.Championship(ctx, championshipID)
	if err != nil {
		h.logger.WarnContext(ctx, "get ranking failed", "championship_id", championshipID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, entries)
}

func (h *Handler) RecomputeChampionshipPoints(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecomputeChampionshipPoints")
	defer span.End()

	championshipID := r.PathValue("championshipID")
	result, err := h.scoringService.RecomputeChampionship(ctx, usecase.RecomputePointsInput{
		ChampionshipID: championshipID,
		MaxWorkers:     parsePositiveQueryInt(r, "workers"),
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "recompute points failed", "championship_id", championshipID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}

func parsePositiveQueryInt(r *http.Request, key string) int {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return 0
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return 0
	}
	return value
}
