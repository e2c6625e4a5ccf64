package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/futebolao/futebolao/internal/domain/prediction"
	"github.com/futebolao/futebolao/internal/usecase"
)

type submitPredictionRequest struct {
	MatchID   string `json:"matchId" validate:"required"`
	HomeGuess int    `json:"homeGuess" validate:"gte=0,lte=99"`
	AwayGuess int    `json:"awayGuess" validate:"gte=0,lte=99"`
}

type predictionDTO struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	MatchID   string `json:"matchId"`
	HomeGuess int    `json:"homeGuess"`
	AwayGuess int    `json:"awayGuess"`
	Points    *int   `json:"points,omitempty"`
	UpdatedAt string `json:"updatedAt"`
}

func (h *Handler) SubmitPrediction(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SubmitPrediction")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	var req submitPredictionRequest
	if err := decodeRequestBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.predictionService.Submit(ctx, usecase.SubmitPredictionInput{
		UserID:    principal.UserID,
		MatchID:   req.MatchID,
		HomeGuess: req.HomeGuess,
		AwayGuess: req.AwayGuess,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "submit prediction failed", "match_id", req.MatchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, predictionToDTO(ctx, item))
}

func (h *Handler) ListMyPredictions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMyPredictions")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	championshipID := r.URL.Query().Get("championshipId")
	items, err := h.predictionService.ListMine(ctx, principal.UserID, championshipID)
	if err != nil {
		h.logger.WarnContext(ctx, "list predictions failed", "championship_id", championshipID, "error", err)
		writeError(ctx, w, err)
		return
	}

	dtos := make([]predictionDTO, 0, len(items))
	for _, p := range items {
		dtos = append(dtos, predictionToDTO(ctx, p))
	}

	writeSuccess(ctx, w, http.StatusOK, dtos)
}

func predictionToDTO(ctx context.Context, v prediction.Prediction) predictionDTO {
	ctx, span := startSpan(ctx, "httpapi.predictionToDTO")
	defer span.End()

	return predictionDTO{
		ID:        v.ID,
		UserID:    v.UserID,
		MatchID:   v.MatchID,
		HomeGuess: v.HomeGuess,
		AwayGuess: v.AwayGuess,
		Points:    v.Points,
		UpdatedAt: v.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
