package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/futebolao/futebolao/internal/domain/match"
	"github.com/futebolao/futebolao/internal/usecase"
)

type createMatchRequest struct {
	ChampionshipID string `json:"championshipId" validate:"required"`
	ExternalID     *int64 `json:"externalId" validate:"omitempty,gt=0"`
	HomeTeam       string `json:"homeTeam" validate:"required,max=120"`
	AwayTeam       string `json:"awayTeam" validate:"required,max=120"`
	HomeCrestURL   string `json:"homeCrestUrl" validate:"omitempty,url"`
	AwayCrestURL   string `json:"awayCrestUrl" validate:"omitempty,url"`
	KickoffAt      string `json:"kickoffAt" validate:"required"`
}

type matchDTO struct {
	ID             string `json:"id"`
	ChampionshipID string `json:"championshipId"`
	ExternalID     *int64 `json:"externalId,omitempty"`
	HomeTeam       string `json:"homeTeam"`
	AwayTeam       string `json:"awayTeam"`
	HomeCrestURL   string `json:"homeCrestUrl,omitempty"`
	AwayCrestURL   string `json:"awayCrestUrl,omitempty"`
	KickoffAt      string `json:"kickoffAt"`
	Status         string `json:"status"`
	HomeScore      *int   `json:"homeScore,omitempty"`
	AwayScore      *int   `json:"awayScore,omitempty"`
}

func (h *Handler) ListMatchesByChampionship(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatchesByChampionship")
	defer span.End()

	championshipID := r.PathValue("championshipID")
	items, err := h.matchService.ListByChampionship(ctx, championshipID)
	if err != nil {
		h.logger.WarnContext(ctx, "list matches failed", "championship_id", championshipID, "error", err)
		writeError(ctx, w, err)
		return
	}

	dtos := make([]matchDTO, 0, len(items))
	for _, m := range items {
		dtos = append(dtos, matchToDTO(ctx, m))
	}

	writeSuccess(ctx, w, http.StatusOK, dtos)
}

func (h *Handler) CreateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateMatch")
	defer span.End()

	var req createMatchRequest
	if err := decodeRequestBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	kickoffAt, err := parseRequestTime(ctx, req.KickoffAt)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.matchService.Create(ctx, usecase.CreateMatchInput{
		ChampionshipID: req.ChampionshipID,
		ExternalID:     req.ExternalID,
		HomeTeam:       req.HomeTeam,
		AwayTeam:       req.AwayTeam,
		HomeCrestURL:   req.HomeCrestURL,
		AwayCrestURL:   req.AwayCrestURL,
		KickoffAt:      kickoffAt,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create match failed", "championship_id", req.ChampionshipID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, matchToDTO(ctx, item))
}

func parseRequestTime(ctx context.Context, value string) (time.Time, error) {
	ctx, span := startSpan(ctx, "httpapi.parseRequestTime")
	defer span.End()

	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: timestamp must be RFC3339: %v", usecase.ErrInvalidInput, err)
	}
	return parsed, nil
}

func matchToDTO(ctx context.Context, v match.Match) matchDTO {
	ctx, span := startSpan(ctx, "httpapi.matchToDTO")
	defer span.End()

	return matchDTO{
		ID:             v.ID,
		ChampionshipID: v.ChampionshipID,
		ExternalID:     v.ExternalID,
		HomeTeam:       v.HomeTeam,
		AwayTeam:       v.AwayTeam,
		HomeCrestURL:   v.HomeCrestURL,
		AwayCrestURL:   v.AwayCrestURL,
		KickoffAt:      v.KickoffAt.UTC().Format(time.RFC3339),
		Status:         string(v.Status),
		HomeScore:      v.HomeScore,
		AwayScore:      v.AwayScore,
	}
}
