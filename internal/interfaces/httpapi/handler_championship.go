package httpapi

import (
	"context"
	"net/http"

	"github.com/futebolao/futebolao/internal/domain/championship"
	"github.com/futebolao/futebolao/internal/usecase"
)

type createChampionshipRequest struct {
	Name            string         `json:"name" validate:"required,max=120"`
	Status          string         `json:"status" validate:"omitempty,max=40"`
	CreationType    string         `json:"creationType" validate:"omitempty,max=40"`
	APIScoreType    string         `json:"apiScoreType" validate:"omitempty,max=40"`
	APICode         string         `json:"apiCode" validate:"omitempty,max=40"`
	DisplaySettings map[string]any `json:"displaySettings,omitempty"`
}

type updateChampionshipRequest struct {
	Name            *string        `json:"name" validate:"omitempty,max=120"`
	Status          *string        `json:"status" validate:"omitempty,max=40"`
	CreationType    *string        `json:"creationType" validate:"omitempty,max=40"`
	APIScoreType    *string        `json:"apiScoreType" validate:"omitempty,max=40"`
	APICode         *string        `json:"apiCode" validate:"omitempty,max=40"`
	DisplaySettings map[string]any `json:"displaySettings,omitempty"`
}

type championshipDTO struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	Status          string         `json:"status"`
	CreationType    string         `json:"creationType"`
	APIScoreType    string         `json:"apiScoreType"`
	APICode         string         `json:"apiCode,omitempty"`
	DisplaySettings map[string]any `json:"displaySettings,omitempty"`
}

func (h *Handler) ListChampionships(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListChampionships")
	defer span.End()

	items, err := h.championshipService.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list championships failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	dtos := make([]championshipDTO, 0, len(items))
	for _, c := range items {
		dtos = append(dtos, championshipToDTO(ctx, c))
	}

	writeSuccess(ctx, w, http.StatusOK, dtos)
}

func (h *Handler) GetChampionship(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetChampionship")
	defer span.End()

	championshipID := r.PathValue("championshipID")
	item, err := h.championshipService.Get(ctx, championshipID)
	if err != nil {
		h.logger.WarnContext(ctx, "get championship failed", "championship_id", championshipID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, championshipToDTO(ctx, item))
}

func (h *Handler) CreateChampionship(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateChampionship")
	defer span.End()

	var req createChampionshipRequest
	if err := decodeRequestBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.championshipService.Create(ctx, usecase.CreateChampionshipInput{
		Name:            req.Name,
		Status:          req.Status,
		CreationType:    req.CreationType,
		APIScoreType:    req.APIScoreType,
		APICode:         req.APICode,
		DisplaySettings: req.DisplaySettings,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create championship failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, championshipToDTO(ctx, item))
}

func (h *Handler) UpdateChampionship(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateChampionship")
	defer span.End()

	championshipID := r.PathValue("championshipID")
	var req updateChampionshipRequest
	if err := decodeRequestBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.championshipService.Update(ctx, usecase.UpdateChampionshipInput{
		ChampionshipID:  championshipID,
		Name:            req.Name,
		Status:          req.Status,
		CreationType:    req.CreationType,
		APIScoreType:    req.APIScoreType,
		APICode:         req.APICode,
		DisplaySettings: req.DisplaySettings,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update championship failed", "championship_id", championshipID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, championshipToDTO(ctx, item))
}

func championshipToDTO(ctx context.Context, v championship.Championship) championshipDTO {
	ctx, span := startSpan(ctx, "httpapi.championshipToDTO")
	defer span.End()

	return championshipDTO{
		ID:              v.ID,
		Name:            v.Name,
		Status:          v.Status,
		CreationType:    v.Policy.CreationType,
		APIScoreType:    v.Policy.APIScoreType,
		APICode:         v.Policy.APICode,
		DisplaySettings: v.DisplaySettings,
	}
}
