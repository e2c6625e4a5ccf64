package httpapi

import (
	"context"
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/futebolao/futebolao/internal/platform/logging"
	"github.com/futebolao/futebolao/internal/usecase"
)

type Handler struct {
	championshipService *usecase.ChampionshipService
	matchService        *usecase.MatchService
	predictionService   *usecase.PredictionService
	scoringService      *usecase.ScoringService
	rankingService      *usecase.RankingService
	syncService         *usecase.SyncService
	logger              *logging.Logger
	validator           *validator.Validate
}

func NewHandler(
	championshipService *usecase.ChampionshipService,
	matchService *usecase.MatchService,
	predictionService *usecase.PredictionService,
	scoringService *usecase.ScoringService,
	rankingService *usecase.RankingService,
	syncService *usecase.SyncService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		championshipService: championshipService,
		matchService:        matchService,
		predictionService:   predictionService,
		scoringService:      scoringService,
		rankingService:      rankingService,
		syncService:         syncService,
		logger:              logger,
		validator:           validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func decodeRequestBody(r *http.Request, target any) error {
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(target); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}
