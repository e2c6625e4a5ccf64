package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/futebolao/futebolao/internal/domain/match"
	"github.com/futebolao/futebolao/internal/domain/prediction"
	idgen "github.com/futebolao/futebolao/internal/platform/id"
)

type SubmitPredictionInput struct {
	UserID    string
	MatchID   string
	HomeGuess int
	AwayGuess int
}

// PredictionService accepts and lists user guesses. A prediction is locked the
// moment its match kicks off.
type PredictionService struct {
	matchRepo      match.Repository
	predictionRepo prediction.Repository
	idGen          idgen.Generator
	now            func() time.Time
}

func NewPredictionService(matchRepo match.Repository, predictionRepo prediction.Repository, idGen idgen.Generator) *PredictionService {
	return &PredictionService{
		matchRepo:      matchRepo,
		predictionRepo: predictionRepo,
		idGen:          idGen,
		now:            time.Now,
	}
}

func (s *PredictionService) Submit(ctx context.Context, input SubmitPredictionInput) (prediction.Prediction, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PredictionService.Submit")
	defer span.End()

	input.UserID = strings.TrimSpace(input.UserID)
	input.MatchID = strings.TrimSpace(input.MatchID)
	if input.UserID == "" {
		return prediction.Prediction{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if input.MatchID == "" {
		return prediction.Prediction{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	m, exists, err := s.matchRepo.GetByID(ctx, input.MatchID)
	if err != nil {
		return prediction.Prediction{}, fmt.Errorf("get match for prediction: %w", err)
	}
	if !exists {
		return prediction.Prediction{}, fmt.Errorf("%w: match=%s", ErrNotFound, input.MatchID)
	}

	now := s.now().UTC()
	if m.Started(now) {
		return prediction.Prediction{}, fmt.Errorf("%w: predictions are locked after kickoff", ErrInvalidInput)
	}

	id, err := s.idGen.NewID()
	if err != nil {
		return prediction.Prediction{}, fmt.Errorf("generate prediction id: %w", err)
	}

	item := prediction.Prediction{
		ID:        id,
		UserID:    input.UserID,
		MatchID:   input.MatchID,
		HomeGuess: input.HomeGuess,
		AwayGuess: input.AwayGuess,
		UpdatedAt: now,
	}
	if err := item.Validate(); err != nil {
		return prediction.Prediction{}, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}

	saved, err := s.predictionRepo.Upsert(ctx, item)
	if err != nil {
		return prediction.Prediction{}, fmt.Errorf("upsert prediction: %w", err)
	}
	return saved, nil
}

// ListMine returns the user's predictions for one championship, keyed by the
// championship's match list so the client can render missing guesses too.
func (s *PredictionService) ListMine(ctx context.Context, userID, championshipID string) ([]prediction.Prediction, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PredictionService.ListMine")
	defer span.End()

	userID = strings.TrimSpace(userID)
	championshipID = strings.TrimSpace(championshipID)
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if championshipID == "" {
		return nil, fmt.Errorf("%w: championship id is required", ErrInvalidInput)
	}

	matches, err := s.matchRepo.ListByChampionship(ctx, championshipID)
	if err != nil {
		return nil, fmt.Errorf("list matches for predictions: %w", err)
	}
	if len(matches) == 0 {
		return []prediction.Prediction{}, nil
	}

	matchIDs := make([]string, 0, len(matches))
	for _, m := range matches {
		matchIDs = append(matchIDs, m.ID)
	}

	items, err := s.predictionRepo.ListByUserAndMatches(ctx, userID, matchIDs)
	if err != nil {
		return nil, fmt.Errorf("list predictions by user: %w", err)
	}
	return items, nil
}
