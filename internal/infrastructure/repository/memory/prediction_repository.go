package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/futebolao/futebolao/internal/domain/prediction"
)

type PredictionRepository struct {
	mu    sync.RWMutex
	items map[string]prediction.Prediction
}

func NewPredictionRepository() *PredictionRepository {
	return &PredictionRepository{items: make(map[string]prediction.Prediction)}
}

func (r *PredictionRepository) Upsert(_ context.Context, item prediction.Prediction) (prediction.Prediction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, existing := range r.items {
		if existing.UserID == item.UserID && existing.MatchID == item.MatchID {
			existing.HomeGuess = item.HomeGuess
			existing.AwayGuess = item.AwayGuess
			existing.Points = nil
			existing.UpdatedAt = item.UpdatedAt
			r.items[id] = existing
			return existing, nil
		}
	}

	r.items[item.ID] = item
	return item, nil
}

func (r *PredictionRepository) GetByUserAndMatch(_ context.Context, userID, matchID string) (prediction.Prediction, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.items {
		if item.UserID == userID && item.MatchID == matchID {
			return item, true, nil
		}
	}
	return prediction.Prediction{}, false, nil
}

func (r *PredictionRepository) ListByUserAndMatches(_ context.Context, userID string, matchIDs []string) ([]prediction.Prediction, error) {
	allowed := make(map[string]bool, len(matchIDs))
	for _, id := range matchIDs {
		allowed[id] = true
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]prediction.Prediction, 0)
	for _, item := range r.items {
		if item.UserID == userID && allowed[item.MatchID] {
			out = append(out, item)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].MatchID < out[j].MatchID })
	return out, nil
}

func (r *PredictionRepository) ListByMatch(_ context.Context, matchID string) ([]prediction.Prediction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]prediction.Prediction, 0)
	for _, item := range r.items {
		if item.MatchID == matchID {
			out = append(out, item)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].UserID < out[j].UserID })
	return out, nil
}

func (r *PredictionRepository) SetPoints(_ context.Context, predictionID string, points int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[predictionID]
	if !ok {
		return fmt.Errorf("prediction not found: %s", predictionID)
	}
	item.Points = &points
	r.items[predictionID] = item
	return nil
}

func (r *PredictionRepository) RankingByMatches(_ context.Context, matchIDs []string) ([]prediction.RankingRow, error) {
	allowed := make(map[string]bool, len(matchIDs))
	for _, id := range matchIDs {
		allowed[id] = true
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	byUser := make(map[string]*prediction.RankingRow)
	for _, item := range r.items {
		if !allowed[item.MatchID] {
			continue
		}
		row, ok := byUser[item.UserID]
		if !ok {
			row = &prediction.RankingRow{UserID: item.UserID}
			byUser[item.UserID] = row
		}
		row.Predictions++
		if item.Points != nil {
			row.Points += *item.Points
			if *item.Points == prediction.PointsExactScore {
				row.ExactHits++
			}
		}
	}

	out := make([]prediction.RankingRow, 0, len(byUser))
	for _, row := range byUser {
		out = append(out, *row)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Points != out[j].Points {
			return out[i].Points > out[j].Points
		}
		if out[i].ExactHits != out[j].ExactHits {
			return out[i].ExactHits > out[j].ExactHits
		}
		return out[i].UserID < out[j].UserID
	})
	return out, nil
}
