package prediction

import "context"

// RankingRow is one user's aggregate over a championship's predictions.
type RankingRow struct {
	UserID      string
	Points      int
	ExactHits   int
	Predictions int
}

// Repository describes prediction persistence needs from use cases.
type Repository interface {
	Upsert(ctx context.Context, item Prediction) (Prediction, error)
	GetByUserAndMatch(ctx context.Context, userID, matchID string) (Prediction, bool, error)
	ListByUserAndMatches(ctx context.Context, userID string, matchIDs []string) ([]Prediction, error)
	ListByMatch(ctx context.Context, matchID string) ([]Prediction, error)
	SetPoints(ctx context.Context, predictionID string, points int) error
	RankingByMatches(ctx context.Context, matchIDs []string) ([]RankingRow, error)
}
