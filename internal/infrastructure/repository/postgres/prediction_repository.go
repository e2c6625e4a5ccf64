package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/futebolao/futebolao/internal/domain/prediction"
	qb "github.com/futebolao/futebolao/internal/platform/querybuilder"
)

type PredictionRepository struct {
	db *sqlx.DB
}

func NewPredictionRepository(db *sqlx.DB) *PredictionRepository {
	return &PredictionRepository{db: db}
}

// Upsert keys on (user_id, match_public_id); resubmitting before kickoff
// replaces the guess and clears any stale points.
func (r *PredictionRepository) Upsert(ctx context.Context, item prediction.Prediction) (prediction.Prediction, error) {
	now := time.Now().UTC()
	query, args, err := qb.InsertInto("predictions").
		Columns("public_id", "user_id", "match_public_id", "home_guess", "away_guess", "created_at", "updated_at").
		Values(item.ID, item.UserID, item.MatchID, item.HomeGuess, item.AwayGuess, now, now).
		Suffix("ON CONFLICT (user_id, match_public_id) DO UPDATE SET home_guess = EXCLUDED.home_guess, away_guess = EXCLUDED.away_guess, points = NULL, updated_at = EXCLUDED.updated_at").
		ToSQL()
	if err != nil {
		return prediction.Prediction{}, fmt.Errorf("build upsert prediction query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return prediction.Prediction{}, fmt.Errorf("upsert prediction: %w", err)
	}

	saved, exists, err := r.GetByUserAndMatch(ctx, item.UserID, item.MatchID)
	if err != nil {
		return prediction.Prediction{}, err
	}
	if !exists {
		return prediction.Prediction{}, fmt.Errorf("prediction vanished after upsert user=%s match=%s", item.UserID, item.MatchID)
	}
	return saved, nil
}

func (r *PredictionRepository) GetByUserAndMatch(ctx context.Context, userID, matchID string) (prediction.Prediction, bool, error) {
	query, args, err := qb.Select("*").From("predictions").
		Where(
			qb.Eq("user_id", userID),
			qb.Eq("match_public_id", matchID),
		).
		ToSQL()
	if err != nil {
		return prediction.Prediction{}, false, fmt.Errorf("build get prediction query: %w", err)
	}

	var row predictionTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return prediction.Prediction{}, false, nil
		}
		return prediction.Prediction{}, false, fmt.Errorf("get prediction by user and match: %w", err)
	}
	return predictionFromRow(row), true, nil
}

func (r *PredictionRepository) ListByUserAndMatches(ctx context.Context, userID string, matchIDs []string) ([]prediction.Prediction, error) {
	if len(matchIDs) == 0 {
		return []prediction.Prediction{}, nil
	}

	ids := make([]any, 0, len(matchIDs))
	for _, id := range matchIDs {
		ids = append(ids, id)
	}

	query, args, err := qb.Select("*").From("predictions").
		Where(
			qb.Eq("user_id", userID),
			qb.In("match_public_id", ids),
		).
		OrderBy("match_public_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list predictions by user query: %w", err)
	}

	var rows []predictionTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list predictions by user and matches: %w", err)
	}

	out := make([]prediction.Prediction, 0, len(rows))
	for _, row := range rows {
		out = append(out, predictionFromRow(row))
	}
	return out, nil
}

func (r *PredictionRepository) ListByMatch(ctx context.Context, matchID string) ([]prediction.Prediction, error) {
	query, args, err := qb.Select("*").From("predictions").
		Where(qb.Eq("match_public_id", matchID)).
		OrderBy("user_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list predictions by match query: %w", err)
	}

	var rows []predictionTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list predictions by match: %w", err)
	}

	out := make([]prediction.Prediction, 0, len(rows))
	for _, row := range rows {
		out = append(out, predictionFromRow(row))
	}
	return out, nil
}

func (r *PredictionRepository) SetPoints(ctx context.Context, predictionID string, points int) error {
	query, args, err := qb.Update("predictions").
		Set("points", points).
		Set("updated_at", time.Now().UTC()).
		Where(qb.Eq("public_id", predictionID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build set points query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("set prediction points: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("set prediction points rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("prediction not found: %s", predictionID)
	}
	return nil
}

func (r *PredictionRepository) RankingByMatches(ctx context.Context, matchIDs []string) ([]prediction.RankingRow, error) {
	if len(matchIDs) == 0 {
		return []prediction.RankingRow{}, nil
	}

	ids := make([]any, 0, len(matchIDs))
	for _, id := range matchIDs {
		ids = append(ids, id)
	}

	query, args, err := qb.Select(
		"user_id",
		"COALESCE(SUM(points), 0) AS points",
		fmt.Sprintf("COUNT(*) FILTER (WHERE points = %d) AS exact_hits", prediction.PointsExactScore),
		"COUNT(*) AS predictions",
	).From("predictions").
		Where(qb.In("match_public_id", ids)).
		GroupBy("user_id").
		OrderBy("points DESC", "exact_hits DESC", "user_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build ranking query: %w", err)
	}

	var rows []rankingRowModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("aggregate ranking by matches: %w", err)
	}

	out := make([]prediction.RankingRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, prediction.RankingRow{
			UserID:      row.UserID,
			Points:      row.Points,
			ExactHits:   row.ExactHits,
			Predictions: row.Predictions,
		})
	}
	return out, nil
}

func predictionFromRow(row predictionTableModel) prediction.Prediction {
	return prediction.Prediction{
		ID:        row.PublicID,
		UserID:    row.UserID,
		MatchID:   row.MatchID,
		HomeGuess: row.HomeGuess,
		AwayGuess: row.AwayGuess,
		Points:    nullToIntPtr(row.Points),
		UpdatedAt: row.UpdatedAt.UTC(),
	}
}
