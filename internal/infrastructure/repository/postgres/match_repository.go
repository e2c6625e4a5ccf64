package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/futebolao/futebolao/internal/domain/match"
	qb "github.com/futebolao/futebolao/internal/platform/querybuilder"
)

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) ListByChampionship(ctx context.Context, championshipID string) ([]match.Match, error) {
	query, args, err := qb.Select("*").From("matches").
		Where(
			qb.Eq("championship_public_id", championshipID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("kickoff_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select matches query: %w", err)
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select matches by championship: %w", err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, matchFromRow(row))
	}
	return out, nil
}

func (r *MatchRepository) ListSyncCandidates(ctx context.Context, championshipIDs []string, kickoffAfter time.Time) ([]match.Match, error) {
	if len(championshipIDs) == 0 {
		return []match.Match{}, nil
	}

	ids := make([]any, 0, len(championshipIDs))
	for _, id := range championshipIDs {
		ids = append(ids, id)
	}

	query, args, err := qb.Select("*").From("matches").
		Where(
			qb.In("championship_public_id", ids),
			qb.Expr("external_match_id IS NOT NULL"),
			qb.Expr("kickoff_at >= ?", kickoffAfter),
			qb.IsNull("deleted_at"),
		).
		OrderBy("kickoff_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select sync candidates query: %w", err)
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select sync candidates: %w", err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, matchFromRow(row))
	}
	return out, nil
}

func (r *MatchRepository) GetByID(ctx context.Context, matchID string) (match.Match, bool, error) {
	query, args, err := qb.Select("*").From("matches").
		Where(
			qb.Eq("public_id", matchID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build get match by id query: %w", err)
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("get match by id: %w", err)
	}
	return matchFromRow(row), true, nil
}

func (r *MatchRepository) Create(ctx context.Context, item match.Match) error {
	now := time.Now().UTC()
	query, args, err := qb.InsertInto("matches").
		Columns("public_id", "championship_public_id", "external_match_id", "home_team", "away_team", "home_crest_url", "away_crest_url", "kickoff_at", "status", "home_score", "away_score", "created_at", "updated_at").
		Values(item.ID, item.ChampionshipID, int64PtrToNull(item.ExternalID), item.HomeTeam, item.AwayTeam, item.HomeCrestURL, item.AwayCrestURL, item.KickoffAt.UTC(), string(item.Status), intPtrToNull(item.HomeScore), intPtrToNull(item.AwayScore), now, now).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert match query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert match: %w", err)
	}
	return nil
}

func (r *MatchRepository) ApplySyncUpdate(ctx context.Context, matchID string, update match.SyncUpdate) error {
	query, args, err := qb.Update("matches").
		Set("status", string(update.Status)).
		Set("home_score", intPtrToNull(update.HomeScore)).
		Set("away_score", intPtrToNull(update.AwayScore)).
		Set("kickoff_at", update.KickoffAt.UTC()).
		Set("home_crest_url", update.HomeCrestURL).
		Set("away_crest_url", update.AwayCrestURL).
		Set("updated_at", time.Now().UTC()).
		Where(
			qb.Eq("public_id", matchID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build apply sync update query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("apply sync update: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("apply sync update rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("match not found: %s", matchID)
	}
	return nil
}

func matchFromRow(row matchTableModel) match.Match {
	return match.Match{
		ID:             row.PublicID,
		ChampionshipID: row.ChampionshipID,
		ExternalID:     nullToInt64Ptr(row.ExternalID),
		HomeTeam:       row.HomeTeam,
		AwayTeam:       row.AwayTeam,
		HomeCrestURL:   row.HomeCrestURL,
		AwayCrestURL:   row.AwayCrestURL,
		KickoffAt:      row.KickoffAt.UTC(),
		Status:         match.Status(row.Status),
		HomeScore:      nullToIntPtr(row.HomeScore),
		AwayScore:      nullToIntPtr(row.AwayScore),
	}
}

func int64PtrToNull(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}

func intPtrToNull(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

func nullToInt64Ptr(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	value := v.Int64
	return &value
}

func nullToIntPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	value := int(v.Int64)
	return &value
}
