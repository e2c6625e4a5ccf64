package postgres

import (
	"context"
	"fmt"

	sonic "github.com/bytedance/sonic"
	"github.com/jmoiron/sqlx"

	"github.com/futebolao/futebolao/internal/infrastructure/repository/memory"
)

// BootstrapSeed inserts the development dataset when the database is empty.
// Existing rows always win; seeding never overwrites.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM championships WHERE deleted_at IS NULL`); err != nil {
		return fmt.Errorf("count championships for bootstrap seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, c := range memory.SeedChampionships() {
		settings := []byte("{}")
		if c.DisplaySettings != nil {
			settings, err = sonic.Marshal(c.DisplaySettings)
			if err != nil {
				return fmt.Errorf("encode seed display settings %s: %w", c.ID, err)
			}
		}

		sqlQuery, args, err := sqlx.Named(`
INSERT INTO championships (public_id, name, status, creation_type, api_score_type, api_code, display_settings)
VALUES (:public_id, :name, :status, :creation_type, :api_score_type, :api_code, :display_settings)
ON CONFLICT (public_id) DO NOTHING`, map[string]any{
			"public_id":        c.ID,
			"name":             c.Name,
			"status":           c.Status,
			"creation_type":    c.Policy.CreationType,
			"api_score_type":   c.Policy.APIScoreType,
			"api_code":         c.Policy.APICode,
			"display_settings": settings,
		})
		if err != nil {
			return fmt.Errorf("bind seed championship %s query: %w", c.ID, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed championship %s: %w", c.ID, err)
		}
	}

	for _, m := range memory.SeedMatches() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO matches (public_id, championship_public_id, external_match_id, home_team, away_team, home_crest_url, away_crest_url, kickoff_at, status)
VALUES (:public_id, :championship_public_id, :external_match_id, :home_team, :away_team, :home_crest_url, :away_crest_url, :kickoff_at, :status)
ON CONFLICT (public_id) DO NOTHING`, map[string]any{
			"public_id":              m.ID,
			"championship_public_id": m.ChampionshipID,
			"external_match_id":      int64PtrToNull(m.ExternalID),
			"home_team":              m.HomeTeam,
			"away_team":              m.AwayTeam,
			"home_crest_url":         m.HomeCrestURL,
			"away_crest_url":         m.AwayCrestURL,
			"kickoff_at":             m.KickoffAt.UTC(),
			"status":                 string(m.Status),
		})
		if err != nil {
			return fmt.Errorf("bind seed match %s query: %w", m.ID, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed match %s: %w", m.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}
	return nil
}
