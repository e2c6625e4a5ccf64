package postgres

import (
	"database/sql"
	"time"
)

type matchTableModel struct {
	ID             int64         `db:"id"`
	PublicID       string        `db:"public_id"`
	ChampionshipID string        `db:"championship_public_id"`
	ExternalID     sql.NullInt64 `db:"external_match_id"`
	HomeTeam       string        `db:"home_team"`
	AwayTeam       string        `db:"away_team"`
	HomeCrestURL   string        `db:"home_crest_url"`
	AwayCrestURL   string        `db:"away_crest_url"`
	KickoffAt      time.Time     `db:"kickoff_at"`
	Status         string        `db:"status"`
	HomeScore      sql.NullInt64 `db:"home_score"`
	AwayScore      sql.NullInt64 `db:"away_score"`
	CreatedAt      time.Time     `db:"created_at"`
	UpdatedAt      time.Time     `db:"updated_at"`
	DeletedAt      *time.Time    `db:"deleted_at"`
}
