package postgres

import (
	"database/sql"
	"time"
)

type predictionTableModel struct {
	ID        int64         `db:"id"`
	PublicID  string        `db:"public_id"`
	UserID    string        `db:"user_id"`
	MatchID   string        `db:"match_public_id"`
	HomeGuess int           `db:"home_guess"`
	AwayGuess int           `db:"away_guess"`
	Points    sql.NullInt64 `db:"points"`
	CreatedAt time.Time     `db:"created_at"`
	UpdatedAt time.Time     `db:"updated_at"`
}

type rankingRowModel struct {
	UserID      string `db:"user_id"`
	Points      int    `db:"points"`
	ExactHits   int    `db:"exact_hits"`
	Predictions int    `db:"predictions"`
}
