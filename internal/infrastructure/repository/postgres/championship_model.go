package postgres

import (
	"time"

	"github.com/jmoiron/sqlx/types"
)

type championshipTableModel struct {
	ID              int64          `db:"id"`
	PublicID        string         `db:"public_id"`
	Name            string         `db:"name"`
	Status          string         `db:"status"`
	CreationType    string         `db:"creation_type"`
	APIScoreType    string         `db:"api_score_type"`
	APICode         string         `db:"api_code"`
	DisplaySettings types.JSONText `db:"display_settings"`
	CreatedAt       time.Time      `db:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at"`
	DeletedAt       *time.Time     `db:"deleted_at"`
}
