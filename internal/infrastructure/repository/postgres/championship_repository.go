package postgres

import (
	"context"
	"fmt"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/jmoiron/sqlx"
	"github.com/jmoiron/sqlx/types"

	"github.com/futebolao/futebolao/internal/domain/championship"
	qb "github.com/futebolao/futebolao/internal/platform/querybuilder"
)

type ChampionshipRepository struct {
	db *sqlx.DB
}

func NewChampionshipRepository(db *sqlx.DB) *ChampionshipRepository {
	return &ChampionshipRepository{db: db}
}

func (r *ChampionshipRepository) List(ctx context.Context) ([]championship.Championship, error) {
	query, args, err := qb.Select("*").From("championships").
		Where(qb.IsNull("deleted_at")).
		OrderBy("name", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select championships query: %w", err)
	}

	var rows []championshipTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select championships: %w", err)
	}

	out := make([]championship.Championship, 0, len(rows))
	for _, row := range rows {
		item, err := championshipFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

func (r *ChampionshipRepository) GetByID(ctx context.Context, championshipID string) (championship.Championship, bool, error) {
	query, args, err := qb.Select("*").From("championships").
		Where(
			qb.Eq("public_id", championshipID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return championship.Championship{}, false, fmt.Errorf("build get championship by id query: %w", err)
	}

	var row championshipTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return championship.Championship{}, false, nil
		}
		return championship.Championship{}, false, fmt.Errorf("get championship by id: %w", err)
	}

	item, err := championshipFromRow(row)
	if err != nil {
		return championship.Championship{}, false, err
	}
	return item, true, nil
}

func (r *ChampionshipRepository) Create(ctx context.Context, item championship.Championship) error {
	settings, err := encodeDisplaySettings(item.DisplaySettings)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	query, args, err := qb.InsertInto("championships").
		Columns("public_id", "name", "status", "creation_type", "api_score_type", "api_code", "display_settings", "created_at", "updated_at").
		Values(item.ID, item.Name, item.Status, item.Policy.CreationType, item.Policy.APIScoreType, item.Policy.APICode, settings, now, now).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert championship query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert championship: %w", err)
	}
	return nil
}

func (r *ChampionshipRepository) Update(ctx context.Context, item championship.Championship) error {
	settings, err := encodeDisplaySettings(item.DisplaySettings)
	if err != nil {
		return err
	}

	query, args, err := qb.Update("championships").
		Set("name", item.Name).
		Set("status", item.Status).
		Set("creation_type", item.Policy.CreationType).
		Set("api_score_type", item.Policy.APIScoreType).
		Set("api_code", item.Policy.APICode).
		Set("display_settings", settings).
		Set("updated_at", time.Now().UTC()).
		Where(
			qb.Eq("public_id", item.ID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update championship query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update championship: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update championship rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("championship not found: %s", item.ID)
	}
	return nil
}

func championshipFromRow(row championshipTableModel) (championship.Championship, error) {
	item := championship.Championship{
		ID:     row.PublicID,
		Name:   row.Name,
		Status: row.Status,
		Policy: championship.SyncPolicy{
			CreationType: row.CreationType,
			APIScoreType: row.APIScoreType,
			APICode:      row.APICode,
		},
	}
	if len(row.DisplaySettings) > 0 {
		if err := sonic.Unmarshal(row.DisplaySettings, &item.DisplaySettings); err != nil {
			return championship.Championship{}, fmt.Errorf("decode display settings for championship=%s: %w", row.PublicID, err)
		}
	}
	return item, nil
}

func encodeDisplaySettings(settings map[string]any) (types.JSONText, error) {
	if settings == nil {
		return types.JSONText("{}"), nil
	}
	encoded, err := sonic.Marshal(settings)
	if err != nil {
		return nil, fmt.Errorf("encode display settings: %w", err)
	}
	return types.JSONText(encoded), nil
}
