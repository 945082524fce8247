package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/lifeboat-community/leaderboard-api/internal/domain/gamemode"
	qb "github.com/lifeboat-community/leaderboard-api/internal/platform/querybuilder"
)

type GamemodeRepository struct {
	db *sqlx.DB
}

func NewGamemodeRepository(db *sqlx.DB) *GamemodeRepository {
	return &GamemodeRepository{db: db}
}

func (r *GamemodeRepository) List(ctx context.Context) ([]gamemode.Gamemode, error) {
	query, args, err := qb.Select("*").From("gamemodes").
		OrderBy("created_at ASC", "id ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select gamemodes query: %w", err)
	}

	var rows []gamemodeTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select gamemodes: %w", err)
	}

	out := make([]gamemode.Gamemode, 0, len(rows))
	for _, row := range rows {
		out = append(out, gamemodeFromRow(row))
	}

	return out, nil
}

func (r *GamemodeRepository) GetByID(ctx context.Context, gamemodeID string) (gamemode.Gamemode, bool, error) {
	query, args, err := qb.Select("*").From("gamemodes").
		Where(qb.Eq("public_id", gamemodeID)).
		ToSQL()
	if err != nil {
		return gamemode.Gamemode{}, false, fmt.Errorf("build get gamemode by id query: %w", err)
	}

	var row gamemodeTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return gamemode.Gamemode{}, false, nil
		}
		return gamemode.Gamemode{}, false, fmt.Errorf("get gamemode by id: %w", err)
	}

	return gamemodeFromRow(row), true, nil
}

func (r *GamemodeRepository) Create(ctx context.Context, item gamemode.Gamemode) error {
	query, args, err := qb.InsertInto("gamemodes").
		Columns("public_id", "name", "slug", "icon", "description", "is_active", "created_at", "updated_at").
		Values(item.ID, item.Name, item.Slug, item.Icon, item.Description, item.IsActive, item.CreatedAt, item.CreatedAt).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert gamemode query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert gamemode: %w", err)
	}

	return nil
}

func (r *GamemodeRepository) SetActive(ctx context.Context, gamemodeID string, active bool) (gamemode.Gamemode, bool, error) {
	query, args, err := qb.Update("gamemodes").
		Set("is_active", active).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("public_id", gamemodeID)).
		Suffix("RETURNING *").
		ToSQL()
	if err != nil {
		return gamemode.Gamemode{}, false, fmt.Errorf("build update gamemode query: %w", err)
	}

	var row gamemodeTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return gamemode.Gamemode{}, false, nil
		}
		return gamemode.Gamemode{}, false, fmt.Errorf("update gamemode active flag: %w", err)
	}

	return gamemodeFromRow(row), true, nil
}

func gamemodeFromRow(row gamemodeTableModel) gamemode.Gamemode {
	return gamemode.Gamemode{
		ID:          row.PublicID,
		Name:        row.Name,
		Slug:        row.Slug,
		Icon:        row.Icon,
		Description: row.Description,
		IsActive:    row.IsActive,
		CreatedAt:   row.CreatedAt,
	}
}
