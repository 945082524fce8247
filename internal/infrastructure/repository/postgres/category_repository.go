package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/lifeboat-community/leaderboard-api/internal/domain/category"
	qb "github.com/lifeboat-community/leaderboard-api/internal/platform/querybuilder"
)

type CategoryRepository struct {
	db *sqlx.DB
}

func NewCategoryRepository(db *sqlx.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) ListByGamemode(ctx context.Context, gamemodeID string) ([]category.Category, error) {
	query, args, err := qb.Select("*").From("categories").
		Where(qb.Eq("gamemode_public_id", gamemodeID)).
		OrderBy("created_at ASC", "id ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select categories query: %w", err)
	}

	var rows []categoryTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select categories: %w", err)
	}

	out := make([]category.Category, 0, len(rows))
	for _, row := range rows {
		out = append(out, categoryFromRow(row))
	}

	return out, nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, categoryID string) (category.Category, bool, error) {
	query, args, err := qb.Select("*").From("categories").
		Where(qb.Eq("public_id", categoryID)).
		ToSQL()
	if err != nil {
		return category.Category{}, false, fmt.Errorf("build get category by id query: %w", err)
	}

	var row categoryTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return category.Category{}, false, nil
		}
		return category.Category{}, false, fmt.Errorf("get category by id: %w", err)
	}

	return categoryFromRow(row), true, nil
}

func (r *CategoryRepository) Create(ctx context.Context, item category.Category) error {
	query, args, err := qb.InsertInto("categories").
		Columns("public_id", "gamemode_public_id", "name", "metric_type", "rules", "difficulty_level", "estimated_effort", "is_active", "created_at", "updated_at").
		Values(item.ID, item.GamemodeID, item.Name, string(item.MetricType), item.Rules, item.DifficultyLevel, item.EstimatedEffort, item.IsActive, item.CreatedAt, item.CreatedAt).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert category query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert category: %w", err)
	}

	return nil
}

func (r *CategoryRepository) SetActive(ctx context.Context, categoryID string, active bool) (category.Category, bool, error) {
	query, args, err := qb.Update("categories").
		Set("is_active", active).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("public_id", categoryID)).
		Suffix("RETURNING *").
		ToSQL()
	if err != nil {
		return category.Category{}, false, fmt.Errorf("build update category query: %w", err)
	}

	var row categoryTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return category.Category{}, false, nil
		}
		return category.Category{}, false, fmt.Errorf("update category active flag: %w", err)
	}

	return categoryFromRow(row), true, nil
}

func categoryFromRow(row categoryTableModel) category.Category {
	return category.Category{
		ID:              row.PublicID,
		GamemodeID:      row.GamemodeID,
		Name:            row.Name,
		MetricType:      category.MetricType(row.MetricType),
		Rules:           row.Rules,
		DifficultyLevel: row.DifficultyLevel,
		EstimatedEffort: row.EstimatedEffort,
		IsActive:        row.IsActive,
		CreatedAt:       row.CreatedAt,
	}
}
