package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/lifeboat-community/leaderboard-api/internal/domain/profile"
	qb "github.com/lifeboat-community/leaderboard-api/internal/platform/querybuilder"
)

type ProfileRepository struct {
	db *sqlx.DB
}

func NewProfileRepository(db *sqlx.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) List(ctx context.Context) ([]profile.Profile, error) {
	query, args, err := qb.Select("*").From("profiles").
		OrderBy("created_at ASC", "id ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select profiles query: %w", err)
	}

	var rows []profileTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select profiles: %w", err)
	}

	out := make([]profile.Profile, 0, len(rows))
	for _, row := range rows {
		out = append(out, profileFromRow(row))
	}

	return out, nil
}

func (r *ProfileRepository) GetByID(ctx context.Context, profileID string) (profile.Profile, bool, error) {
	query, args, err := qb.Select("*").From("profiles").
		Where(qb.Eq("public_id", profileID)).
		ToSQL()
	if err != nil {
		return profile.Profile{}, false, fmt.Errorf("build get profile by id query: %w", err)
	}

	var row profileTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return profile.Profile{}, false, nil
		}
		return profile.Profile{}, false, fmt.Errorf("get profile by id: %w", err)
	}

	return profileFromRow(row), true, nil
}

func (r *ProfileRepository) GetByIDs(ctx context.Context, profileIDs []string) (map[string]profile.Profile, error) {
	if len(profileIDs) == 0 {
		return map[string]profile.Profile{}, nil
	}

	ids := make([]any, 0, len(profileIDs))
	for _, id := range profileIDs {
		ids = append(ids, id)
	}

	query, args, err := qb.Select("*").From("profiles").
		Where(qb.In("public_id", ids)).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select profiles by ids query: %w", err)
	}

	var rows []profileTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select profiles by ids: %w", err)
	}

	out := make(map[string]profile.Profile, len(rows))
	for _, row := range rows {
		out[row.PublicID] = profileFromRow(row)
	}

	return out, nil
}

func (r *ProfileRepository) Create(ctx context.Context, item profile.Profile) error {
	query, args, err := qb.InsertInto("profiles").
		Columns("public_id", "username", "avatar_url", "bio", "role", "created_at", "updated_at").
		Values(item.ID, item.Username, item.AvatarURL, item.Bio, string(item.Role), item.CreatedAt, item.CreatedAt).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert profile query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert profile: %w", err)
	}

	return nil
}

func (r *ProfileRepository) UpdateRole(ctx context.Context, profileID string, role profile.Role) (profile.Profile, bool, error) {
	query, args, err := qb.Update("profiles").
		Set("role", string(role)).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("public_id", profileID)).
		Suffix("RETURNING *").
		ToSQL()
	if err != nil {
		return profile.Profile{}, false, fmt.Errorf("build update profile role query: %w", err)
	}

	var row profileTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return profile.Profile{}, false, nil
		}
		return profile.Profile{}, false, fmt.Errorf("update profile role: %w", err)
	}

	return profileFromRow(row), true, nil
}

func profileFromRow(row profileTableModel) profile.Profile {
	return profile.Profile{
		ID:        row.PublicID,
		Username:  row.Username,
		AvatarURL: row.AvatarURL,
		Bio:       row.Bio,
		Role:      profile.Role(row.Role),
		CreatedAt: row.CreatedAt,
	}
}
