package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/lifeboat-community/leaderboard-api/internal/domain/moderationlog"
	qb "github.com/lifeboat-community/leaderboard-api/internal/platform/querybuilder"
)

type ModerationLogRepository struct {
	db *sqlx.DB
}

func NewModerationLogRepository(db *sqlx.DB) *ModerationLogRepository {
	return &ModerationLogRepository{db: db}
}

func (r *ModerationLogRepository) Append(ctx context.Context, entry moderationlog.Entry) error {
	query, args, err := qb.InsertInto("moderation_logs").
		Columns("public_id", "moderator_public_id", "record_public_id", "action", "notes", "created_at").
		Values(entry.ID, entry.ModeratorID, entry.RecordID, entry.Action, entry.Notes, entry.CreatedAt).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert moderation log query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert moderation log: %w", err)
	}

	return nil
}

func (r *ModerationLogRepository) ListByRecord(ctx context.Context, recordID string) ([]moderationlog.Entry, error) {
	query, args, err := qb.Select("*").From("moderation_logs").
		Where(qb.Eq("record_public_id", recordID)).
		OrderBy("created_at ASC", "id ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select moderation logs query: %w", err)
	}

	var rows []moderationLogTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select moderation logs: %w", err)
	}

	out := make([]moderationlog.Entry, 0, len(rows))
	for _, row := range rows {
		out = append(out, moderationlog.Entry{
			ID:          row.PublicID,
			ModeratorID: row.ModeratorID,
			RecordID:    row.RecordID,
			Action:      row.Action,
			Notes:       row.Notes,
			CreatedAt:   row.CreatedAt,
		})
	}

	return out, nil
}
