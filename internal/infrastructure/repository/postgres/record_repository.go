package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/lifeboat-community/leaderboard-api/internal/domain/record"
	qb "github.com/lifeboat-community/leaderboard-api/internal/platform/querybuilder"
)

type RecordRepository struct {
	db *sqlx.DB
}

func NewRecordRepository(db *sqlx.DB) *RecordRepository {
	return &RecordRepository{db: db}
}

func (r *RecordRepository) Create(ctx context.Context, item record.Record) error {
	query, args, err := qb.InsertInto("records").
		Columns("public_id", "user_public_id", "category_public_id", "value", "proof_url", "status", "notes", "moderator_feedback", "created_at", "updated_at").
		Values(item.ID, item.UserID, item.CategoryID, item.Value, item.ProofURL, string(item.Status), item.Notes, item.ModeratorFeedback, item.CreatedAt, item.CreatedAt).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert record query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert record: %w", err)
	}

	return nil
}

func (r *RecordRepository) GetByID(ctx context.Context, recordID string) (record.Record, bool, error) {
	query, args, err := qb.Select("*").From("records").
		Where(qb.Eq("public_id", recordID)).
		ToSQL()
	if err != nil {
		return record.Record{}, false, fmt.Errorf("build get record by id query: %w", err)
	}

	var row recordTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return record.Record{}, false, nil
		}
		return record.Record{}, false, fmt.Errorf("get record by id: %w", err)
	}

	return recordFromRow(row), true, nil
}

func (r *RecordRepository) ListByCategory(ctx context.Context, categoryID string) ([]record.Record, error) {
	return r.listWhere(ctx, qb.Eq("category_public_id", categoryID))
}

func (r *RecordRepository) ListByStatus(ctx context.Context, status record.Status) ([]record.Record, error) {
	return r.listWhere(ctx, qb.Eq("status", string(status)))
}

func (r *RecordRepository) ListByUser(ctx context.Context, userID string) ([]record.Record, error) {
	return r.listWhere(ctx, qb.Eq("user_public_id", userID))
}

// UpdateStatus guards the write with status = 'pending' so two racing
// decisions resolve to exactly one winner inside the database. The follow-up
// read disambiguates a missing record from an already decided one.
func (r *RecordRepository) UpdateStatus(ctx context.Context, recordID string, update record.StatusUpdate) (record.Record, error) {
	verifiedBy := sql.NullString{String: update.VerifiedBy, Valid: update.VerifiedBy != ""}

	query, args, err := qb.Update("records").
		Set("status", string(update.Status)).
		Set("verified_by", verifiedBy).
		Set("verified_at", update.VerifiedAt).
		Set("moderator_feedback", update.Feedback).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("public_id", recordID),
			qb.EqLiteral("status", string(record.StatusPending)),
		).
		Suffix("RETURNING *").
		ToSQL()
	if err != nil {
		return record.Record{}, fmt.Errorf("build update record status query: %w", err)
	}

	var row recordTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if !isNotFound(err) {
			return record.Record{}, fmt.Errorf("update record status: %w", err)
		}

		_, exists, getErr := r.GetByID(ctx, recordID)
		if getErr != nil {
			return record.Record{}, getErr
		}
		if !exists {
			return record.Record{}, record.ErrNotFound
		}
		return record.Record{}, record.ErrStatusConflict
	}

	return recordFromRow(row), nil
}

func (r *RecordRepository) listWhere(ctx context.Context, condition qb.Condition) ([]record.Record, error) {
	query, args, err := qb.Select("*").From("records").
		Where(condition).
		OrderBy("created_at ASC", "id ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select records query: %w", err)
	}

	var rows []recordTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select records: %w", err)
	}

	out := make([]record.Record, 0, len(rows))
	for _, row := range rows {
		out = append(out, recordFromRow(row))
	}

	return out, nil
}

func recordFromRow(row recordTableModel) record.Record {
	item := record.Record{
		ID:                row.PublicID,
		UserID:            row.UserID,
		CategoryID:        row.CategoryID,
		Value:             row.Value,
		ProofURL:          row.ProofURL,
		Status:            record.Status(row.Status),
		Notes:             row.Notes,
		ModeratorFeedback: row.ModeratorFeedback,
		CreatedAt:         row.CreatedAt,
	}
	if row.VerifiedBy.Valid {
		item.VerifiedBy = row.VerifiedBy.String
	}
	if row.VerifiedAt != nil {
		verifiedAt := *row.VerifiedAt
		item.VerifiedAt = &verifiedAt
	}

	return item
}
