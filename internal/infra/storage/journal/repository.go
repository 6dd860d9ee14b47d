package journal

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-TourBookingService/pkg/psqlbuilder"
)

const tableName = "command_journal"

// Repository журнал команд в PostgreSQL
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория журнала
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create записывает команду в статусе pending до отправки в хранилище
func (r *Repository) Create(ctx context.Context, entry *Entry) error {
	payload := "{}"
	if len(entry.Payload) > 0 {
		payload = string(entry.Payload)
	}

	query, args, err := psqlbuilder.Insert(tableName).
		Columns(
			"id",
			"command",
			"target_kind",
			"target_id",
			"payload",
			"status",
			"created_at",
		).
		Values(
			entry.ID,
			entry.Command,
			entry.TargetKind,
			entry.TargetID,
			payload,
			entry.Status,
			entry.CreatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// Finish фиксирует результат команды
func (r *Repository) Finish(ctx context.Context, id uuid.UUID, status Status, errMsg *string, finishedAt time.Time) error {
	query, args, err := psqlbuilder.Update(tableName).
		Set("status", status).
		Set("error", errMsg).
		Set("finished_at", finishedAt).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Finish - build update query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Finish - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Finish - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrEntryNotFound
	}

	return nil
}

// ListByStatus возвращает записи в указанном статусе, старые первыми
func (r *Repository) ListByStatus(ctx context.Context, status Status, limit uint64) ([]*Entry, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"command",
		"target_kind",
		"target_id",
		"payload",
		"status",
		"error",
		"created_at",
		"finished_at",
	).
		From(tableName).
		Where(squirrel.Eq{"status": status}).
		OrderBy("created_at ASC").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByStatus - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByStatus - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	entries := make([]*Entry, 0)
	for rows.Next() {
		var (
			entry      Entry
			payload    []byte
			errMsg     sql.NullString
			finishedAt sql.NullTime
		)

		if err := rows.Scan(
			&entry.ID,
			&entry.Command,
			&entry.TargetKind,
			&entry.TargetID,
			&payload,
			&entry.Status,
			&errMsg,
			&entry.CreatedAt,
			&finishedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: ListByStatus - scan row: %v", ErrScanRow, err)
		}

		entry.Payload = payload
		if errMsg.Valid {
			entry.Error = &errMsg.String
		}
		if finishedAt.Valid {
			entry.FinishedAt = &finishedAt.Time
		}

		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByStatus - iterate rows: %v", ErrScanRow, err)
	}

	return entries, nil
}

// ListUnknown возвращает команды с неизвестным результатом
func (r *Repository) ListUnknown(ctx context.Context, limit uint64) ([]*Entry, error) {
	return r.ListByStatus(ctx, StatusUnknown, limit)
}
