package status_log

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"tracking/internal/entities"
	"tracking/internal/repository"
	"tracking/internal/service/correction"
	"tracking/internal/service/shipment"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const returning = "RETURNING id, shipment_id, status, timestamp, location, coordinates, note"

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Append добавляет запись в журнал. Существующие записи не трогаются.
func (r *Repository) Append(ctx context.Context, entryModifyEntity entities.StatusLogEntryModify) (*entities.StatusLogEntry, error) {
	m := FromDomainModify(&entryModifyEntity)
	if m.ShipmentID == nil || m.Status == nil || m.Timestamp == nil || m.Location == nil {
		return nil, errors.New("unexpected status log repository append error: incomplete entry")
	}

	query := `INSERT INTO status_logs (shipment_id, status, timestamp, location, coordinates, note)
		VALUES ($1, $2, $3, $4, $5, $6) ` + returning

	var logModel StatusLogDB
	err := r.querier.QueryRow(ctx, query,
		m.ShipmentID,
		m.Status,
		m.Timestamp,
		m.Location,
		m.Coordinates,
		m.Note,
	).Scan(
		&logModel.ID,
		&logModel.ShipmentID,
		&logModel.Status,
		&logModel.Timestamp,
		&logModel.Location,
		&logModel.Coordinates,
		&logModel.Note,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, shipment.ErrShipmentNotFound
		}
		return nil, fmt.Errorf("unexpected status log repository append error: %w", err)
	}

	return ToDomain(&logModel), nil
}

func (r *Repository) List(ctx context.Context, filter entities.StatusLogFilter) ([]entities.StatusLogEntry, error) {
	builder := qb.
		Select("id", "shipment_id", "status", "timestamp", "location", "coordinates", "note").
		From("status_logs")

	if filter.ShipmentID != nil {
		builder = builder.Where(sq.Eq{"shipment_id": *filter.ShipmentID})
	}
	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"status": filter.Status.String()})
	}
	if filter.Descending {
		builder = builder.OrderBy("timestamp DESC", "id DESC")
	} else {
		builder = builder.OrderBy("timestamp ASC", "id ASC")
	}
	if filter.Limit > 0 {
		builder = builder.Limit(filter.Limit)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected status log repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected status log repository list error: %w", err)
	}
	defer rows.Close()

	logModels := make([]StatusLogDB, 0, 8)
	for rows.Next() {
		var logModel StatusLogDB
		err := rows.Scan(
			&logModel.ID,
			&logModel.ShipmentID,
			&logModel.Status,
			&logModel.Timestamp,
			&logModel.Location,
			&logModel.Coordinates,
			&logModel.Note,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected status log repository list error: %w", err)
		}
		logModels = append(logModels, logModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected status log repository list error: %w", err)
	}

	return ToDomainList(logModels), nil
}

// Latest возвращает запись с максимальным timestamp, при равенстве самую позднюю по id.
func (r *Repository) Latest(ctx context.Context, shipmentID string) (*entities.StatusLogEntry, error) {
	entries, err := r.List(ctx, entities.StatusLogFilter{
		ShipmentID: &shipmentID,
		Descending: true,
		Limit:      1,
	})
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, correction.ErrEntryNotFound
	}
	return &entries[0], nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.querier.Exec(ctx, `DELETE FROM status_logs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("unexpected status log repository delete error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return correction.ErrEntryNotFound
	}
	return nil
}

func (r *Repository) UpdateTimestamp(ctx context.Context, id int64, timestamp time.Time) (*entities.StatusLogEntry, error) {
	query := `UPDATE status_logs SET timestamp = $2 WHERE id = $1 ` + returning

	var logModel StatusLogDB
	err := r.querier.QueryRow(ctx, query, id, timestamp.UTC()).Scan(
		&logModel.ID,
		&logModel.ShipmentID,
		&logModel.Status,
		&logModel.Timestamp,
		&logModel.Location,
		&logModel.Coordinates,
		&logModel.Note,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, correction.ErrEntryNotFound
		}
		return nil, fmt.Errorf("unexpected status log repository update error: %w", err)
	}

	return ToDomain(&logModel), nil
}

// ClearNotes обнуляет заметки, содержащие substring. shipmentID nil означает весь журнал.
func (r *Repository) ClearNotes(ctx context.Context, shipmentID *string, substring string) (int64, error) {
	builder := qb.
		Update("status_logs").
		Set("note", nil).
		Where("strpos(note, ?) > 0", substring)
	if shipmentID != nil {
		builder = builder.Where(sq.Eq{"shipment_id": *shipmentID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("unexpected status log repository clear notes error: %w", err)
	}

	tag, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("unexpected status log repository clear notes error: %w", err)
	}
	return tag.RowsAffected(), nil
}

// ExistsExact проверяет точный дубль (shipment_id, status, timestamp), используется импортом.
func (r *Repository) ExistsExact(ctx context.Context, shipmentID string, status entities.ShipmentStatus, timestamp time.Time) (bool, error) {
	var exists bool
	err := r.querier.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM status_logs WHERE shipment_id = $1 AND status = $2 AND timestamp = $3)`,
		shipmentID, status.String(), timestamp.UTC(),
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("unexpected status log repository exists error: %w", err)
	}
	return exists, nil
}

// ListSnapshot выгружает весь журнал со ссылкой на трек-номер вместо id.
func (r *Repository) ListSnapshot(ctx context.Context) ([]entities.SnapshotStatusLog, error) {
	query := `
	SELECT s.tracking_number, l.status, l.timestamp, l.location, l.coordinates, l.note
	FROM status_logs l
	JOIN shipments s ON s.id = l.shipment_id
	ORDER BY s.tracking_number, l.timestamp, l.id`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected status log repository snapshot error: %w", err)
	}
	defer rows.Close()

	logs := make([]entities.SnapshotStatusLog, 0, 64)
	for rows.Next() {
		var l SnapshotStatusLogDB
		if err := rows.Scan(&l.TrackingNumber, &l.Status, &l.Timestamp, &l.Location, &l.Coordinates, &l.Note); err != nil {
			return nil, fmt.Errorf("unexpected status log repository snapshot error: %w", err)
		}
		logs = append(logs, ToDomainSnapshot(&l))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected status log repository snapshot error: %w", err)
	}

	return logs, nil
}
