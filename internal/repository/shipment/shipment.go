package shipment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"tracking/internal/entities"
	"tracking/internal/repository"
	"tracking/internal/service/shipment"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var shipmentColumns = []string{
	"id",
	"tracking_number",
	"status",
	"current_location",
	"sender_name",
	"sender_email",
	"sender_phone",
	"sender_address",
	"receiver_name",
	"receiver_email",
	"receiver_phone",
	"receiver_address",
	"package_type",
	"description",
	"weight",
	"shipment_cost",
	"estimated_delivery_date",
	"date_registered",
	"created_by",
	"created_by_email",
}

var returningColumns = strings.Join(shipmentColumns, ", ")

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, shipmentModifyEntity entities.ShipmentModify) (*entities.Shipment, error) {
	m := FromDomainModify(&shipmentModifyEntity)

	status := entities.DefaultShipmentStatus.String()
	if m.Status != nil {
		status = *m.Status
	}
	registered := nowUTC()
	if m.DateRegistered != nil {
		registered = *m.DateRegistered
	}

	query, args, err := qb.
		Insert("shipments").
		Columns(shipmentColumns...).
		Values(
			m.ID,
			m.TrackingNumber,
			status,
			m.CurrentLocation,
			m.SenderName,
			m.SenderEmail,
			m.SenderPhone,
			m.SenderAddress,
			m.ReceiverName,
			m.ReceiverEmail,
			m.ReceiverPhone,
			m.ReceiverAddress,
			m.PackageType,
			m.Description,
			m.Weight,
			m.ShipmentCost,
			m.EstimatedDeliveryDate,
			registered,
			m.CreatedBy,
			m.CreatedByEmail,
		).
		Suffix("RETURNING " + returningColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository create error: %w", err)
	}

	var shipmentModel ShipmentDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(shipmentModel.scanDest()...)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, shipment.ErrDuplicateTrackingNumber
		}
		return nil, fmt.Errorf("unexpected shipment repository create error: %w", err)
	}

	return ToDomain(&shipmentModel), nil
}

func (r *Repository) ExistsByTrackingNumber(ctx context.Context, trackingNumber string) (bool, error) {
	var exists bool
	err := r.querier.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM shipments WHERE tracking_number = $1)`,
		trackingNumber,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("unexpected shipment repository exists error: %w", err)
	}
	return exists, nil
}

// GetByIdentifier ищет отправление и по id, и по трек-номеру.
// Если значение совпало с обоими у разных записей, побеждает трек-номер.
func (r *Repository) GetByIdentifier(ctx context.Context, identifier string) (*entities.Shipment, error) {
	return r.getByIdentifier(ctx, identifier, false)
}

// GetByIdentifierForUpdate то же самое, но блокирует строку до конца транзакции.
func (r *Repository) GetByIdentifierForUpdate(ctx context.Context, identifier string) (*entities.Shipment, error) {
	return r.getByIdentifier(ctx, identifier, true)
}

func (r *Repository) getByIdentifier(ctx context.Context, identifier string, forUpdate bool) (*entities.Shipment, error) {
	builder := qb.
		Select(shipmentColumns...).
		From("shipments").
		Where(sq.Or{
			sq.Eq{"tracking_number": identifier},
			sq.Eq{"id": identifier},
		}).
		OrderByClause("(tracking_number = ?) DESC", identifier).
		Limit(1)
	if forUpdate {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository get error: %w", err)
	}

	var shipmentModel ShipmentDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(shipmentModel.scanDest()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shipment.ErrShipmentNotFound
		}
		return nil, fmt.Errorf("unexpected shipment repository get error: %w", err)
	}

	return ToDomain(&shipmentModel), nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Shipment, error) {
	query, args, err := qb.
		Select(shipmentColumns...).
		From("shipments").
		OrderBy("date_registered DESC", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository getall error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository getall error: %w", err)
	}
	defer rows.Close()

	shipmentModels := make([]ShipmentDB, 0, 16)
	for rows.Next() {
		var shipmentModel ShipmentDB
		if err := rows.Scan(shipmentModel.scanDest()...); err != nil {
			return nil, fmt.Errorf("unexpected shipment repository getall error: %w", err)
		}
		shipmentModels = append(shipmentModels, shipmentModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected shipment repository getall error: %w", err)
	}

	return ToDomainList(shipmentModels), nil
}

// Update меняет переданные поля записи с ID из модификации.
// Трек-номер и дата регистрации неизменяемы и игнорируются.
func (r *Repository) Update(ctx context.Context, shipmentModifyEntity entities.ShipmentModify) (*entities.Shipment, error) {
	m := FromDomainModify(&shipmentModifyEntity)
	if m.ID == nil {
		return nil, fmt.Errorf("unexpected shipment repository update error: %w", shipment.ErrShipmentNotFound)
	}

	builder := qb.Update("shipments")

	set := func(column string, value any, present bool) {
		if present {
			builder = builder.Set(column, value)
		}
	}
	set("status", m.Status, m.Status != nil)
	set("current_location", m.CurrentLocation, m.CurrentLocation != nil)
	set("sender_name", m.SenderName, m.SenderName != nil)
	set("sender_email", m.SenderEmail, m.SenderEmail != nil)
	set("sender_phone", m.SenderPhone, m.SenderPhone != nil)
	set("sender_address", m.SenderAddress, m.SenderAddress != nil)
	set("receiver_name", m.ReceiverName, m.ReceiverName != nil)
	set("receiver_email", m.ReceiverEmail, m.ReceiverEmail != nil)
	set("receiver_phone", m.ReceiverPhone, m.ReceiverPhone != nil)
	set("receiver_address", m.ReceiverAddress, m.ReceiverAddress != nil)
	set("package_type", m.PackageType, m.PackageType != nil)
	set("description", m.Description, m.Description != nil)
	set("weight", m.Weight, m.Weight != nil)
	set("shipment_cost", m.ShipmentCost, m.ShipmentCost != nil)
	set("estimated_delivery_date", m.EstimatedDeliveryDate, m.EstimatedDeliveryDate != nil)

	query, args, err := builder.
		Where(sq.Eq{"id": *m.ID}).
		Suffix("RETURNING " + returningColumns).
		ToSql()
	if err != nil {
		// squirrel отказывает, если нечего обновлять
		return nil, fmt.Errorf("unexpected shipment repository update error: %w", err)
	}

	var shipmentModel ShipmentDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(shipmentModel.scanDest()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shipment.ErrShipmentNotFound
		}
		return nil, fmt.Errorf("unexpected shipment repository update error: %w", err)
	}

	return ToDomain(&shipmentModel), nil
}

// SetCurrentState перезаписывает денормализованные статус и местоположение.
func (r *Repository) SetCurrentState(ctx context.Context, id string, status entities.ShipmentStatus, location string) error {
	tag, err := r.querier.Exec(ctx,
		`UPDATE shipments SET status = $2, current_location = $3 WHERE id = $1`,
		id, status.String(), location,
	)
	if err != nil {
		return fmt.Errorf("unexpected shipment repository set state error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shipment.ErrShipmentNotFound
	}
	return nil
}

// DeleteByID удаляет отправление, записи журнала уходят каскадом по внешнему ключу.
func (r *Repository) DeleteByID(ctx context.Context, id string) error {
	tag, err := r.querier.Exec(ctx, `DELETE FROM shipments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("unexpected shipment repository delete error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shipment.ErrShipmentNotFound
	}
	return nil
}

// ListStateDrift находит отправления, у которых статус или местоположение
// расходятся с последней записью журнала.
func (r *Repository) ListStateDrift(ctx context.Context) ([]entities.StateDrift, error) {
	query := `
	SELECT s.id, s.tracking_number, s.status, s.current_location,
	       l.id, l.status, l.location, l.timestamp
	FROM shipments s
	CROSS JOIN LATERAL (
		SELECT id, status, location, timestamp
		FROM status_logs
		WHERE shipment_id = s.id
		ORDER BY timestamp DESC, id DESC
		LIMIT 1
	) l
	WHERE s.status IS DISTINCT FROM l.status
	   OR s.current_location IS DISTINCT FROM l.location
	ORDER BY s.date_registered, s.id`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository drift error: %w", err)
	}
	defer rows.Close()

	drifts := make([]entities.StateDrift, 0)
	for rows.Next() {
		var d StateDriftDB
		err := rows.Scan(
			&d.ShipmentID,
			&d.TrackingNumber,
			&d.Status,
			&d.CurrentLocation,
			&d.LatestEntryID,
			&d.LatestStatus,
			&d.LatestLocation,
			&d.LatestTimestamp,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected shipment repository drift error: %w", err)
		}
		drifts = append(drifts, ToDomainDrift(&d))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected shipment repository drift error: %w", err)
	}

	return drifts, nil
}
