//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=correction_test
package correction

import (
	"context"
	"time"

	"tracking/internal/entities"
	"tracking/pkg/logger"
)

type ShipmentRepository interface {
	GetByIdentifier(ctx context.Context, identifier string) (*entities.Shipment, error)
	GetByIdentifierForUpdate(ctx context.Context, identifier string) (*entities.Shipment, error)
	SetCurrentState(ctx context.Context, id string, status entities.ShipmentStatus, location string) error
	ListStateDrift(ctx context.Context) ([]entities.StateDrift, error)
}

type LedgerRepository interface {
	Append(ctx context.Context, entryModifyEntity entities.StatusLogEntryModify) (*entities.StatusLogEntry, error)
	List(ctx context.Context, filter entities.StatusLogFilter) ([]entities.StatusLogEntry, error)
	Latest(ctx context.Context, shipmentID string) (*entities.StatusLogEntry, error)
	Delete(ctx context.Context, id int64) error
	UpdateTimestamp(ctx context.Context, id int64, timestamp time.Time) (*entities.StatusLogEntry, error)
	ClearNotes(ctx context.Context, shipmentID *string, substring string) (int64, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
}
