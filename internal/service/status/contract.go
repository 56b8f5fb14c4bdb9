//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=status_test
package status

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
}

type LedgerRepository interface {
	Append(ctx context.Context, entryModifyEntity entities.StatusLogEntryModify) (*entities.StatusLogEntry, error)
	List(ctx context.Context, filter entities.StatusLogFilter) ([]entities.StatusLogEntry, error)
	Latest(ctx context.Context, shipmentID string) (*entities.StatusLogEntry, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type Clock interface {
	Now() time.Time
}

type serviceLogger interface {
	Warn(msg string, fields ...logger.Field)
}
