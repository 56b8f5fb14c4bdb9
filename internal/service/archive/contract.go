//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=archive_test
package archive

import (
	"context"
	"time"

	"tracking/internal/entities"
)

type ShipmentRepository interface {
	Create(ctx context.Context, shipmentModifyEntity entities.ShipmentModify) (*entities.Shipment, error)
	GetAll(ctx context.Context) ([]entities.Shipment, error)
	GetByIdentifier(ctx context.Context, identifier string) (*entities.Shipment, error)
	SetCurrentState(ctx context.Context, id string, status entities.ShipmentStatus, location string) error
}

type LedgerRepository interface {
	Append(ctx context.Context, entryModifyEntity entities.StatusLogEntryModify) (*entities.StatusLogEntry, error)
	Latest(ctx context.Context, shipmentID string) (*entities.StatusLogEntry, error)
	ListSnapshot(ctx context.Context) ([]entities.SnapshotStatusLog, error)
	ExistsExact(ctx context.Context, shipmentID string, status entities.ShipmentStatus, timestamp time.Time) (bool, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type IdentityFactory interface {
	NewShipmentID() string
}

type Clock interface {
	Now() time.Time
}
