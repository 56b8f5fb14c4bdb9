//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_test
package shipment

import (
	"context"
	"time"

	"tracking/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, shipmentModifyEntity entities.ShipmentModify) (*entities.Shipment, error)
	ExistsByTrackingNumber(ctx context.Context, trackingNumber string) (bool, error)
	GetByIdentifier(ctx context.Context, identifier string) (*entities.Shipment, error)
	GetAll(ctx context.Context) ([]entities.Shipment, error)
	Update(ctx context.Context, shipmentModifyEntity entities.ShipmentModify) (*entities.Shipment, error)
	DeleteByID(ctx context.Context, id string) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type IdentityFactory interface {
	NewShipmentID() string
	NewTrackingNumber() string
}

type Clock interface {
	Now() time.Time
}
