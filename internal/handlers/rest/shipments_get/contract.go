//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipments_get_test
package shipments_get

import (
	"context"

	"tracking/internal/entities"
	"tracking/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	GetShipments(ctx context.Context) ([]entities.Shipment, error)
}
