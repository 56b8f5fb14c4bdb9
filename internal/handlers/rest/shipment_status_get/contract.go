//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_status_get_test
package shipment_status_get

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
	GetHistory(ctx context.Context, identifier string) (*entities.StatusHistory, error)
}
