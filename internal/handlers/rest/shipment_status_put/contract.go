//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_status_put_test
package shipment_status_put

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
	ApplyTransition(ctx context.Context, identifier string, transition entities.StatusTransition) (*entities.TransitionResult, error)
}
