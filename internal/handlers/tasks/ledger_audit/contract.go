//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=ledger_audit_test
package ledger_audit

import (
	"context"

	"tracking/internal/entities"
	"tracking/pkg/logger"
)

type Service interface {
	Audit(ctx context.Context, autoResync bool) (*entities.AuditReport, error)
}

type taskLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
