//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=admin_auth_test
package admin_auth

import (
	"tracking/internal/entities"
	"tracking/pkg/logger"
)

type Verifier interface {
	Verify(tokenString string) (*entities.Principal, error)
}

type handlerLogger interface {
	Warn(msg string, fields ...logger.Field)
}
