//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"tracking/internal/pkg/auth"
	"tracking/internal/pkg/config"
	"tracking/internal/pkg/factory/clock"
	shipmentService "tracking/internal/service/shipment"
	statusService "tracking/internal/service/status"
	"tracking/pkg/logger"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

var storageSet = wire.NewSet(
	provideTxManager,
	provideQuerier,
	provideShipmentRepository,
	provideStatusLogRepository,
	provideIdentityFactory,
	clock.New,
)

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		storageSet,

		provideServiceShipment,
		provideServiceStatus,
		provideServiceCorrection,
		provideAuthenticator,

		provideLedgerAuditTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceShipment), new(*shipmentService.Shipment)),
		wire.Bind(new(ServiceStatus), new(*statusService.Status)),
		wire.Bind(new(Verifier), new(*auth.Authenticator)),
	)
	return &Application{}, nil
}

// InitializeAdminApp для утилиты правки журнала (cmd/ledger-admin)
func InitializeAdminApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*AdminApp, error) {
	wire.Build(
		storageSet,

		provideServiceCorrection,
		provideServiceArchive,
		provideAuthenticator,

		wire.Struct(new(AdminApp), "*"),
	)
	return &AdminApp{}, nil
}
