package app

import (
	"context"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"tracking/internal/handlers/rest/shipment_delete"
	"tracking/internal/handlers/rest/shipment_get"
	"tracking/internal/handlers/rest/shipment_post"
	"tracking/internal/handlers/rest/shipment_put"
	"tracking/internal/handlers/rest/shipment_status_get"
	"tracking/internal/handlers/rest/shipment_status_put"
	"tracking/internal/handlers/rest/shipments_get"
	"tracking/internal/handlers/tasks/ledger_audit"
	"tracking/internal/pkg/auth"
	"tracking/internal/pkg/config"
	"tracking/internal/pkg/factory/clock"
	"tracking/internal/pkg/factory/shipment_identity"
	"tracking/internal/pkg/middlewares/admin_auth"
	shipmentRepo "tracking/internal/repository/shipment"
	statusLogRepo "tracking/internal/repository/status_log"
	archiveService "tracking/internal/service/archive"
	correctionService "tracking/internal/service/correction"
	shipmentService "tracking/internal/service/shipment"
	statusService "tracking/internal/service/status"
	"tracking/pkg/background"
	"tracking/pkg/logger"
	"tracking/pkg/querier"
	retrierconfig "tracking/pkg/retrier"
	"tracking/pkg/retrier/backoff_adapter"
	"tracking/pkg/tx"
)

// Повтор serializable транзакций при конфликте сериализации или дедлоке.
const (
	txRetryInitialInterval = 20 * time.Millisecond
	txRetryMaxInterval     = 500 * time.Millisecond
	txRetryMaxElapsedTime  = 3 * time.Second
	txRetryRandomization   = 0.5
	txRetryMultiplier      = 2
)

type Application struct {
	ServiceShipment   ServiceShipment
	ServiceStatus     ServiceStatus
	Verifier          Verifier
	BackgroundWorkers *background.Worker
}

type ServiceShipment interface {
	shipment_post.Service
	shipments_get.Service
	shipment_get.Service
	shipment_put.Service
	shipment_delete.Service
}

type ServiceStatus interface {
	shipment_status_put.Service
	shipment_status_get.Service
}

type Verifier interface {
	admin_auth.Verifier
}

// AdminApp собирает сервисы для ручной правки журнала.
type AdminApp struct {
	Correction    *correctionService.LedgerCorrection
	Archive       *archiveService.Archive
	Authenticator *auth.Authenticator
}

func provideTxManager(log logger.Logger, pool *pgxpool.Pool) *tx.Manager {
	retrier := backoff_adapter.New(retrierconfig.Config{
		InitialInterval: txRetryInitialInterval,
		MaxInterval:     txRetryMaxInterval,
		MaxElapsedTime:  txRetryMaxElapsedTime,
		Randomization:   txRetryRandomization,
		Multiplier:      txRetryMultiplier,
		ShouldRetry:     tx.IsRetryable,
		Notify: func(err error, next time.Duration) {
			log.Warn("transaction conflict, retrying",
				logger.NewField("error", err),
				logger.NewField("next_in", next.String()),
			)
		},
	})
	return tx.New(pool, retrier)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideShipmentRepository(querier *querier.Querier) *shipmentRepo.Repository {
	return shipmentRepo.New(querier)
}

func provideStatusLogRepository(querier *querier.Querier) *statusLogRepo.Repository {
	return statusLogRepo.New(querier)
}

func provideIdentityFactory(cfg *config.Config) *shipment_identity.IdentityFactory {
	return shipment_identity.New(cfg.Tracking.NumberPrefix)
}

func provideServiceShipment(
	repository *shipmentRepo.Repository,
	txManager *tx.Manager,
	identity *shipment_identity.IdentityFactory,
	clock *clock.UTC,
	cfg *config.Config,
) *shipmentService.Shipment {
	return shipmentService.New(repository, txManager, identity, clock, cfg.Tracking.NumberAttempts)
}

func provideServiceStatus(
	log logger.Logger,
	shipments *shipmentRepo.Repository,
	ledger *statusLogRepo.Repository,
	txManager *tx.Manager,
	clock *clock.UTC,
) *statusService.Status {
	return statusService.New(log, shipments, ledger, txManager, clock)
}

func provideServiceCorrection(
	log logger.Logger,
	shipments *shipmentRepo.Repository,
	ledger *statusLogRepo.Repository,
	txManager *tx.Manager,
) *correctionService.LedgerCorrection {
	return correctionService.New(log, shipments, ledger, txManager)
}

func provideServiceArchive(
	shipments *shipmentRepo.Repository,
	ledger *statusLogRepo.Repository,
	txManager *tx.Manager,
	identity *shipment_identity.IdentityFactory,
	clock *clock.UTC,
) *archiveService.Archive {
	return archiveService.New(shipments, ledger, txManager, identity, clock)
}

func provideAuthenticator(cfg *config.Config) *auth.Authenticator {
	return auth.New(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer)
}

func provideLedgerAuditTask(
	log logger.Logger,
	correction *correctionService.LedgerCorrection,
	cfg *config.Config,
) *ledger_audit.LedgerAudit {
	return ledger_audit.NewLedgerAudit(log, correction, cfg.Tasks.LedgerAuditInterval, cfg.Tasks.LedgerAuditAutoResync)
}

// provideTaskList без интервала сверки фоновых задач нет.
func provideTaskList(
	cfg *config.Config,
	ledgerAuditTask *ledger_audit.LedgerAudit,
) []background.Task {
	if cfg.Tasks.LedgerAuditInterval <= 0 {
		return nil
	}
	return []background.Task{
		ledgerAuditTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
