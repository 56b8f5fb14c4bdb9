package ledger_audit

import (
	"context"
	"time"

	"tracking/pkg/logger"
)

// LedgerAudit периодически сверяет статус и местоположение отправлений
// с последней записью журнала.
type LedgerAudit struct {
	log        taskLogger
	service    Service
	interval   time.Duration
	autoResync bool
}

func NewLedgerAudit(log taskLogger, service Service, interval time.Duration, autoResync bool) *LedgerAudit {
	return &LedgerAudit{
		log:        log,
		service:    service,
		interval:   interval,
		autoResync: autoResync,
	}
}

func (a *LedgerAudit) TTL() time.Duration {
	return a.interval
}

func (a *LedgerAudit) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, a.interval)
	defer cancel()

	report, err := a.service.Audit(ctxWithTimeout, a.autoResync)
	if err != nil {
		return err
	}

	DriftedShipments.Set(float64(len(report.Drifted)))
	ResyncedTotal.Add(float64(report.Resynced))

	if len(report.Drifted) > 0 {
		a.log.With(
			logger.NewField("drifted", len(report.Drifted)),
			logger.NewField("resynced", report.Resynced),
		).Info("ledger audit")
	}
	return nil
}

func (a *LedgerAudit) Info() string {
	return "ledger audit"
}
