package correction

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"tracking/internal/entities"
	"tracking/pkg/logger"
)

// LedgerCorrection правит журнал в обход сервиса переходов. Статусы здесь не
// проверяются, синхронизацию состояния вызывающий делает сам через Resync.
type LedgerCorrection struct {
	log       serviceLogger
	shipments ShipmentRepository
	ledger    LedgerRepository
	txManager TxManager
}

func New(log serviceLogger, shipments ShipmentRepository, ledger LedgerRepository, txManager TxManager) *LedgerCorrection {
	return &LedgerCorrection{
		log:       log,
		shipments: shipments,
		ledger:    ledger,
		txManager: txManager,
	}
}

// FindEntry ищет запись в два прохода от новых к старым: сначала в окне вокруг
// Around с совпадением местоположения, затем только по местоположению.
func (c *LedgerCorrection) FindEntry(ctx context.Context, identifier string, criteria entities.LedgerMatchCriteria) (*entities.StatusLogEntry, error) {
	substrings := normalizeSubstrings(criteria.LocationContains)
	if criteria.Around == nil && len(substrings) == 0 {
		return nil, ErrInvalidCriteria
	}

	window := criteria.Window
	if window <= 0 {
		window = entities.DefaultMatchWindow
	}

	current, err := c.shipments.GetByIdentifier(ctx, strings.TrimSpace(identifier))
	if err != nil {
		return nil, fmt.Errorf("find entry: %w", err)
	}

	entries, err := c.ledger.List(ctx, entities.StatusLogFilter{
		ShipmentID: &current.ID,
		Status:     criteria.Status,
		Descending: true,
	})
	if err != nil {
		return nil, fmt.Errorf("find entry: %w", err)
	}

	if criteria.Around != nil {
		around := criteria.Around.UTC()
		for i := range entries {
			if withinWindow(entries[i].Timestamp, around, window) && locationMatches(entries[i].Location, substrings) {
				return &entries[i], nil
			}
		}
	}

	if len(substrings) > 0 {
		for i := range entries {
			if locationMatches(entries[i].Location, substrings) {
				return &entries[i], nil
			}
		}
	}

	return nil, fmt.Errorf("find entry for %s: %w", current.TrackingNumber, ErrEntryNotFound)
}

// ReplaceEntry удаляет old (если задан), добавляет replacement и выставляет
// отправлению статус и местоположение замены. Всё в одной транзакции.
// С old == nil это запись задним числом.
func (c *LedgerCorrection) ReplaceEntry(ctx context.Context, identifier string, old *entities.StatusLogEntry, replacement entities.LedgerReplacement) (*entities.StatusLogEntry, error) {
	location := strings.TrimSpace(replacement.Location)
	if location == "" {
		return nil, ErrMissingLocation
	}
	status := entities.ShipmentStatus(strings.TrimSpace(replacement.Status.String()))
	timestamp := replacement.Timestamp.UTC()

	var created *entities.StatusLogEntry
	err := c.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := c.shipments.GetByIdentifierForUpdate(ctx, strings.TrimSpace(identifier))
		if err != nil {
			return err
		}

		if old != nil {
			if old.ShipmentID != current.ID {
				return fmt.Errorf("entry %d does not belong to %s: %w", old.ID, current.TrackingNumber, ErrEntryNotFound)
			}
			if err := c.ledger.Delete(ctx, old.ID); err != nil {
				return err
			}
		}

		created, err = c.ledger.Append(ctx, entities.StatusLogEntryModify{
			ShipmentID:  &current.ID,
			Status:      &status,
			Timestamp:   &timestamp,
			Location:    &location,
			Coordinates: replacement.Coordinates,
			Note:        replacement.Note,
		})
		if err != nil {
			return err
		}

		return c.shipments.SetCurrentState(ctx, current.ID, status, location)
	})
	if err != nil {
		return nil, fmt.Errorf("replace entry: %w", err)
	}

	fields := []logger.Field{
		logger.NewField("identifier", identifier),
		logger.NewField("entry_id", created.ID),
		logger.NewField("status", created.Status),
		logger.NewField("timestamp", created.Timestamp),
	}
	if old != nil {
		fields = append(fields, logger.NewField("replaced_entry_id", old.ID))
	}
	c.log.Info("status log entry written", fields...)

	return created, nil
}

// FixTimestamp переносит самую позднюю запись с данным статусом на newTimestamp.
// Текущее состояние отправления не пересчитывается.
func (c *LedgerCorrection) FixTimestamp(ctx context.Context, identifier string, status entities.ShipmentStatus, newTimestamp time.Time) (*entities.StatusLogEntry, error) {
	var updated *entities.StatusLogEntry
	err := c.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := c.shipments.GetByIdentifier(ctx, strings.TrimSpace(identifier))
		if err != nil {
			return err
		}

		entries, err := c.ledger.List(ctx, entities.StatusLogFilter{
			ShipmentID: &current.ID,
			Status:     &status,
			Descending: true,
			Limit:      1,
		})
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			return fmt.Errorf("no %q entry for %s: %w", status, current.TrackingNumber, ErrEntryNotFound)
		}

		updated, err = c.ledger.UpdateTimestamp(ctx, entries[0].ID, newTimestamp.UTC())
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("fix timestamp: %w", err)
	}

	c.log.Info("status log timestamp fixed",
		logger.NewField("identifier", identifier),
		logger.NewField("entry_id", updated.ID),
		logger.NewField("timestamp", updated.Timestamp),
	)
	return updated, nil
}

// RemoveNotes очищает заметки с подстрокой substring. identifier nil означает весь журнал.
func (c *LedgerCorrection) RemoveNotes(ctx context.Context, identifier *string, substring string) (int64, error) {
	if substring == "" {
		return 0, ErrEmptySubstring
	}

	var shipmentID *string
	if identifier != nil {
		current, err := c.shipments.GetByIdentifier(ctx, strings.TrimSpace(*identifier))
		if err != nil {
			return 0, fmt.Errorf("remove notes: %w", err)
		}
		shipmentID = &current.ID
	}

	cleared, err := c.ledger.ClearNotes(ctx, shipmentID, substring)
	if err != nil {
		return 0, fmt.Errorf("remove notes: %w", err)
	}
	return cleared, nil
}

// Resync переписывает статус и местоположение отправления из последней записи журнала.
func (c *LedgerCorrection) Resync(ctx context.Context, identifier string) (*entities.Shipment, error) {
	var synced *entities.Shipment
	err := c.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := c.shipments.GetByIdentifierForUpdate(ctx, strings.TrimSpace(identifier))
		if err != nil {
			return err
		}

		latest, err := c.ledger.Latest(ctx, current.ID)
		if err != nil {
			return err
		}

		if err := c.shipments.SetCurrentState(ctx, current.ID, latest.Status, latest.Location); err != nil {
			return err
		}

		current.Status = latest.Status
		current.CurrentLocation = &latest.Location
		synced = current
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("resync: %w", err)
	}
	return synced, nil
}

// Audit находит отправления, чьё состояние расходится с последней записью журнала,
// и при autoResync сразу их синхронизирует.
func (c *LedgerCorrection) Audit(ctx context.Context, autoResync bool) (*entities.AuditReport, error) {
	drifts, err := c.shipments.ListStateDrift(ctx)
	if err != nil {
		return nil, fmt.Errorf("audit: %w", err)
	}

	report := &entities.AuditReport{Drifted: drifts}
	for _, d := range drifts {
		c.log.Warn("shipment state drifted from ledger",
			logger.NewField("tracking_number", d.TrackingNumber),
			logger.NewField("status", d.Status),
			logger.NewField("latest_status", d.LatestStatus),
			logger.NewField("latest_entry_id", d.LatestEntryID),
		)
	}

	if !autoResync {
		return report, nil
	}

	for _, d := range drifts {
		synced, err := c.resyncDrift(ctx, d.ShipmentID)
		if err != nil {
			return nil, fmt.Errorf("audit resync %s: %w", d.TrackingNumber, err)
		}
		if synced {
			report.Resynced++
		}
	}

	return report, nil
}

// resyncDrift заново читает отправление под блокировкой и последнюю запись журнала:
// между ListStateDrift и синхронизацией мог пройти переход статуса.
// false значит, что отправление уже согласовано или удалено.
func (c *LedgerCorrection) resyncDrift(ctx context.Context, shipmentID string) (bool, error) {
	var synced bool
	err := c.txManager.Do(ctx, func(ctx context.Context) error {
		synced = false

		current, err := c.shipments.GetByIdentifierForUpdate(ctx, shipmentID)
		if errors.Is(err, ErrShipmentNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		latest, err := c.ledger.Latest(ctx, current.ID)
		if errors.Is(err, ErrEntryNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		if current.Status == latest.Status && current.CurrentLocation != nil && *current.CurrentLocation == latest.Location {
			return nil
		}
		if err := c.shipments.SetCurrentState(ctx, current.ID, latest.Status, latest.Location); err != nil {
			return err
		}
		synced = true
		return nil
	})
	return synced, err
}

func normalizeSubstrings(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// locationMatches без подстрок совпадает с любым местоположением.
func locationMatches(location string, substrings []string) bool {
	if len(substrings) == 0 {
		return true
	}
	location = strings.ToLower(location)
	for _, s := range substrings {
		if strings.Contains(location, s) {
			return true
		}
	}
	return false
}

func withinWindow(ts, around time.Time, window time.Duration) bool {
	d := ts.Sub(around)
	if d < 0 {
		d = -d
	}
	return d < window
}
