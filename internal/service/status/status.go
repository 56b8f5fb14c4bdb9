package status

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"tracking/internal/entities"
	"tracking/pkg/logger"
)

const (
	outcomeApplied  = "applied"
	outcomeRejected = "rejected"
	outcomeFailed   = "failed"
)

type Status struct {
	log       serviceLogger
	shipments ShipmentRepository
	ledger    LedgerRepository
	txManager TxManager
	clock     Clock
}

func New(log serviceLogger, shipments ShipmentRepository, ledger LedgerRepository, txManager TxManager, clock Clock) *Status {
	return &Status{
		log:       log,
		shipments: shipments,
		ledger:    ledger,
		txManager: txManager,
		clock:     clock,
	}
}

// ApplyTransition добавляет запись в журнал и синхронизирует текущее состояние
// отправления с последней записью. Обе записи делаются в одной транзакции.
func (s *Status) ApplyTransition(ctx context.Context, identifier string, transition entities.StatusTransition) (*entities.TransitionResult, error) {
	result, err := s.applyTransition(ctx, strings.TrimSpace(identifier), transition)

	outcome := outcomeApplied
	switch {
	case errors.Is(err, ErrInvalidStatus), errors.Is(err, ErrMissingLocation), errors.Is(err, ErrShipmentNotFound):
		outcome = outcomeRejected
	case err != nil:
		outcome = outcomeFailed
	}
	TransitionsTotal.WithLabelValues(transition.Status.String(), outcome).Inc()

	return result, err
}

func (s *Status) applyTransition(ctx context.Context, identifier string, transition entities.StatusTransition) (*entities.TransitionResult, error) {
	// Граф переходов полный: допустимость зависит только от целевого статуса,
	// поэтому проверка делается до обращения к базе.
	if !transition.Status.IsValid() {
		return nil, fmt.Errorf("%w %q, expected one of: %s", ErrInvalidStatus, transition.Status, entities.ShipmentStatusNames())
	}

	location := strings.TrimSpace(transition.Location)
	if location == "" {
		return nil, ErrMissingLocation
	}

	timestamp := s.resolveTimestamp(identifier, transition.Timestamp)

	var result *entities.TransitionResult
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.shipments.GetByIdentifierForUpdate(ctx, identifier)
		if err != nil {
			return err
		}

		entry, err := s.ledger.Append(ctx, entities.StatusLogEntryModify{
			ShipmentID:  &current.ID,
			Status:      &transition.Status,
			Timestamp:   &timestamp,
			Location:    &location,
			Coordinates: nonBlank(transition.Coordinates),
			Note:        nonBlank(transition.Note),
		})
		if err != nil {
			return fmt.Errorf("append status log: %w", err)
		}

		// Запись могла оказаться задним числом, поэтому состояние берётся у
		// последней записи журнала, а не у только что добавленной.
		latest, err := s.ledger.Latest(ctx, current.ID)
		if err != nil {
			return fmt.Errorf("read latest status log: %w", err)
		}
		if err := s.shipments.SetCurrentState(ctx, current.ID, latest.Status, latest.Location); err != nil {
			return fmt.Errorf("sync shipment state: %w", err)
		}

		result = &entities.TransitionResult{
			ShipmentID:      current.ID,
			TrackingNumber:  current.TrackingNumber,
			Status:          latest.Status,
			CurrentLocation: &latest.Location,
			Entry:           *entry,
		}
		return nil
	})
	if err != nil {
		if isDomainError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	return result, nil
}

// GetHistory возвращает журнал по возрастанию времени, при равных метках в порядке вставки.
func (s *Status) GetHistory(ctx context.Context, identifier string) (*entities.StatusHistory, error) {
	current, err := s.shipments.GetByIdentifier(ctx, strings.TrimSpace(identifier))
	if err != nil {
		return nil, fmt.Errorf("failed to get shipment: %w", err)
	}

	entries, err := s.ledger.List(ctx, entities.StatusLogFilter{ShipmentID: &current.ID})
	if err != nil {
		return nil, fmt.Errorf("failed to get status history: %w", err)
	}
	if entries == nil {
		entries = []entities.StatusLogEntry{}
	}

	return &entities.StatusHistory{
		ShipmentID:      current.ID,
		TrackingNumber:  current.TrackingNumber,
		CurrentLocation: current.CurrentLocation,
		Entries:         entries,
	}, nil
}

func (s *Status) resolveTimestamp(identifier string, raw *string) time.Time {
	now := s.clock.Now().UTC()
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return now
	}

	parsed, ok := parseTimestamp(*raw)
	if !ok {
		TimestampFallbacksTotal.Inc()
		s.log.Warn("unparseable status timestamp, using server time",
			logger.NewField("identifier", identifier),
			logger.NewField("timestamp", *raw),
		)
		return now
	}
	return parsed
}

func isDomainError(err error) bool {
	return errors.Is(err, ErrShipmentNotFound) ||
		errors.Is(err, ErrInvalidStatus) ||
		errors.Is(err, ErrMissingLocation)
}

func nonBlank(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
