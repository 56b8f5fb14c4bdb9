package archive

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tracking/internal/entities"
)

type Archive struct {
	shipments ShipmentRepository
	ledger    LedgerRepository
	txManager TxManager
	identity  IdentityFactory
	clock     Clock
}

func New(shipments ShipmentRepository, ledger LedgerRepository, txManager TxManager, identity IdentityFactory, clock Clock) *Archive {
	return &Archive{
		shipments: shipments,
		ledger:    ledger,
		txManager: txManager,
		identity:  identity,
		clock:     clock,
	}
}

// Export выгружает все отправления и весь журнал одним согласованным снимком.
func (a *Archive) Export(ctx context.Context) (*entities.LedgerSnapshot, error) {
	snapshot := &entities.LedgerSnapshot{ExportedAt: a.clock.Now().UTC()}

	err := a.txManager.Do(ctx, func(ctx context.Context) error {
		shipments, err := a.shipments.GetAll(ctx)
		if err != nil {
			return err
		}
		logs, err := a.ledger.ListSnapshot(ctx)
		if err != nil {
			return err
		}

		snapshot.Shipments = shipments
		snapshot.StatusLogs = logs
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}

	return snapshot, nil
}

// Import восстанавливает снимок. Отправления с уже занятым трек-номером пропускаются,
// записи журнала без отправления считаются осиротевшими, точные дубли
// (отправление, статус, время) пропускаются. Затронутые отправления
// синхронизируются с последней записью.
func (a *Archive) Import(ctx context.Context, snapshot *entities.LedgerSnapshot) (*entities.ImportReport, error) {
	if snapshot == nil {
		return nil, ErrInvalidSnapshot
	}
	for i, s := range snapshot.Shipments {
		if strings.TrimSpace(s.TrackingNumber) == "" {
			return nil, fmt.Errorf("%w: shipment #%d has no tracking number", ErrInvalidSnapshot, i)
		}
	}

	var report entities.ImportReport
	err := a.txManager.Do(ctx, func(ctx context.Context) error {
		report = entities.ImportReport{}
		ids := make(map[string]string, len(snapshot.Shipments))

		for _, s := range snapshot.Shipments {
			existing, err := a.shipments.GetByIdentifier(ctx, s.TrackingNumber)
			switch {
			case err == nil:
				ids[s.TrackingNumber] = existing.ID
				report.ShipmentsSkipped++
				continue
			case !errors.Is(err, ErrShipmentNotFound):
				return err
			}

			created, err := a.shipments.Create(ctx, a.toModify(s))
			if err != nil {
				return fmt.Errorf("shipment %s: %w", s.TrackingNumber, err)
			}
			ids[s.TrackingNumber] = created.ID
			report.ShipmentsCreated++
		}

		touched := make([]string, 0)
		seen := make(map[string]struct{})
		for _, l := range snapshot.StatusLogs {
			shipmentID, ok := ids[l.TrackingNumber]
			if !ok {
				existing, err := a.shipments.GetByIdentifier(ctx, l.TrackingNumber)
				switch {
				case errors.Is(err, ErrShipmentNotFound):
					report.LogsOrphaned++
					continue
				case err != nil:
					return err
				}
				shipmentID = existing.ID
				ids[l.TrackingNumber] = shipmentID
			}

			timestamp := l.Timestamp.UTC()
			duplicate, err := a.ledger.ExistsExact(ctx, shipmentID, l.Status, timestamp)
			if err != nil {
				return err
			}
			if duplicate {
				report.LogsSkipped++
				continue
			}

			status, location := l.Status, l.Location
			_, err = a.ledger.Append(ctx, entities.StatusLogEntryModify{
				ShipmentID:  &shipmentID,
				Status:      &status,
				Timestamp:   &timestamp,
				Location:    &location,
				Coordinates: l.Coordinates,
				Note:        l.Note,
			})
			if err != nil {
				return fmt.Errorf("status log of %s: %w", l.TrackingNumber, err)
			}
			report.LogsCreated++

			if _, ok := seen[shipmentID]; !ok {
				seen[shipmentID] = struct{}{}
				touched = append(touched, shipmentID)
			}
		}

		for _, id := range touched {
			latest, err := a.ledger.Latest(ctx, id)
			if err != nil {
				return err
			}
			if err := a.shipments.SetCurrentState(ctx, id, latest.Status, latest.Location); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("import: %w", err)
	}

	return &report, nil
}

func (a *Archive) toModify(s entities.Shipment) entities.ShipmentModify {
	id := s.ID
	if id == "" {
		id = a.identity.NewShipmentID()
	}
	status := s.Status
	if status == "" {
		status = entities.DefaultShipmentStatus
	}
	registered := s.DateRegistered
	if registered.IsZero() {
		registered = a.clock.Now().UTC()
	}

	return entities.ShipmentModify{
		ID:                    &id,
		TrackingNumber:        &s.TrackingNumber,
		Status:                &status,
		CurrentLocation:       s.CurrentLocation,
		SenderName:            &s.SenderName,
		SenderEmail:           &s.SenderEmail,
		SenderPhone:           &s.SenderPhone,
		SenderAddress:         &s.SenderAddress,
		ReceiverName:          &s.ReceiverName,
		ReceiverEmail:         s.ReceiverEmail,
		ReceiverPhone:         &s.ReceiverPhone,
		ReceiverAddress:       &s.ReceiverAddress,
		PackageType:           &s.PackageType,
		Description:           s.Description,
		Weight:                &s.Weight,
		ShipmentCost:          &s.ShipmentCost,
		EstimatedDeliveryDate: s.EstimatedDeliveryDate,
		DateRegistered:        &registered,
		CreatedBy:             s.CreatedBy,
		CreatedByEmail:        s.CreatedByEmail,
	}
}
