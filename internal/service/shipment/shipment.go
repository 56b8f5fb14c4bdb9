package shipment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tracking/internal/entities"
)

const DefaultTrackingNumberAttempts = 5

type Shipment struct {
	repository Repository
	txManager  TxManager
	identity   IdentityFactory
	clock      Clock
	attempts   int
}

func New(repository Repository, txManager TxManager, identity IdentityFactory, clock Clock, attempts int) *Shipment {
	if attempts <= 0 {
		attempts = DefaultTrackingNumberAttempts
	}
	return &Shipment{
		repository: repository,
		txManager:  txManager,
		identity:   identity,
		clock:      clock,
		attempts:   attempts,
	}
}

// CreateShipment регистрирует отправление в статусе Registered.
// Переданный трек-номер проверяется на уникальность, иначе генерируется новый.
func (s *Shipment) CreateShipment(ctx context.Context, registration entities.ShipmentRegistration) (*entities.Shipment, error) {
	if missing := missingRequiredFields(&registration); len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingRequiredFields, strings.Join(missing, ", "))
	}
	if err := validateAmount("weight", registration.Weight); err != nil {
		return nil, err
	}
	if err := validateAmount("shipment_cost", registration.ShipmentCost); err != nil {
		return nil, err
	}

	deliveryDate, err := parseDeliveryDate(registration.EstimatedDeliveryDate)
	if err != nil {
		return nil, err
	}

	registered := s.clock.Now().UTC()
	status := entities.DefaultShipmentStatus
	modify := entities.ShipmentModify{
		Status:                &status,
		SenderName:            trimmed(registration.SenderName),
		SenderEmail:           trimmed(registration.SenderEmail),
		SenderPhone:           trimmed(registration.SenderPhone),
		SenderAddress:         trimmed(registration.SenderAddress),
		ReceiverName:          trimmed(registration.ReceiverName),
		ReceiverEmail:         optional(registration.ReceiverEmail),
		ReceiverPhone:         trimmed(registration.ReceiverPhone),
		ReceiverAddress:       trimmed(registration.ReceiverAddress),
		PackageType:           trimmed(registration.PackageType),
		Description:           optional(registration.Description),
		Weight:                registration.Weight,
		ShipmentCost:          registration.ShipmentCost,
		EstimatedDeliveryDate: deliveryDate,
		DateRegistered:        &registered,
		CreatedBy:             optional(registration.CreatedBy),
		CreatedByEmail:        optional(registration.CreatedByEmail),
	}

	if !isBlank(registration.TrackingNumber) {
		return s.createWithTrackingNumber(ctx, modify, strings.TrimSpace(*registration.TrackingNumber))
	}
	return s.createWithGeneratedTrackingNumber(ctx, modify)
}

func (s *Shipment) createWithTrackingNumber(ctx context.Context, modify entities.ShipmentModify, trackingNumber string) (*entities.Shipment, error) {
	exists, err := s.repository.ExistsByTrackingNumber(ctx, trackingNumber)
	if err != nil {
		return nil, fmt.Errorf("create shipment: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("create shipment %s: %w", trackingNumber, ErrDuplicateTrackingNumber)
	}

	id := s.identity.NewShipmentID()
	modify.ID = &id
	modify.TrackingNumber = &trackingNumber

	created, err := s.repository.Create(ctx, modify)
	if err != nil {
		return nil, fmt.Errorf("create shipment %s: %w", trackingNumber, err)
	}
	return created, nil
}

func (s *Shipment) createWithGeneratedTrackingNumber(ctx context.Context, modify entities.ShipmentModify) (*entities.Shipment, error) {
	for attempt := 0; attempt < s.attempts; attempt++ {
		trackingNumber := s.identity.NewTrackingNumber()

		exists, err := s.repository.ExistsByTrackingNumber(ctx, trackingNumber)
		if err != nil {
			return nil, fmt.Errorf("create shipment: %w", err)
		}
		if exists {
			continue
		}

		id := s.identity.NewShipmentID()
		modify.ID = &id
		modify.TrackingNumber = &trackingNumber

		created, err := s.repository.Create(ctx, modify)
		if errors.Is(err, ErrDuplicateTrackingNumber) {
			// номер заняли между проверкой и вставкой
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("create shipment: %w", err)
		}
		return created, nil
	}

	return nil, fmt.Errorf("create shipment after %d attempts: %w", s.attempts, ErrTrackingNumberExhausted)
}

func (s *Shipment) GetShipment(ctx context.Context, identifier string) (*entities.Shipment, error) {
	shipment, err := s.repository.GetByIdentifier(ctx, strings.TrimSpace(identifier))
	if err != nil {
		return nil, fmt.Errorf("failed to get shipment: %w", err)
	}
	return shipment, nil
}

func (s *Shipment) GetShipments(ctx context.Context) ([]entities.Shipment, error) {
	shipments, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get shipments: %w", err)
	}
	return shipments, nil
}

// UpdateShipmentFields меняет только описательные поля из разрешённого списка.
func (s *Shipment) UpdateShipmentFields(ctx context.Context, identifier string, update entities.ShipmentFieldsUpdate) (*entities.Shipment, error) {
	if update.IsEmpty() {
		return nil, ErrNoFieldsToUpdate
	}

	for name, value := range map[string]*string{
		"sender_name":      update.SenderName,
		"sender_email":     update.SenderEmail,
		"sender_phone":     update.SenderPhone,
		"sender_address":   update.SenderAddress,
		"receiver_name":    update.ReceiverName,
		"receiver_phone":   update.ReceiverPhone,
		"receiver_address": update.ReceiverAddress,
		"package_type":     update.PackageType,
	} {
		if err := validateNotBlank(name, value); err != nil {
			return nil, err
		}
	}
	if err := validateAmount("weight", update.Weight); err != nil {
		return nil, err
	}
	if err := validateAmount("shipment_cost", update.ShipmentCost); err != nil {
		return nil, err
	}

	deliveryDate, err := parseDeliveryDate(update.EstimatedDeliveryDate)
	if err != nil {
		return nil, err
	}

	modify := entities.ShipmentModify{
		SenderName:            trimmed(update.SenderName),
		SenderEmail:           trimmed(update.SenderEmail),
		SenderPhone:           trimmed(update.SenderPhone),
		SenderAddress:         trimmed(update.SenderAddress),
		ReceiverName:          trimmed(update.ReceiverName),
		ReceiverEmail:         trimmed(update.ReceiverEmail),
		ReceiverPhone:         trimmed(update.ReceiverPhone),
		ReceiverAddress:       trimmed(update.ReceiverAddress),
		PackageType:           trimmed(update.PackageType),
		Description:           update.Description,
		Weight:                update.Weight,
		ShipmentCost:          update.ShipmentCost,
		EstimatedDeliveryDate: deliveryDate,
	}

	var updated *entities.Shipment
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByIdentifier(ctx, strings.TrimSpace(identifier))
		if err != nil {
			return err
		}

		modify.ID = &current.ID
		updated, err = s.repository.Update(ctx, modify)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update shipment: %w", err)
	}

	return updated, nil
}

// DeleteShipment удаляет отправление вместе со всей историей статусов.
func (s *Shipment) DeleteShipment(ctx context.Context, identifier string) (*entities.Shipment, error) {
	var deleted *entities.Shipment
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByIdentifier(ctx, strings.TrimSpace(identifier))
		if err != nil {
			return err
		}
		if err := s.repository.DeleteByID(ctx, current.ID); err != nil {
			return err
		}
		deleted = current
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to delete shipment: %w", err)
	}

	return deleted, nil
}
