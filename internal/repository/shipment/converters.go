package shipment

import (
	"time"

	"tracking/internal/entities"
)

func ToDomain(s *ShipmentDB) *entities.Shipment {
	if s == nil {
		return nil
	}

	return &entities.Shipment{
		ID:                    s.ID,
		TrackingNumber:        s.TrackingNumber,
		Status:                entities.ShipmentStatus(s.Status),
		CurrentLocation:       s.CurrentLocation,
		SenderName:            s.SenderName,
		SenderEmail:           s.SenderEmail,
		SenderPhone:           s.SenderPhone,
		SenderAddress:         s.SenderAddress,
		ReceiverName:          s.ReceiverName,
		ReceiverEmail:         s.ReceiverEmail,
		ReceiverPhone:         s.ReceiverPhone,
		ReceiverAddress:       s.ReceiverAddress,
		PackageType:           s.PackageType,
		Description:           s.Description,
		Weight:                s.Weight,
		ShipmentCost:          s.ShipmentCost,
		EstimatedDeliveryDate: s.EstimatedDeliveryDate,
		DateRegistered:        s.DateRegistered.UTC(),
		CreatedBy:             s.CreatedBy,
		CreatedByEmail:        s.CreatedByEmail,
	}
}

func FromDomainModify(m *entities.ShipmentModify) *ShipmentModifyDB {
	if m == nil {
		return nil
	}

	db := &ShipmentModifyDB{
		ID:                    m.ID,
		TrackingNumber:        m.TrackingNumber,
		CurrentLocation:       m.CurrentLocation,
		SenderName:            m.SenderName,
		SenderEmail:           m.SenderEmail,
		SenderPhone:           m.SenderPhone,
		SenderAddress:         m.SenderAddress,
		ReceiverName:          m.ReceiverName,
		ReceiverEmail:         m.ReceiverEmail,
		ReceiverPhone:         m.ReceiverPhone,
		ReceiverAddress:       m.ReceiverAddress,
		PackageType:           m.PackageType,
		Description:           m.Description,
		Weight:                m.Weight,
		ShipmentCost:          m.ShipmentCost,
		EstimatedDeliveryDate: m.EstimatedDeliveryDate,
		CreatedBy:             m.CreatedBy,
		CreatedByEmail:        m.CreatedByEmail,
	}

	if m.Status != nil {
		status := m.Status.String()
		db.Status = &status
	}
	// колонка timestamp без зоны, pgx пишет wall clock как есть
	if m.DateRegistered != nil {
		registered := m.DateRegistered.UTC()
		db.DateRegistered = &registered
	}

	return db
}

func ToDomainList(shipmentsDB []ShipmentDB) []entities.Shipment {
	if len(shipmentsDB) == 0 {
		return []entities.Shipment{}
	}

	result := make([]entities.Shipment, len(shipmentsDB))
	for i := range shipmentsDB {
		result[i] = *ToDomain(&shipmentsDB[i])
	}
	return result
}

func ToDomainDrift(d *StateDriftDB) entities.StateDrift {
	return entities.StateDrift{
		ShipmentID:       d.ShipmentID,
		TrackingNumber:   d.TrackingNumber,
		Status:           entities.ShipmentStatus(d.Status),
		CurrentLocation:  d.CurrentLocation,
		LatestStatus:     entities.ShipmentStatus(d.LatestStatus),
		LatestLocation:   d.LatestLocation,
		LatestEntryID:    d.LatestEntryID,
		LatestEntryStamp: d.LatestTimestamp.UTC(),
	}
}

func nowUTC() time.Time {
	return time.Now().UTC()
}
