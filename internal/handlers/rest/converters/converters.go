package converters

import (
	"time"

	"tracking/internal/entities"
	"tracking/internal/generated/dto"
)

const (
	// HistoryTimestampLayout формат времени записей истории статусов.
	HistoryTimestampLayout = "2006-01-02T15:04:05Z"
	deliveryDateLayout     = time.DateOnly
)

func ShipmentToDTO(s *entities.Shipment) dto.Shipment {
	var deliveryDate *string
	if s.EstimatedDeliveryDate != nil {
		formatted := s.EstimatedDeliveryDate.Format(deliveryDateLayout)
		deliveryDate = &formatted
	}

	return dto.Shipment{
		Id:                    s.ID,
		TrackingNumber:        s.TrackingNumber,
		Status:                s.Status.String(),
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
		EstimatedDeliveryDate: deliveryDate,
		DateRegistered:        s.DateRegistered.UTC().Format(time.RFC3339),
		CreatedBy:             s.CreatedBy,
		CreatedByEmail:        s.CreatedByEmail,
	}
}

func ShipmentsToDTO(shipments []entities.Shipment) []dto.Shipment {
	out := make([]dto.Shipment, len(shipments))
	for i := range shipments {
		out[i] = ShipmentToDTO(&shipments[i])
	}
	return out
}

func HistoryEntryToDTO(e entities.StatusLogEntry) dto.StatusHistoryEntry {
	return dto.StatusHistoryEntry{
		Id:          e.ID,
		Status:      e.Status.String(),
		Timestamp:   e.Timestamp.UTC().Format(HistoryTimestampLayout),
		Location:    e.Location,
		Coordinates: e.Coordinates,
		Note:        e.Note,
	}
}

// HistoryToDTO никогда не возвращает nil history, пустая история кодируется как [].
func HistoryToDTO(h *entities.StatusHistory) dto.StatusHistoryResponse {
	history := make([]dto.StatusHistoryEntry, len(h.Entries))
	for i, e := range h.Entries {
		history[i] = HistoryEntryToDTO(e)
	}

	return dto.StatusHistoryResponse{
		Success:         true,
		History:         history,
		CurrentLocation: h.CurrentLocation,
	}
}

func RegistrationFromDTO(in dto.ShipmentCreate) entities.ShipmentRegistration {
	return entities.ShipmentRegistration{
		TrackingNumber:        in.TrackingNumber,
		SenderName:            in.SenderName,
		SenderEmail:           in.SenderEmail,
		SenderPhone:           in.SenderPhone,
		SenderAddress:         in.SenderAddress,
		ReceiverName:          in.ReceiverName,
		ReceiverEmail:         in.ReceiverEmail,
		ReceiverPhone:         in.ReceiverPhone,
		ReceiverAddress:       in.ReceiverAddress,
		PackageType:           in.PackageType,
		Description:           in.Description,
		Weight:                in.Weight,
		ShipmentCost:          in.ShipmentCost,
		EstimatedDeliveryDate: in.EstimatedDeliveryDate,
	}
}

func FieldsUpdateFromDTO(in dto.ShipmentUpdate) entities.ShipmentFieldsUpdate {
	return entities.ShipmentFieldsUpdate{
		SenderName:            in.SenderName,
		SenderEmail:           in.SenderEmail,
		SenderPhone:           in.SenderPhone,
		SenderAddress:         in.SenderAddress,
		ReceiverName:          in.ReceiverName,
		ReceiverEmail:         in.ReceiverEmail,
		ReceiverPhone:         in.ReceiverPhone,
		ReceiverAddress:       in.ReceiverAddress,
		PackageType:           in.PackageType,
		Description:           in.Description,
		Weight:                in.Weight,
		ShipmentCost:          in.ShipmentCost,
		EstimatedDeliveryDate: in.EstimatedDeliveryDate,
	}
}

func TransitionFromDTO(in dto.StatusUpdate) entities.StatusTransition {
	return entities.StatusTransition{
		Status:      entities.ShipmentStatus(in.Status),
		Location:    in.Location,
		Coordinates: in.Coordinates,
		Note:        in.Note,
		Timestamp:   in.Timestamp,
	}
}
