package archive

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"tracking/internal/entities"
)

type snapshotJSON struct {
	ExportedAt time.Time       `json:"exported_at"`
	Shipments  []shipmentJSON  `json:"shipments"`
	StatusLogs []statusLogJSON `json:"status_logs"`
}

type shipmentJSON struct {
	ID                    string  `json:"id"`
	TrackingNumber        string  `json:"tracking_number"`
	Status                string  `json:"status"`
	CurrentLocation       *string `json:"current_location"`
	SenderName            string  `json:"sender_name"`
	SenderEmail           string  `json:"sender_email"`
	SenderPhone           string  `json:"sender_phone"`
	SenderAddress         string  `json:"sender_address"`
	ReceiverName          string  `json:"receiver_name"`
	ReceiverEmail         *string `json:"receiver_email"`
	ReceiverPhone         string  `json:"receiver_phone"`
	ReceiverAddress       string  `json:"receiver_address"`
	PackageType           string  `json:"package_type"`
	Description           *string `json:"description"`
	Weight                float64 `json:"weight"`
	ShipmentCost          float64 `json:"shipment_cost"`
	EstimatedDeliveryDate *string `json:"estimated_delivery_date"`
	DateRegistered        string  `json:"date_registered"`
	CreatedBy             *string `json:"created_by"`
	CreatedByEmail        *string `json:"created_by_email"`
}

type statusLogJSON struct {
	TrackingNumber string  `json:"tracking_number"`
	Status         string  `json:"status"`
	Timestamp      string  `json:"timestamp"`
	Location       string  `json:"location"`
	Coordinates    *string `json:"coordinates"`
	Note           *string `json:"note"`
}

// WriteSnapshot пишет снимок в JSON. Метки времени в RFC 3339, UTC.
func WriteSnapshot(w io.Writer, snapshot *entities.LedgerSnapshot) error {
	out := snapshotJSON{
		ExportedAt: snapshot.ExportedAt.UTC(),
		Shipments:  make([]shipmentJSON, 0, len(snapshot.Shipments)),
		StatusLogs: make([]statusLogJSON, 0, len(snapshot.StatusLogs)),
	}

	for _, s := range snapshot.Shipments {
		var edd *string
		if s.EstimatedDeliveryDate != nil {
			v := s.EstimatedDeliveryDate.Format(time.DateOnly)
			edd = &v
		}
		out.Shipments = append(out.Shipments, shipmentJSON{
			ID:                    s.ID,
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
			EstimatedDeliveryDate: edd,
			DateRegistered:        s.DateRegistered.UTC().Format(time.RFC3339Nano),
			CreatedBy:             s.CreatedBy,
			CreatedByEmail:        s.CreatedByEmail,
		})
	}

	for _, l := range snapshot.StatusLogs {
		out.StatusLogs = append(out.StatusLogs, statusLogJSON{
			TrackingNumber: l.TrackingNumber,
			Status:         l.Status.String(),
			Timestamp:      l.Timestamp.UTC().Format(time.RFC3339Nano),
			Location:       l.Location,
			Coordinates:    l.Coordinates,
			Note:           l.Note,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// ReadSnapshot читает снимок, записанный WriteSnapshot. Метки без зоны считаются UTC.
func ReadSnapshot(r io.Reader) (*entities.LedgerSnapshot, error) {
	var in snapshotJSON
	if err := json.NewDecoder(r).Decode(&in); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSnapshot, err)
	}

	snapshot := &entities.LedgerSnapshot{
		ExportedAt: in.ExportedAt.UTC(),
		Shipments:  make([]entities.Shipment, 0, len(in.Shipments)),
		StatusLogs: make([]entities.SnapshotStatusLog, 0, len(in.StatusLogs)),
	}

	for _, s := range in.Shipments {
		registered, err := parseStamp(s.DateRegistered)
		if err != nil {
			return nil, fmt.Errorf("%w: shipment %s date_registered: %w", ErrInvalidSnapshot, s.TrackingNumber, err)
		}

		var edd *time.Time
		if s.EstimatedDeliveryDate != nil && *s.EstimatedDeliveryDate != "" {
			v, err := parseStamp(*s.EstimatedDeliveryDate)
			if err != nil {
				return nil, fmt.Errorf("%w: shipment %s estimated_delivery_date: %w", ErrInvalidSnapshot, s.TrackingNumber, err)
			}
			edd = &v
		}

		snapshot.Shipments = append(snapshot.Shipments, entities.Shipment{
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
			EstimatedDeliveryDate: edd,
			DateRegistered:        registered,
			CreatedBy:             s.CreatedBy,
			CreatedByEmail:        s.CreatedByEmail,
		})
	}

	for _, l := range in.StatusLogs {
		ts, err := parseStamp(l.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("%w: status log of %s: %w", ErrInvalidSnapshot, l.TrackingNumber, err)
		}
		snapshot.StatusLogs = append(snapshot.StatusLogs, entities.SnapshotStatusLog{
			TrackingNumber: l.TrackingNumber,
			Status:         entities.ShipmentStatus(l.Status),
			Timestamp:      ts,
			Location:       l.Location,
			Coordinates:    l.Coordinates,
			Note:           l.Note,
		})
	}

	return snapshot, nil
}

var stampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	time.DateOnly,
}

func parseStamp(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}

	var lastErr error
	for _, layout := range stampLayouts {
		ts, err := time.Parse(layout, raw)
		if err == nil {
			return ts.UTC(), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
