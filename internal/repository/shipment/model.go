package shipment

import "time"

type ShipmentDB struct {
	ID                    string
	TrackingNumber        string
	Status                string
	CurrentLocation       *string
	SenderName            string
	SenderEmail           string
	SenderPhone           string
	SenderAddress         string
	ReceiverName          string
	ReceiverEmail         *string
	ReceiverPhone         string
	ReceiverAddress       string
	PackageType           string
	Description           *string
	Weight                float64
	ShipmentCost          float64
	EstimatedDeliveryDate *time.Time
	DateRegistered        time.Time
	CreatedBy             *string
	CreatedByEmail        *string
}

type ShipmentModifyDB struct {
	ID                    *string
	TrackingNumber        *string
	Status                *string
	CurrentLocation       *string
	SenderName            *string
	SenderEmail           *string
	SenderPhone           *string
	SenderAddress         *string
	ReceiverName          *string
	ReceiverEmail         *string
	ReceiverPhone         *string
	ReceiverAddress       *string
	PackageType           *string
	Description           *string
	Weight                *float64
	ShipmentCost          *float64
	EstimatedDeliveryDate *time.Time
	DateRegistered        *time.Time
	CreatedBy             *string
	CreatedByEmail        *string
}

type StateDriftDB struct {
	ShipmentID      string
	TrackingNumber  string
	Status          string
	CurrentLocation *string
	LatestEntryID   int64
	LatestStatus    string
	LatestLocation  string
	LatestTimestamp time.Time
}

// scanDest возвращает указатели на поля в порядке shipmentColumns.
func (s *ShipmentDB) scanDest() []any {
	return []any{
		&s.ID,
		&s.TrackingNumber,
		&s.Status,
		&s.CurrentLocation,
		&s.SenderName,
		&s.SenderEmail,
		&s.SenderPhone,
		&s.SenderAddress,
		&s.ReceiverName,
		&s.ReceiverEmail,
		&s.ReceiverPhone,
		&s.ReceiverAddress,
		&s.PackageType,
		&s.Description,
		&s.Weight,
		&s.ShipmentCost,
		&s.EstimatedDeliveryDate,
		&s.DateRegistered,
		&s.CreatedBy,
		&s.CreatedByEmail,
	}
}
