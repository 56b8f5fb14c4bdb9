package entities

import (
	"time"
)

type Shipment struct {
	ID             string
	TrackingNumber string

	Status          ShipmentStatus
	CurrentLocation *string

	SenderName    string
	SenderEmail   string
	SenderPhone   string
	SenderAddress string

	ReceiverName    string
	ReceiverEmail   *string
	ReceiverPhone   string
	ReceiverAddress string

	PackageType  string
	Description  *string
	Weight       float64
	ShipmentCost float64

	EstimatedDeliveryDate *time.Time
	DateRegistered        time.Time

	CreatedBy      *string
	CreatedByEmail *string
}

// ShipmentModify описывает частичное изменение полей отправления.
// nil означает, что поле не меняется.
type ShipmentModify struct {
	ID             *string
	TrackingNumber *string

	Status          *ShipmentStatus
	CurrentLocation *string

	SenderName    *string
	SenderEmail   *string
	SenderPhone   *string
	SenderAddress *string

	ReceiverName    *string
	ReceiverEmail   *string
	ReceiverPhone   *string
	ReceiverAddress *string

	PackageType  *string
	Description  *string
	Weight       *float64
	ShipmentCost *float64

	EstimatedDeliveryDate *time.Time
	DateRegistered        *time.Time

	CreatedBy      *string
	CreatedByEmail *string
}

// EstimatedDeliveryDate хранится как есть (YYYY-MM-DD), разбирает его сервис.
type ShipmentRegistration struct {
	TrackingNumber *string

	SenderName    *string
	SenderEmail   *string
	SenderPhone   *string
	SenderAddress *string

	ReceiverName    *string
	ReceiverEmail   *string
	ReceiverPhone   *string
	ReceiverAddress *string

	PackageType  *string
	Description  *string
	Weight       *float64
	ShipmentCost *float64

	EstimatedDeliveryDate *string

	CreatedBy      *string
	CreatedByEmail *string
}

// Статуса и местоположения здесь нет: они меняются только записью в журнал.
type ShipmentFieldsUpdate struct {
	SenderName    *string
	SenderEmail   *string
	SenderPhone   *string
	SenderAddress *string

	ReceiverName    *string
	ReceiverEmail   *string
	ReceiverPhone   *string
	ReceiverAddress *string

	PackageType  *string
	Description  *string
	Weight       *float64
	ShipmentCost *float64

	EstimatedDeliveryDate *string
}

func (u ShipmentFieldsUpdate) IsEmpty() bool {
	return u.SenderName == nil && u.SenderEmail == nil && u.SenderPhone == nil && u.SenderAddress == nil &&
		u.ReceiverName == nil && u.ReceiverEmail == nil && u.ReceiverPhone == nil && u.ReceiverAddress == nil &&
		u.PackageType == nil && u.Description == nil && u.Weight == nil && u.ShipmentCost == nil &&
		u.EstimatedDeliveryDate == nil
}
