package entities

import "strings"

type ShipmentStatus string

const (
	StatusRegistered     ShipmentStatus = "Registered"
	StatusAtFacility     ShipmentStatus = "At Facility"
	StatusInTransit      ShipmentStatus = "In Transit"
	StatusOutForDelivery ShipmentStatus = "Out for Delivery"
	StatusDelivered      ShipmentStatus = "Delivered"
	StatusDelayed        ShipmentStatus = "Delayed"
	StatusCancelled      ShipmentStatus = "Cancelled"
)

const DefaultShipmentStatus = StatusRegistered

var shipmentStatuses = []ShipmentStatus{
	StatusRegistered,
	StatusAtFacility,
	StatusInTransit,
	StatusOutForDelivery,
	StatusDelivered,
	StatusDelayed,
	StatusCancelled,
}

// ShipmentStatuses возвращает состояния в порядке жизненного цикла.
func ShipmentStatuses() []ShipmentStatus {
	out := make([]ShipmentStatus, len(shipmentStatuses))
	copy(out, shipmentStatuses)
	return out
}

func (s ShipmentStatus) String() string {
	return string(s)
}

func (s ShipmentStatus) IsValid() bool {
	for _, known := range shipmentStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// CanTransitionTo разрешает переход из любого состояния, включая устаревшие
// значения, в любое именованное. Откаты тоже допустимы.
func (s ShipmentStatus) CanTransitionTo(next ShipmentStatus) bool {
	return next.IsValid()
}

func ShipmentStatusNames() string {
	names := make([]string, 0, len(shipmentStatuses))
	for _, s := range shipmentStatuses {
		names = append(names, s.String())
	}
	return strings.Join(names, ", ")
}
