package entities

import "time"

// Timestamp всегда в UTC.
type StatusLogEntry struct {
	ID          int64
	ShipmentID  string
	Status      ShipmentStatus
	Timestamp   time.Time
	Location    string
	Coordinates *string
	Note        *string
}

type StatusLogEntryModify struct {
	ID          *int64
	ShipmentID  *string
	Status      *ShipmentStatus
	Timestamp   *time.Time
	Location    *string
	Coordinates *string
	Note        *string
}

// Timestamp передаётся как прислал клиент, nil означает текущее время.
type StatusTransition struct {
	Status      ShipmentStatus
	Location    string
	Coordinates *string
	Note        *string
	Timestamp   *string
}

type TransitionResult struct {
	ShipmentID      string
	TrackingNumber  string
	Status          ShipmentStatus
	CurrentLocation *string
	Entry           StatusLogEntry
}

type StatusHistory struct {
	ShipmentID      string
	TrackingNumber  string
	CurrentLocation *string
	Entries         []StatusLogEntry
}

// Записи всегда упорядочены по времени, затем по id.
type StatusLogFilter struct {
	ShipmentID *string
	Status     *ShipmentStatus
	Descending bool
	Limit      uint64
}
