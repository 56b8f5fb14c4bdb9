package entities

import "time"

const DefaultMatchWindow = 24 * time.Hour

type LedgerMatchCriteria struct {
	Around           *time.Time
	Window           time.Duration
	LocationContains []string
	Status           *ShipmentStatus
}

// Статус в замене не сверяется со списком именованных состояний.
type LedgerReplacement struct {
	Status      ShipmentStatus
	Timestamp   time.Time
	Location    string
	Coordinates *string
	Note        *string
}

type StateDrift struct {
	ShipmentID       string
	TrackingNumber   string
	Status           ShipmentStatus
	CurrentLocation  *string
	LatestStatus     ShipmentStatus
	LatestLocation   string
	LatestEntryID    int64
	LatestEntryStamp time.Time
}

type AuditReport struct {
	Drifted  []StateDrift
	Resynced int
}

type LedgerSnapshot struct {
	ExportedAt time.Time
	Shipments  []Shipment
	StatusLogs []SnapshotStatusLog
}

// Отправление указывается трек-номером: id в другой базе могут отличаться.
type SnapshotStatusLog struct {
	TrackingNumber string
	Status         ShipmentStatus
	Timestamp      time.Time
	Location       string
	Coordinates    *string
	Note           *string
}

type ImportReport struct {
	ShipmentsCreated int
	ShipmentsSkipped int
	LogsCreated      int
	LogsSkipped      int
	LogsOrphaned     int
}
