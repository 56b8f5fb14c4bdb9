package status_log

import "time"

type StatusLogDB struct {
	ID          int64
	ShipmentID  string
	Status      string
	Timestamp   time.Time
	Location    string
	Coordinates *string
	Note        *string
}

type StatusLogModifyDB struct {
	ID          *int64
	ShipmentID  *string
	Status      *string
	Timestamp   *time.Time
	Location    *string
	Coordinates *string
	Note        *string
}

type SnapshotStatusLogDB struct {
	TrackingNumber string
	Status         string
	Timestamp      time.Time
	Location       string
	Coordinates    *string
	Note           *string
}
