package status_log

import (
	"tracking/internal/entities"
)

func ToDomain(l *StatusLogDB) *entities.StatusLogEntry {
	if l == nil {
		return nil
	}

	return &entities.StatusLogEntry{
		ID:          l.ID,
		ShipmentID:  l.ShipmentID,
		Status:      entities.ShipmentStatus(l.Status),
		Timestamp:   l.Timestamp.UTC(),
		Location:    l.Location,
		Coordinates: l.Coordinates,
		Note:        l.Note,
	}
}

func FromDomainModify(m *entities.StatusLogEntryModify) *StatusLogModifyDB {
	if m == nil {
		return nil
	}

	db := &StatusLogModifyDB{
		ID:          m.ID,
		ShipmentID:  m.ShipmentID,
		Location:    m.Location,
		Coordinates: m.Coordinates,
		Note:        m.Note,
	}
	if m.Status != nil {
		status := m.Status.String()
		db.Status = &status
	}
	if m.Timestamp != nil {
		ts := m.Timestamp.UTC()
		db.Timestamp = &ts
	}

	return db
}

func ToDomainList(logsDB []StatusLogDB) []entities.StatusLogEntry {
	if len(logsDB) == 0 {
		return []entities.StatusLogEntry{}
	}

	result := make([]entities.StatusLogEntry, len(logsDB))
	for i := range logsDB {
		result[i] = *ToDomain(&logsDB[i])
	}
	return result
}

func ToDomainSnapshot(l *SnapshotStatusLogDB) entities.SnapshotStatusLog {
	return entities.SnapshotStatusLog{
		TrackingNumber: l.TrackingNumber,
		Status:         entities.ShipmentStatus(l.Status),
		Timestamp:      l.Timestamp.UTC(),
		Location:       l.Location,
		Coordinates:    l.Coordinates,
		Note:           l.Note,
	}
}
