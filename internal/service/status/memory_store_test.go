package status_test

import (
	"context"
	"errors"
	"sort"
	"sync"

	"tracking/internal/entities"
	"tracking/internal/service/correction"
	"tracking/internal/service/status"
)

var errInjected = errors.New("injected failure")

// memoryStore хранит отправления и журнал в памяти. Do делает снимок и
// откатывает его при ошибке, как транзакция.
type memoryStore struct {
	txMu sync.Mutex
	mu   sync.Mutex

	shipments map[string]entities.Shipment
	logs      []entities.StatusLogEntry
	nextID    int64

	failSetState bool
}

func newMemoryStore(shipments ...entities.Shipment) *memoryStore {
	s := &memoryStore{shipments: make(map[string]entities.Shipment)}
	for _, sh := range shipments {
		s.shipments[sh.ID] = sh
	}
	return s
}

func (s *memoryStore) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.Lock()
	shipments := make(map[string]entities.Shipment, len(s.shipments))
	for k, v := range s.shipments {
		shipments[k] = v
	}
	logs := append([]entities.StatusLogEntry(nil), s.logs...)
	nextID := s.nextID
	s.mu.Unlock()

	if err := fn(ctx); err != nil {
		s.mu.Lock()
		s.shipments, s.logs, s.nextID = shipments, logs, nextID
		s.mu.Unlock()
		return err
	}
	return nil
}

func (s *memoryStore) find(identifier string) (entities.Shipment, bool) {
	for _, sh := range s.shipments {
		if sh.TrackingNumber == identifier {
			return sh, true
		}
	}
	sh, ok := s.shipments[identifier]
	return sh, ok
}

func (s *memoryStore) GetByIdentifier(_ context.Context, identifier string) (*entities.Shipment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sh, ok := s.find(identifier)
	if !ok {
		return nil, status.ErrShipmentNotFound
	}
	return &sh, nil
}

func (s *memoryStore) GetByIdentifierForUpdate(ctx context.Context, identifier string) (*entities.Shipment, error) {
	return s.GetByIdentifier(ctx, identifier)
}

func (s *memoryStore) SetCurrentState(_ context.Context, id string, st entities.ShipmentStatus, location string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failSetState {
		return errInjected
	}
	sh, ok := s.shipments[id]
	if !ok {
		return status.ErrShipmentNotFound
	}
	sh.Status = st
	sh.CurrentLocation = &location
	s.shipments[id] = sh
	return nil
}

func (s *memoryStore) Append(_ context.Context, m entities.StatusLogEntryModify) (*entities.StatusLogEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.shipments[*m.ShipmentID]; !ok {
		return nil, status.ErrShipmentNotFound
	}
	s.nextID++
	entry := entities.StatusLogEntry{
		ID:          s.nextID,
		ShipmentID:  *m.ShipmentID,
		Status:      *m.Status,
		Timestamp:   m.Timestamp.UTC(),
		Location:    *m.Location,
		Coordinates: m.Coordinates,
		Note:        m.Note,
	}
	s.logs = append(s.logs, entry)
	return &entry, nil
}

func (s *memoryStore) List(_ context.Context, filter entities.StatusLogFilter) ([]entities.StatusLogEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]entities.StatusLogEntry, 0)
	for _, e := range s.logs {
		if filter.ShipmentID != nil && e.ShipmentID != *filter.ShipmentID {
			continue
		}
		if filter.Status != nil && e.Status != *filter.Status {
			continue
		}
		out = append(out, e)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Timestamp.Equal(out[j].Timestamp) {
			return out[i].Timestamp.Before(out[j].Timestamp) != filter.Descending
		}
		return (out[i].ID < out[j].ID) != filter.Descending
	})
	if filter.Limit > 0 && uint64(len(out)) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (s *memoryStore) Latest(ctx context.Context, shipmentID string) (*entities.StatusLogEntry, error) {
	entries, _ := s.List(ctx, entities.StatusLogFilter{ShipmentID: &shipmentID, Descending: true, Limit: 1})
	if len(entries) == 0 {
		return nil, correction.ErrEntryNotFound
	}
	return &entries[0], nil
}

func (s *memoryStore) shipment(id string) entities.Shipment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shipments[id]
}

func (s *memoryStore) entries(id string) []entities.StatusLogEntry {
	entries, _ := s.List(context.Background(), entities.StatusLogFilter{ShipmentID: &id})
	return entries
}
