package memstore

import (
	"sync"
	"time"

	"eventCatalog/internal/models"
	"eventCatalog/internal/storage"
)

// Storage keeps the event collection in process memory. All state is
// guarded by mu: reads take the read lock and return copies, mutations
// hold the write lock for their full read-check-write.
type Storage struct {
	mu     sync.RWMutex
	events []models.Event
	nextID int
}

func New() *Storage {
	return &Storage{
		nextID: 1,
	}
}

func (s *Storage) CreateEvent(event models.Event) (models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()

	event.ID = s.nextID
	s.nextID++

	event.CreatedAt = now
	event.UpdatedAt = now

	s.events = append(s.events, cloneEvent(event))

	return event, nil
}

func (s *Storage) GetEvent(id int) (models.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.events {
		if s.events[i].ID == id {
			return cloneEvent(s.events[i]), nil
		}
	}

	return models.Event{}, storage.ErrEventNotFound
}

// GetAllEvents returns copies of every event in insertion order.
func (s *Storage) GetAllEvents() ([]models.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	events := make([]models.Event, 0, len(s.events))
	for i := range s.events {
		events = append(events, cloneEvent(s.events[i]))
	}

	return events, nil
}

// UpdateParticipants applies a join or leave to one event. Join on a
// full event fails with storage.ErrEventFull and changes nothing.
// Leave on an empty event keeps the count at zero; it is not an error.
// Both stamp UpdatedAt on success.
func (s *Storage) UpdateParticipants(id int, action string) (models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var event *models.Event
	for i := range s.events {
		if s.events[i].ID == id {
			event = &s.events[i]
			break
		}
	}

	if event == nil {
		return models.Event{}, storage.ErrEventNotFound
	}

	switch action {
	case storage.ActionJoin:
		if event.CurrentParticipants >= event.MaxParticipants {
			return models.Event{}, storage.ErrEventFull
		}
		event.CurrentParticipants++
	case storage.ActionLeave:
		if event.CurrentParticipants > 0 {
			event.CurrentParticipants--
		}
	}

	event.UpdatedAt = time.Now().UTC()

	return cloneEvent(*event), nil
}

// cloneEvent deep-copies an event so callers never share the stored
// coordinate pointers.
func cloneEvent(e models.Event) models.Event {
	c := e

	if e.Lat != nil {
		lat := *e.Lat
		c.Lat = &lat
	}
	if e.Lon != nil {
		lon := *e.Lon
		c.Lon = &lon
	}

	return c
}
