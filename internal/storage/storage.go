package storage

import (
	"errors"

	"eventCatalog/internal/models"
)

var (
	ErrEventNotFound = errors.New("event not found")
	ErrEventFull     = errors.New("event is full")
)

// RSVP actions accepted by UpdateParticipants.
const (
	ActionJoin  = "join"
	ActionLeave = "leave"
)

// Storage is the full contract of an event store. Implementations must
// serialize UpdateParticipants per event so the participant count never
// exceeds the maximum, and must hand out copies from read operations.
type Storage interface {
	CreateEvent(event models.Event) (models.Event, error)
	GetEvent(id int) (models.Event, error)
	GetAllEvents() ([]models.Event, error)
	UpdateParticipants(id int, action string) (models.Event, error)
}
