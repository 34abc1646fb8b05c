package models

import "time"

// Event is the authoritative record of one discoverable happening.
// Lat/Lon are optional; distance features need both.
type Event struct {
	ID                  int       `json:"id"`
	Title               string    `json:"title"`
	Description         string    `json:"description"`
	Location            string    `json:"location"`
	Date                time.Time `json:"date"`
	Category            string    `json:"category,omitempty"`
	MaxParticipants     int       `json:"maxParticipants"`
	CurrentParticipants int       `json:"currentParticipants"`
	Lat                 *float64  `json:"lat,omitempty"`
	Lon                 *float64  `json:"lon,omitempty"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}
