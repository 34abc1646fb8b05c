package memstore

import (
	"time"

	"eventCatalog/internal/models"
)

// SeedDemoEvents fills an empty store with a handful of demo events so
// a fresh local instance has something to show. It does nothing when
// events already exist.
func (s *Storage) SeedDemoEvents() {
	s.mu.Lock()
	hasEvents := len(s.events) > 0
	s.mu.Unlock()

	if hasEvents {
		return
	}

	now := time.Now()
	nextWeek := now.Add(7 * 24 * time.Hour)
	nextMonth := now.Add(30 * 24 * time.Hour)
	next2Months := now.Add(60 * 24 * time.Hour)

	demo := []models.Event{
		{
			Title:               "Summer Music Festival",
			Description:         "Join us for an amazing outdoor music festival featuring top artists from around the world!",
			Location:            "Central Park, New York",
			Date:                nextMonth,
			Category:            "music",
			MaxParticipants:     500,
			CurrentParticipants: 120,
			Lat:                 ptr(40.7851),
			Lon:                 ptr(-73.9683),
		},
		{
			Title:               "Tech Meetup",
			Description:         "Network with fellow developers and learn about the latest tech trends.",
			Location:            "Brooklyn, New York",
			Date:                next2Months,
			Category:            "tech",
			MaxParticipants:     50,
			CurrentParticipants: 15,
			Lat:                 ptr(40.6782),
			Lon:                 ptr(-73.9442),
		},
		{
			Title:               "Yoga in the Park",
			Description:         "Start your weekend with a relaxing yoga session in the park.",
			Location:            "Prospect Park, Brooklyn",
			Date:                nextWeek,
			Category:            "sports",
			MaxParticipants:     30,
			CurrentParticipants: 8,
			Lat:                 ptr(40.6602),
			Lon:                 ptr(-73.9690),
		},
		{
			Title:               "Food & Wine Festival",
			Description:         "Taste amazing cuisine from local chefs and enjoy wine pairings.",
			Location:            "Chelsea Market, Manhattan",
			Date:                nextMonth,
			Category:            "food",
			MaxParticipants:     100,
			CurrentParticipants: 42,
			Lat:                 ptr(40.7424),
			Lon:                 ptr(-74.0065),
		},
		{
			Title:               "Coding Bootcamp Workshop",
			Description:         "Learn modern web development in this intensive hands-on workshop.",
			Location:            "Silicon Alley, Manhattan",
			Date:                nextWeek,
			Category:            "education",
			MaxParticipants:     25,
			CurrentParticipants: 12,
			Lat:                 ptr(40.7328),
			Lon:                 ptr(-74.0021),
		},
	}

	for _, event := range demo {
		_, _ = s.CreateEvent(event)
	}
}

func ptr(f float64) *float64 {
	return &f
}
