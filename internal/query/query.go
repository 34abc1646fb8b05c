package query

import (
	"sort"
	"strings"
	"time"

	"eventCatalog/internal/lib/geo"
	"eventCatalog/internal/models"
)

// Temporal buckets accepted by Filter.Type.
const (
	TypeUpcoming = "upcoming"
	TypePast     = "past"
)

// Filter describes one query over the event collection. Every field is
// optional; an unset field skips its stage of the pipeline.
type Filter struct {
	Search      string
	Category    string
	Location    string
	Type        string
	OriginLat   *float64
	OriginLon   *float64
	MaxDistance *float64
}

// Result is one returned event, annotated with the distance from the
// query origin when both the origin and the event carry coordinates.
type Result struct {
	models.Event
	Distance *float64 `json:"distance,omitempty"`
}

// Apply runs the filter pipeline over the given events and returns the
// matching results. Stages run in a fixed order: temporal bucket,
// location substring, category equality, general search, distance
// annotation, max-distance cut, distance sort. The now instant is
// captured once by the caller so every event is classified against the
// same boundary. Without an origin the input order is preserved.
func Apply(events []models.Event, f Filter, now time.Time) []Result {
	filtered := make([]models.Event, 0, len(events))

	for _, event := range events {
		if !matchesType(event, f.Type, now) {
			continue
		}
		if !matchesLocation(event, f.Location) {
			continue
		}
		if !matchesCategory(event, f.Category) {
			continue
		}
		if !matchesSearch(event, f.Search) {
			continue
		}

		filtered = append(filtered, event)
	}

	results := annotateDistance(filtered, f)

	if f.MaxDistance != nil {
		results = cutByDistance(results, *f.MaxDistance)
	}

	if hasOrigin(f) {
		sortByDistance(results)
	}

	return results
}

func matchesType(event models.Event, bucket string, now time.Time) bool {
	switch bucket {
	case TypeUpcoming:
		return !event.Date.Before(now)
	case TypePast:
		return event.Date.Before(now)
	default:
		return true
	}
}

func matchesLocation(event models.Event, location string) bool {
	if location == "" {
		return true
	}

	return strings.Contains(
		strings.ToLower(event.Location),
		strings.ToLower(location),
	)
}

// matchesCategory is a case-insensitive exact match; an event without a
// category never matches a non-empty filter.
func matchesCategory(event models.Event, category string) bool {
	if category == "" {
		return true
	}
	if event.Category == "" {
		return false
	}

	return strings.EqualFold(event.Category, category)
}

func matchesSearch(event models.Event, search string) bool {
	if search == "" {
		return true
	}

	search = strings.ToLower(search)

	return strings.Contains(strings.ToLower(event.Title), search) ||
		strings.Contains(strings.ToLower(event.Description), search) ||
		strings.Contains(strings.ToLower(event.Location), search)
}

func hasOrigin(f Filter) bool {
	return f.OriginLat != nil && f.OriginLon != nil
}

func annotateDistance(events []models.Event, f Filter) []Result {
	results := make([]Result, 0, len(events))

	for _, event := range events {
		result := Result{Event: event}

		if hasOrigin(f) && event.Lat != nil && event.Lon != nil {
			distance := geo.Distance(*f.OriginLat, *f.OriginLon, *event.Lat, *event.Lon)
			result.Distance = &distance
		}

		results = append(results, result)
	}

	return results
}

// cutByDistance drops every result without a computed distance as well
// as those farther away than the limit.
func cutByDistance(results []Result, maxDistance float64) []Result {
	kept := make([]Result, 0, len(results))

	for _, result := range results {
		if result.Distance != nil && *result.Distance <= maxDistance {
			kept = append(kept, result)
		}
	}

	return kept
}

// sortByDistance orders results ascending by distance, distance-less
// entries last, ties keeping their prior order.
func sortByDistance(results []Result) {
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Distance == nil {
			return false
		}
		if results[j].Distance == nil {
			return true
		}

		return *results[i].Distance < *results[j].Distance
	})
}
