package validation

import (
	"errors"
	"fmt"
	"time"

	"eventCatalog/internal/models"

	"github.com/go-playground/validator/v10"
)

const (
	defaultMaxParticipants = 100
)

// EventPayload is the untrusted create-event body. Fields are declared
// in validation order so the first reported violation is the first
// constraint the caller broke.
type EventPayload struct {
	Title               string   `json:"title" validate:"required,max=200"`
	Description         string   `json:"description" validate:"required,max=2000"`
	Location            string   `json:"location" validate:"required,max=200"`
	Date                string   `json:"date" validate:"required,rfc3339"`
	Category            string   `json:"category"`
	MaxParticipants     *int     `json:"maxParticipants" validate:"omitempty,gt=0,lte=10000"`
	CurrentParticipants *int     `json:"currentParticipants" validate:"omitempty,gte=0"`
	Lat                 *float64 `json:"lat" validate:"omitempty,gte=-90,lte=90"`
	Lon                 *float64 `json:"lon" validate:"omitempty,gte=-180,lte=180"`
}

// RSVPPayload is the untrusted join/leave request, the event id taken
// from the URL and the action from the body.
type RSVPPayload struct {
	EventID int    `json:"eventId" validate:"required,gt=0"`
	Action  string `json:"action" validate:"required,oneof=join leave"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	_ = v.RegisterValidation("rfc3339", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(time.RFC3339, fl.Field().String())
		return err == nil
	})

	return v
}

// ValidateEvent checks an event payload and, on success, returns the
// normalized record with defaults applied: 100 max participants and a
// zero participant count when omitted. On failure it returns a message
// for the first violated constraint only.
func ValidateEvent(p EventPayload) (models.Event, error) {
	if err := validate.Struct(p); err != nil {
		return models.Event{}, firstViolation(err)
	}

	date, err := time.Parse(time.RFC3339, p.Date)
	if err != nil {
		return models.Event{}, errors.New("Invalid date format")
	}

	event := models.Event{
		Title:           p.Title,
		Description:     p.Description,
		Location:        p.Location,
		Date:            date,
		Category:        p.Category,
		MaxParticipants: defaultMaxParticipants,
		Lat:             p.Lat,
		Lon:             p.Lon,
	}

	if p.MaxParticipants != nil {
		event.MaxParticipants = *p.MaxParticipants
	}
	if p.CurrentParticipants != nil {
		event.CurrentParticipants = *p.CurrentParticipants
	}

	return event, nil
}

// ValidateRSVP checks a join/leave payload: a positive event id and an
// action that is exactly "join" or "leave".
func ValidateRSVP(p RSVPPayload) (RSVPPayload, error) {
	if err := validate.Struct(p); err != nil {
		return RSVPPayload{}, firstViolation(err)
	}

	return p, nil
}

func firstViolation(err error) error {
	var validateErrs validator.ValidationErrors
	if !errors.As(err, &validateErrs) {
		return errors.New("Validation failed")
	}

	return errors.New(violationMessage(validateErrs[0]))
}

func violationMessage(fieldErr validator.FieldError) string {
	switch fieldErr.Field() {
	case "Title":
		if fieldErr.ActualTag() == "required" {
			return "Title is required"
		}
		return "Title too long"
	case "Description":
		if fieldErr.ActualTag() == "required" {
			return "Description is required"
		}
		return "Description too long"
	case "Location":
		if fieldErr.ActualTag() == "required" {
			return "Location is required"
		}
		return "Location name too long"
	case "Date":
		if fieldErr.ActualTag() == "required" {
			return "Date is required"
		}
		return "Invalid date format"
	case "MaxParticipants":
		if fieldErr.ActualTag() == "gt" {
			return "Max participants must be positive"
		}
		return "Max participants too large"
	case "CurrentParticipants":
		return "Current participants cannot be negative"
	case "Lat":
		return "Latitude out of range"
	case "Lon":
		return "Longitude out of range"
	case "EventID":
		return "Event id must be a positive number"
	case "Action":
		return "Action must be join or leave"
	default:
		return fmt.Sprintf("Invalid field %s", fieldErr.Field())
	}
}
