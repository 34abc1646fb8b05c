package rsvpEvent

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"eventCatalog/internal/lib/api/response"
	"eventCatalog/internal/lib/logger/sl"
	"eventCatalog/internal/models"
	"eventCatalog/internal/storage"
	"eventCatalog/internal/validation"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type RSVPRequest struct {
	Action string `json:"action"`
}

type RSVPResponse struct {
	response.Response
	Event models.Event `json:"event"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ParticipantsUpdater
type ParticipantsUpdater interface {
	UpdateParticipants(id int, action string) (models.Event, error)
}

func New(log *slog.Logger, updater ParticipantsUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.rsvpEvent.New"

		log = log.With(slog.String("op", op))

		eventIDStr := chi.URLParam(r, "id")
		if eventIDStr == "" {
			log.Error("event id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("event id is required"))
			return
		}

		eventID, err := strconv.Atoi(eventIDStr)
		if err != nil {
			log.Error("invalid event id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid event id format"))
			return
		}

		log = log.With(slog.Int("event_id", eventID))

		var req RSVPRequest

		err = render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		rsvp, err := validation.ValidateRSVP(validation.RSVPPayload{
			EventID: eventID,
			Action:  req.Action,
		})
		if err != nil {
			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		event, err := updater.UpdateParticipants(rsvp.EventID, rsvp.Action)
		if err != nil {
			switch {
			case errors.Is(err, storage.ErrEventNotFound):
				log.Info("event not found")
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
			case errors.Is(err, storage.ErrEventFull):
				log.Info("event is full")
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("event is full"))
			default:
				log.Error("failed to update participants", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to update participants"))
			}

			return
		}

		log.Info("rsvp applied successfully",
			slog.String("action", rsvp.Action),
			slog.Int("current_participants", event.CurrentParticipants),
		)

		responseOK(w, r, event)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, event models.Event) {
	render.JSON(w, r, RSVPResponse{
		Response: response.OK(),
		Event:    event,
	})
}
