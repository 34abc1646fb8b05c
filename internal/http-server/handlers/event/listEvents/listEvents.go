package listEvents

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"eventCatalog/internal/lib/api/response"
	"eventCatalog/internal/lib/logger/sl"
	"eventCatalog/internal/models"
	"eventCatalog/internal/query"

	"github.com/go-chi/render"
)

type EventsResponse struct {
	response.Response
	Events []query.Result `json:"events"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventsGetter
type EventsGetter interface {
	GetAllEvents() ([]models.Event, error)
}

func New(log *slog.Logger, eventsGetter EventsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.listEvents.New"

		log = log.With(slog.String("op", op))

		filter, err := parseFilter(r)
		if err != nil {
			log.Error("invalid filter", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		events, err := eventsGetter.GetAllEvents()
		if err != nil {
			log.Error("failed to get events", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get events"))
			return
		}

		results := query.Apply(events, filter, time.Now())

		log.Info("events retrieved successfully", slog.Int("count", len(results)))

		responseOK(w, r, results)
	}
}

// parseFilter reads the recognized query parameters: search, category,
// location, type (upcoming|past), lat, lon, maxDistance.
func parseFilter(r *http.Request) (query.Filter, error) {
	q := r.URL.Query()

	filter := query.Filter{
		Search:   q.Get("search"),
		Category: q.Get("category"),
		Location: q.Get("location"),
		Type:     q.Get("type"),
	}

	var err error

	if filter.OriginLat, err = parseFloatParam(q.Get("lat"), "lat"); err != nil {
		return query.Filter{}, err
	}
	if filter.OriginLon, err = parseFloatParam(q.Get("lon"), "lon"); err != nil {
		return query.Filter{}, err
	}
	if filter.MaxDistance, err = parseFloatParam(q.Get("maxDistance"), "maxDistance"); err != nil {
		return query.Filter{}, err
	}

	return filter, nil
}

func parseFloatParam(raw, name string) (*float64, error) {
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, &invalidParamError{name: name}
	}

	return &value, nil
}

type invalidParamError struct {
	name string
}

func (e *invalidParamError) Error() string {
	return "invalid " + e.name + " format"
}

func responseOK(w http.ResponseWriter, r *http.Request, events []query.Result) {
	render.JSON(w, r, EventsResponse{
		Response: response.OK(),
		Events:   events,
	})
}
