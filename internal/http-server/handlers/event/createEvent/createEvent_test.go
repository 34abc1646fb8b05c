package createEvent

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"eventCatalog/internal/http-server/handlers/event/createEvent/mocks"
	"eventCatalog/internal/lib/logger/handlers/slogdiscard"
	"eventCatalog/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateEventHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testDate := time.Date(2026, 12, 25, 18, 0, 0, 0, time.UTC)

	storedEvent := models.Event{
		ID:              123,
		Title:           "Tech Meetup",
		Description:     "Network with fellow developers.",
		Location:        "Brooklyn, New York",
		Date:            testDate,
		Category:        "tech",
		MaxParticipants: 100,
	}

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(m *mocks.EventCreator)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name: "Success",
			requestBody: `{
				"title": "Tech Meetup",
				"description": "Network with fellow developers.",
				"location": "Brooklyn, New York",
				"date": "2026-12-25T18:00:00Z",
				"category": "tech"
			}`,
			mockSetup: func(m *mocks.EventCreator) {
				m.On("CreateEvent", mock.AnythingOfType("models.Event")).Return(storedEvent, nil)
			},
			expectedStatus: http.StatusCreated,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"OK"`)
				assert.Contains(t, body, `"id":123`)
				assert.Contains(t, body, `"maxParticipants":100`)
			},
		},
		{
			name:           "Invalid JSON",
			requestBody:    `invalid json`,
			mockSetup:      func(m *mocks.EventCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
		{
			name: "Missing title",
			requestBody: `{
				"description": "Network with fellow developers.",
				"location": "Brooklyn, New York",
				"date": "2026-12-25T18:00:00Z"
			}`,
			mockSetup:      func(m *mocks.EventCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"Title is required"}`,
		},
		{
			name: "Invalid date",
			requestBody: `{
				"title": "Tech Meetup",
				"description": "Network with fellow developers.",
				"location": "Brooklyn, New York",
				"date": "tomorrow"
			}`,
			mockSetup:      func(m *mocks.EventCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"Invalid date format"}`,
		},
		{
			name: "Out of range latitude",
			requestBody: `{
				"title": "Tech Meetup",
				"description": "Network with fellow developers.",
				"location": "Brooklyn, New York",
				"date": "2026-12-25T18:00:00Z",
				"lat": 120.5,
				"lon": 30.1
			}`,
			mockSetup:      func(m *mocks.EventCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"Latitude out of range"}`,
		},
		{
			name: "Internal server error",
			requestBody: `{
				"title": "Tech Meetup",
				"description": "Network with fellow developers.",
				"location": "Brooklyn, New York",
				"date": "2026-12-25T18:00:00Z"
			}`,
			mockSetup: func(m *mocks.EventCreator) {
				m.On("CreateEvent", mock.AnythingOfType("models.Event")).
					Return(models.Event{}, errors.New("storage error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to create event"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockCreator := mocks.NewEventCreator(t)
			tc.mockSetup(mockCreator)

			handler := New(logger, mockCreator)

			req, err := http.NewRequest("POST", "/events", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}

func TestCreateEventAppliesDefaults(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	mockCreator := mocks.NewEventCreator(t)

	var captured models.Event
	mockCreator.On("CreateEvent", mock.AnythingOfType("models.Event")).
		Run(func(args mock.Arguments) {
			captured = args.Get(0).(models.Event)
		}).
		Return(models.Event{ID: 1}, nil)

	handler := New(logger, mockCreator)

	requestBody := `{
		"title": "Tech Meetup",
		"description": "Network with fellow developers.",
		"location": "Brooklyn, New York",
		"date": "2026-12-25T18:00:00Z"
	}`
	req, err := http.NewRequest("POST", "/events", bytes.NewBufferString(requestBody))
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, 100, captured.MaxParticipants)
	assert.Equal(t, 0, captured.CurrentParticipants)

	mockCreator.AssertExpectations(t)
}

func TestResponseCreatedFormat(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest("POST", "/events", nil)
	rr := httptest.NewRecorder()

	responseCreated(rr, req, models.Event{ID: 456, Title: "Test"})

	assert.Equal(t, http.StatusCreated, rr.Code)

	var actualResponse EventResponse
	err := json.Unmarshal(rr.Body.Bytes(), &actualResponse)
	require.NoError(t, err)

	assert.Equal(t, "OK", actualResponse.Status)
	assert.Equal(t, "", actualResponse.Error)
	assert.Equal(t, 456, actualResponse.Event.ID)
}
