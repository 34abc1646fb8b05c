package rsvpEvent

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"eventCatalog/internal/http-server/handlers/event/rsvpEvent/mocks"
	"eventCatalog/internal/lib/logger/handlers/slogdiscard"
	"eventCatalog/internal/models"
	"eventCatalog/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRSVPEventHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testTime := time.Date(2026, 12, 25, 18, 0, 0, 0, time.UTC)
	joinedEvent := models.Event{
		ID:                  1,
		Title:               "Tech Meetup",
		Description:         "Network with fellow developers.",
		Location:            "Brooklyn, New York",
		Date:                testTime,
		MaxParticipants:     50,
		CurrentParticipants: 16,
	}

	testCases := []struct {
		name           string
		eventID        string
		requestBody    string
		mockSetup      func(m *mocks.ParticipantsUpdater)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Join success",
			eventID:     "1",
			requestBody: `{"action": "join"}`,
			mockSetup: func(m *mocks.ParticipantsUpdater) {
				m.On("UpdateParticipants", 1, "join").Return(joinedEvent, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var response RSVPResponse
				err := json.Unmarshal([]byte(body), &response)
				require.NoError(t, err)

				assert.Equal(t, "OK", response.Status)
				assert.Equal(t, 16, response.Event.CurrentParticipants)
			},
		},
		{
			name:        "Leave success",
			eventID:     "1",
			requestBody: `{"action": "leave"}`,
			mockSetup: func(m *mocks.ParticipantsUpdater) {
				m.On("UpdateParticipants", 1, "leave").Return(joinedEvent, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"OK"`)
			},
		},
		{
			name:           "Invalid event id",
			eventID:        "abc",
			requestBody:    `{"action": "join"}`,
			mockSetup:      func(m *mocks.ParticipantsUpdater) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid event id format"}`,
		},
		{
			name:           "Invalid JSON",
			eventID:        "1",
			requestBody:    `invalid json`,
			mockSetup:      func(m *mocks.ParticipantsUpdater) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
		{
			name:           "Unknown action",
			eventID:        "1",
			requestBody:    `{"action": "maybe"}`,
			mockSetup:      func(m *mocks.ParticipantsUpdater) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"Action must be join or leave"}`,
		},
		{
			name:           "Missing action",
			eventID:        "1",
			requestBody:    `{}`,
			mockSetup:      func(m *mocks.ParticipantsUpdater) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"Action must be join or leave"}`,
		},
		{
			name:        "Event not found",
			eventID:     "42",
			requestBody: `{"action": "join"}`,
			mockSetup: func(m *mocks.ParticipantsUpdater) {
				m.On("UpdateParticipants", 42, "join").Return(models.Event{}, storage.ErrEventNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"event not found"}`,
		},
		{
			name:        "Event full",
			eventID:     "1",
			requestBody: `{"action": "join"}`,
			mockSetup: func(m *mocks.ParticipantsUpdater) {
				m.On("UpdateParticipants", 1, "join").Return(models.Event{}, storage.ErrEventFull)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"status":"Error","error":"event is full"}`,
		},
		{
			name:        "Storage error",
			eventID:     "1",
			requestBody: `{"action": "join"}`,
			mockSetup: func(m *mocks.ParticipantsUpdater) {
				m.On("UpdateParticipants", 1, "join").Return(models.Event{}, errors.New("connection timeout"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to update participants"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockUpdater := mocks.NewParticipantsUpdater(t)
			tc.mockSetup(mockUpdater)

			handler := New(logger, mockUpdater)

			router := chi.NewRouter()
			router.Post("/events/{id}/rsvp", handler)

			req, err := http.NewRequest(
				"POST",
				"/events/"+tc.eventID+"/rsvp",
				bytes.NewBufferString(tc.requestBody),
			)
			require.NoError(t, err)

			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}

func TestResponseOK(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest("POST", "/", nil)
	rr := httptest.NewRecorder()

	responseOK(rr, req, models.Event{ID: 3, CurrentParticipants: 2})

	assert.Equal(t, http.StatusOK, rr.Code)

	var actualResponse RSVPResponse
	err := json.Unmarshal(rr.Body.Bytes(), &actualResponse)
	require.NoError(t, err)

	assert.Equal(t, "OK", actualResponse.Status)
	assert.Equal(t, "", actualResponse.Error)
	assert.Equal(t, 3, actualResponse.Event.ID)
	assert.Equal(t, 2, actualResponse.Event.CurrentParticipants)
}
