package api_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/wodmeet/wodmeet/internal/api"
	"github.com/wodmeet/wodmeet/internal/api/middleware"
)

type testServer struct {
	handler     http.Handler
	users       *MockUserService
	events      *MockEventService
	workouts    *MockWorkoutService
	competitors *MockCompetitorService
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ts := &testServer{
		users:       &MockUserService{},
		events:      &MockEventService{},
		workouts:    &MockWorkoutService{},
		competitors: &MockCompetitorService{},
	}
	t.Cleanup(func() {
		ts.users.AssertExpectations(t)
		ts.events.AssertExpectations(t)
		ts.workouts.AssertExpectations(t)
		ts.competitors.AssertExpectations(t)
	})

	ts.handler = api.NewRouter(api.Handlers{
		Users:       api.NewUserHandler(ts.users, logger),
		Events:      api.NewEventHandler(ts.events, logger),
		Workouts:    api.NewWorkoutHandler(ts.workouts, logger),
		Competitors: api.NewCompetitorHandler(ts.competitors, logger),
	}, logger)
	return ts
}

// do sends a request with an optional JSON body and acting user.
func (ts *testServer) do(method, path, body string, actor uuid.UUID) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if actor != uuid.Nil {
		req.Header.Set(middleware.ActorHeader, actor.String())
	}
	w := httptest.NewRecorder()
	ts.handler.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error string `json:"error"`
	}
	decodeBody(t, w, &body)
	return body.Error
}
