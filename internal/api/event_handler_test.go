package api_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wodmeet/wodmeet/internal/domain"
	"github.com/wodmeet/wodmeet/internal/service"
	"github.com/wodmeet/wodmeet/internal/store"
)

func newTestEvent(t *testing.T, owner uuid.UUID) *domain.Event {
	t.Helper()
	event, err := domain.NewEvent(owner, "Spring Cup", "")
	require.NoError(t, err)
	return event
}

func TestEventHandler_CreateEvent(t *testing.T) {
	ts := newTestServer(t)
	owner := uuid.New()
	event := newTestEvent(t, owner)
	ts.events.On("CreateEvent", mock.Anything, owner, "Spring Cup", "").Return(event, nil)

	w := ts.do(http.MethodPost, "/api/events", `{"name":"Spring Cup"}`, owner)

	require.Equal(t, http.StatusCreated, w.Code)
	var snapshot domain.EventSnapshot
	decodeBody(t, w, &snapshot)
	assert.Equal(t, event.Ident, snapshot.Ident)
	assert.Equal(t, domain.DefaultEventDescription, snapshot.Description)
	assert.Equal(t, []uuid.UUID{}, snapshot.Workouts)
	require.NotNil(t, snapshot.UserID)
	assert.Equal(t, owner, *snapshot.UserID)
}

func TestEventHandler_CreateEvent_NameTooLong(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(http.MethodPost, "/api/events", `{"name":"a very long event name that exceeds the limit"}`, uuid.Nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid Name: too long", errorMessage(t, w))
}

func TestEventHandler_ListEvents(t *testing.T) {
	ts := newTestServer(t)
	actor, other := uuid.New(), uuid.New()
	ts.events.On("ListEvents", mock.Anything, actor).Return([]*domain.Event{newTestEvent(t, actor)}, nil)
	ts.events.On("ListEvents", mock.Anything, other).Return([]*domain.Event{}, nil)

	w := ts.do(http.MethodGet, "/api/events", "", actor)
	require.Equal(t, http.StatusOK, w.Code)
	var mine []domain.EventSnapshot
	decodeBody(t, w, &mine)
	assert.Len(t, mine, 1)

	w = ts.do(http.MethodGet, "/api/events?user_id="+other.String(), "", actor)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = ts.do(http.MethodGet, "/api/events?user_id=nope", "", actor)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEventHandler_GetEvent(t *testing.T) {
	ts := newTestServer(t)
	event := newTestEvent(t, uuid.Nil)
	ts.events.On("GetEvent", mock.Anything, event.Ident).Return(event, nil)
	ts.events.On("GetEvent", mock.Anything, "abcdef").Return(nil, store.ErrEventNotFound)

	w := ts.do(http.MethodGet, "/api/events/"+event.Ident, "", uuid.Nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = ts.do(http.MethodGet, "/api/events/abcdef", "", uuid.Nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Event not found", errorMessage(t, w))

	w = ts.do(http.MethodGet, "/api/events/ABCDEFG", "", uuid.Nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEventHandler_CloseEvent_NotOwner(t *testing.T) {
	ts := newTestServer(t)
	actor := uuid.New()
	ts.events.On("CloseEvent", mock.Anything, actor, "a1b2c3").Return(nil, service.ErrNotOwned)

	w := ts.do(http.MethodPost, "/api/events/a1b2c3/close", "", actor)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestEventHandler_AssignWorkouts(t *testing.T) {
	ts := newTestServer(t)
	actor := uuid.New()
	event := newTestEvent(t, actor)
	first, second := uuid.New(), uuid.New()
	event.Workouts = domain.WorkoutList{first, second}
	ts.events.On("AssignWorkouts", mock.Anything, actor, event.Ident, []uuid.UUID{first, second}).Return(event, nil)

	body := `{"workouts":["` + first.String() + `","` + second.String() + `"]}`
	w := ts.do(http.MethodPut, "/api/events/"+event.Ident+"/workouts", body, actor)

	require.Equal(t, http.StatusOK, w.Code)
	var snapshot domain.EventSnapshot
	decodeBody(t, w, &snapshot)
	assert.Equal(t, []uuid.UUID{first, second}, snapshot.Workouts)
}

func TestEventHandler_AssignWorkouts_NilID(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(http.MethodPut, "/api/events/a1b2c3/workouts",
		`{"workouts":["00000000-0000-0000-0000-000000000000"]}`, uuid.New())

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEventHandler_SequenceNamedIdent(t *testing.T) {
	ts := newTestServer(t)
	actor := uuid.New()
	event := newTestEvent(t, actor)
	ident := event.Ident

	ts.events.On("SetSequence", mock.Anything, actor, ident, "1,2,3").Return(event, nil)
	ts.events.On("IncrementNamed", mock.Anything, ident).Return(event, nil)
	ts.events.On("RegenerateIdent", mock.Anything, actor, ident).Return(event, nil)

	assert.Equal(t, http.StatusOK, ts.do(http.MethodPut, "/api/events/"+ident+"/sequence", `{"sequence":"1,2,3"}`, actor).Code)
	assert.Equal(t, http.StatusOK, ts.do(http.MethodPost, "/api/events/"+ident+"/named", "", uuid.Nil).Code)
	assert.Equal(t, http.StatusOK, ts.do(http.MethodPost, "/api/events/"+ident+"/ident", "", actor).Code)
}
