package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ctforge/backend/auth"
	ctfhttp "github.com/ctforge/backend/http"
	"github.com/ctforge/backend/matchwin"
	"github.com/ctforge/backend/scoreboard"
	"github.com/ctforge/backend/scoring"
	"github.com/ctforge/backend/submsrvc"
	"github.com/ctforge/backend/tasksrvc"
	"github.com/ctforge/backend/user"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testJwtKey  = []byte("test-jwt-key")
	testFlagKey = []byte("test-hmac-key")
)

var testScoring = scoring.Config{Dynamic: true, MinPoints: 50, MaxPoints: 500}

type fixture struct {
	users   *user.InMemUserRepo
	tasks   *tasksrvc.InMemTaskRepo
	handler http.Handler
}

// openWindow is an active match that started an hour ago.
func openWindow() matchwin.Window {
	start := time.Now().Add(-time.Hour)
	end := time.Now().Add(time.Hour)
	return matchwin.Window{Start: &start, End: &end, TimerEnabled: true}
}

func futureWindow() matchwin.Window {
	start := time.Now().Add(time.Hour)
	end := time.Now().Add(2 * time.Hour)
	return matchwin.Window{Start: &start, End: &end, TimerEnabled: true}
}

func endedWindow() matchwin.Window {
	start := time.Now().Add(-2 * time.Hour)
	end := time.Now().Add(-time.Hour)
	return matchwin.Window{Start: &start, End: &end, TimerEnabled: true}
}

func setupServer(t *testing.T, window matchwin.Window) *fixture {
	t.Helper()

	users := user.NewInMemUserRepo()
	tasks := tasksrvc.NewInMemTaskRepo()
	snaps := scoreboard.NewInMemSnapshotRepo()

	board := scoreboard.NewScoreboard(users, tasks, snaps, nil, testScoring, window.Start)
	userSrvc := user.NewUserSrvc(users)
	taskSrvc := tasksrvc.NewTaskSrvc(tasks, testFlagKey, testScoring)
	submSrvc := submsrvc.NewSubmSrvc(tasks, board, testFlagKey)

	server := ctfhttp.NewHttpServer(userSrvc, taskSrvc, submSrvc, board, window, testJwtKey)

	return &fixture{
		users:   users,
		tasks:   tasks,
		handler: server.Handler(),
	}
}

// seedUser stores a user directly and returns a bearer token for them.
func (f *fixture) seedUser(t *testing.T, name string, isAdmin bool) (uuid.UUID, string) {
	t.Helper()
	id := uuid.New()
	err := f.users.Store(context.Background(), user.UserRow{
		UUID: id, Username: name, IsAdmin: isAdmin})
	require.NoError(t, err)

	token, err := auth.GenerateJWT(name, id, isAdmin, testJwtKey)
	require.NoError(t, err)
	return id, token
}

func (f *fixture) seedTask(t *testing.T, id string, basePoints float64, flag string) {
	t.Helper()
	err := f.tasks.Store(context.Background(), tasksrvc.Task{
		ID:         id,
		Name:       id,
		BasePoints: basePoints,
		FlagHmac:   tasksrvc.HashFlag(testFlagKey, flag),
	})
	require.NoError(t, err)
}

func (f *fixture) doJson(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(jsonBody)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	f.handler.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Status  string         `json:"status"`
	Data    map[string]any `json:"data"`
	ErrCode string         `json:"code"`
	ErrMsg  string         `json:"message"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var resp envelope
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err, "response body: %s", w.Body.String())
	return resp
}

func assertEnvelopeError(t *testing.T, w *httptest.ResponseRecorder, wantStatus int, wantCode string) {
	t.Helper()
	assert.Equal(t, wantStatus, w.Code, "response body: %s", w.Body.String())
	resp := decodeEnvelope(t, w)
	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, wantCode, resp.ErrCode)
}
