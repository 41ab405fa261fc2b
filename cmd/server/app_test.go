package main

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wodmeet/wodmeet/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Server:   config.ServerConfig{Port: 0, LogLevel: "error"},
		Database: config.DatabaseConfig{URL: "postgres://localhost/wodmeet", MaxOpenConns: 2},
		Auth:     config.AuthConfig{BcryptCost: 10, HashConcurrency: 1},
	}
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewApplication(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	app, err := newApplication(testConfig(), quietLogger(), db)
	require.NoError(t, err)

	assert.NotNil(t, app.userService)
	assert.NotNil(t, app.eventService)
	assert.NotNil(t, app.workoutService)
	assert.NotNil(t, app.competitorService)
	assert.NotNil(t, app.hashGate)

	w := httptest.NewRecorder()
	app.setupRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStartHTTPServer_ShutsDownOnCancel(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.ExpectClose()

	app, err := newApplication(testConfig(), quietLogger(), db)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(shutdownTimeout):
		t.Fatal("server did not shut down")
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetupAppDatabase_NoURL(t *testing.T) {
	cfg := testConfig()
	cfg.Database.URL = ""

	_, err := setupAppDatabase(context.Background(), cfg, quietLogger())

	assert.ErrorIs(t, err, errNoDatabaseURL)
}
