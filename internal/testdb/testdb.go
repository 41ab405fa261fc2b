package testdb

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/wodmeet/wodmeet/internal/ciutil"
	"github.com/wodmeet/wodmeet/internal/platform/postgres"
	"github.com/wodmeet/wodmeet/internal/redact"
)

// Variables holding the test database DSN, in order of preference.
const (
	EnvDatabaseURL         = "WODMEET_TEST_DATABASE_URL"
	EnvDatabaseURLFallback = "DATABASE_URL"
)

// Timeout bounds setup operations against the test database.
const Timeout = 10 * time.Second

// DatabaseURL returns the test database DSN, or "" when none is configured.
func DatabaseURL() string {
	return ciutil.GetEnvWithFallbacks(
		[]string{EnvDatabaseURL, EnvDatabaseURLFallback}, "", slog.Default())
}

// Open connects to the test database and migrates it to the latest schema.
// Without a DSN the test is skipped locally and fails under CI. The pool is
// closed when the test finishes.
func Open(t *testing.T) *sql.DB {
	t.Helper()

	dsn := DatabaseURL()
	if dsn == "" {
		if ciutil.IsCI() {
			t.Fatalf("%s must be set in CI", EnvDatabaseURL)
		}
		t.Skipf("%s not set, skipping integration test", EnvDatabaseURL)
	}

	db, err := sql.Open("pgx", dsn)
	require.NoError(t, err, "failed to open test database")
	t.Cleanup(func() { _ = db.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), Timeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		t.Fatalf("test database unreachable: %s", redact.Error(err))
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	require.NoError(t, postgres.Migrate(ctx, db, "up", logger), "failed to migrate test database")

	return db
}

// WithTx runs fn inside a transaction that is always rolled back, so tests
// can share one database without seeing each other's rows.
func WithTx(t *testing.T, db *sql.DB, fn func(t *testing.T, tx *sql.Tx)) {
	t.Helper()

	tx, err := db.BeginTx(context.Background(), nil)
	require.NoError(t, err, "failed to begin transaction")

	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			t.Errorf("failed to roll back test transaction: %v", err)
		}
	}()

	fn(t, tx)
}
