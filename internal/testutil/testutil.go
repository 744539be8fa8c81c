// Package testutil provides helpers for integration tests.
package testutil

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
)

// RequireEnv returns an environment variable or skips the test if missing.
func RequireEnv(t testing.TB, key string) string {
	t.Helper()
	value := os.Getenv(key)
	if value == "" {
		t.Skipf("%s not set", key)
	}
	return value
}

// ProjectRoot locates the repository root from this source file.
func ProjectRoot() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "..")
}

// MigrationsDir returns the absolute path of the migrations directory.
func MigrationsDir() string {
	return filepath.Join(ProjectRoot(), "migrations")
}

// NewTestPool connects to the test database or skips the test.
// The pool is closed during test cleanup.
func NewTestPool(t testing.TB) *pgxpool.Pool {
	t.Helper()

	databaseURL := RequireEnv(t, "DATABASE_URL")

	pool, err := pgxpool.New(context.Background(), databaseURL)
	if err != nil {
		t.Fatalf("failed to create pool: %v", err)
	}
	t.Cleanup(pool.Close)

	if err := pool.Ping(context.Background()); err != nil {
		t.Skipf("database not reachable: %v", err)
	}

	return pool
}
