// Package testutil provides shared helpers for integration tests.
package testutil

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/movieshelf/movieshelf/internal/model"
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

const advisoryLockID int64 = 730730

// AcquireDBLock grabs a global advisory lock to serialize DB tests.
func AcquireDBLock(ctx context.Context, pool *pgxpool.Pool) (func() error, error) {
	conn, err := pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire connection: %w", err)
	}

	if _, err := conn.Exec(ctx, "SELECT pg_advisory_lock($1)", advisoryLockID); err != nil {
		conn.Release()
		return nil, fmt.Errorf("acquire advisory lock: %w", err)
	}

	unlock := func() error {
		defer conn.Release()
		if _, err := conn.Exec(ctx, "SELECT pg_advisory_unlock($1)", advisoryLockID); err != nil {
			return fmt.Errorf("release advisory lock: %w", err)
		}
		return nil
	}

	return unlock, nil
}

// migrationPairs lists migrations in apply order. Down migrations are run
// in reverse before the up migrations are reapplied.
var migrationPairs = []string{
	"000001_users",
	"000002_movies",
	"000003_categories",
}

// ResetSchema drops and recreates the full schema for tests.
func ResetSchema(ctx context.Context, pool *pgxpool.Pool) error {
	root, err := ProjectRoot()
	if err != nil {
		return err
	}

	for i := len(migrationPairs) - 1; i >= 0; i-- {
		if err := applySQLFile(ctx, pool, filepath.Join(root, "migrations", migrationPairs[i]+".down.sql")); err != nil {
			return err
		}
	}
	for _, name := range migrationPairs {
		if err := applySQLFile(ctx, pool, filepath.Join(root, "migrations", name+".up.sql")); err != nil {
			return err
		}
	}

	return nil
}

func applySQLFile(ctx context.Context, pool *pgxpool.Pool, path string) error {
	sql, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read migration %s: %w", filepath.Base(path), err)
	}
	if _, err := pool.Exec(ctx, string(sql)); err != nil {
		return fmt.Errorf("apply migration %s: %w", filepath.Base(path), err)
	}
	return nil
}

// ProjectRoot returns the project root directory.
func ProjectRoot() (string, error) {
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		return "", fmt.Errorf("failed to resolve testutil path")
	}
	root := filepath.Clean(filepath.Join(filepath.Dir(filename), "..", ".."))
	return root, nil
}

// ============================================================================
// Test Data Factories
// ============================================================================

// NewTestUser creates a test user with sensible defaults.
// The password hash is a throwaway value, not a real argon2 hash.
func NewTestUser(t testing.TB, login string) *model.User {
	t.Helper()
	now := time.Now().UTC()
	name := "Test " + login
	return &model.User{
		Name:         &name,
		Login:        login,
		PasswordHash: "$argon2id$test$" + login,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// NewTestMovie creates a test movie owned by userID.
func NewTestMovie(t testing.TB, userID int64, title string) *model.Movie {
	t.Helper()
	now := time.Now().UTC()
	year := "2020"
	imdbID := "tt" + fmt.Sprintf("%07d", len(title))
	return &model.Movie{
		UserID:    userID,
		Title:     title,
		Year:      &year,
		ImdbID:    &imdbID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
