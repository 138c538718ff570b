package testhelper

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/heartmarshall/seo-review-backend/migrations"
)

const (
	pgImage    = "postgres:17-alpine"
	pgUser     = "review"
	pgPassword = "review"
	pgDatabase = "review_test"
)

// shared is the one migrated container reused by every test in the process.
var shared struct {
	once sync.Once
	dsn  string
	err  error
}

// SetupTestDB returns a pool connected to a migrated Postgres running in a
// container. The container starts on first use and lives until the process
// exits; the pool is closed with the test.
func SetupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	shared.once.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		shared.dsn, shared.err = startPostgres(ctx)
		if shared.err == nil {
			shared.err = migrate(ctx, shared.dsn)
		}
	})
	if shared.err != nil {
		t.Fatalf("testhelper: postgres: %v", shared.err)
	}

	pool, err := pgxpool.New(t.Context(), shared.dsn)
	if err != nil {
		t.Fatalf("testhelper: pool: %v", err)
	}
	t.Cleanup(pool.Close)
	return pool
}

// ResetMetadata removes every seo_metadata row. Tests asserting on
// collection-wide counts call it first.
func ResetMetadata(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	if _, err := pool.Exec(t.Context(), `TRUNCATE seo_metadata`); err != nil {
		t.Fatalf("testhelper: truncate seo_metadata: %v", err)
	}
}

func startPostgres(ctx context.Context) (string, error) {
	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        pgImage,
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     pgUser,
				"POSTGRES_PASSWORD": pgPassword,
				"POSTGRES_DB":       pgDatabase,
			},
			// The entrypoint restarts postgres once after init.
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		},
		Started: true,
	})
	if err != nil {
		return "", fmt.Errorf("start container: %w", err)
	}

	endpoint, err := c.PortEndpoint(ctx, "5432/tcp", "")
	if err != nil {
		return "", fmt.Errorf("container endpoint: %w", err)
	}
	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=disable", pgUser, pgPassword, endpoint, pgDatabase), nil
}

func migrate(ctx context.Context, dsn string) error {
	provider, db, err := migrations.Open(ctx, dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}
