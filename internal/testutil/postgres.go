package testutil

import (
	"context"
	"database/sql"
	"io"
	"log"
	"testing"
	"time"

	_ "github.com/lib/pq"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/webshop/order-history-service/internal/db"
)

const (
	dbUser     = "orders_user"
	dbPassword = "orders_pass"
	dbName     = "orders"
)

// StartPostgres launches a temporary Postgres container, applies the
// migrations, and returns a database handle plus a cleanup function.
func StartPostgres(ctx context.Context, t *testing.T) (*sql.DB, func()) {
	t.Helper()

	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase(dbName),
		tcpostgres.WithUsername(dbUser),
		tcpostgres.WithPassword(dbPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("start postgres container: %v", err)
	}

	stopContainer := func() {
		_ = container.Terminate(context.Background())
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		stopContainer()
		t.Fatalf("container connection string: %v", err)
	}

	if err := db.RunMigrations(dsn, log.New(io.Discard, "", 0)); err != nil {
		stopContainer()
		t.Fatalf("run migrations: %v", err)
	}

	conn, err := sql.Open("postgres", dsn)
	if err != nil {
		stopContainer()
		t.Fatalf("open db: %v", err)
	}
	if err := conn.PingContext(ctx); err != nil {
		stopContainer()
		t.Fatalf("ping db: %v", err)
	}

	cleanup := func() {
		_ = conn.Close()
		stopContainer()
	}

	return conn, cleanup
}
