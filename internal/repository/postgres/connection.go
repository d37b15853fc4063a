package postgres

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/horadelbocadillo/yotetraduzco-clean/internal/repository/postgres/migrations"
)

// Connection wraps the database handle shared by the repositories.
type Connection struct {
	*sql.DB
}

// NewConnection opens a Postgres connection pool through the pgx stdlib
// driver and applies the embedded migrations.
func NewConnection(ctx context.Context, dsn string) (*Connection, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := runMigrations(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &Connection{DB: db}, nil
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}

// Close releases the underlying pool.
func (c *Connection) Close() error {
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}

// Ping verifies the database is reachable.
func (c *Connection) Ping(ctx context.Context) error {
	if c.DB == nil {
		return fmt.Errorf("database handle is nil")
	}
	return c.DB.PingContext(ctx)
}
