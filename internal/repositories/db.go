package repositories

import (
	"context"
	_ "embed"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
)

// DB is the subset of *pgxpool.Pool the repositories need.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

//go:embed schema.sql
var SchemaSQL string

// ApplySchema runs the embedded, idempotent schema.
func ApplySchema(ctx context.Context, db DB) error {
	_, err := db.Exec(ctx, SchemaSQL)
	return err
}
