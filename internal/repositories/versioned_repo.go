package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"

	"github.com/WeplTechnology/goldeVisa-demo-sub001/internal/utils"
)

// maxUpdateAttempts bounds the read-mutate-write loop for row_version tables.
const maxUpdateAttempts = 3

// VersionedEntity is a row guarded by a row_version column. Implementations
// are pointer types, so the zero value is nil.
type VersionedEntity interface {
	comparable
	GetID() string
	GetRowVersion() int64
	SetRowVersion(int64)
}

type updateIfVersionFunc[T VersionedEntity] func(ctx context.Context, entity T, expected int64) (pgconn.CommandTag, error)

// versionedRepo gives a concrete repository a by-id loader and the
// optimistic update loop.
type versionedRepo[T VersionedEntity] struct {
	db         DB
	table      string
	selectByID string
	scan       func(row pgx.Row) (T, error)
}

func newVersionedRepo[T VersionedEntity](db DB, table, selectByID string, scan func(pgx.Row) (T, error)) *versionedRepo[T] {
	return &versionedRepo[T]{db: db, table: table, selectByID: selectByID, scan: scan}
}

func (b *versionedRepo[T]) load(ctx context.Context, id string) (T, error) {
	return b.scan(b.db.QueryRow(ctx, b.selectByID, id))
}

// updateWithRetry loads the row, applies mutate and writes it back only if
// row_version is unchanged. A missing row yields pgx.ErrNoRows; running out
// of attempts yields ErrRowVersionConflict.
func (b *versionedRepo[T]) updateWithRetry(
	ctx context.Context,
	id string,
	mutate func(T) error,
	write updateIfVersionFunc[T],
) error {
	var zero T
	for attempt := 1; attempt <= maxUpdateAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		current, err := b.load(ctx, id)
		if err != nil {
			return err
		}
		if current == zero {
			return pgx.ErrNoRows
		}

		seen := current.GetRowVersion()
		if err := mutate(current); err != nil {
			return err
		}

		tag, err := write(ctx, current, seen)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 1 {
			current.SetRowVersion(seen + 1)
			return nil
		}
		utils.Logger.WithField("table", b.table).Debugf("row_version moved under %s, attempt %d/%d", id, attempt, maxUpdateAttempts)
	}
	return fmt.Errorf("%w: %s %s changed %d times during update", utils.ErrRowVersionConflict, b.table, id, maxUpdateAttempts)
}
