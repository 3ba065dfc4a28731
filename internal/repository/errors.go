// Package repository contains the Postgres data access layer. Each entity
// gets its own repository over a shared *sql.DB. Failures that handlers need
// to distinguish are surfaced as the sentinel errors below; everything else
// is returned raw and ends up as an internal error.
package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrNotFound is returned when a lookup or update matches no row.
var ErrNotFound = errors.New("record not found")

// ErrDuplicate is returned when an insert violates a unique constraint,
// e.g. a taken email or tech-stack name. Handlers translate it into a 409.
var ErrDuplicate = errors.New("duplicate record")

// isUniqueViolation reports whether err is a Postgres unique-constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
