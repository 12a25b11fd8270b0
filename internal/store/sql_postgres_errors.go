package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ConstraintKind is the result type returned by [ErrorClassifier.Classify].
// It indicates which schema constraint (if any) a failed write violated, so
// that repositories can map driver errors onto domain sentinels without
// knowing which backend is in use.
type ConstraintKind int

const (
	// KindOther covers every driver error that is not a recognised
	// constraint violation.
	KindOther ConstraintKind = iota

	// KindUniqueViolation indicates a UNIQUE constraint failure
	// (duplicate username or email on the accounts table).
	KindUniqueViolation

	// KindNotNullViolation indicates a NOT NULL constraint failure.
	KindNotNullViolation
)

// ErrorClassifier inspects a driver-level error and reports which
// constraint it violated. One implementation exists per backend.
type ErrorClassifier interface {
	Classify(err error) ConstraintKind
}

// PostgresErrorClassifier implements [ErrorClassifier] for PostgreSQL.
// It inspects the pgconn error code returned by the pgx driver.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassifier]. It attempts to unwrap err as a
// *pgconn.PgError and maps the PostgreSQL error code to a [ConstraintKind].
// If err is nil or is not a PostgreSQL driver error, [KindOther] is returned.
//
// See https://www.postgresql.org/docs/current/errcodes-appendix.html for the
// full list of PostgreSQL error codes.
func (c *PostgresErrorClassifier) Classify(err error) ConstraintKind {
	if err == nil {
		return KindOther
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return KindOther
	}

	switch pgErr.Code {
	case pgerrcode.UniqueViolation: // 23505
		return KindUniqueViolation
	case pgerrcode.NotNullViolation: // 23502
		return KindNotNullViolation
	}

	return KindOther
}
