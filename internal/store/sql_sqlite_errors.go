package store

import (
	"errors"

	sqlite3 "github.com/mattn/go-sqlite3"
)

// SQLiteErrorClassifier implements [ErrorClassifier] for the embedded
// sqlite3 backend. It inspects the extended result code carried by
// sqlite3.Error.
type SQLiteErrorClassifier struct{}

// NewSQLiteErrorClassifier constructs a [SQLiteErrorClassifier] ready for use.
func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify implements [ErrorClassifier]. If err is nil or not a sqlite3
// driver error, [KindOther] is returned.
func (c *SQLiteErrorClassifier) Classify(err error) ConstraintKind {
	if err == nil {
		return KindOther
	}

	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return KindOther
	}

	switch sqliteErr.ExtendedCode {
	case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
		return KindUniqueViolation
	case sqlite3.ErrConstraintNotNull:
		return KindNotNullViolation
	}

	return KindOther
}
