package store

import (
	"database/sql"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/migrations"
)

type DB struct {
	*sql.DB
	driver          string
	errorClassifier ErrorClassifier
	logger          *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// classify maps a driver-level error onto a [ConstraintKind] using the
// backend-specific classifier. A DB constructed without a classifier (tests)
// reports every error as KindOther.
func (db *DB) classify(err error) ConstraintKind {
	if db.errorClassifier == nil {
		return KindOther
	}
	return db.errorClassifier.Classify(err)
}
