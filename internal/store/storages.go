package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

// Storages aggregates every repository of the vault behind one explicitly
// injected database handle. The handle is opened once at process start via
// [NewStorages] and released via [Storages.Close] at process end; no
// repository owns a connection of its own.
type Storages struct {
	Accounts    AccountRepository
	Sessions    SessionRepository
	Credentials CredentialRepository
	Tags        TagRepository
	TagLinks    TagLinkRepository

	// GeneratedPasswords is the optional side-channel file log; nil when
	// the config does not set a path for it.
	GeneratedPasswords *GeneratedPasswordLog

	db *DB
}

// NewStorages opens the configured database backend, applies pending
// migrations (create-if-absent, never destructive), and wires every
// repository to the shared handle.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	var db *DB
	var err error

	switch cfg.DB.Driver {
	case "sqlite3":
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	case "pgx":
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	default:
		return nil, fmt.Errorf("unsupported database driver: %q", cfg.DB.Driver)
	}
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, err
	}

	storages := &Storages{
		Accounts:    NewAccountRepository(db, log),
		Sessions:    NewSessionRepository(db, log),
		Credentials: NewCredentialRepository(db, log),
		Tags:        NewTagRepository(db, log),
		TagLinks:    NewTagLinkRepository(db, log),
		db:          db,
	}

	if cfg.Files.GeneratedPasswordsPath != "" {
		genLog, err := NewGeneratedPasswordLog(cfg.Files.GeneratedPasswordsPath, log)
		if err != nil {
			db.Close()
			return nil, err
		}
		storages.GeneratedPasswords = genLog
	}

	return storages, nil
}

// Close releases the database handle and the side-channel file, if open.
func (s *Storages) Close() error {
	var errs error
	if s.GeneratedPasswords != nil {
		errs = errors.Join(errs, s.GeneratedPasswords.Close())
	}
	if s.db != nil {
		errs = errors.Join(errs, s.db.Close())
	}
	return errs
}
