package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

// sessionRepository is the SQL-backed implementation of [SessionRepository].
type sessionRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSessionRepository constructs a [SessionRepository] backed by the
// provided database connection and logger.
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts an active session for the given account. started_at is
// stamped by the schema default; ended_at starts NULL.
func (r *sessionRepository) Create(ctx context.Context, accountID int64, sourceAddress string) (models.Session, error) {
	log := logger.FromContext(ctx)

	var session models.Session
	var source sql.NullString
	row := r.db.QueryRowContext(ctx, createSession, accountID, nullableString(sourceAddress))
	if err := row.Scan(&session.SessionID, &session.AccountID, &session.StartedAt, &session.EndedAt, &source); err != nil {
		log.Err(err).Str("func", "sessionRepository.Create").Int64("account_id", accountID).Msg("error: inserting session failed")
		return models.Session{}, fmt.Errorf("unexpected DB error: %w", err)
	}
	session.SourceAddress = source.String

	return session, nil
}

// GetByID retrieves the session with the given identifier.
// Returns [ErrNotFound] when no row matches.
func (r *sessionRepository) GetByID(ctx context.Context, sessionID int64) (models.Session, error) {
	log := logger.FromContext(ctx)

	var session models.Session
	var source sql.NullString
	row := r.db.QueryRowContext(ctx, findSessionByID, sessionID)
	if err := row.Scan(&session.SessionID, &session.AccountID, &session.StartedAt, &session.EndedAt, &source); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Session{}, ErrNotFound
		}

		log.Err(err).Str("func", "sessionRepository.GetByID").Int64("session_id", sessionID).Msg("error: scanning session row")
		return models.Session{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	session.SourceAddress = source.String

	return session, nil
}

// Close stamps the session's end time. The UPDATE matches only rows whose
// ended_at is still NULL, so the end time is set exactly once: a second
// Close fails with [ErrSessionClosed] instead of overwriting it.
//
// Returns [ErrNotFound] when no session with the given id exists at all.
func (r *sessionRepository) Close(ctx context.Context, sessionID int64) (models.Session, error) {
	log := logger.FromContext(ctx)

	var session models.Session
	var source sql.NullString
	row := r.db.QueryRowContext(ctx, closeSession, sessionID)
	err := row.Scan(&session.SessionID, &session.AccountID, &session.StartedAt, &session.EndedAt, &source)
	if err == nil {
		session.SourceAddress = source.String
		return session, nil
	}

	if !errors.Is(err, sql.ErrNoRows) {
		log.Err(err).Str("func", "sessionRepository.Close").Int64("session_id", sessionID).Msg("error: closing session failed")
		return models.Session{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	// no active row matched: distinguish a missing session from one that
	// was already closed
	if _, getErr := r.GetByID(ctx, sessionID); getErr != nil {
		return models.Session{}, getErr
	}

	return models.Session{}, ErrSessionClosed
}

// nullableString converts an optional string into a driver-level NULL when
// empty, so the column stays NULL instead of holding "".
func nullableString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
