package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/models"
)

type sessionService struct {
	sessionRepository store.SessionRepository
	accountRepository store.AccountRepository

	logger *logger.Logger
}

func NewSessionService(sessionRepository store.SessionRepository, accountRepository store.AccountRepository, logger *logger.Logger) SessionService {
	return &sessionService{
		sessionRepository: sessionRepository,
		accountRepository: accountRepository,
		logger:            logger,
	}
}

// Open starts a new session for the given account. The account must exist;
// sessions for unknown accounts would be unreachable garbage.
//
// Returns ErrInvalidReference when the account does not exist.
func (s *sessionService) Open(ctx context.Context, accountID int64, sourceAddress string) (models.Session, error) {
	log := logger.FromContext(ctx)

	if _, err := s.accountRepository.GetByID(ctx, accountID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Session{}, fmt.Errorf("%w: account %d", ErrInvalidReference, accountID)
		}
		log.Err(err).Int64("account_id", accountID).Msg("account lookup before opening session failed")
		return models.Session{}, fmt.Errorf("account lookup failed: %w", err)
	}

	session, err := s.sessionRepository.Create(ctx, accountID, sourceAddress)
	if err != nil {
		log.Err(err).Int64("account_id", accountID).Msg("opening session ended with error")
		return models.Session{}, fmt.Errorf("opening session ended with error: %w", err)
	}

	return session, nil
}

// GetByID retrieves the session with the given identifier.
// Returns (nil, nil) when no such session exists.
func (s *sessionService) GetByID(ctx context.Context, sessionID int64) (*models.Session, error) {
	session, err := s.sessionRepository.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("session search by id failed: %w", err)
	}

	return &session, nil
}

// Close stamps the session's end time. The end time is set exactly once:
// closing an already-closed session fails with [store.ErrSessionClosed] and
// leaves the original end time untouched.
//
// Returns [store.ErrNotFound] when no such session exists.
func (s *sessionService) Close(ctx context.Context, sessionID int64) (models.Session, error) {
	log := logger.FromContext(ctx)

	session, err := s.sessionRepository.Close(ctx, sessionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) || errors.Is(err, store.ErrSessionClosed) {
			return models.Session{}, err
		}
		log.Err(err).Int64("session_id", sessionID).Msg("closing session ended with error")
		return models.Session{}, fmt.Errorf("closing session ended with error: %w", err)
	}

	return session, nil
}
