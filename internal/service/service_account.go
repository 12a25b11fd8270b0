package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

// accountService is the concrete implementation of AccountService.
// It handles account registration, credential verification, and account
// record maintenance using an AccountRepository for persistence and
// HMAC-SHA256 for credential hashing.
type accountService struct {
	// accountRepository is the data-access layer used to create and look up
	// accounts.
	accountRepository store.AccountRepository

	// sessionRepository opens a login session after a successful
	// credential check.
	sessionRepository store.SessionRepository

	// hashKey is the HMAC secret used when hashing account credentials
	// before storage or comparison. Must match the value used at
	// registration time.
	hashKey string

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAccountService constructs a new AccountService wired to the given
// repositories and populated with the credential hash key from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAccountService(accountRepository store.AccountRepository, sessionRepository store.SessionRepository, cfg config.App, logger *logger.Logger) AccountService {
	return &accountService{
		accountRepository: accountRepository,
		sessionRepository: sessionRepository,
		hashKey:           cfg.CredentialHashKey,
		logger:            logger,
	}
}

// Register creates a new vault owner account.
//
// It validates that Username, Email, and CredentialHash (carrying the
// plain credential at this point) are all non-empty, hashes the credential
// with the configured HMAC key, and delegates persistence to the
// AccountRepository. An empty Role defaults to "user".
//
// Returns the persisted account (with a database-assigned AccountID) or:
//   - ErrInvalidDataProvided if Username, Email, or the credential is empty.
//   - A wrapped [store.ErrDuplicateKey] if the username or email is taken.
func (a *accountService) Register(ctx context.Context, account models.Account) (models.Account, error) {
	log := logger.FromContext(ctx)

	if account.Username == "" || account.Email == "" || account.CredentialHash == "" {
		log.Error().Str("username", account.Username).Str("email", account.Email).Msg("invalid account data provided")
		return models.Account{}, ErrInvalidDataProvided
	}

	a.hashCredential(&account)
	if account.Role == "" {
		account.Role = "user"
	}

	registered, err := a.accountRepository.Create(ctx, account)
	if err != nil {
		log.Err(err).Str("username", account.Username).Str("email", account.Email).Msg("account creation ended with error")
		return models.Account{}, fmt.Errorf("account creation ended with error: %w", err)
	}

	return registered, nil
}

// Authenticate verifies an account's credential and opens a login session.
//
// It hashes the supplied credential, looks the account up by email, and
// compares hashes. A wrong credential and an unknown email both yield
// (nil, nil): the caller learns nothing about which half was wrong.
//
// Returns the opened session on success, (nil, nil) on any mismatch, or:
//   - ErrInvalidDataProvided if email or credential is empty.
//   - A wrapped storage error if a repository call fails unexpectedly.
func (a *accountService) Authenticate(ctx context.Context, email, credential, sourceAddress string) (*models.Session, error) {
	log := logger.FromContext(ctx)

	if email == "" || credential == "" {
		log.Error().Str("email", email).Msg("invalid authentication data provided")
		return nil, ErrInvalidDataProvided
	}

	account, err := a.accountRepository.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		log.Err(err).Str("email", email).Msg("account search by email failed")
		return nil, fmt.Errorf("account search by email failed: %w", err)
	}

	if account.CredentialHash != utils.HashString(credential, a.hashKey) {
		log.Warn().Int64("account_id", account.AccountID).Str("email", email).Msg("credential mismatch")
		return nil, nil
	}

	session, err := a.sessionRepository.Create(ctx, account.AccountID, sourceAddress)
	if err != nil {
		log.Err(err).Int64("account_id", account.AccountID).Msg("opening session after authentication failed")
		return nil, fmt.Errorf("opening session failed: %w", err)
	}

	return &session, nil
}

// GetByID retrieves the account with the given identifier.
// Returns (nil, nil) when no such account exists.
func (a *accountService) GetByID(ctx context.Context, accountID int64) (*models.Account, error) {
	account, err := a.accountRepository.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("account search by id failed: %w", err)
	}

	return &account, nil
}

// GetByEmail retrieves the account registered under the given email.
// Returns (nil, nil) when no such account exists.
func (a *accountService) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	account, err := a.accountRepository.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("account search by email failed: %w", err)
	}

	return &account, nil
}

// Update applies the non-nil fields of update to the targeted account.
// A CredentialHash field carries a plain credential and is hashed before
// being passed down.
//
// Returns (nil, nil) when no such account exists, or:
//   - ErrInvalidDataProvided if no field is set.
//   - A wrapped [store.ErrDuplicateKey] if the new username or email is taken.
func (a *accountService) Update(ctx context.Context, update models.AccountUpdate) (*models.Account, error) {
	log := logger.FromContext(ctx)

	if update.Username == nil && update.Email == nil && update.CredentialHash == nil && update.Role == nil {
		return nil, ErrInvalidDataProvided
	}

	if update.CredentialHash != nil {
		hashed := utils.HashString(*update.CredentialHash, a.hashKey)
		update.CredentialHash = &hashed
	}

	account, err := a.accountRepository.Update(ctx, update)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		log.Err(err).Int64("account_id", update.AccountID).Msg("account update ended with error")
		return nil, fmt.Errorf("account update ended with error: %w", err)
	}

	return &account, nil
}

// Delete removes the account and returns the removed snapshot. Sessions,
// credentials, and tag links owned by the account are left in place.
// Returns (nil, nil) when no such account exists.
func (a *accountService) Delete(ctx context.Context, accountID int64) (*models.Account, error) {
	log := logger.FromContext(ctx)

	account, err := a.accountRepository.Delete(ctx, accountID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		log.Err(err).Int64("account_id", accountID).Msg("account deletion ended with error")
		return nil, fmt.Errorf("account deletion ended with error: %w", err)
	}

	return &account, nil
}

// hashCredential replaces the plain-text credential in account with its
// HMAC-SHA256 hash computed using the service's hashKey.
// The mutation is applied in-place via a pointer receiver.
func (a *accountService) hashCredential(account *models.Account) {
	account.CredentialHash = utils.HashString(account.CredentialHash, a.hashKey)
}
