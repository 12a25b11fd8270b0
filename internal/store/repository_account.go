package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

// accountRepository is the SQL-backed implementation of [AccountRepository].
// It handles account creation, lookup, partial update, and deletion against
// the "accounts" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, operation-level tracing of database interactions.
type accountRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAccountRepository constructs an [AccountRepository] backed by the
// provided database connection and logger.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	logger.Debug().Msg("creating account repository")
	return &accountRepository{
		db:     db,
		logger: logger,
	}
}

// Create persists a new account record and returns the fully populated
// [models.Account] with server-assigned fields (AccountID, CreatedAt).
//
// The INSERT uses the [createAccount] query which returns all columns via a
// RETURNING clause, so the caller receives the canonical database
// representation of the newly created account.
//
// Error handling:
//   - unique-constraint violation (duplicate username or email) →
//     [ErrDuplicateKey]; the failed insert leaves the store unchanged.
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *accountRepository) Create(ctx context.Context, account models.Account) (models.Account, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createAccount, account.Username, account.Email, account.CredentialHash, account.Role)

	if err := row.Scan(&account.AccountID, &account.Username, &account.Email, &account.CredentialHash, &account.Role, &account.CreatedAt); err != nil {
		if r.db.classify(err) == KindUniqueViolation {
			log.Debug().Str("func", "accountRepository.Create").Str("username", account.Username).Msg("duplicate username or email")
			return models.Account{}, ErrDuplicateKey
		}

		log.Err(err).Str("func", "accountRepository.Create").Msg("error: inserting account failed")
		return models.Account{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return account, nil
}

// GetByID retrieves the account with the given identifier.
// Returns [ErrNotFound] when no row matches.
func (r *accountRepository) GetByID(ctx context.Context, accountID int64) (models.Account, error) {
	return r.findOne(ctx, findAccountByID, accountID)
}

// GetByEmail retrieves the account with the given email.
// Returns [ErrNotFound] when no row matches.
func (r *accountRepository) GetByEmail(ctx context.Context, email string) (models.Account, error) {
	return r.findOne(ctx, findAccountByEmail, email)
}

// Update applies the non-nil fields of update to the targeted account and
// returns the post-update row.
//
// Error handling:
//   - no field set in update → [ErrBuildingSQLQuery].
//   - no row with the given id → [ErrNotFound].
//   - new username/email collides with another account → [ErrDuplicateKey].
func (r *accountRepository) Update(ctx context.Context, update models.AccountUpdate) (models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildAccountUpdateQuery(update)
	if err != nil {
		log.Err(err).Str("func", "accountRepository.Update").Int64("account_id", update.AccountID).Msg("failed to build update query")
		return models.Account{}, err
	}

	var account models.Account
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&account.AccountID, &account.Username, &account.Email, &account.CredentialHash, &account.Role, &account.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Account{}, ErrNotFound
		}
		if r.db.classify(err) == KindUniqueViolation {
			return models.Account{}, ErrDuplicateKey
		}

		log.Err(err).Str("func", "accountRepository.Update").Int64("account_id", update.AccountID).Msg("error: updating account failed")
		return models.Account{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return account, nil
}

// Delete removes the account row and returns the removed snapshot.
// Dependent sessions, credentials, and tag links are left in place: the
// accounts relation uses the allow-orphan policy.
//
// Returns [ErrNotFound] when no row matches.
func (r *accountRepository) Delete(ctx context.Context, accountID int64) (models.Account, error) {
	log := logger.FromContext(ctx)

	var account models.Account
	row := r.db.QueryRowContext(ctx, deleteAccount, accountID)
	if err := row.Scan(&account.AccountID, &account.Username, &account.Email, &account.CredentialHash, &account.Role, &account.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Account{}, ErrNotFound
		}

		log.Err(err).Str("func", "accountRepository.Delete").Int64("account_id", accountID).Msg("error: deleting account failed")
		return models.Account{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return account, nil
}

func (r *accountRepository) findOne(ctx context.Context, query string, arg any) (models.Account, error) {
	log := logger.FromContext(ctx)

	var account models.Account
	row := r.db.QueryRowContext(ctx, query, arg)
	if err := row.Scan(&account.AccountID, &account.Username, &account.Email, &account.CredentialHash, &account.Role, &account.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Account{}, ErrNotFound
		}

		log.Err(err).Str("func", "accountRepository.findOne").Msg("error: scanning account row")
		return models.Account{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return account, nil
}
