package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

// credentialRepository is the SQL-backed implementation of
// [CredentialRepository]. It executes all stored-credential CRUD operations
// against the "credentials" table.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced with
// structured fields (account_id, credential_id, etc.).
type credentialRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCredentialRepository constructs a [CredentialRepository] backed by the
// provided database connection and logger.
func NewCredentialRepository(db *DB, logger *logger.Logger) CredentialRepository {
	logger.Debug().Msg("creating credential repository")
	return &credentialRepository{
		db:     db,
		logger: logger,
	}
}

// Create persists a new stored credential. created_at is stamped by the
// schema default and last_modified_at starts NULL; both come back through
// the RETURNING clause. Multiple credentials for the same (service, account)
// pair are permitted.
func (r *credentialRepository) Create(ctx context.Context, credential models.StoredCredential) (models.StoredCredential, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createCredential,
		credential.ServiceName,
		credential.ServiceUsername,
		credential.SecretValue,
		credential.Note,
		credential.AccountID,
	)

	if err := scanCredential(row, &credential); err != nil {
		log.Err(err).
			Str("func", "credentialRepository.Create").
			Int64("account_id", credential.AccountID).
			Str("service_name", credential.ServiceName).
			Msg("error: inserting credential failed")
		return models.StoredCredential{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return credential, nil
}

// GetByID retrieves the credential with the given identifier.
// Returns [ErrNotFound] when no row matches.
func (r *credentialRepository) GetByID(ctx context.Context, credentialID int64) (models.StoredCredential, error) {
	log := logger.FromContext(ctx)

	var credential models.StoredCredential
	row := r.db.QueryRowContext(ctx, findCredentialByID, credentialID)
	if err := scanCredential(row, &credential); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.StoredCredential{}, ErrNotFound
		}

		log.Err(err).Str("func", "credentialRepository.GetByID").Int64("credential_id", credentialID).Msg("error: scanning credential row")
		return models.StoredCredential{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return credential, nil
}

// ListByAccount retrieves every credential owned by the given account.
// Row order is not guaranteed. Returns an empty slice when the account owns
// no credentials.
func (r *credentialRepository) ListByAccount(ctx context.Context, accountID int64) ([]models.StoredCredential, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, findCredentialsByAccount, accountID)
	if err != nil {
		log.Err(err).
			Str("func", "credentialRepository.ListByAccount").
			Int64("account_id", accountID).
			Msg("failed to execute query for listing credentials")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	credentials := make([]models.StoredCredential, 0, 16)

	for rows.Next() {
		var credential models.StoredCredential
		if scanErr := rows.Scan(
			&credential.CredentialID,
			&credential.ServiceName,
			&credential.ServiceUsername,
			&credential.SecretValue,
			&credential.CreatedAt,
			&credential.LastModifiedAt,
			&credential.Note,
			&credential.AccountID,
		); scanErr != nil {
			log.Err(scanErr).
				Str("func", "credentialRepository.ListByAccount").
				Int64("account_id", accountID).
				Msg("failed to scan credential row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		credentials = append(credentials, credential)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "credentialRepository.ListByAccount").
			Int64("account_id", accountID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return credentials, nil
}

// Update applies the non-nil fields of update to the targeted credential.
// last_modified_at is stamped on every call, including updates that carry
// no field values.
//
// Returns [ErrNotFound] when no row matches.
func (r *credentialRepository) Update(ctx context.Context, update models.CredentialUpdate) (models.StoredCredential, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCredentialUpdateQuery(update)
	if err != nil {
		log.Err(err).Str("func", "credentialRepository.Update").Int64("credential_id", update.CredentialID).Msg("failed to build update query")
		return models.StoredCredential{}, err
	}

	var credential models.StoredCredential
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := scanCredential(row, &credential); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.StoredCredential{}, ErrNotFound
		}

		log.Err(err).Str("func", "credentialRepository.Update").Int64("credential_id", update.CredentialID).Msg("error: updating credential failed")
		return models.StoredCredential{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return credential, nil
}

// Delete removes the credential row. Associated credential_tags rows are
// left in place (allow-orphan policy); use [DeleteWithLinks] for the cascade
// variant.
//
// Returns [ErrNotFound] when no row matches.
func (r *credentialRepository) Delete(ctx context.Context, credentialID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteCredential, credentialID)
	if err != nil {
		log.Err(err).Str("func", "credentialRepository.Delete").Int64("credential_id", credentialID).Msg("error: deleting credential failed")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// DeleteWithLinks removes the credential row together with all of its
// credential_tags rows in a single transaction, so either both deletions
// commit or neither does.
//
// Returns [ErrNotFound] (and rolls back) when the credential does not exist;
// dangling link rows alone do not make the credential exist.
func (r *credentialRepository) DeleteWithLinks(ctx context.Context, credentialID int64) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "credentialRepository.DeleteWithLinks").Msg("error during opening transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, deleteCredentialLinks, credentialID); err != nil {
		log.Err(err).Str("func", "credentialRepository.DeleteWithLinks").Int64("credential_id", credentialID).Msg("error: deleting credential links failed")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	result, err := tx.ExecContext(ctx, deleteCredential, credentialID)
	if err != nil {
		log.Err(err).Str("func", "credentialRepository.DeleteWithLinks").Int64("credential_id", credentialID).Msg("error: deleting credential failed")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "credentialRepository.DeleteWithLinks").Int64("credential_id", credentialID).Msg("error during committing transaction")
		return fmt.Errorf("%w: %w", ErrCommittingTransaction, err)
	}

	return nil
}

// scanCredential scans one credentials row from either a *sql.Row produced
// by the shared column list in [sql_queries.go] or a RETURNING clause.
func scanCredential(row *sql.Row, credential *models.StoredCredential) error {
	return row.Scan(
		&credential.CredentialID,
		&credential.ServiceName,
		&credential.ServiceUsername,
		&credential.SecretValue,
		&credential.CreatedAt,
		&credential.LastModifiedAt,
		&credential.Note,
		&credential.AccountID,
	)
}
