package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/models"
)

type credentialService struct {
	credentialRepository store.CredentialRepository
	accountRepository    store.AccountRepository

	logger *logger.Logger
}

func NewCredentialService(credentialRepository store.CredentialRepository, accountRepository store.AccountRepository, logger *logger.Logger) CredentialService {
	return &credentialService{
		credentialRepository: credentialRepository,
		accountRepository:    accountRepository,
		logger:               logger,
	}
}

// Create persists a new stored credential for an existing account.
// Several credentials for the same (service, account) pair are permitted;
// rotated secrets may coexist with their predecessors.
//
// Returns:
//   - ErrInvalidDataProvided if ServiceName, ServiceUsername, or SecretValue
//     is empty.
//   - ErrInvalidReference if the owning account does not exist.
func (c *credentialService) Create(ctx context.Context, credential models.StoredCredential) (models.StoredCredential, error) {
	log := logger.FromContext(ctx)

	if credential.ServiceName == "" || credential.ServiceUsername == "" || credential.SecretValue == "" {
		log.Error().Str("service_name", credential.ServiceName).Msg("invalid credential data provided")
		return models.StoredCredential{}, ErrInvalidDataProvided
	}

	if _, err := c.accountRepository.GetByID(ctx, credential.AccountID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.StoredCredential{}, fmt.Errorf("%w: account %d", ErrInvalidReference, credential.AccountID)
		}
		log.Err(err).Int64("account_id", credential.AccountID).Msg("account lookup before creating credential failed")
		return models.StoredCredential{}, fmt.Errorf("account lookup failed: %w", err)
	}

	created, err := c.credentialRepository.Create(ctx, credential)
	if err != nil {
		log.Err(err).Int64("account_id", credential.AccountID).Str("service_name", credential.ServiceName).Msg("credential creation ended with error")
		return models.StoredCredential{}, fmt.Errorf("credential creation ended with error: %w", err)
	}

	return created, nil
}

// GetByID retrieves the credential with the given identifier.
// Returns (nil, nil) when no such credential exists.
func (c *credentialService) GetByID(ctx context.Context, credentialID int64) (*models.StoredCredential, error) {
	credential, err := c.credentialRepository.GetByID(ctx, credentialID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("credential search by id failed: %w", err)
	}

	return &credential, nil
}

// ListByAccount retrieves every credential owned by the given account.
// An unknown account and an account with no credentials both yield an empty
// list.
func (c *credentialService) ListByAccount(ctx context.Context, accountID int64) ([]models.StoredCredential, error) {
	credentials, err := c.credentialRepository.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("listing credentials ended with error: %w", err)
	}

	return credentials, nil
}

// Edit applies the non-nil fields of update to the targeted credential and
// stamps its last-modified time; the stamp is applied even when no field
// value changes.
//
// Returns [store.ErrNotFound] when no such credential exists.
func (c *credentialService) Edit(ctx context.Context, update models.CredentialUpdate) (models.StoredCredential, error) {
	log := logger.FromContext(ctx)

	credential, err := c.credentialRepository.Update(ctx, update)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.StoredCredential{}, err
		}
		log.Err(err).Int64("credential_id", update.CredentialID).Msg("credential edit ended with error")
		return models.StoredCredential{}, fmt.Errorf("credential edit ended with error: %w", err)
	}

	return credential, nil
}

// Delete removes the credential. Tag links referencing it are left in place.
// Returns [store.ErrNotFound] when no such credential exists.
func (c *credentialService) Delete(ctx context.Context, credentialID int64) error {
	if err := c.credentialRepository.Delete(ctx, credentialID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return err
		}
		return fmt.Errorf("credential deletion ended with error: %w", err)
	}

	return nil
}

// DeleteWithLinks removes the credential together with all of its tag links
// in one transaction.
// Returns [store.ErrNotFound] when no such credential exists.
func (c *credentialService) DeleteWithLinks(ctx context.Context, credentialID int64) error {
	if err := c.credentialRepository.DeleteWithLinks(ctx, credentialID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return err
		}
		return fmt.Errorf("credential deletion with links ended with error: %w", err)
	}

	return nil
}
