package service

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
)

// AccountService manages vault owner accounts: registration, lookup,
// credential verification, partial updates, and removal.
//
// Lookup, update, and delete report a missing account by returning a nil
// pointer with a nil error; absence is an ordinary answer for accounts, not
// a failure.
type AccountService interface {
	Register(ctx context.Context, account models.Account) (models.Account, error)
	Authenticate(ctx context.Context, email, credential, sourceAddress string) (*models.Session, error)
	GetByID(ctx context.Context, accountID int64) (*models.Account, error)
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
	Update(ctx context.Context, update models.AccountUpdate) (*models.Account, error)
	Delete(ctx context.Context, accountID int64) (*models.Account, error)
}

// SessionService manages login sessions and their lifecycle.
type SessionService interface {
	Open(ctx context.Context, accountID int64, sourceAddress string) (models.Session, error)
	GetByID(ctx context.Context, sessionID int64) (*models.Session, error)
	Close(ctx context.Context, sessionID int64) (models.Session, error)
}

// CredentialService manages stored third-party credentials.
type CredentialService interface {
	Create(ctx context.Context, credential models.StoredCredential) (models.StoredCredential, error)
	GetByID(ctx context.Context, credentialID int64) (*models.StoredCredential, error)
	ListByAccount(ctx context.Context, accountID int64) ([]models.StoredCredential, error)
	Edit(ctx context.Context, update models.CredentialUpdate) (models.StoredCredential, error)
	Delete(ctx context.Context, credentialID int64) error
	DeleteWithLinks(ctx context.Context, credentialID int64) error
}

// TagService manages the free-form labels credentials can be grouped by.
// Unlike account lookups, tag operations treat a missing tag as a failure:
// every method reports it with [store.ErrNotFound].
type TagService interface {
	Create(ctx context.Context, name string) (models.Tag, error)
	GetByID(ctx context.Context, tagID int64) (models.Tag, error)
	Rename(ctx context.Context, update models.TagUpdate) (models.Tag, error)
	Delete(ctx context.Context, tagID int64) (models.Tag, error)
}

// TagLinkService manages the many-to-many association between credentials
// and tags.
type TagLinkService interface {
	Link(ctx context.Context, credentialID, tagID int64) (models.CredentialTagLink, error)
	Unlink(ctx context.Context, linkID int64) (*models.CredentialTagLink, error)
}
