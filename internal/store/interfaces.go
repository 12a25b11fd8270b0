package store

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
)

// AccountRepository persists [models.Account] rows. Missing rows are
// signalled with [ErrNotFound]; uniqueness violations on username/email with
// [ErrDuplicateKey].
type AccountRepository interface {
	Create(ctx context.Context, account models.Account) (models.Account, error)
	GetByID(ctx context.Context, accountID int64) (models.Account, error)
	GetByEmail(ctx context.Context, email string) (models.Account, error)
	Update(ctx context.Context, update models.AccountUpdate) (models.Account, error)
	Delete(ctx context.Context, accountID int64) (models.Account, error)
}

// SessionRepository persists [models.Session] rows.
type SessionRepository interface {
	Create(ctx context.Context, accountID int64, sourceAddress string) (models.Session, error)
	GetByID(ctx context.Context, sessionID int64) (models.Session, error)
	Close(ctx context.Context, sessionID int64) (models.Session, error)
}

// CredentialRepository persists [models.StoredCredential] rows.
type CredentialRepository interface {
	Create(ctx context.Context, credential models.StoredCredential) (models.StoredCredential, error)
	GetByID(ctx context.Context, credentialID int64) (models.StoredCredential, error)
	ListByAccount(ctx context.Context, accountID int64) ([]models.StoredCredential, error)
	Update(ctx context.Context, update models.CredentialUpdate) (models.StoredCredential, error)
	Delete(ctx context.Context, credentialID int64) error
	DeleteWithLinks(ctx context.Context, credentialID int64) error
}

// TagRepository persists [models.Tag] rows.
type TagRepository interface {
	Create(ctx context.Context, name string) (models.Tag, error)
	GetByID(ctx context.Context, tagID int64) (models.Tag, error)
	Update(ctx context.Context, update models.TagUpdate) (models.Tag, error)
	Delete(ctx context.Context, tagID int64) (models.Tag, error)
}

// TagLinkRepository persists [models.CredentialTagLink] rows.
type TagLinkRepository interface {
	Create(ctx context.Context, credentialID, tagID int64) (models.CredentialTagLink, error)
	Delete(ctx context.Context, linkID int64) (models.CredentialTagLink, error)
}
