package models

import "time"

// StoredCredential is one saved service/username/secret triple owned by an
// [Account]. The secret is stored as an opaque string: the vault core never
// ciphers or deciphers it. Callers that want encryption at rest apply a
// crypto.SecretCipher before Create/Edit and after reads.
type StoredCredential struct {
	CredentialID int64 `json:"-"`

	// ServiceName is the name of the external service the secret belongs to.
	ServiceName string `json:"service_name"`

	// ServiceUsername is the login used at the external service.
	ServiceUsername string `json:"service_username"`

	// SecretValue is the opaque stored secret. Never logged.
	SecretValue string `json:"-"`

	CreatedAt time.Time `json:"created_at"`

	// LastModifiedAt is nil until the first Edit and is re-stamped on every
	// Edit afterwards, even when the edit changes no field value.
	LastModifiedAt *time.Time `json:"last_modified_at,omitempty"`

	// Note is an optional free-form annotation.
	Note *string `json:"note,omitempty"`

	// AccountID references the owning [Account].
	AccountID int64 `json:"account_id"`
}

// CredentialUpdate enumerates the mutable fields of a [StoredCredential].
// Nil fields are left untouched. LastModifiedAt is stamped by the store on
// every update regardless of which fields are present.
type CredentialUpdate struct {
	CredentialID int64
	SecretValue  *string
	Note         *string
}

// TableName returns the name of the database table
// associated with the StoredCredential model.
func (c StoredCredential) TableName() string {
	return "credentials"
}
