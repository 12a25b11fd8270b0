package models

import "time"

// Account represents a registered user identity of the vault.
// It is the ownership root of the schema: every Session and every
// StoredCredential references exactly one Account.
// Sensitive fields must never be exposed outside trusted boundaries.
type Account struct {
	// AccountID is the internal unique identifier of the account,
	// assigned by the database on insert.
	AccountID int64 `json:"-"`

	// Username is the unique display login of the account.
	Username string `json:"username"`

	// Email is the unique address used for authentication lookups.
	Email string `json:"email"`

	// CredentialHash stores the account's login credential representation.
	// The store compares it by exact match and never interprets it; the
	// account service fills it with an HMAC-SHA256 digest of the plain
	// credential before the record reaches the store.
	CredentialHash string `json:"-"`

	// Role is the free-form authorization role of the account
	// (e.g. "user", "admin"). Must be non-empty.
	Role string `json:"role"`

	// CreatedAt is the registration timestamp, defaulted by the schema.
	CreatedAt time.Time `json:"created_at"`
}

// AccountUpdate enumerates the mutable fields of an [Account] for partial
// updates. A nil field is left untouched. Enumerating the fields explicitly
// (instead of an open-ended key/value set) makes unknown fields a compile
// error rather than a runtime surprise.
type AccountUpdate struct {
	AccountID      int64
	Username       *string
	Email          *string
	CredentialHash *string
	Role           *string
}

// TableName returns the name of the database table
// associated with the Account model.
func (a Account) TableName() string {
	return "accounts"
}
