package models

// CredentialTagLink is the many-to-many association row between a
// [StoredCredential] and a [Tag]. Duplicate (credential, tag) pairs are
// permitted; deleting either referenced row leaves the link dangling unless
// the caller uses the explicit cascade variant of the credential service.
type CredentialTagLink struct {
	LinkID       int64 `json:"-"`
	CredentialID int64 `json:"credential_id"`
	TagID        int64 `json:"tag_id"`
}

// TableName returns the name of the database table
// associated with the CredentialTagLink model.
func (l CredentialTagLink) TableName() string {
	return "credential_tags"
}
