package models

// Tag is a free-form label applicable to any number of stored credentials
// through [CredentialTagLink] rows.
type Tag struct {
	TagID int64  `json:"-"`
	Name  string `json:"name"`
}

// TagUpdate enumerates the mutable fields of a [Tag].
type TagUpdate struct {
	TagID int64
	Name  *string
}

// TableName returns the name of the database table
// associated with the Tag model.
func (t Tag) TableName() string {
	return "tags"
}
