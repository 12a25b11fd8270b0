package models

import "time"

// Session is a time-bounded record of one authenticated login.
// A session is Active while EndedAt is nil and Closed once EndedAt is set;
// the transition happens exactly once and is never reversed.
type Session struct {
	SessionID int64 `json:"-"`

	// AccountID references the owning [Account].
	AccountID int64 `json:"account_id"`

	StartedAt time.Time `json:"started_at"`

	// EndedAt is nil while the session is active and set exactly once
	// when the session is closed.
	EndedAt *time.Time `json:"ended_at,omitempty"`

	// SourceAddress is the optional address the login originated from.
	SourceAddress string `json:"source_address,omitempty"`
}

// Active reports whether the session has not been closed yet.
func (s Session) Active() bool {
	return s.EndedAt == nil
}

// TableName returns the name of the database table
// associated with the Session model.
func (s Session) TableName() string {
	return "sessions"
}
