package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidReference is returned when an operation names another record
	// (an account, a credential, a tag) that does not exist. The schema
	// carries no FOREIGN KEY constraints; this layer is the referential
	// gatekeeper.
	ErrInvalidReference = errors.New("referenced record does not exist")
)
