package service

import "errors"

// Business errors surfaced to the HTTP layer. Anything not in this list is
// wrapped as ErrInternalServer; the underlying cause is logged, not exposed.
var (
	ErrUserNotFound         = errors.New("user not found")
	ErrRecordNotFound       = errors.New("record not found")
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrRegistrationFailed   = errors.New("registration failed: username already exists")
	ErrInternalServer       = errors.New("internal server error")
)
