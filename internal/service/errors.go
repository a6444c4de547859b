package service

import "errors"

// Service-level error taxonomy. Handlers map these onto HTTP statuses;
// anything else is a server error.
var (
	ErrNotFound           = errors.New("record not found")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrFollowSelf         = errors.New("cannot follow self")
	ErrAlreadyRetweeted   = errors.New("tweet already retweeted")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserExists         = errors.New("username or email already taken")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrInvalidPhone       = errors.New("invalid phone number")
)
