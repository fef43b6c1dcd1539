package common

import "errors"

var (
	// ErrorForbidden is returned when the account lacks the role a command needs.
	ErrorForbidden = errors.New("not authorized")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrRefreshFailed = errors.New("token refresh failed")
)
