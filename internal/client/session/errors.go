package session

import "errors"

var (
	// ErrAccountInactive signals that the account exists but has not been
	// activated; the caller should offer to resend the activation code.
	ErrAccountInactive = errors.New("account is not activated")

	ErrNotAuthenticated = errors.New("not authenticated")
	ErrNoToken          = errors.New("no access token stored")
)
