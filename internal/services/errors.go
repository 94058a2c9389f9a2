package services

import "errors"

var (
	// ErrEmailTaken is returned when registration hits an email that
	// already has an account. Callers recover by steering the visitor to
	// the login page instead of failing the request.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password so the two cases are indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrSessionInvalid means the presented session cannot be honored:
	// bad signature, unknown or expired token, or a user row that no
	// longer resolves. The only recovery is re-authentication.
	ErrSessionInvalid = errors.New("session is invalid or expired")
)
