package auth

import "context"

// Authenticator verifies login credentials.
// This abstraction allows swapping the shared admin login for per-user
// accounts without changing the service layer.
type Authenticator interface {
	// Authenticate checks username and credential and returns the canonical
	// username on success, or ErrInvalidCredentials.
	Authenticate(ctx context.Context, username, credential string) (string, error)
}
