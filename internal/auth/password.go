package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrWeakPassword       = errors.New("password must be at least 8 characters")
)

// MinPasswordLength is the shortest admin password accepted at startup.
const MinPasswordLength = 8

// SharedCredential authenticates against a single username/password pair
// configured for the shop. Only the bcrypt hash of the password is kept.
type SharedCredential struct {
	username string
	hash     []byte
}

// NewSharedCredential hashes password and returns an authenticator for the
// pair.
func NewSharedCredential(username, password string) (*SharedCredential, error) {
	if username == "" {
		return nil, errors.New("username is required")
	}
	if len(password) < MinPasswordLength {
		return nil, ErrWeakPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	return &SharedCredential{username: username, hash: hash}, nil
}

// Authenticate compares the username in constant time and the password
// against the stored hash.
func (c *SharedCredential) Authenticate(_ context.Context, username, credential string) (string, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(c.username)) == 1
	// Always run bcrypt so a wrong username costs as much as a wrong password.
	passErr := bcrypt.CompareHashAndPassword(c.hash, []byte(credential))
	if !userOK || passErr != nil {
		return "", ErrInvalidCredentials
	}
	return c.username, nil
}
