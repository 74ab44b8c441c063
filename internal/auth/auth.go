package auth

import (
	"context"
	"crypto/subtle"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrUnauthorized is the only error an Authorizer reports for a rejected
// credential; it never says which part of the check failed.
var ErrUnauthorized = errors.New("unauthorized")

// Authorizer decides whether a caller-supplied admin credential is valid.
type Authorizer interface {
	Validate(ctx context.Context, credential string) error
}

// StaticKeyAuthorizer accepts exactly one shared secret.
type StaticKeyAuthorizer struct {
	key []byte
}

func NewStaticKeyAuthorizer(key string) *StaticKeyAuthorizer {
	return &StaticKeyAuthorizer{key: []byte(key)}
}

func (a *StaticKeyAuthorizer) Validate(_ context.Context, credential string) error {
	if len(a.key) == 0 || credential == "" {
		return ErrUnauthorized
	}
	if subtle.ConstantTimeCompare(a.key, []byte(credential)) != 1 {
		return ErrUnauthorized
	}
	return nil
}

// HashedKeyAuthorizer compares against a bcrypt hash so the plain secret
// never has to live in the server's environment.
type HashedKeyAuthorizer struct {
	hash []byte
}

func NewHashedKeyAuthorizer(hash string) (*HashedKeyAuthorizer, error) {
	if _, err := bcrypt.Cost([]byte(hash)); err != nil {
		return nil, err
	}
	return &HashedKeyAuthorizer{hash: []byte(hash)}, nil
}

func (a *HashedKeyAuthorizer) Validate(_ context.Context, credential string) error {
	if credential == "" {
		return ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword(a.hash, []byte(credential)); err != nil {
		return ErrUnauthorized
	}
	return nil
}

// HashKey is used by tooling to produce a value for ADMIN_API_KEY_HASH.
func HashKey(key string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
