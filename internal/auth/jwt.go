package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const adminSubject = "admin"

// JWTAuthorizer accepts short-lived HS256 tokens signed with the shared
// admin secret instead of the secret itself.
type JWTAuthorizer struct {
	secret []byte
	iss    string
	ttl    time.Duration
	now    func() time.Time
}

func NewJWTAuthorizer(secret, iss string, ttl time.Duration) (*JWTAuthorizer, error) {
	if secret == "" {
		return nil, errors.New("jwt authorizer needs a non-empty secret")
	}
	return &JWTAuthorizer{secret: []byte(secret), iss: iss, ttl: ttl, now: time.Now}, nil
}

// IssueToken returns a signed admin token valid for the configured ttl.
func (a *JWTAuthorizer) IssueToken() (string, error) {
	now := a.now()
	claims := jwt.RegisteredClaims{
		Subject:   adminSubject,
		Issuer:    a.iss,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(a.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(a.secret)
	if err != nil {
		return "", err
	}
	return tokenString, nil
}

func (a *JWTAuthorizer) Validate(_ context.Context, credential string) error {
	if credential == "" {
		return ErrUnauthorized
	}

	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(credential, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return a.secret, nil
	},
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithIssuer(a.iss),
		jwt.WithSubject(adminSubject),
		jwt.WithTimeFunc(a.now),
	)
	if err != nil {
		return ErrUnauthorized
	}
	return nil
}
