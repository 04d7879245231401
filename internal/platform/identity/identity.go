// Package identity abstracts the account/credential provider. The core only
// needs create-account and authenticate primitives; a hosted IdP can replace
// the local driver behind the same interface.
package identity

import (
	"context"
	"errors"
)

var (
	// ErrEmailExists is the distinguishable "already exists" condition. The
	// caller uses it to offer "resend invite" instead of "retry create".
	ErrEmailExists = errors.New("identity: email already registered")

	ErrInvalidCredentials = errors.New("identity: invalid credentials")
	ErrAccountNotFound    = errors.New("identity: account not found")
)

// Provider is the external identity collaborator.
type Provider interface {
	// CreateAccount registers a new identity and returns its id. Fails with
	// ErrEmailExists when the email is already registered.
	CreateAccount(ctx context.Context, email, password, displayName string) (string, error)

	// Authenticate checks credentials and returns the identity id.
	Authenticate(ctx context.Context, email, password string) (string, error)

	// FindByEmail returns the identity id for an email, ErrAccountNotFound if
	// none. Used to resume provisioning after a partial failure.
	FindByEmail(ctx context.Context, email string) (string, error)
}
