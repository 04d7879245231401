package identity

import (
	"context"
	"errors"
	"strings"

	"github.com/peakprep/platform/internal/platform/store"
	"github.com/peakprep/platform/pkg/cryptox"
	"github.com/peakprep/platform/pkg/idx"
)

// LocalProvider keeps accounts in the platform's own store with Argon2id
// password hashing.
type LocalProvider struct {
	Store store.Store
}

func NewLocalProvider(st store.Store) *LocalProvider {
	return &LocalProvider{Store: st}
}

func (p *LocalProvider) CreateAccount(ctx context.Context, email, password, displayName string) (string, error) {
	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return "", err
	}

	id := idx.New().String()
	err = p.Store.Accounts().CreateAccount(ctx, id, normalizeEmail(email), hash, displayName)
	if errors.Is(err, store.ErrAlreadyExists) {
		return "", ErrEmailExists
	}
	if err != nil {
		return "", err
	}
	return id, nil
}

func (p *LocalProvider) Authenticate(ctx context.Context, email, password string) (string, error) {
	id, hash, err := p.Store.Accounts().GetAccountByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, store.ErrNotFound) {
		// Burn a verification anyway so response timing does not reveal
		// whether the email is registered.
		_ = cryptox.VerifyPassword(password, dummyHash)
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}

	if err := cryptox.VerifyPassword(password, hash); err != nil {
		return "", ErrInvalidCredentials
	}
	return id, nil
}

func (p *LocalProvider) FindByEmail(ctx context.Context, email string) (string, error) {
	id, _, err := p.Store.Accounts().GetAccountByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, store.ErrNotFound) {
		return "", ErrAccountNotFound
	}
	if err != nil {
		return "", err
	}
	return id, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// dummyHash is a valid Argon2id hash of a throwaway string, verified against
// on unknown-email logins to keep timing uniform.
var dummyHash = func() string {
	h, err := cryptox.HashPassword("timing-equalizer")
	if err != nil {
		panic(err)
	}
	return h
}()
