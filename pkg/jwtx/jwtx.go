// Package jwtx mints and verifies the EdDSA-signed access tokens the route
// guard consumes. Keys are ephemeral: generated at boot and never persisted,
// so a restart invalidates outstanding sessions.
package jwtx

import (
	"crypto/ed25519"
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultAccessTokenTTL bounds how long a login session stays valid.
const DefaultAccessTokenTTL = 12 * time.Hour

var ErrInvalidToken = errors.New("jwtx: invalid token")

// Claims carries the registered claim set; Subject is the identity id.
type Claims struct {
	jwt.RegisteredClaims
}

// Signer mints access tokens for one issuer with a fixed TTL.
type Signer struct {
	priv   ed25519.PrivateKey
	pub    ed25519.PublicKey
	issuer string
	ttl    time.Duration
}

// NewEphemeralSigner generates a fresh Ed25519 keypair for this process.
// A zero ttl falls back to DefaultAccessTokenTTL; a negative ttl is kept
// as-is and mints already-expired tokens.
func NewEphemeralSigner(issuer string, ttl time.Duration) (*Signer, error) {
	if ttl == 0 {
		ttl = DefaultAccessTokenTTL
	}
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("jwtx: failed to generate signing key: %w", err)
	}
	return &Signer{priv: priv, pub: pub, issuer: issuer, ttl: ttl}, nil
}

// Mint signs a token for the given subject (identity id).
func (s *Signer) Mint(subject string) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims).SignedString(s.priv)
}

// Verifier returns the verification half of the signer.
func (s *Signer) Verifier() Verifier {
	return Verifier{pub: s.pub, issuer: s.issuer}
}

// Verifier validates tokens minted by the paired Signer.
type Verifier struct {
	pub    ed25519.PublicKey
	issuer string
}

// Verify parses and validates a raw token, checking signature, expiry, and
// issuer. Returns the claims on success.
func (v Verifier) Verify(raw string) (Claims, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(raw, &claims,
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodEd25519); !ok {
				return nil, fmt.Errorf("jwtx: unexpected signing method %q", t.Method.Alg())
			}
			return v.pub, nil
		},
		jwt.WithIssuer(v.issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return Claims{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	return claims, nil
}
