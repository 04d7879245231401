package cryptox

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// TokenSize128 is 128 bits of entropy (22 chars base64url). Invite codes
// use this: well past the minimum entropy at which collision or guessing
// becomes a concern, short enough for a URL.
const TokenSize128 = 16

// GenerateToken creates a cryptographically secure random token of the given
// byte length, returned base64url-encoded without padding. Tokens are never
// derived from timestamps, counters, or any other guessable input.
func GenerateToken(size int) (string, error) {
	if size <= 0 {
		return "", fmt.Errorf("token size must be positive, got %d", size)
	}

	buf := make([]byte, size)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate random token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
