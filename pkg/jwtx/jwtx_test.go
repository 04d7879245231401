package jwtx_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/peakprep/platform/pkg/jwtx"
)

func TestMintAndVerify(t *testing.T) {
	signer, err := jwtx.NewEphemeralSigner("platform-core", time.Minute)
	require.NoError(t, err)

	token, err := signer.Mint("01HX000000000000000000USER")
	require.NoError(t, err)

	claims, err := signer.Verifier().Verify(token)
	require.NoError(t, err)
	require.Equal(t, "01HX000000000000000000USER", claims.Subject)
	require.Equal(t, "platform-core", claims.Issuer)
}

func TestVerifyRejectsForeignToken(t *testing.T) {
	a, err := jwtx.NewEphemeralSigner("platform-core", time.Minute)
	require.NoError(t, err)
	b, err := jwtx.NewEphemeralSigner("platform-core", time.Minute)
	require.NoError(t, err)

	token, err := a.Mint("someone")
	require.NoError(t, err)

	// Signed by a, verified with b's key.
	_, err = b.Verifier().Verify(token)
	require.ErrorIs(t, err, jwtx.ErrInvalidToken)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	signer, err := jwtx.NewEphemeralSigner("platform-core", -time.Minute)
	require.NoError(t, err)

	token, err := signer.Mint("someone")
	require.NoError(t, err)

	_, err = signer.Verifier().Verify(token)
	require.ErrorIs(t, err, jwtx.ErrInvalidToken)
}
