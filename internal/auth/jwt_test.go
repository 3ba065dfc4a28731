package auth

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-secret"

func TestIssueAndParseToken(t *testing.T) {
	raw, err := IssueToken(testSecret, 42, "john@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	claims, err := ParseToken(testSecret, raw)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "john@example.com", claims.Email)
	// No expiry is set on issued tokens.
	assert.Nil(t, claims.ExpiresAt)
}

func TestParseTokenWrongSecret(t *testing.T) {
	raw, err := IssueToken(testSecret, 1, "a@b.c")
	require.NoError(t, err)

	_, err = ParseToken("some-other-secret", raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenGarbage(t *testing.T) {
	_, err := ParseToken(testSecret, "not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenRejectsNonHMAC(t *testing.T) {
	// Unsigned token claiming alg "none" must never validate.
	tok := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: 7, Email: "x@y.z"})
	raw, err := tok.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ParseToken(testSecret, raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
