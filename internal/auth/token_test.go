package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenCodec_RoundTrip(t *testing.T) {
	t.Parallel()

	codec := NewTokenCodec("round-trip-secret-for-token-tests", time.Hour)

	token, err := codec.Encode("user-123", time.Now())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := codec.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
}

func TestTokenCodec_Expired(t *testing.T) {
	t.Parallel()

	ttl := time.Hour
	codec := NewTokenCodec("expiry-secret-for-token-tests", ttl)

	// Issued so that the token expired one second ago.
	token, err := codec.Encode("user-123", time.Now().Add(-ttl-time.Second))
	require.NoError(t, err)

	_, err = codec.Decode(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenCodec_WrongSecret(t *testing.T) {
	t.Parallel()

	signer := NewTokenCodec("the-right-secret-for-token-tests", time.Hour)
	verifier := NewTokenCodec("a-different-secret-for-token-tests", time.Hour)

	token, err := signer.Encode("user-123", time.Now())
	require.NoError(t, err)

	_, err = verifier.Decode(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenCodec_TamperedSignature(t *testing.T) {
	t.Parallel()

	codec := NewTokenCodec("tamper-secret-for-token-tests", time.Hour)

	token, err := codec.Encode("user-123", time.Now())
	require.NoError(t, err)

	// Flip the last character of the signature segment.
	last := token[len(token)-1]
	replacement := byte('A')
	if last == replacement {
		replacement = 'B'
	}
	tampered := token[:len(token)-1] + string(replacement)

	_, err = codec.Decode(tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenCodec_RejectsUnsignedAlgorithm(t *testing.T) {
	t.Parallel()

	codec := NewTokenCodec("alg-none-secret-for-token-tests", time.Hour)

	claims := jwt.RegisteredClaims{
		Subject:   "user-123",
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = codec.Decode(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenCodec_Malformed(t *testing.T) {
	t.Parallel()

	codec := NewTokenCodec("malformed-secret-for-token-tests", time.Hour)

	for _, tokenString := range []string{"", "garbage", "a.b", strings.Repeat("x.", 3)} {
		_, err := codec.Decode(tokenString)
		assert.ErrorIs(t, err, ErrInvalidToken, "token %q", tokenString)
	}
}

func TestTokenCodec_MissingSubject(t *testing.T) {
	t.Parallel()

	codec := NewTokenCodec("missing-sub-secret-for-token-tests", time.Hour)

	token, err := codec.Encode("", time.Now())
	require.NoError(t, err)

	_, err = codec.Decode(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
