package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	t.Parallel()

	iss := NewTokenIssuer("test-secret")
	userID := uuid.New()

	token, err := iss.Issue(userID, "alice")
	require.NoError(t, err)

	identity, err := iss.Verify(token)
	require.NoError(t, err)
	require.Equal(t, userID, identity.UserID)
	require.Equal(t, "alice", identity.Username)
}

func TestVerifyExpiryBoundary(t *testing.T) {
	t.Parallel()

	issuedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	iss := NewTokenIssuer("test-secret")
	iss.now = func() time.Time { return issuedAt }

	token, err := iss.Issue(uuid.New(), "alice")
	require.NoError(t, err)

	// One second before expiry the token is still good.
	iss.now = func() time.Time { return issuedAt.Add(TokenTTL - time.Second) }
	_, err = iss.Verify(token)
	require.NoError(t, err)

	// One second after expiry it is not.
	iss.now = func() time.Time { return issuedAt.Add(TokenTTL + time.Second) }
	_, err = iss.Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyWrongSecret(t *testing.T) {
	t.Parallel()

	token, err := NewTokenIssuer("right-secret").Issue(uuid.New(), "alice")
	require.NoError(t, err)

	_, err = NewTokenIssuer("wrong-secret").Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyGarbage(t *testing.T) {
	t.Parallel()

	iss := NewTokenIssuer("test-secret")

	for _, tok := range []string{"", "not.a.jwt", "aaaa.bbbb.cccc"} {
		_, err := iss.Verify(tok)
		require.ErrorIs(t, err, ErrInvalidToken)
	}
}

func TestVerifyNonUUIDSubject(t *testing.T) {
	t.Parallel()

	// Correctly signed but the subject is not a user id.
	iss := NewTokenIssuer("test-secret")

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "not-a-uuid",
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = iss.Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}
