package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	t.Parallel()

	hasher := NewHasher(1)

	digest, err := hasher.Hash("pw123")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(digest, "$argon2id$"))
	require.NotContains(t, digest, "pw123")

	require.True(t, VerifyPassword("pw123", digest))
	require.False(t, VerifyPassword("pw124", digest))
}

func TestHashProducesFreshSalt(t *testing.T) {
	t.Parallel()

	hasher := NewHasher(1)

	first, err := hasher.Hash("same-password")
	require.NoError(t, err)
	second, err := hasher.Hash("same-password")
	require.NoError(t, err)

	require.NotEqual(t, first, second)
}

func TestVerifyOldDigestAfterCostChange(t *testing.T) {
	t.Parallel()

	digest, err := NewHasher(1).Hash("pw123")
	require.NoError(t, err)

	// Parameters live in the digest, so raising the work factor must not
	// invalidate existing credentials.
	require.True(t, VerifyPassword("pw123", digest))
}

func TestVerifyMalformedDigest(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		digest string
	}{
		{"empty", ""},
		{"not a digest", "hunter2"},
		{"wrong algorithm", "$bcrypt$v=19$m=65536,t=3,p=4$c2FsdA$aGFzaA"},
		{"bad version", "$argon2id$v=0$m=65536,t=3,p=4$c2FsdA$aGFzaA"},
		{"bad params", "$argon2id$v=19$nope$c2FsdA$aGFzaA"},
		{"bad salt encoding", "$argon2id$v=19$m=65536,t=3,p=4$!!!$aGFzaA"},
		{"bad hash encoding", "$argon2id$v=19$m=65536,t=3,p=4$c2FsdA$!!!"},
		{"missing parts", "$argon2id$v=19$m=65536,t=3,p=4$c2FsdA"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.False(t, VerifyPassword("pw123", tc.digest))
		})
	}
}
