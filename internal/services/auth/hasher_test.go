package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordProducesSaltedDigests(t *testing.T) {
	first, err := HashPassword("P@ssw0rd")
	require.NoError(t, err)
	second, err := HashPassword("P@ssw0rd")
	require.NoError(t, err)

	assert.NotEqual(t, "P@ssw0rd", first)
	assert.NotEqual(t, first, second)
	assert.True(t, VerifyPassword("P@ssw0rd", first))
	assert.True(t, VerifyPassword("P@ssw0rd", second))
}

func TestVerifyPasswordRejectsMismatch(t *testing.T) {
	digest, err := HashPassword("P@ssw0rd")
	require.NoError(t, err)

	assert.False(t, VerifyPassword("wrong", digest))
}

func TestVerifyPasswordRejectsMalformedDigest(t *testing.T) {
	assert.False(t, VerifyPassword("P@ssw0rd", "not-a-bcrypt-digest"))
	assert.False(t, VerifyPassword("P@ssw0rd", ""))
}
