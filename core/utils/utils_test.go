package utils

import (
	"strings"
	"testing"

	"slotswap/core/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateReference_Format(t *testing.T) {
	ref := GenerateReference()

	require.True(t, strings.HasPrefix(ref, "SWP-"))
	assert.Len(t, ref, len("SWP-")+7)
	for _, r := range strings.TrimPrefix(ref, "SWP-") {
		assert.Contains(t, idAlphabet, string(r))
	}
}

func TestGenerateReference_Unique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		ref := GenerateReference()
		assert.False(t, seen[ref])
		seen[ref] = true
	}
}

func TestPassword_HashAndCheck(t *testing.T) {
	hash, err := HashPassword("supersecret")
	require.NoError(t, err)
	assert.NotEqual(t, "supersecret", hash)

	assert.True(t, CheckPassword(hash, "supersecret"))
	assert.False(t, CheckPassword(hash, "wrong"))
}

func TestToken_RoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	_, err := config.Init()
	require.NoError(t, err)

	userID := uuid.New()
	token, err := GenerateToken(userID)
	require.NoError(t, err)

	claims, err := ValidateAndParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, userID.String(), claims.Subject)
}

func TestToken_Garbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	_, err := config.Init()
	require.NoError(t, err)

	_, err = ValidateAndParseToken("not.a.token")
	assert.Error(t, err)
}
