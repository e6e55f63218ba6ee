package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("user-123", "alice@example.com", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	id, err := ExtractIDFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", id)
}

func TestExtractIDFromToken_Expired(t *testing.T) {
	token, err := GenerateToken("user-123", "alice@example.com", -time.Minute)
	require.NoError(t, err)

	_, err = ExtractIDFromToken(token)
	assert.Error(t, err)
}

func TestExtractIDFromToken_Garbage(t *testing.T) {
	_, err := ExtractIDFromToken("not-a-jwt")
	assert.Error(t, err)

	token, err := GenerateToken("user-123", "alice@example.com", time.Hour)
	require.NoError(t, err)
	_, err = ExtractIDFromToken(token + "tampered")
	assert.Error(t, err)
}
