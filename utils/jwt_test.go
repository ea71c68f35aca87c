package utils

import (
	"testing"
	"time"

	"broheal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndExtractToken(t *testing.T) {
	token, err := GenerateToken("u1", "user", TokenTypeAccess, time.Minute)
	require.NoError(t, err)

	subject, role, tokenType, err := ExtractClaimsFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", subject)
	assert.Equal(t, "user", role)
	assert.Equal(t, TokenTypeAccess, tokenType)
}

func TestExpiredTokenRejected(t *testing.T) {
	token, err := GenerateToken("u1", "user", TokenTypeAccess, -time.Minute)
	require.NoError(t, err)

	_, _, _, err = ExtractClaimsFromToken(token)
	assert.Error(t, err)
}

func TestGarbageTokenRejected(t *testing.T) {
	_, _, _, err := ExtractClaimsFromToken("not.a.jwt")
	assert.Error(t, err)
}

func TestHashTokenIsStable(t *testing.T) {
	assert.Equal(t, HashToken("abc"), HashToken("abc"))
	assert.NotEqual(t, HashToken("abc"), HashToken("abd"))
	assert.Len(t, HashToken("abc"), 64)
}

func TestConfiguredSecretSignsTokens(t *testing.T) {
	config.AppConfig.JWTSecret = "configured-secret"
	t.Cleanup(func() { config.AppConfig.JWTSecret = "" })

	token, err := GenerateToken("u1", "user", TokenTypeAccess, time.Minute)
	require.NoError(t, err)

	subject, _, _, err := ExtractClaimsFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", subject)

	// A token minted under a different secret must fail validation.
	config.AppConfig.JWTSecret = "rotated-secret"
	_, _, _, err = ExtractClaimsFromToken(token)
	assert.Error(t, err)
}

func TestRefreshTokenCarriesType(t *testing.T) {
	token, err := GenerateToken("u1", "therapist", TokenTypeRefresh, time.Hour)
	require.NoError(t, err)

	_, role, tokenType, err := ExtractClaimsFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "therapist", role)
	assert.Equal(t, TokenTypeRefresh, tokenType)
}
