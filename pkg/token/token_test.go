package token

import (
	"testing"
	"time"

	"clicker_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var secret = []byte("test-secret")

func TestAccessToken_RoundTrip(t *testing.T) {
	tok, err := GenerateAccessToken(&model.User{ID: 42}, secret, time.Minute)
	require.NoError(t, err)

	claims, err := VerifyToken(tok, secret)
	require.NoError(t, err)
	id, err := UserIDFromClaims(claims)
	require.NoError(t, err)
	assert.Equal(t, 42, id)
}

func TestAccessToken_Rejects(t *testing.T) {
	tok, err := GenerateAccessToken(&model.User{ID: 42}, secret, time.Minute)
	require.NoError(t, err)
	_, err = VerifyToken(tok, []byte("other"))
	assert.Error(t, err)

	expired, err := GenerateAccessToken(&model.User{ID: 42}, secret, -time.Minute)
	require.NoError(t, err)
	_, err = VerifyToken(expired, secret)
	assert.Error(t, err)

	_, err = VerifyToken("garbage", secret)
	assert.Error(t, err)
}

func TestUserIDFromClaims_Invalid(t *testing.T) {
	_, err := UserIDFromClaims(&model.UserClaims{})
	assert.Error(t, err)
}

func TestRefreshToken(t *testing.T) {
	a, err := GenerateRefreshToken()
	require.NoError(t, err)
	b, err := GenerateRefreshToken()
	require.NoError(t, err)
	assert.NotEqual(t, a, b)

	hash := HashRefreshToken(a)
	assert.True(t, VerifyRefreshToken(a, hash))
	assert.False(t, VerifyRefreshToken(b, hash))
	assert.False(t, VerifyRefreshToken("", HashRefreshToken("")))
}
