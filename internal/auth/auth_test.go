package auth

import (
	"testing"
	"time"

	"parkhub_backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("secret-password")
	require.NoError(t, err)
	assert.NotEqual(t, "secret-password", hash)

	assert.True(t, CheckPasswordHash("secret-password", hash))
	assert.False(t, CheckPasswordHash("wrong-password", hash))
}

func TestValidatePassword(t *testing.T) {
	assert.Error(t, ValidatePassword("short"))
	assert.NoError(t, ValidatePassword("longenough"))
}

func TestGenerateOtpCode(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		code, err := GenerateOtpCode()
		require.NoError(t, err)
		require.Len(t, code, OtpLength)
		for _, r := range code {
			require.True(t, r >= '0' && r <= '9', "non-digit in otp: %q", code)
		}
		seen[code] = true
	}
	// 50 draws from a million values should not all collide.
	assert.Greater(t, len(seen), 1)
}

func TestTokenRoundTrip(t *testing.T) {
	config.AppConfig = &config.Config{}
	config.AppConfig.JWT.Secret = "unit-test-secret"
	config.AppConfig.JWT.TTL = 30

	token, err := GenerateToken("user-1", "user@example.com", "admin")
	require.NoError(t, err)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, "admin", claims.Role)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), claims.ExpiresAt.Time, time.Minute)
}

func TestParseTokenRejectsTampering(t *testing.T) {
	config.AppConfig = &config.Config{}
	config.AppConfig.JWT.Secret = "unit-test-secret"
	config.AppConfig.JWT.TTL = 30

	token, err := GenerateToken("user-1", "user@example.com", "user")
	require.NoError(t, err)

	_, err = ParseToken(token + "x")
	assert.Error(t, err)

	config.AppConfig.JWT.Secret = "a-different-secret"
	_, err = ParseToken(token)
	assert.Error(t, err)
}
