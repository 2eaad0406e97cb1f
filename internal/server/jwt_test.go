package server

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jonathan/career-copilot/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJWTService(expirationHours int) *JWTService {
	return NewJWTService(&config.JWTConfig{
		Secret:          "token-signing-secret-at-least-32-bytes-long!",
		ExpirationHours: expirationHours,
	})
}

func TestJWTService_RoundTrip(t *testing.T) {
	service := newJWTService(24)
	userID := uuid.New()

	token, err := service.GenerateToken(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Len(t, strings.Split(token, "."), 3, "compact JWT has three dot-separated segments")

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.NotNil(t, claims.ExpiresAt)
	assert.NotNil(t, claims.IssuedAt)
}

func TestJWTService_TokensAreUserSpecific(t *testing.T) {
	service := newJWTService(24)
	alice, bob := uuid.New(), uuid.New()

	aliceToken, err := service.GenerateToken(alice)
	require.NoError(t, err)
	bobToken, err := service.GenerateToken(bob)
	require.NoError(t, err)

	assert.NotEqual(t, aliceToken, bobToken)

	claims, err := service.ValidateToken(aliceToken)
	require.NoError(t, err)
	assert.Equal(t, alice, claims.UserID)

	claims, err = service.ValidateToken(bobToken)
	require.NoError(t, err)
	assert.Equal(t, bob, claims.UserID)
}

func TestJWTService_WrongSecretRejected(t *testing.T) {
	issuer := newJWTService(24)
	verifier := NewJWTService(&config.JWTConfig{
		Secret:          "a-completely-different-32-byte-signing-secret",
		ExpirationHours: 24,
	})

	token, err := issuer.GenerateToken(uuid.New())
	require.NoError(t, err)

	claims, err := verifier.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.Contains(t, err.Error(), "signature")
}

func TestJWTService_MalformedTokensRejected(t *testing.T) {
	service := newJWTService(24)

	for _, token := range []string{
		"",
		"one-part",
		"two.parts",
		"four.part.token.here",
		"bad.base64.payload",
	} {
		claims, err := service.ValidateToken(token)
		assert.Error(t, err, "token %q should be rejected", token)
		assert.Nil(t, claims)
	}
}

func TestJWTService_EmptyTokenError(t *testing.T) {
	service := newJWTService(24)

	_, err := service.ValidateToken("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
}

func TestJWTService_ExpiredTokenRejected(t *testing.T) {
	service := newJWTService(24)
	userID := uuid.New()

	// Sign a token that expires one second out, then outlive it.
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(1 * time.Second)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(service.config.Secret))
	require.NoError(t, err)

	fresh, err := service.ValidateToken(tokenString)
	require.NoError(t, err)
	assert.Equal(t, userID, fresh.UserID)

	time.Sleep(2 * time.Second)

	expired, err := service.ValidateToken(tokenString)
	assert.Error(t, err)
	assert.Nil(t, expired)
	assert.Contains(t, err.Error(), "expired")
}

func TestJWTService_UnexpectedSigningMethodRejected(t *testing.T) {
	service := newJWTService(24)

	// "none"-algorithm tokens must never validate.
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UserID: uuid.New()})
	tokenString, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	claims, err := service.ValidateToken(tokenString)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_ExpirationConfigurable(t *testing.T) {
	for _, hours := range []int{1, 12, 24, 168} {
		service := newJWTService(hours)
		userID := uuid.New()

		token, err := service.GenerateToken(userID)
		require.NoError(t, err)

		claims, err := service.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)

		expected := time.Now().Add(time.Duration(hours) * time.Hour)
		assert.WithinDuration(t, expected, claims.ExpiresAt.Time, time.Minute, "%d hour expiration", hours)
	}
}
