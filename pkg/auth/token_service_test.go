package auth

import (
	"testing"
	"time"

	"github.com/resumeforge/resumeforge/pkg/kernel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := NewTokenService("test-secret", "resumeforge")

	token, err := svc.GenerateAccessToken(
		kernel.NewUserID("user-1"),
		kernel.Email("ada@example.com"),
		RoleUser,
		time.Hour,
	)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "ada@example.com", claims.Email)
	assert.Equal(t, RoleUser, claims.Role)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-a", "resumeforge")
	verifier := NewTokenService("secret-b", "resumeforge")

	token, err := issuer.GenerateAccessToken(kernel.NewUserID("user-1"), "a@b.c", RoleUser, time.Hour)
	require.NoError(t, err)

	_, err = verifier.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestValidateRejectsWrongIssuer(t *testing.T) {
	issuer := NewTokenService("test-secret", "someone-else")
	verifier := NewTokenService("test-secret", "resumeforge")

	token, err := issuer.GenerateAccessToken(kernel.NewUserID("user-1"), "a@b.c", RoleUser, time.Hour)
	require.NoError(t, err)

	_, err = verifier.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	svc := NewTokenService("test-secret", "resumeforge")

	token, err := svc.GenerateAccessToken(kernel.NewUserID("user-1"), "a@b.c", RoleAdmin, -time.Minute)
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestValidateRejectsGarbage(t *testing.T) {
	svc := NewTokenService("test-secret", "resumeforge")

	_, err := svc.ValidateAccessToken("not-a-jwt")
	assert.Error(t, err)
}
