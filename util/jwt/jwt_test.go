package jwt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIssueAndParse(t *testing.T) {
	tok, err := Issue("secret", "user-1", true, 1)
	require.NoError(t, err)

	claims, err := ParseAuth("Bearer "+tok, "secret")
	require.NoError(t, err)
	require.Equal(t, "user-1", claims.UserID)
	require.True(t, claims.IsAdmin)
}

func TestParseAuth_NoBearerPrefix(t *testing.T) {
	tok, err := Issue("secret", "user-2", false, 1)
	require.NoError(t, err)

	claims, err := ParseAuth(tok, "secret")
	require.NoError(t, err)
	require.Equal(t, "user-2", claims.UserID)
	require.False(t, claims.IsAdmin)
}

func TestParseAuth_Missing(t *testing.T) {
	_, err := ParseAuth("", "secret")
	require.ErrorIs(t, err, ErrMissing)

	_, err = ParseAuth("Bearer   ", "secret")
	require.ErrorIs(t, err, ErrMissing)
}

func TestParseAuth_WrongSecret(t *testing.T) {
	tok, err := Issue("secret", "user-1", false, 1)
	require.NoError(t, err)

	_, err = ParseAuth(tok, "other-secret")
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrMissing)
}

func TestParseAuth_Garbage(t *testing.T) {
	_, err := ParseAuth("Bearer not.a.token", "secret")
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrMissing)
}
