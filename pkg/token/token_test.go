package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignAndParse(t *testing.T) {
	tok, err := Sign("secret", 42, "JohnDoe", time.Hour)
	require.NoError(t, err)

	claims, err := Parse("secret", tok)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), claims.UserID)
	assert.Equal(t, "JohnDoe", claims.Username)
}

func TestParseRejects(t *testing.T) {
	tok, err := Sign("secret", 42, "JohnDoe", time.Hour)
	require.NoError(t, err)
	expired, err := Sign("secret", 42, "JohnDoe", -time.Minute)
	require.NoError(t, err)

	cases := map[string]struct{ secret, token string }{
		"wrong secret": {"other", tok},
		"expired":      {"secret", expired},
		"garbage":      {"secret", "not.a.token"},
		"empty":        {"secret", ""},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(tc.secret, tc.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
