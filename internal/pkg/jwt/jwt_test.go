package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTAuthVerifiesSharedKeyTokens(t *testing.T) {
	svc := NewJWTService("test-secret")
	ja := svc.JWTAuth()
	require.NotNil(t, ja)

	_, tokenString, err := ja.Encode(map[string]interface{}{
		"user_id": "user-1",
		"role":    "admin",
	})
	require.NoError(t, err)

	token, err := ja.Decode(tokenString)
	require.NoError(t, err)

	userID, ok := token.Get("user_id")
	require.True(t, ok)
	assert.Equal(t, "user-1", userID)
}
