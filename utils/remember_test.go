package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRememberTokenRoundTrip(t *testing.T) {
	token, err := GenerateRememberToken(42, "secret")
	require.NoError(t, err)

	userID, err := ValidateRememberToken(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestRememberTokenRejectsWrongSecret(t *testing.T) {
	token, err := GenerateRememberToken(42, "secret")
	require.NoError(t, err)

	_, err = ValidateRememberToken(token, "other-secret")
	assert.Error(t, err)
}

func TestRememberTokenRejectsGarbage(t *testing.T) {
	_, err := ValidateRememberToken("not-a-token", "secret")
	assert.Error(t, err)
}
