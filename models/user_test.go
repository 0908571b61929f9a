package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserPasswordHashing(t *testing.T) {
	user := &User{Email: "admin@nautilus.com"}
	require.NoError(t, user.SetPassword("Sicher123!"))

	assert.NotEqual(t, "Sicher123!", user.PasswordHash, "password is never stored in plaintext")
	assert.True(t, user.CheckPassword("Sicher123!"))
	assert.False(t, user.CheckPassword("sicher123!"))
	assert.False(t, user.CheckPassword(""))
}
