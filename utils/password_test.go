package utils_test

import (
	"testing"

	"pds-backend/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := utils.HashPassword("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)

	assert.True(t, utils.CheckPassword(hash, "secret123"))
	assert.False(t, utils.CheckPassword(hash, "secret124"))
	assert.False(t, utils.CheckPassword("not-a-hash", "secret123"))
}
