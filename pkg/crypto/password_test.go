package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("hunter2!")
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "hunter2!", hash)

	assert.True(t, CheckPassword("hunter2!", hash))
	assert.False(t, CheckPassword("hunter3!", hash))
}

func TestHashPassword_UniqueSalts(t *testing.T) {
	a, err := HashPassword("same-password")
	assert.NoError(t, err)
	b, err := HashPassword("same-password")
	assert.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	assert.False(t, CheckPassword("anything", "not-a-bcrypt-hash"))
}

func TestGenerateRandomToken(t *testing.T) {
	token, err := GenerateRandomToken(16)
	assert.NoError(t, err)
	// hex encoding doubles the byte length
	assert.Len(t, token, 32)

	other, err := GenerateRandomToken(16)
	assert.NoError(t, err)
	assert.NotEqual(t, token, other)

	long, err := GenerateRandomToken(32)
	assert.NoError(t, err)
	assert.Len(t, long, 64)
}
