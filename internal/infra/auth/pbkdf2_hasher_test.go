package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Tests run with a reduced work factor to keep the suite fast.
const testIterations = 1000

func TestPBKDF2Hasher_Derive(t *testing.T) {
	hasher := NewPBKDF2Hasher(testIterations)

	hash, salt, err := hasher.Derive("secret1")
	require.NoError(t, err)
	assert.Len(t, salt, saltLength)
	assert.Len(t, hash, keyLength)
	assert.NotEqual(t, []byte("secret1"), hash)
}

func TestPBKDF2Hasher_DeriveEmptyPassword(t *testing.T) {
	hasher := NewPBKDF2Hasher(testIterations)

	_, _, err := hasher.Derive("")
	assert.Error(t, err)
}

func TestPBKDF2Hasher_DeriveNeverReusesSalt(t *testing.T) {
	hasher := NewPBKDF2Hasher(testIterations)

	hash1, salt1, err := hasher.Derive("secret1")
	require.NoError(t, err)
	hash2, salt2, err := hasher.Derive("secret1")
	require.NoError(t, err)

	// Same password, fresh salt every call, so the hashes differ too.
	assert.NotEqual(t, salt1, salt2)
	assert.NotEqual(t, hash1, hash2)
}

func TestPBKDF2Hasher_Verify(t *testing.T) {
	hasher := NewPBKDF2Hasher(testIterations)

	hash, salt, err := hasher.Derive("secret1")
	require.NoError(t, err)

	assert.True(t, hasher.Verify("secret1", hash, salt))
	assert.False(t, hasher.Verify("wrong", hash, salt))
	assert.False(t, hasher.Verify("", hash, salt))
	assert.False(t, hasher.Verify("secret1", hash, nil))
	assert.False(t, hasher.Verify("secret1", nil, salt))
}

func TestPBKDF2Hasher_VerifyDependsOnSalt(t *testing.T) {
	hasher := NewPBKDF2Hasher(testIterations)

	hash, _, err := hasher.Derive("secret1")
	require.NoError(t, err)
	_, otherSalt, err := hasher.Derive("secret1")
	require.NoError(t, err)

	assert.False(t, hasher.Verify("secret1", hash, otherSalt))
}

func TestPBKDF2Hasher_DefaultIterations(t *testing.T) {
	hasher := NewPBKDF2Hasher(0).(*pbkdf2Hasher)

	assert.Equal(t, DefaultIterations, hasher.iterations)
}
