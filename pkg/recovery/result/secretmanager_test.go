package result

import (
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecretManager(t *testing.T) {
	mgr := NewSecretManager(NewInMemorySecretStore())

	fp := []byte{1, 2, 3}
	s, err := mgr.NewSecret("s1", big.NewInt(3), fp)
	require.NoError(t, err)
	assert.Equal(t, "s1", s.ID())
	assert.Equal(t, "3", s.Value().String())

	got, err := mgr.Get("s1")
	require.NoError(t, err)
	assert.Equal(t, s, got)

	// a second session with the same inputs keeps the first as cache entry
	_, err = mgr.NewSecret("s2", big.NewInt(3), fp)
	require.NoError(t, err)
	cached, err := mgr.Lookup(fp)
	require.NoError(t, err)
	assert.Equal(t, "s1", cached.ID())

	_, err = mgr.Lookup([]byte{9})
	assert.ErrorIs(t, err, ErrSecretNotFound)
	_, err = mgr.Get("s3")
	assert.ErrorIs(t, err, ErrSecretNotFound)
}

func TestSecret(t *testing.T) {
	v := big.NewInt(3)
	fp := []byte{7}
	s := NewSecret("s1", v, fp)
	v.SetInt64(4)
	fp[0] = 8

	assert.Equal(t, "3", s.Value().String())
	assert.Equal(t, []byte{7}, s.Fingerprint())
	s.Value().SetInt64(5)
	assert.Equal(t, "3", s.Value().String())

	digest, err := hex.DecodeString("1bf0b26eb2090599dd68cbb42c86a674cb07ab7adc103ad3ccdf521bb79056b9")
	require.NoError(t, err)
	assert.Equal(t, digest, s.Digest())
	assert.True(t, s.Verify(digest))
	digest[0] ^= 1
	assert.False(t, s.Verify(digest))
	assert.False(t, s.Verify(nil))
}
