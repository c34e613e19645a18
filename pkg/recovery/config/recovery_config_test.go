package config

import (
	"testing"

	"github.com/mr-shifu/sss-lib/core/errs"
	"github.com/mr-shifu/sss-lib/core/share"
	comm_cfg "github.com/mr-shifu/sss-lib/pkg/recovery/common/config"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecoveryConfigManager(t *testing.T) {
	mgr := NewRecoveryConfigManager(NewInMemoryConfigStore())

	cfg := NewRecoveryConfig("session-1", share.Threshold{N: 4, K: 3}, comm_cfg.ModeExact, nil)
	require.NoError(t, mgr.ImportConfig(cfg))

	got, err := mgr.GetConfig("session-1")
	require.NoError(t, err)
	assert.Equal(t, "session-1", got.ID())
	assert.Equal(t, share.Threshold{N: 4, K: 3}, got.Threshold())
	assert.Equal(t, comm_cfg.ModeExact, got.Mode())
	assert.Nil(t, got.Modulus())

	_, err = mgr.GetConfig("session-2")
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestRecoveryConfigManager_Invalid(t *testing.T) {
	store := NewInMemoryConfigStore()
	mgr := NewRecoveryConfigManager(store)

	err := mgr.ImportConfig(NewRecoveryConfig("f", share.Threshold{N: 2, K: 2}, comm_cfg.ModeField, nil))
	assert.True(t, errors.Is(err, errs.ErrInvalidModulus))

	err = mgr.ImportConfig(NewRecoveryConfig("x", share.Threshold{N: 2, K: 2}, comm_cfg.Mode("float"), nil))
	assert.True(t, errors.Is(err, ErrUnknownMode))

	err = mgr.ImportConfig(NewRecoveryConfig("", share.Threshold{N: 2, K: 2}, comm_cfg.ModeExact, nil))
	assert.True(t, errors.Is(err, ErrInvalidID))

	// "a/b" would share the vault prefix of session "a"
	err = mgr.ImportConfig(NewRecoveryConfig("a/b", share.Threshold{N: 2, K: 2}, comm_cfg.ModeExact, nil))
	assert.True(t, errors.Is(err, ErrInvalidID))
	_, err = mgr.GetConfig("a/b")
	assert.ErrorIs(t, err, ErrConfigNotFound)

	require.NoError(t, store.Import("raw", "not a config"))
	_, err = mgr.GetConfig("raw")
	assert.ErrorIs(t, err, ErrInvalidConfigType)
}

func TestParseMode(t *testing.T) {
	mode, err := ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, comm_cfg.ModeExact, mode)

	mode, err = ParseMode("FIELD")
	require.NoError(t, err)
	assert.Equal(t, comm_cfg.ModeField, mode)

	_, err = ParseMode("float")
	assert.True(t, errors.Is(err, ErrUnknownMode))
}

func TestParseModulus(t *testing.T) {
	m, err := ParseModulus("2147483647")
	require.NoError(t, err)
	assert.Equal(t, "2147483647", m.Big().String())

	m, err = ParseModulus("0x7fffffff")
	require.NoError(t, err)
	assert.Equal(t, "2147483647", m.Big().String())

	for _, s := range []string{"", "abc", "1", "0", "-7", "1024"} {
		_, err = ParseModulus(s)
		assert.True(t, errors.Is(err, errs.ErrInvalidModulus), s)
	}
}
