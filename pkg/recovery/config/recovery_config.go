package config

import (
	"math/big"
	"strings"

	"github.com/cronokirby/saferith"
	"github.com/mr-shifu/sss-lib/core/errs"
	"github.com/mr-shifu/sss-lib/core/share"
	comm_cfg "github.com/mr-shifu/sss-lib/pkg/recovery/common/config"
	"github.com/pkg/errors"
)

var (
	ErrUnknownMode = errors.New("config: unknown mode")
	ErrInvalidID   = errors.New("config: invalid session ID")
)

type RecoveryConfig struct {
	id        string
	threshold share.Threshold
	mode      comm_cfg.Mode
	modulus   *saferith.Modulus
}

var _ comm_cfg.RecoveryConfig = (*RecoveryConfig)(nil)

func NewRecoveryConfig(
	id string,
	threshold share.Threshold,
	mode comm_cfg.Mode,
	modulus *saferith.Modulus,
) *RecoveryConfig {
	return &RecoveryConfig{
		id:        id,
		threshold: threshold,
		mode:      mode,
		modulus:   modulus,
	}
}

func (c *RecoveryConfig) ID() string {
	return c.id
}

func (c *RecoveryConfig) Threshold() share.Threshold {
	return c.threshold
}

func (c *RecoveryConfig) Mode() comm_cfg.Mode {
	return c.mode
}

func (c *RecoveryConfig) Modulus() *saferith.Modulus {
	return c.modulus
}

// Validate checks that the mode is known and that field mode carries a
// modulus. Session IDs must be non-empty and free of '/', which separates the
// session from the share key in vault IDs.
func Validate(c comm_cfg.RecoveryConfig) error {
	if c.ID() == "" || strings.Contains(c.ID(), "/") {
		return errors.WithMessagef(ErrInvalidID, "%q", c.ID())
	}

	switch c.Mode() {
	case comm_cfg.ModeExact:
		return nil
	case comm_cfg.ModeField:
		if c.Modulus() == nil {
			return errs.WithKey(errs.InvalidModulus, "modulus", "field mode needs a modulus")
		}
		return nil
	}
	return errors.WithMessage(ErrUnknownMode, string(c.Mode()))
}

// ParseMode maps a mode name to a Mode, exact when name is empty.
func ParseMode(name string) (comm_cfg.Mode, error) {
	switch comm_cfg.Mode(strings.ToLower(name)) {
	case "", comm_cfg.ModeExact:
		return comm_cfg.ModeExact, nil
	case comm_cfg.ModeField:
		return comm_cfg.ModeField, nil
	}
	return "", errors.WithMessage(ErrUnknownMode, name)
}

// ParseModulus reads a decimal or 0x-prefixed hexadecimal modulus. It must be
// odd and greater than one.
func ParseModulus(s string) (*saferith.Modulus, error) {
	m, ok := new(big.Int).SetString(strings.TrimSpace(s), 0)
	if !ok {
		return nil, errs.WithKey(errs.InvalidModulus, "modulus", "not an integer")
	}
	if m.Cmp(big.NewInt(1)) <= 0 || m.Bit(0) == 0 {
		return nil, errs.WithKey(errs.InvalidModulus, "modulus", "must be odd and greater than 1")
	}
	return saferith.ModulusFromNat(new(saferith.Nat).SetBig(m, m.BitLen())), nil
}
