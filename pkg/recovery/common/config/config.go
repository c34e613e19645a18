package config

import (
	"github.com/cronokirby/saferith"
	"github.com/mr-shifu/sss-lib/core/share"
)

// Mode selects the arithmetic of a reconstruction.
type Mode string

const (
	// ModeExact interpolates over the rationals and requires an integral result.
	ModeExact Mode = "exact"
	// ModeField interpolates modulo a prime.
	ModeField Mode = "field"
)

type RecoveryConfig interface {
	ID() string
	Threshold() share.Threshold
	Mode() Mode
	// Modulus is nil in exact mode.
	Modulus() *saferith.Modulus
}

type ConfigStore interface {
	Import(ID string, config interface{}) error
	Get(ID string) (interface{}, error)
}

type RecoveryConfigManager interface {
	ImportConfig(config RecoveryConfig) error
	GetConfig(ID string) (RecoveryConfig, error)
}
