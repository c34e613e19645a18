package config

import (
	"errors"

	comm_cfg "github.com/mr-shifu/sss-lib/pkg/recovery/common/config"
)

var ErrInvalidConfigType = errors.New("config: invalid config type")

type RecoveryConfigManager struct {
	store comm_cfg.ConfigStore
}

func NewRecoveryConfigManager(store comm_cfg.ConfigStore) comm_cfg.RecoveryConfigManager {
	return &RecoveryConfigManager{
		store: store,
	}
}

func (mgr *RecoveryConfigManager) ImportConfig(config comm_cfg.RecoveryConfig) error {
	cfg, ok := config.(*RecoveryConfig)
	if !ok {
		return ErrInvalidConfigType
	}
	if err := Validate(cfg); err != nil {
		return err
	}

	return mgr.store.Import(config.ID(), cfg)
}

func (mgr *RecoveryConfigManager) GetConfig(ID string) (comm_cfg.RecoveryConfig, error) {
	cfg, err := mgr.store.Get(ID)
	if err != nil {
		return nil, err
	}

	rcfg, ok := cfg.(*RecoveryConfig)
	if !ok {
		return nil, ErrInvalidConfigType
	}

	return rcfg, nil
}
