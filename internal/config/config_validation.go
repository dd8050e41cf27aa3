// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks invariants shared by every binary.
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || cfg.Storage.HistorySize <= 0 {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.App.LogFile == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}

func (cfg *FixtureServerConfig) validate() error {
	if cfg.HTTPAddress == "" || cfg.Users < 0 || cfg.BrokenEvery < 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}
