// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || cfg.Storage.DB.MaxOpenConns < 0 {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout < 0 || cfg.Server.ShutdownTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	// the bootstrap admin needs both halves of its credentials
	if (cfg.App.AdminName == "") != (cfg.App.AdminPassword == "") {
		return ErrInvalidAppConfigs
	}

	return nil
}
