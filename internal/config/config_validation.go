// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants the server relies on before it is used at startup.
//
// Returns nil if the configuration is valid, or one of the Err*Configs
// sentinels wrapped with a description otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: JWT_SECRET is required", ErrInvalidAppConfigs)
	}

	if cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token duration must be positive", ErrInvalidAppConfigs)
	}

	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("%w: port %d is out of range", ErrInvalidServerConfigs, cfg.Server.Port)
	}

	if cfg.Server.RequestTimeout < 0 {
		return fmt.Errorf("%w: request timeout must not be negative", ErrInvalidServerConfigs)
	}

	if cfg.Workers.HealthProbeInterval <= 0 {
		return fmt.Errorf("%w: health probe interval must be positive", ErrInvalidWorkerConfigs)
	}

	return cfg.validateStorage()
}

func (cfg *StructuredConfig) validateStorage() error {
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: DATABASE_URL is required", ErrInvalidStorageConfigs)
	}

	return nil
}
