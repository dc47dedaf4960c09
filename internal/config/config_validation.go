// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is empty", ErrInvalidStorageConfigs)
	}
	if cfg.Storage.DB.MaxOpenConns <= 0 || cfg.Storage.DB.MaxIdleConns < 0 {
		return fmt.Errorf("%w: pool limits must be positive", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: http address is empty", ErrInvalidServerConfigs)
	}
	if cfg.Server.RateLimitRPS < 0 || cfg.Server.RateLimitBurst < 0 {
		return fmt.Errorf("%w: rate limit must not be negative", ErrInvalidServerConfigs)
	}

	if cfg.Workers.BlockingPoolSize <= 0 {
		return fmt.Errorf("%w: blocking pool size must be positive", ErrInvalidWorkerConfigs)
	}

	if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
	}

	return nil
}
