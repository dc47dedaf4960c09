// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Defaults applied for every field that no other source has set.
const (
	DefaultHTTPAddress      = "127.0.0.1:80"
	DefaultRequestTimeout   = 30 * time.Second
	DefaultStaticDir        = "./static"
	DefaultRateLimitBurst   = 20
	DefaultLogLevel         = "info"
	DefaultMaxOpenConns     = 10
	DefaultMaxIdleConns     = 4
	DefaultConnMaxLifetime  = 5 * time.Minute
	DefaultBlockingPoolSize = 16
	DefaultAcquireTimeout   = 5 * time.Second
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel: DefaultLogLevel,
		},
		Storage: Storage{
			DB: DB{
				MaxOpenConns:    DefaultMaxOpenConns,
				MaxIdleConns:    DefaultMaxIdleConns,
				ConnMaxLifetime: DefaultConnMaxLifetime,
			},
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
			StaticDir:      DefaultStaticDir,
			RateLimitBurst: DefaultRateLimitBurst,
		},
		Workers: Workers{
			BlockingPoolSize: DefaultBlockingPoolSize,
			AcquireTimeout:   DefaultAcquireTimeout,
		},
	}
}
