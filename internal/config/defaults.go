// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Default values applied before environment variables and flags.
const (
	DefaultConfigFile      = "./config.yml"
	DefaultLogLevel        = "info"
	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 10 * time.Second
	DefaultServerURL       = "http://127.0.0.1:8000"
	DefaultRequestTimeout  = 15 * time.Second
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Projects: Projects{
			ConfigFile: DefaultConfigFile,
		},
		Server: Server{
			ReadTimeout:     DefaultReadTimeout,
			WriteTimeout:    DefaultWriteTimeout,
			IdleTimeout:     DefaultIdleTimeout,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		Log: Log{
			Level: DefaultLogLevel,
		},
		Adapter: Adapter{
			ServerURL:      DefaultServerURL,
			RequestTimeout: DefaultRequestTimeout,
		},
	}
}
