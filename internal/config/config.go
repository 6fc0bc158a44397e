// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level process configuration for ks-server and
// its client. It says where the project configuration file lives and how the
// transport, metrics, and logging behave. The project mapping itself is not
// part of it: that is re-read from [Projects.ConfigFile] on every request.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Projects locates the YAML file with the server bind address and the
	// project mapping.
	Projects Projects `envPrefix:"PROJECTS_"`

	// Server holds timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Metrics holds the optional Prometheus listener settings.
	Metrics Metrics `envPrefix:"METRICS_"`

	// Log holds logger settings.
	Log Log `envPrefix:"LOG_"`

	// Adapter holds settings used by the client to reach a running server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Client holds settings of the command-line client.
	Client Client `envPrefix:"CLIENT_"`

	// JSONFilePath is the optional path to a JSON process configuration file.
	// It is not the project mapping file (see [Projects.ConfigFile]).
	// Env: CONFIG_JSON
	JSONFilePath string `env:"CONFIG_JSON"`
}

// Projects locates the project configuration file.
type Projects struct {
	// ConfigFile is the path to the YAML file holding the server section and
	// the project mapping. It is read once at startup for the bind address
	// and once more on every lookup request.
	// Env: PROJECTS_CONFIG_FILE
	ConfigFile string `env:"CONFIG_FILE"`
}

// Server holds timeout settings for the inbound HTTP transport. The bind
// address is not here; it comes from the project configuration file.
type Server struct {
	// ReadTimeout is the maximum duration for reading an entire request.
	// Env: SERVER_READ_TIMEOUT
	ReadTimeout time.Duration `env:"READ_TIMEOUT"`

	// WriteTimeout is the maximum duration before timing out writes of the
	// response.
	// Env: SERVER_WRITE_TIMEOUT
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT"`

	// IdleTimeout is the maximum time to wait for the next request on a
	// keep-alive connection.
	// Env: SERVER_IDLE_TIMEOUT
	IdleTimeout time.Duration `env:"IDLE_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown after a stop signal.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Metrics holds the Prometheus listener settings.
type Metrics struct {
	// Address is the "host:port" the metrics listener binds to. Empty
	// disables the listener.
	// Env: METRICS_ADDRESS
	Address string `env:"ADDRESS"`
}

// Log holds logger settings.
type Log struct {
	// Level is a zerolog level name ("debug", "info", "warn", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// Adapter holds settings of the outbound HTTP client.
type Adapter struct {
	// ServerURL is the base URL of a running ks-server
	// (e.g. "http://127.0.0.1:8000").
	// Env: ADAPTER_SERVER_URL
	ServerURL string `env:"SERVER_URL"`

	// RequestTimeout bounds a single lookup request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Client holds settings of the command-line client.
type Client struct {
	// ProjectName is the project to look up.
	// Env: CLIENT_PROJECT_NAME
	ProjectName string `env:"PROJECT_NAME"`
}

// GetStructuredConfig loads, merges, and validates the process configuration
// from all available sources in the following priority order (last source
// wins for non-zero fields):
//  1. Built-in defaults
//  2. JSON file (path resolved from env and flags)
//  3. Environment variables
//  4. Command-line flags parsed from args
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
