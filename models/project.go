// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"net"
	"strconv"
)

// Configuration is an immutable snapshot of the project configuration file.
// A fresh snapshot is produced on every resolution and is never cached or
// mutated after construction.
type Configuration struct {
	// Server holds the address the HTTP server binds to at startup.
	Server ServerConfig

	// Projects maps a project name to its enabled flag.
	Projects map[string]bool
}

// ServerConfig is the bind address section of the configuration file.
type ServerConfig struct {
	Host string
	Port uint16
}

// Address returns the bind address in "host:port" form. IPv6 hosts are
// bracketed.
func (s ServerConfig) Address() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(int(s.Port)))
}
