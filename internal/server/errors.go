// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoHandlers      = errors.New("no handlers provided for server")
	errNoServerAddress = errors.New("no address to bind the server to")
)
