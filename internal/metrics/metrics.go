// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics holds the Prometheus collectors exported by ks-server.
// Collectors are registered with the default registry on import and are
// served by the optional metrics listener.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Label values of [ConfigResolutions].
const (
	ResolutionOK         = "ok"
	ResolutionReadError  = "read_error"
	ResolutionParseError = "parse_error"
)

// OutcomeConfigError is the [ProjectLookups] label value for lookups that
// failed because the configuration could not be resolved.
const OutcomeConfigError = "config_error"

var (
	// ProjectLookups counts answered lookups by outcome
	ProjectLookups = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ks_project_lookups_total",
		Help: "The total number of project lookups by outcome",
	}, []string{"outcome"})

	// ConfigResolutions counts configuration resolutions by result
	ConfigResolutions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ks_config_resolutions_total",
		Help: "The total number of configuration file resolutions by result",
	}, []string{"result"})

	// ConfigResolutionDuration is the time it takes to read and parse the configuration file
	ConfigResolutionDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "ks_config_resolution_duration_seconds",
		Help:    "The time (in seconds) it takes to read and parse the configuration file",
		Buckets: prometheus.ExponentialBuckets(0.0001, 2, 12),
	})

	// RejectedRequests counts requests rejected before lookup
	RejectedRequests = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "ks_rejected_requests_total",
		Help: "The total number of lookup requests rejected as malformed",
	})
)

func init() {
	prometheus.MustRegister(ProjectLookups)
	prometheus.MustRegister(ConfigResolutions)
	prometheus.MustRegister(ConfigResolutionDuration)
	prometheus.MustRegister(RejectedRequests)
}
