// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// LookupRequest is the JSON body of a project lookup.
type LookupRequest struct {
	// Name is the project name to look up. Must be non-empty.
	Name string `json:"name"`
}

// Outcome is the classification of a project name against the project
// mapping.
type Outcome int

const (
	// OutcomeUnknown means the name is absent from the mapping.
	OutcomeUnknown Outcome = iota
	// OutcomeEnabled means the name is present and its flag is true.
	OutcomeEnabled
	// OutcomeDisabled means the name is present and its flag is false.
	OutcomeDisabled
)

func (o Outcome) String() string {
	switch o {
	case OutcomeEnabled:
		return "enabled"
	case OutcomeDisabled:
		return "disabled"
	case OutcomeUnknown:
		return "unknown"
	default:
		return "invalid"
	}
}

// ResponseDescriptor is the transport-independent answer to a lookup.
type ResponseDescriptor struct {
	// StatusCode is the HTTP status code to send.
	StatusCode int

	// Cacheable reports whether downstream caches may store the response.
	// It is false for every lookup.
	Cacheable bool
}
