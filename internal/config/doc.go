// Package config provides configuration loading, merging, and validation
// facilities for the ks-server process and its client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. JSON process configuration file (CONFIG_JSON / -config-json)
//  3. Environment variables
//  4. Command-line flags
//
// This is process configuration only. The project mapping lives in a YAML
// file located by [Projects.ConfigFile] and is resolved by the service layer
// on every request.
//
// The main entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the client.
package config
