// Package http implements the HTTP transport layer of ks-server.
//
// It exposes the single lookup route (POST /), the request decoding and
// validation that runs before the service layer, the mapping of lookup
// outcomes to status codes, and the middleware chain: panic recovery,
// request tracing, access logging, and cache suppression. Every response is
// sent without a body.
package http
