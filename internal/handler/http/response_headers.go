package http

import (
	"net/http"
	"time"
)

// noCacheHeaders mirrors the header set of chi's middleware.NoCache, which
// the router applies to every response including 404s.
var noCacheHeaders = map[string]string{
	"Expires":         time.Unix(0, 0).UTC().Format(http.TimeFormat),
	"Cache-Control":   "no-cache, no-store, no-transform, must-revalidate, private, max-age=0",
	"Pragma":          "no-cache",
	"X-Accel-Expires": "0",
}
