// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "net/http"

// notFound answers every request that does not hit the lookup route,
// including a known path with an unsupported method, with an empty
// 404 Not Found. Chi would otherwise reply 405 for the latter and expose
// which paths exist.
func notFound(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNotFound)
}
