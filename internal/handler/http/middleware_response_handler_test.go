// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResponseWriter() (*responseWriter, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	return &responseWriter{ResponseWriter: rec}, rec
}

// ── WriteHeader ─────────────────────────────────────────────────────────────

func TestResponseWriter_WriteHeader(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
	}{
		{"204 No Content", http.StatusNoContent},
		{"402 Payment Required", http.StatusPaymentRequired},
		{"404 Not Found", http.StatusNotFound},
		{"500 Internal Server Error", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, rec := newResponseWriter()

			w.WriteHeader(tt.statusCode)

			assert.Equal(t, tt.statusCode, w.status)
			assert.Equal(t, tt.statusCode, w.statusCode())
			assert.True(t, w.wroteHeader)
			assert.Equal(t, tt.statusCode, rec.Code)
		})
	}
}

func TestResponseWriter_WriteHeader_OnlyFirstCallWins(t *testing.T) {
	w, rec := newResponseWriter()

	w.WriteHeader(http.StatusNoContent)
	w.WriteHeader(http.StatusInternalServerError)

	assert.Equal(t, http.StatusNoContent, w.statusCode())
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

// ── Write ───────────────────────────────────────────────────────────────────

func TestResponseWriter_Write_ImplicitOK(t *testing.T) {
	w, rec := newResponseWriter()

	n, err := w.Write([]byte("abc"))
	require.NoError(t, err)

	assert.Equal(t, 3, n)
	assert.Equal(t, http.StatusOK, w.statusCode())
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "abc", rec.Body.String())
}

func TestResponseWriter_Write_AccumulatesSize(t *testing.T) {
	w, _ := newResponseWriter()

	_, _ = w.Write([]byte("abc"))
	_, _ = w.Write([]byte("defgh"))

	assert.Equal(t, 8, w.size)
}

func TestResponseWriter_StatusCode_NothingWritten(t *testing.T) {
	w, _ := newResponseWriter()

	assert.False(t, w.wroteHeader)
	assert.Equal(t, http.StatusOK, w.statusCode())
}
