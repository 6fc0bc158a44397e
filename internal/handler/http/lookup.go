package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"unicode/utf8"

	"github.com/MKhiriev/ks-server/internal/logger"
	"github.com/MKhiriev/ks-server/internal/metrics"
	"github.com/MKhiriev/ks-server/internal/validators"
	"github.com/MKhiriev/ks-server/models"
)

const maxLookupBodySize = 1 << 20

func (h *Handler) checkProject(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	req, err := decodeLookupRequest(w, r)
	if err == nil {
		err = h.validator.Validate(ctx, req)
	}
	if err != nil {
		log.Warn().Err(err).Msg("lookup request rejected")
		metrics.RejectedRequests.Inc()
		writeResponse(w, models.ResponseDescriptor{StatusCode: statusFromError(err)})
		return
	}

	outcome, err := h.services.ProjectService.CheckProject(ctx, req.Name)
	if err != nil {
		log.Err(err).Str("project", req.Name).Msg("unable to resolve projects config")
		metrics.ProjectLookups.WithLabelValues(metrics.OutcomeConfigError).Inc()
	} else {
		log.Debug().Str("project", req.Name).Stringer("outcome", outcome).Msg("project looked up")
		metrics.ProjectLookups.WithLabelValues(outcome.String()).Inc()
	}

	writeResponse(w, responseFor(outcome, err))
}

func decodeLookupRequest(w http.ResponseWriter, r *http.Request) (models.LookupRequest, error) {
	var req models.LookupRequest

	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mediaType != "application/json" {
		return req, ErrUnsupportedContentType
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxLookupBodySize))
	if err != nil {
		return req, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	name, err := decodeNameField(body)
	if err != nil {
		return req, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	req.Name = name

	return req, nil
}

// decodeNameField reads a single JSON object and returns its "name" member.
// Keys match exactly, duplicate keys and invalid UTF-8 are rejected, and
// members other than "name" are skipped.
func decodeNameField(body []byte) (string, error) {
	if !utf8.Valid(body) {
		return "", errInvalidUTF8
	}

	decoder := json.NewDecoder(bytes.NewReader(body))

	tok, err := decoder.Token()
	if err != nil {
		return "", err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return "", errNotAnObject
	}

	var (
		name  string
		found bool
		seen  = make(map[string]struct{})
	)
	for decoder.More() {
		tok, err = decoder.Token()
		if err != nil {
			return "", err
		}
		key := tok.(string)

		if _, dup := seen[key]; dup {
			return "", fmt.Errorf("%w `%s`", errDuplicateField, key)
		}
		seen[key] = struct{}{}

		var value json.RawMessage
		if err = decoder.Decode(&value); err != nil {
			return "", err
		}
		if key != validators.FieldName {
			continue
		}

		if bytes.Equal(value, []byte("null")) {
			return "", fmt.Errorf("%w: `%s` is null", errInvalidFieldType, key)
		}
		if err = json.Unmarshal(value, &name); err != nil {
			return "", fmt.Errorf("%w: %w", errInvalidFieldType, err)
		}
		found = true
	}

	// closing '}'
	if _, err = decoder.Token(); err != nil {
		return "", err
	}

	// a single JSON value is expected
	if _, err = decoder.Token(); !errors.Is(err, io.EOF) {
		return "", errTrailingData
	}

	if !found {
		return "", fmt.Errorf("%w `%s`", errMissingField, validators.FieldName)
	}

	return name, nil
}

// writeResponse sends the descriptor's status with an empty body. A response
// that is not cacheable carries the no-cache header set.
func writeResponse(w http.ResponseWriter, resp models.ResponseDescriptor) {
	if !resp.Cacheable {
		for header, value := range noCacheHeaders {
			w.Header().Set(header, value)
		}
	}
	w.WriteHeader(resp.StatusCode)
}
