// MovieSense - Content-Based Movie Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviesense

package api

import (
	"hash/fnv"
	"net/http"
	"strconv"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/moviesense/internal/logging"
	"github.com/tomtom215/moviesense/internal/models"
	"github.com/tomtom215/moviesense/internal/validation"
)

// Error codes for API responses.
const (
	ErrCodeValidation         = validation.ErrorCode
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeMethodNotAllowed   = "METHOD_NOT_ALLOWED"
	ErrCodeRateLimited        = "RATE_LIMITED"
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE"
	ErrCodeInternal           = "INTERNAL_ERROR"
)

// newMetadata stamps a response with the current time, elapsed time since
// start and the request ID.
func newMetadata(r *http.Request, start time.Time) models.Metadata {
	return models.Metadata{
		Timestamp:   time.Now().UTC(),
		QueryTimeMS: time.Since(start).Milliseconds(),
		RequestID:   logging.RequestIDFromContext(r.Context()),
	}
}

// respondJSON sends a JSON response with proper headers.
func respondJSON(w http.ResponseWriter, status int, response *models.APIResponse) {
	data, err := json.Marshal(response)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if status == http.StatusOK {
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("ETag", generateETag(response.Data))
	}
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// generateETag hashes the payload, not the envelope, so that the timestamp
// and timing metadata do not change the tag.
func generateETag(data interface{}) string {
	payload, err := json.Marshal(data)
	if err != nil {
		return ""
	}
	h := fnv.New64a()
	_, _ = h.Write(payload)
	return `W/"` + strconv.FormatUint(h.Sum64(), 16) + `"`
}

// respondSuccess wraps data in a success envelope.
func respondSuccess(w http.ResponseWriter, r *http.Request, start time.Time, data interface{}) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status:   models.StatusSuccess,
		Data:     data,
		Metadata: newMetadata(r, start),
	})
}

// respondError sends an error envelope. A non-nil err is logged with the
// request ID but never exposed to the client.
func respondError(w http.ResponseWriter, r *http.Request, status int, code, message string, err error) {
	if err != nil {
		logging.Ctx(r.Context()).Error().
			Err(err).
			Str("code", code).
			Str("path", logging.SanitizeQuery(r.URL.Path)).
			Msg("API error")
	}

	respondJSON(w, status, &models.APIResponse{
		Status: models.StatusError,
		Metadata: models.Metadata{
			Timestamp: time.Now().UTC(),
			RequestID: logging.RequestIDFromContext(r.Context()),
		},
		Error: &models.APIError{Code: code, Message: message},
	})
}

// respondValidationError sends a 400 built from failed request validation.
func respondValidationError(w http.ResponseWriter, r *http.Request, verr *validation.RequestValidationError) {
	respondJSON(w, http.StatusBadRequest, &models.APIResponse{
		Status: models.StatusError,
		Metadata: models.Metadata{
			Timestamp: time.Now().UTC(),
			RequestID: logging.RequestIDFromContext(r.Context()),
		},
		Error: &models.APIError{
			Code:    ErrCodeValidation,
			Message: verr.Error(),
			Details: verr.Details(),
		},
	})
}

// validateRequest validates req and writes a 400 when it is invalid. It
// reports whether the handler may continue.
func validateRequest(w http.ResponseWriter, r *http.Request, req interface{}) bool {
	if verr := validation.ValidateStruct(req); verr != nil {
		respondValidationError(w, r, verr)
		return false
	}
	return true
}

// intParam binds an integer query parameter to a request field.
type intParam struct {
	name string
	dest *int
}

// intParams reads integer query parameters into their destinations. Absent
// parameters leave the destination untouched. The first malformed parameter
// is reported as a 400 and false is returned.
func intParams(w http.ResponseWriter, r *http.Request, params ...intParam) bool {
	q := r.URL.Query()
	for _, p := range params {
		raw := q.Get(p.name)
		if raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			respondJSON(w, http.StatusBadRequest, &models.APIResponse{
				Status: models.StatusError,
				Metadata: models.Metadata{
					Timestamp: time.Now().UTC(),
					RequestID: logging.RequestIDFromContext(r.Context()),
				},
				Error: &models.APIError{
					Code:    ErrCodeValidation,
					Message: p.name + " must be an integer",
					Details: map[string]interface{}{"field": p.name, "tag": "integer"},
				},
			})
			return false
		}
		*p.dest = v
	}
	return true
}
