/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package rest

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Message string `json:"message"`
	Details string `json:"details"`
}

// SuccessResponse is the body of a successful submit
type SuccessResponse struct {
	Result  string `json:"result"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, r *http.Request, code int, v interface{}) {
	body, err := json.Marshal(v)
	if err != nil {
		logger.Errorw("failed to marshal response", "error", err, "correlationID", CorrelationID(r.Context()))
		code = http.StatusInternalServerError
		body = []byte(`{"message":"An unexpected error occurred during response serialization","details":""}`)
	}
	writeRaw(w, r, code, body)
}

func writeRaw(w http.ResponseWriter, r *http.Request, code int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(body); err != nil {
		logger.Warnw("failed to write response", "error", err, "correlationID", CorrelationID(r.Context()))
	}
}

func writeError(w http.ResponseWriter, r *http.Request, code int, message, details string) {
	logger.Errorw("request failed", "status", code, "message", message, "details", details,
		"correlationID", CorrelationID(r.Context()))
	writeJSON(w, r, code, &ErrorResponse{Message: message, Details: details})
}
