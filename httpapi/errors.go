package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
)

// apiError is the JSON body of every non-2xx response.
type apiError struct {
	Error string `json:"error"`
}

// writeJSON encodes body as the response. A failure here is a
// SerializationError: internal-only, logged, with no way to retarget
// the status code since the header is already committed.
func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error().Err(err).Msg("httpapi: serialization error writing response body")
	}
}

// validationError surfaces a ValidationError as a 4xx response: bad
// query parameters, never a crash.
func validationError(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, apiError{Error: message})
}

// upstreamError surfaces a failed or malformed upstream route-planner
// call as a 5xx response.
func upstreamError(w http.ResponseWriter, err error) {
	log.Error().Err(err).Msg("httpapi: upstream route-planner call failed")
	writeJSON(w, http.StatusBadGateway, apiError{Error: "upstream route planner unavailable"})
}

// disabledError surfaces a handler disabled by missing configuration
// (no NS_API_KEY) as a 503 response.
func disabledError(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusServiceUnavailable, apiError{Error: message})
}
