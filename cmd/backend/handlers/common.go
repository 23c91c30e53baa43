package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/hairizuan-noorazman/jobly/logger"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// DeletedResponse reports the key of a removed record.
type DeletedResponse struct {
	Deleted string `json:"deleted"`
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError writes an error response with the given status code.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondInternalError logs err and writes a generic 500 response.
func respondInternalError(w http.ResponseWriter, r *http.Request, log logger.Logger, msg string, err error, fields map[string]interface{}) {
	if fields == nil {
		fields = make(map[string]interface{})
	}
	fields["error"] = err.Error()
	log.Error(r.Context(), msg, fields)
	respondError(w, http.StatusInternalServerError, "internal server error")
}

// parseJSON decodes the request body into dest. Fields that dest does not
// declare are rejected, as is an empty body or trailing data.
func parseJSON(r *http.Request, dest interface{}, log logger.Logger) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dest); err != nil {
		if errors.Is(err, io.EOF) {
			err = errors.New("request body is required")
		}
		log.Warn(r.Context(), "failed to parse JSON", map[string]interface{}{
			"error": err.Error(),
			"path":  r.URL.Path,
		})
		return err
	}
	if dec.More() {
		return errors.New("request body must contain a single JSON object")
	}
	return nil
}

// queryInt reads an optional integer query parameter.
func queryInt(r *http.Request, name string) (*int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%s must be an integer", name)
	}
	return &n, nil
}

// queryBool reads an optional boolean query parameter. A missing parameter is false.
func queryBool(r *http.Request, name string) (bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%s must be true or false", name)
	}
	return b, nil
}

// rejectUnknownQuery writes a 400 and returns false when the query string
// carries a parameter outside allowed.
func rejectUnknownQuery(w http.ResponseWriter, r *http.Request, allowed ...string) bool {
	known := make(map[string]bool, len(allowed))
	for _, a := range allowed {
		known[a] = true
	}
	for name := range r.URL.Query() {
		if !known[name] {
			respondError(w, http.StatusBadRequest, fmt.Sprintf("unknown query parameter %q", name))
			return false
		}
	}
	return true
}

// Optional is a JSON field that records whether it was present in the body.
// A present null leaves Value nil with Set true.
type Optional[T any] struct {
	Set   bool
	Value *T
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}

// NotFound answers unmatched routes with a JSON 404.
func NotFound(w http.ResponseWriter, r *http.Request) {
	respondError(w, http.StatusNotFound, "not found")
}

// MethodNotAllowed answers known paths hit with the wrong verb.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	respondError(w, http.StatusMethodNotAllowed, "method not allowed")
}
