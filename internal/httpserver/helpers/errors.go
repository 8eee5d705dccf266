package helpers

import (
	"encoding/json"
	"net/http"
)

// Standard error responses.
var (
	ErrInvalidJSON        = &HTTPError{Code: "invalid_json", Message: "Invalid JSON format", Status: http.StatusBadRequest}
	ErrBadRequest         = &HTTPError{Code: "bad_request", Message: "Bad request", Status: http.StatusBadRequest}
	ErrUnauthorized       = &HTTPError{Code: "unauthorized", Message: "Unauthorized", Status: http.StatusUnauthorized}
	ErrNotFound           = &HTTPError{Code: "not_found", Message: "Not found", Status: http.StatusNotFound}
	ErrConflict           = &HTTPError{Code: "conflict", Message: "Conflict", Status: http.StatusConflict}
	ErrInternal           = &HTTPError{Code: "internal_error", Message: "Internal server error", Status: http.StatusInternalServerError}
	ErrStoreUnavailable   = &HTTPError{Code: "store_error", Message: "Bookmark store request failed", Status: http.StatusBadGateway}
	ErrValidationFailed   = &HTTPError{Code: "validation_failed", Message: "Validation failed", Status: http.StatusUnprocessableEntity}
	ErrInvalidCredentials = &HTTPError{Code: "invalid_credentials", Message: "Invalid email or password", Status: http.StatusUnauthorized}
)

// HTTPError is the API error envelope.
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
	Fields  any    `json:"fields,omitempty"`
	Status  int    `json:"-"`
}

func (e *HTTPError) Error() string {
	if e.Detail != "" {
		return e.Message + ": " + e.Detail
	}
	return e.Message
}

// WithDetail returns a copy of the error with specific details. Store
// errors pass their message through verbatim this way.
func (e *HTTPError) WithDetail(detail string) *HTTPError {
	return &HTTPError{
		Code:    e.Code,
		Message: e.Message,
		Detail:  detail,
		Status:  e.Status,
	}
}

// WithFields returns a copy of the error carrying per-field failures.
func (e *HTTPError) WithFields(fields any) *HTTPError {
	return &HTTPError{
		Code:    e.Code,
		Message: e.Message,
		Fields:  fields,
		Status:  e.Status,
	}
}

// WriteError writes the error to the response writer.
func WriteError(w http.ResponseWriter, err error) {
	httpErr, ok := err.(*HTTPError)
	if !ok {
		httpErr = ErrInternal
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(httpErr.Status)
	_ = json.NewEncoder(w).Encode(httpErr)
}

// WriteJSON writes a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// DecodeJSON decodes a request body, rejecting unknown fields.
func DecodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return ErrInvalidJSON.WithDetail(err.Error())
	}
	return nil
}
