package httpvalidate

import (
	"encoding/json"
	"net/http"

	"github.com/dmitrymomot/freeval/pkg/validator"
)

// ErrorResponse is the JSON envelope written for rejected requests.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail describes why a request was rejected.
type ErrorDetail struct {
	Code      string              `json:"code,omitempty"`
	Message   string              `json:"message,omitempty"`
	Details   map[string][]string `json:"details,omitempty"`
	RequestID string              `json:"request_id,omitempty"`
}

// ErrorWriter renders a rejected request. errs is nil when the request could
// not be read, as opposed to failing validation.
type ErrorWriter func(w http.ResponseWriter, r *http.Request, status int, detail ErrorDetail, errs validator.Errors)

// WriteJSONError is the default ErrorWriter.
func WriteJSONError(w http.ResponseWriter, r *http.Request, status int, detail ErrorDetail, errs validator.Errors) {
	if len(errs) > 0 {
		detail.Details = errs
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: detail})
}
