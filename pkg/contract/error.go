// Package contract declares every API-facing shape of the directory
// service: create and update inputs, list queries, responses and the
// shared error body. Route handlers validate requests against these
// types, the OpenAPI document is generated from them, and pkg/sdk reuses
// them as client types, so the published contract cannot drift from the
// served one.
package contract

import (
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
)

// ErrorResponse is the one error shape shared by every endpoint.
type ErrorResponse struct {
	Status  int    `json:"-"`
	Label   string `json:"error" example:"Not Found" doc:"Error category"`
	Message string `json:"message" example:"person not found" doc:"Human-readable detail"`
}

func (e *ErrorResponse) Error() string { return e.Message }

func (e *ErrorResponse) GetStatus() int { return e.Status }

// Rebind huma's error constructor so validation failures and handler
// errors all render as ErrorResponse. Validation problems keep huma's
// per-field detail but surface as 400: the contract distinguishes only
// invalid-argument, not-found and conflict, and carries no 422.
func init() {
	huma.NewError = func(status int, message string, errs ...error) huma.StatusError {
		if status == http.StatusUnprocessableEntity {
			status = http.StatusBadRequest
		}
		details := make([]string, 0, len(errs))
		for _, err := range errs {
			if err != nil {
				details = append(details, err.Error())
			}
		}
		if len(details) > 0 {
			message += ": " + strings.Join(details, "; ")
		}
		return &ErrorResponse{
			Status:  status,
			Label:   http.StatusText(status),
			Message: message,
		}
	}
}
