package types

import (
	"fmt"
	"net/http"
)

// Error types reported in the response envelope
const (
	TypeValidation = "validation"
	TypeNotFound   = "notFound"
	TypeBadRequest = "badRequest"
	TypeStore      = "store"
)

// ServiceError carries the HTTP status a failure maps to.
// Err holds the underlying cause, it is logged but never sent to clients.
type ServiceError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Type    string `json:"type"`
	Err     error  `json:"-"`
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%d: %s [type: %s]: %v", e.Code, e.Message, e.Type, e.Err)
	}
	return fmt.Sprintf("%d: %s [type: %s]", e.Code, e.Message, e.Type)
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewValidationError reports client input that failed an entity schema
func NewValidationError(message string) *ServiceError {
	return &ServiceError{Code: http.StatusUnprocessableEntity, Message: message, Type: TypeValidation}
}

// NewNotFoundError reports a direct lookup by id that found nothing
func NewNotFoundError(message string) *ServiceError {
	return &ServiceError{Code: http.StatusNotFound, Message: message, Type: TypeNotFound}
}

// NewBadRequestError reports malformed or missing query parameters
func NewBadRequestError(message string) *ServiceError {
	return &ServiceError{Code: http.StatusBadRequest, Message: message, Type: TypeBadRequest}
}

// NewStoreError wraps a document store failure as a 500
func NewStoreError(message string, cause error) *ServiceError {
	return &ServiceError{Code: http.StatusInternalServerError, Message: message, Type: TypeStore, Err: cause}
}
