package apierrors

import (
	"errors"
	"net/http"
)

// Code is the machine-readable error code clients see in the envelope.
type Code string

const (
	CodeBadRequest      Code = "BAD_REQUEST"
	CodeValidationError Code = "VALIDATION_ERROR"
	CodeOrderNotFound   Code = "ORDER_NOT_FOUND"
	CodeProductNotFound Code = "PRODUCT_NOT_FOUND"
	CodeUnexpectedError Code = "UNEXPECTED_ERROR"
)

// Error is a tagged application error. Only errors of this type map to
// specific statuses; anything else falls through to 500 UNEXPECTED_ERROR.
type Error struct {
	Status  int
	Code    Code
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// BadRequest marks a request body that could not be decoded at all.
func BadRequest(message string) *Error {
	return &Error{Status: http.StatusBadRequest, Code: CodeBadRequest, Message: message}
}

// Validation marks a decodable body that failed schema validation.
func Validation(message string) *Error {
	return &Error{Status: http.StatusBadRequest, Code: CodeValidationError, Message: message}
}

// OrderNotFound marks a direct order lookup on a missing id.
func OrderNotFound(message string) *Error {
	return &Error{Status: http.StatusNotFound, Code: CodeOrderNotFound, Message: message}
}

// ProductNotFound marks a direct product lookup or delete on a missing id.
func ProductNotFound(message string) *Error {
	return &Error{Status: http.StatusNotFound, Code: CodeProductNotFound, Message: message}
}

// Envelope is the JSON error body returned on every failure path.
type Envelope struct {
	Error   Code   `json:"error"`
	Message string `json:"message"`
}

// Translate maps any error to an HTTP status and error envelope. Tagged
// errors keep their status and code; everything else, including backend
// absence surfaced while composing a response, becomes UNEXPECTED_ERROR.
func Translate(err error) (int, Envelope) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Status, Envelope{Error: apiErr.Code, Message: apiErr.Message}
	}
	return http.StatusInternalServerError, Envelope{Error: CodeUnexpectedError, Message: err.Error()}
}
