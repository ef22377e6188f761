package errors

import "fmt"

// HTTPError is an error that carries an API error code and the HTTP status to
// respond with.
type HTTPError struct {
	Code       int    `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
}

// NewHTTPError creates an HTTPError. The status code is derived from code:
// codes in the HTTP range are used as is, anything else maps to 400.
func NewHTTPError(code int, message string) *HTTPError {
	status := code
	if code < 100 || code > 599 {
		status = 400
	}
	return &HTTPError{Code: code, Message: message, StatusCode: status}
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

// ValidationError describes a single invalid request field.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidationErrors collects field errors from request parsing.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	switch len(e) {
	case 0:
		return "validation failed"
	case 1:
		return "validation failed: " + e[0].Error()
	default:
		return fmt.Sprintf("validation failed: %s (and %d more)", e[0].Error(), len(e)-1)
	}
}
