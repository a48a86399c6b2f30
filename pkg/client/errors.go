package client

import "fmt"

// Error codes. NetworkError and HttpError are synthesized locally; the
// rest are declared by the NoteHub service and passed through verbatim.
const (
	CodeNetworkError     = "NetworkError"
	CodeHTTPError        = "HttpError"
	CodeUnauthorized     = "Unauthorized"
	CodeValidationError  = "ValidationError"
	CodeNotFound         = "NotFound"
	CodeForbidden        = "Forbidden"
	CodeInternalError    = "InternalError"
	CodeMalformedRequest = "MalformedRequest"
)

// Error is the failure half of every remote call. Ordinary remote
// failures (4xx/5xx, unreachable host) are returned as values, never
// panics.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsCode reports whether err is a client Error carrying the given code.
func IsCode(err error, code string) bool {
	apiErr, ok := err.(*Error)
	return ok && apiErr.Code == code
}
