package core

import "fmt"

// Error codes used across the engine.
const (
	ErrCodeEmptyInput     = "EMPTY_INPUT"
	ErrCodeMalformed      = "MALFORMED_EXTRACTION"
	ErrCodeNotFound       = "NOT_FOUND"
	ErrCodeStore          = "STORE_ERROR"
	ErrCodeLLMUnavailable = "LLM_UNAVAILABLE"
)

// Error is a coded error carrying an optional underlying cause.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError wraps err with a code and human-readable message.
func NewError(err error, code, message string) *Error {
	return &Error{Code: code, Message: message, Err: err}
}
