package scoring

import "errors"

type ErrorCode string

const (
	ErrorConfig ErrorCode = "config"
	ErrorData   ErrorCode = "data"
	ErrorSchema ErrorCode = "schema"
)

// Error is a scoring failure with a machine-readable code. Config errors are
// malformed options, data errors are unusable input tables, schema errors are
// summarizer input that is not a scored result.
type Error struct {
	Code    ErrorCode
	Message string
}

func (e *Error) Error() string { return e.Message }

func NewConfigError(msg string) error { return &Error{Code: ErrorConfig, Message: msg} }
func NewDataError(msg string) error   { return &Error{Code: ErrorData, Message: msg} }
func NewSchemaError(msg string) error { return &Error{Code: ErrorSchema, Message: msg} }

func AsError(err error) (*Error, bool) {
	var se *Error
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}
