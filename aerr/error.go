package aerr

import (
	"encoding/json"
)

// Error wraps the built-in error interface so cmd/offsetsd can hand a Go
// error to echo.NewHTTPError and have it serialize as a JSON string body
// instead of echo's default struct shape.
type Error struct {
	error
}

// NewError creates a new Error instance from a non-nil error.
// Returns nil if the input error is nil.
func NewError(err error) *Error {
	if err == nil {
		return nil
	}
	return &Error{error: err}
}

// MarshalJSON customizes the JSON marshaling for Error.
func (err Error) MarshalJSON() ([]byte, error) {
	if err.error == nil {
		return []byte(`null`), nil
	}
	return json.Marshal(err.Error())
}

// Error returns the string representation of the embedded error.
func (err *Error) Error() string {
	if err == nil || err.error == nil {
		return ""
	}
	return err.error.Error()
}
