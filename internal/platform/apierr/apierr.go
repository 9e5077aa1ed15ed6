// Package apierr carries an HTTP status and a machine-readable code
// alongside a wrapped error, so services can decide the response status
// without the handler layer inspecting error strings.
package apierr

import "fmt"

type Error struct {
	Status int
	Code   string
	Err    error
}

// New wraps err with the status and code the response layer should emit.
func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}

func (e *Error) Error() string {
	switch {
	case e == nil:
		return ""
	case e.Err != nil:
		return e.Err.Error()
	case e.Code != "":
		return e.Code
	case e.Status != 0:
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }
