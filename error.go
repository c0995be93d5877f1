package leytext

import (
	"errors"
	"fmt"
)

// Application error codes.
//
// Codes distinguish the fatal failure kinds of a pipeline run. Data-quality
// problems are never errors; they are recorded as findings in a QualityReport.
const (
	EFETCH      = "fetch"      // network or HTTP-status failure retrieving the source
	ETIMEOUT    = "timeout"    // fetch or storage deadline exceeded; callers may retry
	EPARSE      = "parse"      // input cannot be interpreted as markup
	ESTRUCTURAL = "structural" // segmentation hit an unrecoverable structural anomaly
	ESTORAGE    = "storage"    // write or read failure on the chosen backend
	EINVALID    = "invalid"    // invalid arguments or domain validation failure
	EINTERNAL   = "internal"   // unexpected internal error
)

// Error represents an application-specific error. Errors carry a machine
// readable code and a human readable message.
type Error struct {
	// Code identifies the kind of failure.
	Code string

	// Message is a human-readable description.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("leytext error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error.".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf is a helper function to return an Error with a given code and
// formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
