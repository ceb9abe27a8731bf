// Package errors provides a coded error type that maps onto HTTP statuses and a JSON wire form
package errors

// import as perr so it never shadows the standard errors package

import (
	stderrs "errors"
	"fmt"
	"net/http"
)

// ErrorCode classifies an error for clients and transports
// the numeric values go over the wire, append new codes at the end
type ErrorCode uint16

const (
	ErrorCodeUnknown         ErrorCode = iota // unclassified
	ErrorCodePanic                            // recovered panic
	ErrorCodeUnavailable                      // transient, a retry may succeed
	ErrorCodeTooManyRequests                  // rate limited
	ErrorCodeConflict                         // state conflict
	ErrorCodeUnauthorized                     // missing or bad credentials
	ErrorCodeForbidden                        // credentials lack access
	ErrorCodeInvalidArgument                  // well formed input the operation cannot accept
	ErrorCodeValidation                       // input failed validation rules
	ErrorCodeJSON                             // body is not decodable json
	ErrorCodeNotFound                         // missing resource or session
	ErrorCodeDuplicateKey                     // unique constraint violation
	ErrorCodeDB                               // storage failure
)

var statusByCode = map[ErrorCode]int{
	ErrorCodeNotFound:        http.StatusNotFound,
	ErrorCodeInvalidArgument: http.StatusUnprocessableEntity,
	ErrorCodeDuplicateKey:    http.StatusConflict,
	ErrorCodeConflict:        http.StatusConflict,
	ErrorCodeValidation:      http.StatusBadRequest,
	ErrorCodeJSON:            http.StatusBadRequest,
	ErrorCodeUnauthorized:    http.StatusUnauthorized,
	ErrorCodeForbidden:       http.StatusForbidden,
	ErrorCodeTooManyRequests: http.StatusTooManyRequests,
	ErrorCodeUnavailable:     http.StatusServiceUnavailable,
}

// HTTPStatusCode maps a code to its http status, anything unmapped is a 500
func HTTPStatusCode(c ErrorCode) int {
	if s, ok := statusByCode[c]; ok {
		return s
	}
	return http.StatusInternalServerError
}

// ErrNotFound is a sentinel not found error
var ErrNotFound = New(ErrorCodeNotFound, "not found")

// Error carries a code, a developer facing message, an optional field and the wrapped cause
type Error struct {
	orig  error
	msg   string
	code  ErrorCode
	field string
}

// Wire is the JSON form returned by the API
type Wire struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Field   string    `json:"field,omitempty"`
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.orig != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.orig)
	}
	return e.msg
}

// Unwrap returns the wrapped cause
func (e *Error) Unwrap() error { return e.orig }

// Code returns the error code
func (e *Error) Code() ErrorCode { return e.code }

// Field returns the offending input field, if any
func (e *Error) Field() string { return e.field }

// WireFrom converts any error into its wire form, foreign errors become Unknown
func WireFrom(err error) Wire {
	if err == nil {
		return Wire{}
	}
	if e, ok := As(err); ok {
		return Wire{Code: e.code, Message: e.msg, Field: e.field}
	}
	return Wire{Code: ErrorCodeUnknown, Message: err.Error()}
}

// Root returns the innermost cause
func Root(err error) error {
	for err != nil {
		u := stderrs.Unwrap(err)
		if u == nil {
			return err
		}
		err = u
	}
	return nil
}

// CodeOf extracts the code of the outermost *Error, Unknown otherwise
func CodeOf(err error) ErrorCode {
	if e, ok := As(err); ok {
		return e.code
	}
	return ErrorCodeUnknown
}

// IsCode reports whether err carries code
func IsCode(err error, code ErrorCode) bool { return CodeOf(err) == code }

// HTTPStatus returns the http status for any error
func HTTPStatus(err error) int { return HTTPStatusCode(CodeOf(err)) }

// As finds the outermost *Error in the chain
func As(err error) (*Error, bool) {
	var e *Error
	if stderrs.As(err, &e) {
		return e, true
	}
	return nil, false
}

// WithField returns a copy of err naming the offending field, foreign errors pass through
func WithField(err error, field string) error {
	if e, ok := As(err); ok {
		c := *e
		c.field = field
		return &c
	}
	return err
}

// New returns an *Error with code and message
func New(code ErrorCode, msg string) error { return &Error{code: code, msg: msg} }

// Newf is New with a formatted message
func Newf(code ErrorCode, format string, a ...any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, a...)}
}

// Wrap returns an *Error with code and message around orig
func Wrap(orig error, code ErrorCode, msg string) error {
	return &Error{code: code, msg: msg, orig: orig}
}

// Wrapf is Wrap with a formatted message
func Wrapf(orig error, code ErrorCode, format string, a ...any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, a...), orig: orig}
}

// NotFoundf returns a not found error
func NotFoundf(format string, a ...any) error { return Newf(ErrorCodeNotFound, format, a...) }

// InvalidArgf returns an invalid argument error
func InvalidArgf(format string, a ...any) error { return Newf(ErrorCodeInvalidArgument, format, a...) }

// DBf returns a storage error
func DBf(format string, a ...any) error { return Newf(ErrorCodeDB, format, a...) }

// JSONErrf returns a JSON decoding error
func JSONErrf(format string, a ...any) error { return Newf(ErrorCodeJSON, format, a...) }

// PanicErrf returns a panic error
func PanicErrf(format string, a ...any) error { return Newf(ErrorCodePanic, format, a...) }

// Unauthorizedf returns an unauthorized error
func Unauthorizedf(format string, a ...any) error { return Newf(ErrorCodeUnauthorized, format, a...) }

// Unavailablef returns an unavailable error
func Unavailablef(format string, a ...any) error { return Newf(ErrorCodeUnavailable, format, a...) }

// HTTP returns the status and wire form in one call
func HTTP(err error) (int, Wire) {
	if err == nil {
		return http.StatusOK, Wire{}
	}
	return HTTPStatus(err), WireFrom(err)
}

// Retryable reports whether err is transient enough to try again
// coded Unavailable errors and transient postgres failures qualify
func Retryable(err error) bool {
	if err == nil {
		return false
	}
	if IsCode(err, ErrorCodeUnavailable) {
		return true
	}
	return IsRetryable(err)
}
