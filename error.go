// SPDX-FileCopyrightText: 2024 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package dealwith

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
)

// ErrNilFailure is returned when a nil error is dispatched.  It is never routed
// through handlers or notifiers, since a nil failure means the caller broke the
// error-handling contract.
var ErrNilFailure = errors.New("dealwith: error is nil")

// Error is the normalized error produced whenever a handler resolves a failure.
// Code that needs to distinguish handled failures from raw ones should use errors.As
// with this type.
type Error struct {
	// Message is the resolved message.  It may be empty if the resolving descriptor
	// had no message.
	Message string

	// Key is the handler key that resolved the failure.  This field is empty when
	// the message came from a response body or from the fallback rules.
	Key string

	// Cause is the raw failure that was dispatched.
	Cause error
}

// Unwrap produces the raw failure
func (e *Error) Unwrap() error {
	return e.Cause
}

// Error fulfills the error interface.  The Message is used if supplied.  Otherwise,
// the cause's text is used.
func (e *Error) Error() string {
	switch {
	case len(e.Message) > 0:
		return e.Message

	case e.Cause != nil:
		return e.Cause.Error()

	default:
		return ""
	}
}

// StatusCode returns the status of the HTTP response behind this error, if
// there was one.  Otherwise, http.StatusInternalServerError is returned.
func (e *Error) StatusCode() int {
	var te *TransportError
	if errors.As(e.Cause, &te) && te.Response != nil && te.Response.Status >= 100 {
		return te.Response.Status
	}

	return http.StatusInternalServerError
}

// MarshalJSON produces a JSON representation of this error.  The Cause field
// is marshaled as "cause" when present.
func (e *Error) MarshalJSON() ([]byte, error) {
	f := map[string]interface{}{
		"message": e.Message,
	}

	if len(e.Key) > 0 {
		f["key"] = e.Key
	}

	if e.Cause != nil {
		f["cause"] = e.Cause.Error()
	}

	return json.Marshal(f)
}

// IsError tests if err or anything it wraps is a normalized *Error.
func IsError(err error) bool {
	var e *Error
	return errors.As(err, &e)
}

// ErrorNamer can be implemented by errors to supply the key used when a generic
// failure is dispatched.
type ErrorNamer interface {
	ErrorName() string
}

// NameOf returns the lookup key for a generic failure.  If err or anything in
// its chain implements ErrorNamer, that name is used.  Otherwise, the Go type of
// err is used, e.g. "*net.OpError".  A nil err has no name.
func NameOf(err error) string {
	if err == nil {
		return ""
	}

	var en ErrorNamer
	if errors.As(err, &en) {
		if name := en.ErrorName(); len(name) > 0 {
			return name
		}
	}

	return reflect.TypeOf(err).String()
}
