// SPDX-FileCopyrightText: 2024 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package dealwith

import (
	"context"
	"errors"
	"net/http"
	"strconv"
)

const (
	// TransportErrorName is the default name of a TransportError.  It is one of
	// the keys tried when a transport failure is dispatched.
	TransportErrorName = "TransportError"

	// CodeBadRequest is used for responses with a 4xx status.
	CodeBadRequest = "ERR_BAD_REQUEST"

	// CodeBadResponse is used for responses with a 5xx status, or any other
	// status rejected by the client.
	CodeBadResponse = "ERR_BAD_RESPONSE"

	// CodeNetwork is used when no response was received.
	CodeNetwork = "ERR_NETWORK"

	// CodeTimeout is used when the request timed out.
	CodeTimeout = "ETIMEDOUT"

	// CodeCanceled is used when the request's context was canceled.
	CodeCanceled = "ERR_CANCELED"
)

// RequestConfig holds per-request dispatch settings.  Attach it to a request's
// context with WithRequestConfig.
type RequestConfig struct {
	// Raw asks a non-direct dispatch to return the failure untouched.
	Raw bool

	// Silent suppresses the notifier when the message comes from the response
	// body or from the fallback rules.  Registered handlers use their own Silent flag.
	Silent bool
}

// requestConfigKey is the internal context.Context key that stores the RequestConfig
type requestConfigKey struct{}

// WithRequestConfig creates a subcontext that stores the given config.
func WithRequestConfig(ctx context.Context, cfg RequestConfig) context.Context {
	return context.WithValue(ctx, requestConfigKey{}, cfg)
}

// GetRequestConfig returns the RequestConfig associated with the given context.
// The zero value is returned if there is none.
func GetRequestConfig(ctx context.Context) RequestConfig {
	cfg, _ := ctx.Value(requestConfigKey{}).(RequestConfig)
	return cfg
}

// Body is the decoded JSON object from an error response.
type Body map[string]interface{}

// Code returns the "code" field as a string, or the empty string if absent.
func (b Body) Code() string { return b.stringField("code") }

// Message returns the "message" field, or the empty string if it is absent or
// not a JSON string.
func (b Body) Message() string {
	s, _ := b["message"].(string)
	return s
}

// Description returns the "description" field, or the empty string if it is
// absent or not a JSON string.
func (b Body) Description() string {
	s, _ := b["description"].(string)
	return s
}

// Status returns the "status" field as a string, or the empty string if absent.
func (b Body) Status() string { return b.stringField("status") }

// stringField renders scalar values as strings, since codes and statuses are
// used as handler keys.  Objects, arrays, and nulls
// are treated as absent.
func (b Body) stringField(name string) string {
	switch v := b[name].(type) {
	case string:
		return v

	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)

	case int:
		return strconv.Itoa(v)

	case bool:
		return strconv.FormatBool(v)

	default:
		return ""
	}
}

// Response is the part of an HTTP response relevant to error handling.
type Response struct {
	// Status is the HTTP status code.
	Status int

	// Header is the response's header.
	Header http.Header

	// Data is the response body, if it was a JSON object.
	Data Body
}

// TransportError is a failure produced by an HTTP client: either no response
// arrived, or the response was rejected.  The client package's Capture middleware
// produces these.
type TransportError struct {
	// Name is the error's name.  If unset, TransportErrorName is used.
	Name string

	// Code classifies the failure, e.g. CodeBadRequest or CodeNetwork.
	Code string

	// Message is the human-readable description of the failure.
	Message string

	// Err is the underlying error, if any.  Rejected responses have no Err.
	Err error

	// Request is the request that failed.  It may be nil.
	Request *http.Request

	// Response is the rejected response.  This field is nil when no response arrived.
	Response *Response

	// Config is the per-request config in effect.
	Config RequestConfig
}

// Unwrap produces the underlying error
func (te *TransportError) Unwrap() error {
	return te.Err
}

// Error fulfills the error interface.
func (te *TransportError) Error() string {
	switch {
	case len(te.Message) > 0:
		return te.Message

	case te.Err != nil:
		return te.Err.Error()

	case te.Response != nil:
		return "request failed with status code " + strconv.Itoa(te.Response.Status)

	default:
		return "request failed"
	}
}

// ErrorName fulfills ErrorNamer.
func (te *TransportError) ErrorName() string {
	if len(te.Name) > 0 {
		return te.Name
	}

	return TransportErrorName
}

// StatusCode returns the response status, or zero if there was no response.
func (te *TransportError) StatusCode() int {
	if te.Response != nil {
		return te.Response.Status
	}

	return 0
}

// TransportGuard determines whether a failure came from the HTTP client.
type TransportGuard func(error) (*TransportError, bool)

// AsTransportError is the default TransportGuard.  It uses errors.As, so wrapped
// TransportErrors are recognized.
func AsTransportError(err error) (*TransportError, bool) {
	var te *TransportError
	if errors.As(err, &te) && te != nil {
		return te, true
	}

	return nil, false
}
