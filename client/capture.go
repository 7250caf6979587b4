// SPDX-FileCopyrightText: 2024 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"strconv"

	"github.com/xmidt-org/dealwith"
)

// DefaultMaxBodySize is the largest error response body Capture will read
// when no WithMaxBodySize option is supplied.
const DefaultMaxBodySize int64 = 1 << 20

// StatusCheck determines whether a response status is acceptable.  Responses
// whose status is rejected are turned into transport errors by Capture.
type StatusCheck func(status int) bool

// DefaultStatusCheck accepts any status below 400.
func DefaultStatusCheck(status int) bool {
	return status < 400
}

type capture struct {
	next        dealwith.Client
	name        string
	check       StatusCheck
	maxBodySize int64
}

// CaptureOption is a configurable option for Capture.
type CaptureOption interface {
	apply(*capture)
}

type captureOptionFunc func(*capture)

func (cof captureOptionFunc) apply(c *capture) { cof(c) }

// WithStatusCheck sets the strategy for accepting response statuses.
// A nil check leaves DefaultStatusCheck in place.
func WithStatusCheck(sc StatusCheck) CaptureOption {
	return captureOptionFunc(func(c *capture) {
		if sc != nil {
			c.check = sc
		}
	})
}

// WithMaxBodySize limits how much of a rejected response's body is read.
// Nonpositive values leave DefaultMaxBodySize in place.
func WithMaxBodySize(n int64) CaptureOption {
	return captureOptionFunc(func(c *capture) {
		if n > 0 {
			c.maxBodySize = n
		}
	})
}

// WithName sets the Name of the transport errors produced.  This name is one of
// the keys tried during dispatch.
func WithName(name string) CaptureOption {
	return captureOptionFunc(func(c *capture) {
		c.name = name
	})
}

// Capture creates a middleware constructor that turns client failures into
// *dealwith.TransportError values.
//
// When no response arrives, the error is wrapped and classified: context
// cancellation is dealwith.CodeCanceled, timeouts are dealwith.CodeTimeout,
// and everything else is dealwith.CodeNetwork.
//
// When a response's status is rejected, its body is read up to the configured
// limit and decoded if it is a JSON object.  The response is returned along with
// the error, and its Body replays whatever was read.
//
// In both cases the request context's dealwith.RequestConfig is copied into the error.
func Capture(options ...CaptureOption) Constructor {
	prototype := capture{
		check:       DefaultStatusCheck,
		maxBodySize: DefaultMaxBodySize,
	}

	for _, o := range options {
		o.apply(&prototype)
	}

	return func(next dealwith.Client) dealwith.Client {
		c := prototype
		c.next = next
		if c.next == nil {
			c.next = http.DefaultClient
		}

		return Func(c.do)
	}
}

func (c capture) do(request *http.Request) (*http.Response, error) {
	cfg := dealwith.GetRequestConfig(request.Context())
	response, err := c.next.Do(request)
	if err != nil {
		return response, &dealwith.TransportError{
			Name:    c.name,
			Code:    codeForError(err),
			Message: err.Error(),
			Err:     err,
			Request: request,
			Config:  cfg,
		}
	}

	if c.check(response.StatusCode) {
		return response, nil
	}

	body, readErr := io.ReadAll(io.LimitReader(response.Body, c.maxBodySize))
	dealwith.Cleanup(response)
	response.Body = io.NopCloser(bytes.NewReader(body))

	return response, &dealwith.TransportError{
		Name:    c.name,
		Code:    codeForStatus(response.StatusCode),
		Message: "request failed with status code " + strconv.Itoa(response.StatusCode),
		Err:     readErr,
		Request: request,
		Response: &dealwith.Response{
			Status: response.StatusCode,
			Header: response.Header,
			Data:   decodeBody(body),
		},
		Config: cfg,
	}
}

func codeForError(err error) string {
	if errors.Is(err, context.Canceled) {
		return dealwith.CodeCanceled
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return dealwith.CodeTimeout
	}

	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return dealwith.CodeTimeout
	}

	return dealwith.CodeNetwork
}

func codeForStatus(status int) string {
	if status >= 400 && status < 500 {
		return dealwith.CodeBadRequest
	}

	return dealwith.CodeBadResponse
}

// decodeBody returns nil for anything that isn't a JSON object
func decodeBody(body []byte) dealwith.Body {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}

	var data dealwith.Body
	if err := json.Unmarshal(body, &data); err != nil {
		return nil
	}

	return data
}
