// SPDX-FileCopyrightText: 2024 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"net/http"

	"github.com/xmidt-org/dealwith"
)

// Header creates a middleware Constructor that uses a closure to modify
// each request header before the request is sent.
func Header(hf func(http.Header)) Constructor {
	return func(next dealwith.Client) dealwith.Client {
		if next == nil {
			next = http.DefaultClient
		}

		return Func(func(request *http.Request) (*http.Response, error) {
			hf(request.Header)
			return next.Do(request)
		})
	}
}

// AcceptJSON creates a middleware Constructor that asks servers for JSON,
// so that error bodies can be decoded by Capture.  An Accept header already
// present on a request is left alone.
func AcceptJSON() Constructor {
	return Header(func(h http.Header) {
		if len(h.Get("Accept")) == 0 {
			h.Set("Accept", "application/json")
		}
	})
}
