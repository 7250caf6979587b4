// SPDX-FileCopyrightText: 2024 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"net/http"

	"github.com/xmidt-org/dealwith"
)

// Dispatch creates a middleware constructor that routes every client error
// through e.  The response, if any, is returned untouched.
//
// This constructor should be placed before Capture in a Chain, so that the
// errors it sees are transport errors.
func Dispatch(e *dealwith.Engine) Constructor {
	return Deal(e.Dispatch)
}

// Deal is like Dispatch, but uses an arbitrary DealWith such as one produced
// by a dealwith.DealWithFactory.
func Deal(dw dealwith.DealWith) Constructor {
	return func(next dealwith.Client) dealwith.Client {
		if next == nil {
			next = http.DefaultClient
		}

		return Func(func(request *http.Request) (*http.Response, error) {
			response, err := next.Do(request)
			if err != nil {
				err = dw(err)
			}

			return response, err
		})
	}
}
