// SPDX-FileCopyrightText: 2024 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"net/http"

	"github.com/xmidt-org/dealwith"
)

// Func is an HTTP client function type
type Func func(*http.Request) (*http.Response, error)

// Do fulfills the dealwith.Client interface and permits this function
// to be used like an HTTP client.
func (f Func) Do(request *http.Request) (*http.Response, error) {
	return f(request)
}

var _ dealwith.Client = Func(nil)

// Constructor applies clientside middleware to an HTTP client.
type Constructor func(dealwith.Client) dealwith.Client

// Chain is an immutable sequence of constructors.  A typical error-handling
// chain is NewChain(Dispatch(engine), Capture()), so that Capture sees the raw
// response and Dispatch sees the resulting TransportError.
type Chain struct {
	c []Constructor
}

// NewChain creates a chain from a sequence of constructors.  The constructors
// are always applied in the order presented here.
func NewChain(ctors ...Constructor) (c Chain) {
	if len(ctors) > 0 {
		c.c = make([]Constructor, len(ctors))
		copy(c.c, ctors)
	}

	return
}

// Append adds additional Constructors to this chain, and returns the new chain.
// This chain is not modified.
func (c Chain) Append(more ...Constructor) (nc Chain) {
	if len(more) == 0 {
		return c
	}

	nc.c = make([]Constructor, 0, len(c.c)+len(more))
	nc.c = append(nc.c, c.c...)
	nc.c = append(nc.c, more...)
	return
}

// Then applies this chain to next.  A nil next means http.DefaultClient.
// The first constructor in the chain is the outermost decorator.
func (c Chain) Then(next dealwith.Client) dealwith.Client {
	if next == nil {
		next = http.DefaultClient
	}

	for i := len(c.c) - 1; i >= 0; i-- {
		next = c.c[i](next)
	}

	return next
}
