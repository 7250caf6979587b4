// SPDX-FileCopyrightText: 2024 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package dealwith centralizes recovery logic for HTTP request failures.

Handlers

A Store maps string keys to Handlers.  A Handler is one of:

  - Message: a display string
  - *Descriptor: a message plus optional Before/After hooks, a Silent flag, and
    extra Notify fields
  - Resolver: a function that computes a *Descriptor at dispatch time, or declines
    by returning nil

Stores can have a parent.  Lookups that miss in a Store are forwarded to its parent,
so a child Store can override shared handlers without modifying them:

  global := dealwith.NewStore().
    Register("404", dealwith.Message("Not found")).
    Register("ERR_NETWORK", &dealwith.Descriptor{Message: "Offline", Silent: true})

  local := dealwith.NewStore(dealwith.WithParent(global)).
    Register("404", dealwith.Message("No such user"))

Dispatch

An Engine routes one failure at a time.  A handled failure runs the descriptor's
Before hook, notifies (unless Silent), runs the After hook, and produces a *dealwith.Error.
Unhandled failures are returned unchanged:

  engine := dealwith.NewEngine(global)
  err = engine.Dispatch(err)

  var handled *dealwith.Error
  if errors.As(err, &handled) {
    // the user has already been notified
  }

For transport failures produced by the client package, a message in the JSON
response body always wins.  After that, the body's code, the failure's code and name,
and the body and response status are tried as keys, in that order.  Finally, the body's
message or description, or the failure's own message, is used.

Scoped handlers

NewDealWith produces call-site-local handler sets that fall back to a shared Store:

  dealWith := dealwith.NewDealWith(global, nil)
  err = dealWith(map[string]dealwith.Handler{
    "409": dealwith.Message("That name is taken"),
  }, false)(err)
*/
package dealwith
