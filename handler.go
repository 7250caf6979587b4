// SPDX-FileCopyrightText: 2024 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package dealwith

// Handler is a registered recipe for turning a failure into user-visible
// feedback plus a normalized Error.  The set of implementations is closed:
// a Handler is always a Message, a *Descriptor, or a Resolver.
type Handler interface {
	handler()
}

// Message is the simplest Handler: a display string.  It behaves exactly like
// a Descriptor with only the Message field set.
type Message string

func (Message) handler() {}

// Hook is a side effect run before or after notification.  A non-nil error
// from a hook is returned as is and stops the rest of the dispatch.
type Hook func(failure error, d *Descriptor) error

// Descriptor is the structured Handler.
type Descriptor struct {
	// Message is the text surfaced to the notifier and carried by the resulting Error.
	// A missing message is the empty string.
	Message string

	// Before is run before the notifier.
	Before Hook

	// After is run after the notifier.
	After Hook

	// Silent suppresses the notifier.  Hooks still run and an Error is still produced.
	Silent bool

	// Notify holds extra options merged into the notifier call.  These override
	// the standard severity and message fields.
	Notify Fields
}

func (*Descriptor) handler() {}

// Valid tests if d is a usable descriptor: it must be non-nil and set at least
// one of its fields.  A descriptor without a message still qualifies.
func (d *Descriptor) Valid() bool {
	return d != nil &&
		(len(d.Message) > 0 || d.Before != nil || d.After != nil || d.Silent || len(d.Notify) > 0)
}

// Resolver is a Handler that computes a Descriptor at dispatch time.  Returning
// nil, or a Descriptor that is not Valid, declines the failure.
type Resolver func(failure error) *Descriptor

func (Resolver) handler() {}

var (
	_ Handler = Message("")
	_ Handler = (*Descriptor)(nil)
	_ Handler = Resolver(nil)
)
