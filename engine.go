// SPDX-FileCopyrightText: 2024 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package dealwith

import (
	"errors"
	"log/slog"
	"strconv"
)

// EngineOption is a configurable option for an Engine.
type EngineOption interface {
	apply(*Engine)
}

type engineOptionFunc func(*Engine)

func (eof engineOptionFunc) apply(e *Engine) { eof(e) }

// WithTransportGuard sets the strategy for recognizing transport failures.
// By default, AsTransportError is used.  A nil guard is ignored.
func WithTransportGuard(g TransportGuard) EngineOption {
	return engineOptionFunc(func(e *Engine) {
		if g != nil {
			e.guard = g
		}
	})
}

// WithLogger sets the logger used for debug output about resolution decisions.
// By default, slog.Default() is used.  A nil logger is ignored.
func WithLogger(l *slog.Logger) EngineOption {
	return engineOptionFunc(func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	})
}

// Engine resolves failures against a Store and turns them into normalized errors.
type Engine struct {
	store  *Store
	guard  TransportGuard
	logger *slog.Logger
}

// NewEngine creates an Engine that resolves handlers against s.  If s is nil,
// a new empty Store is used.
func NewEngine(s *Store, options ...EngineOption) *Engine {
	if s == nil {
		s = NewStore()
	}

	e := &Engine{
		store:  s,
		guard:  AsTransportError,
		logger: slog.Default(),
	}

	for _, o := range options {
		o.apply(e)
	}

	return e
}

// Store returns the Store this engine resolves against.
func (e *Engine) Store() *Store {
	return e.store
}

// HandleError attempts to resolve failure with each key in turn.  Empty keys are
// skipped.  The first key whose handler resolves wins, and the returned error is
// either the normalized *Error or an error returned by one of the handler's hooks.
//
// If no key resolves, this method returns (false, nil).  That includes Resolver
// handlers that decline and descriptors that are not Valid.
func (e *Engine) HandleError(failure error, keys ...string) (bool, error) {
	for _, key := range keys {
		if len(key) == 0 {
			continue
		}

		if handled, err := e.handleKey(failure, key); handled {
			return true, err
		}
	}

	return false, nil
}

// handleKey resolves a single key through the store chain
func (e *Engine) handleKey(failure error, key string) (bool, error) {
	h, ok := e.store.Find(key)
	if !ok {
		return false, nil
	}

	var d *Descriptor
	switch v := h.(type) {
	case Message:
		// a plain message always resolves, even when empty
		e.logger.Debug("handler resolved", "key", key, "message", string(v))
		return true, e.execute(failure, &Descriptor{Message: string(v)}, key)

	case *Descriptor:
		d = v

	case Resolver:
		if v != nil {
			d = v(failure)
		}
	}

	if !d.Valid() {
		e.logger.Debug("handler declined", "key", key)
		return false, nil
	}

	e.logger.Debug("handler resolved", "key", key, "message", d.Message)
	return true, e.execute(failure, d, key)
}

// Execute runs d against failure.  The steps are strictly ordered: the Before hook,
// then the notifier unless d is Silent, then the After hook.  The returned error is
// always non-nil: it is either a hook's error, which stops the remaining steps, or
// the normalized *Error carrying d's message.
func (e *Engine) Execute(failure error, d *Descriptor) error {
	if d == nil {
		d = new(Descriptor)
	}

	return e.execute(failure, d, "")
}

func (e *Engine) execute(failure error, d *Descriptor, key string) error {
	if d.Before != nil {
		if err := d.Before(failure, d); err != nil {
			return err
		}
	}

	if !d.Silent {
		if notify := e.store.Notifier(); notify != nil {
			f := NewFields(SeverityNegative, d.Message)
			f.Merge(d.Notify)
			notify(f)
		}
	}

	if d.After != nil {
		if err := d.After(failure, d); err != nil {
			return err
		}
	}

	return &Error{
		Message: d.Message,
		Key:     key,
		Cause:   failure,
	}
}

// Dispatch routes a single failure through this engine:
//
//   - a nil failure produces ErrNilFailure
//   - an already normalized *Error is returned unchanged
//   - a transport failure is resolved by its response body, its keys, or its messages
//   - any other failure is resolved by its name, as reported by NameOf
//
// When nothing resolves, the original failure is returned unchanged.
func (e *Engine) Dispatch(failure error) error {
	return e.dispatch(failure, false)
}

// DispatchDirect is like Dispatch, except that a transport failure's
// RequestConfig.Raw flag is ignored.  Scoped dispatch through DealWith uses this.
func (e *Engine) DispatchDirect(failure error) error {
	return e.dispatch(failure, true)
}

func (e *Engine) dispatch(failure error, direct bool) error {
	if failure == nil {
		return ErrNilFailure
	}

	var normalized *Error
	if errors.As(failure, &normalized) {
		return failure
	}

	if te, ok := e.guard(failure); ok {
		return e.handleTransport(failure, te, direct)
	}

	if handled, err := e.HandleError(failure, NameOf(failure)); handled {
		return err
	}

	return failure
}

func (e *Engine) handleTransport(failure error, te *TransportError, direct bool) error {
	var (
		data   Body
		status string
		silent = te.Config.Silent
	)

	if te.Response != nil {
		data = te.Response.Data
		status = strconv.Itoa(te.Response.Status)
	}

	if !direct && te.Config.Raw {
		e.logger.Debug("raw transport failure passed through", "error", failure)
		return failure
	}

	// an API-supplied message takes priority over any registered handler
	if msg := data.Message(); len(msg) > 0 {
		return e.execute(failure, &Descriptor{Message: msg, Silent: silent}, "")
	}

	handled, err := e.HandleError(
		failure,
		data.Code(),
		te.Code,
		te.ErrorName(),
		data.Status(),
		status,
	)

	if handled {
		return err
	}

	for _, msg := range [...]string{data.Message(), data.Description(), te.Message} {
		if len(msg) > 0 {
			return e.execute(failure, &Descriptor{Message: msg, Silent: silent}, "")
		}
	}

	e.logger.Debug("transport failure unresolved", "error", failure)
	return failure
}
