// SPDX-FileCopyrightText: 2024 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package dealwith

import (
	"sort"
	"sync"
)

// Store is a keyed set of Handlers with optional delegation to a parent Store.
// Lookups that miss locally are forwarded to the parent, so a child's key shadows
// the same key in any ancestor.
//
// The zero value is an empty Store with no parent and no notifier.  Read methods
// are safe on a nil *Store and behave like an empty Store.
//
// A Store is safe for concurrent use, although the expected pattern is to register
// handlers during initialization and dispatch many times afterward.
type Store struct {
	lock     sync.RWMutex
	parent   *Store
	handlers map[string]Handler
	keys     []string
	notifier Notifier
}

// StoreOption is a configurable option for a Store.
type StoreOption interface {
	apply(*Store)
}

type storeOptionFunc func(*Store)

func (sof storeOptionFunc) apply(s *Store) { sof(s) }

// WithParent sets the Store that receives lookups this Store cannot satisfy.
// The parent is never owned by the child and should not be a descendant of it.
func WithParent(parent *Store) StoreOption {
	return storeOptionFunc(func(s *Store) {
		s.parent = parent
	})
}

// WithHandlers registers an initial set of handlers.  This option is cumulative.
func WithHandlers(m map[string]Handler) StoreOption {
	return storeOptionFunc(func(s *Store) {
		s.registerMany(m)
	})
}

// WithNotifier sets the Store's notifier.  A nil notifier leaves DefaultNotifier in place.
func WithNotifier(n Notifier) StoreOption {
	return storeOptionFunc(func(s *Store) {
		if n != nil {
			s.notifier = n
		}
	})
}

// NewStore creates an empty Store that uses DefaultNotifier, then applies options.
func NewStore(options ...StoreOption) *Store {
	s := &Store{
		handlers: make(map[string]Handler),
		notifier: DefaultNotifier,
	}

	for _, o := range options {
		o.apply(s)
	}

	return s
}

// register does no locking
func (s *Store) register(key string, h Handler) {
	if s.handlers == nil {
		s.handlers = make(map[string]Handler)
	}

	if _, exists := s.handlers[key]; !exists {
		s.keys = append(s.keys, key)
	}

	s.handlers[key] = h
}

func (s *Store) registerMany(m map[string]Handler) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	// map iteration order is random, so keep insertion order reproducible
	sort.Strings(keys)
	for _, k := range keys {
		s.register(k, m[k])
	}
}

// Register inserts or overwrites the handler for key.  The handler's shape is
// not checked here: an unusable handler simply fails to resolve at dispatch time.
//
// This method returns this Store for method chaining.
func (s *Store) Register(key string, h Handler) *Store {
	s.lock.Lock()
	s.register(key, h)
	s.lock.Unlock()
	return s
}

// RegisterMany registers each entry of m.  Entries are applied in sorted key order.
//
// This method returns this Store for method chaining.
func (s *Store) RegisterMany(m map[string]Handler) *Store {
	s.lock.Lock()
	s.registerMany(m)
	s.lock.Unlock()
	return s
}

// Unregister removes the handler for key.  If there is no such handler, this
// method does nothing.  Ancestor stores are never modified.
//
// This method returns this Store for method chaining.
func (s *Store) Unregister(key string) *Store {
	s.lock.Lock()
	defer s.lock.Unlock()

	if _, exists := s.handlers[key]; !exists {
		return s
	}

	delete(s.handlers, key)
	for i, k := range s.keys {
		if k == key {
			s.keys = append(s.keys[:i], s.keys[i+1:]...)
			break
		}
	}

	return s
}

// Find returns the handler registered for key in this Store or, failing that, in
// the nearest ancestor that has one.  The empty key is never found.
func (s *Store) Find(key string) (Handler, bool) {
	if len(key) == 0 {
		return nil, false
	}

	for current := s; current != nil; {
		current.lock.RLock()
		h, ok := current.handlers[key]
		parent := current.parent
		current.lock.RUnlock()

		if ok {
			return h, true
		}

		current = parent
	}

	return nil, false
}

// Keys returns the keys registered directly on this Store, in insertion order.
func (s *Store) Keys() []string {
	if s == nil {
		return nil
	}

	s.lock.RLock()
	defer s.lock.RUnlock()

	keys := make([]string, len(s.keys))
	copy(keys, s.keys)
	return keys
}

// Parent returns the Store that receives lookups this Store cannot satisfy, which
// can be nil.
func (s *Store) Parent() *Store {
	if s == nil {
		return nil
	}

	return s.parent
}

// SetNotifier replaces this Store's notifier.  A nil notifier is ignored.
//
// This method returns this Store for method chaining.
func (s *Store) SetNotifier(n Notifier) *Store {
	if n != nil {
		s.lock.Lock()
		s.notifier = n
		s.lock.Unlock()
	}

	return s
}

// Notifier returns the current notifier for this Store.
func (s *Store) Notifier() Notifier {
	if s == nil {
		return nil
	}

	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.notifier
}
