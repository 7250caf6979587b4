// SPDX-FileCopyrightText: 2024 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package dealwith

// DealWith dispatches a single failure through a call-site-local handler set.
type DealWith func(failure error) error

// DealWithFactory creates a DealWith from a set of local handlers.  Unless
// ignoreGlobal is set, keys missing from solutions are looked up in the shared
// Store the factory was created with.
type DealWithFactory func(solutions map[string]Handler, ignoreGlobal bool) DealWith

// NewDealWith creates a factory for call-site-local handler overrides.  Each
// call to the factory builds a new Store seeded with the given solutions, using
// notifier (DefaultNotifier if nil), and parented to global unless ignoreGlobal
// is set.  A nil global behaves as if ignoreGlobal were always set.
//
// The local Store never inherits global's notifier.  When notifier is nil, it
// uses DefaultNotifier even if SetNotifier was called on global, so handlers
// found in global notify through the local Store's notifier.
//
// The returned DealWith always dispatches directly, so RequestConfig.Raw is not
// honored for scoped dispatch.
func NewDealWith(global *Store, notifier Notifier, options ...EngineOption) DealWithFactory {
	return func(solutions map[string]Handler, ignoreGlobal bool) DealWith {
		storeOptions := []StoreOption{
			WithHandlers(solutions),
			WithNotifier(notifier),
		}

		if !ignoreGlobal && global != nil {
			storeOptions = append(storeOptions, WithParent(global))
		}

		local := NewEngine(NewStore(storeOptions...), options...)
		return local.DispatchDirect
	}
}
