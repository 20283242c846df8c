/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package resolver

import (
	"hash"
	"reflect"

	"dirpx.dev/eqx/apis"
	uref "dirpx.dev/eqx/utils/reflect"
)

// New constructs an apis.Resolver that tries the given strategies in order.
// Nil strategies are ignored. The returned resolver is safe for concurrent use
// provided strategies themselves are safe for concurrent calls.
func New(strategies ...apis.Strategy) apis.Resolver {
	// Filter out nils to avoid nil-interface panics on call sites.
	out := make([]apis.Strategy, 0, len(strategies))
	for _, s := range strategies {
		if s != nil {
			out = append(out, s)
		}
	}
	return chain{strats: out}
}

// chain is an immutable, order-preserving resolver over a set of strategies.
//
// The chain owns the pieces every strategy relies on: operands are
// normalized (views and pointers unwrapped per cfg), nil cases are
// answered here, and the type gate rejects operands of differing
// dynamic types before any strategy runs. Strategies only ever see
// non-nil, unwrapped, type-identical operands.
type chain struct {
	strats []apis.Strategy
}

// Equal reports whether a and b are equal. Cross-type operands are
// unequal, never an error; an exhausted chain also means unequal.
func (r chain) Equal(a, b any, cfg apis.Config) bool {
	a = uref.Unwrap(a, cfg)
	b = uref.Unwrap(b, cfg)

	if a == nil || b == nil {
		return a == nil && b == nil
	}
	// Type gate: identical dynamic types or nothing.
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}

	for _, s := range r.strats {
		if eq, ok := s.TryEqual(a, b, cfg); ok {
			return eq
		}
	}
	return false
}

// Hash feeds v's hash contribution into sink and reports whether any
// strategy handled it. A nil v is handled here with a fixed marker.
func (r chain) Hash(v any, sink hash.Hash, cfg apis.Config) bool {
	v = uref.Unwrap(v, cfg)
	if v == nil {
		uref.WriteNilHash(sink)
		return true
	}

	for _, s := range r.strats {
		if s.TryHash(v, sink, cfg) {
			return true
		}
	}
	return false
}
