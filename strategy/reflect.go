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

package strategy

import (
	"hash"
	"reflect"

	"dirpx.dev/eqx/apis"
	uref "dirpx.dev/eqx/utils/reflect"
)

// NewReflectStrategy creates an apis.Strategy that compares and hashes
// through reflection. It is the universal fallback at the end of the
// chain: every Go value is handled here one way or another.
func NewReflectStrategy() apis.Strategy {
	return reflectStrategy{}
}

// reflectStrategy compares comparable dynamic types with == and falls
// back to reflect.DeepEqual for the rest (config-gated). Hashing walks
// the value structurally via utils/reflect.
type reflectStrategy struct{}

// Ensure reflectStrategy implements apis.Strategy.
var _ apis.Strategy = (*reflectStrategy)(nil)

// TryEqual compares a and b, which the resolver guarantees share one
// dynamic type. Cross-type operands never reach this point.
func (reflectStrategy) TryEqual(a, b any, cfg apis.Config) (bool, bool) {
	t := reflect.TypeOf(a)
	if t.Comparable() {
		if eq, ok := safeEqual(a, b); ok {
			return eq, true
		}
		// A statically comparable type can still panic on == when an
		// interface field holds a non-comparable value. Treat that
		// like any other non-comparable operand.
	}
	if !cfg.DeepFallback {
		return false, false
	}
	return reflect.DeepEqual(a, b), true
}

// TryHash feeds v's structural hash into sink.
func (reflectStrategy) TryHash(v any, sink hash.Hash, cfg apis.Config) bool {
	return uref.WriteAnyHash(v, sink, cfg)
}

// safeEqual compares with == and converts the runtime panic raised for
// dynamically non-comparable operands into ok=false. The comparison
// path stays total: a cross-kind surprise is a fallthrough, never a
// crash.
func safeEqual(a, b any) (eq bool, ok bool) {
	defer func() {
		if recover() != nil {
			eq, ok = false, false
		}
	}()
	return a == b, true
}
