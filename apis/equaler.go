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

package apis

// AnyView exposes the underlying value of a wrapper or adapter.
// Plain types implement it by returning themselves; wrappers return
// their payload so resolution can reach the wrapped value.
type AnyView interface {
	// AsAny returns the underlying value. Implementations must not
	// allocate a new semantic identity: the returned value compares
	// equal to the receiver under the same relation.
	AsAny() any
}

// Equaler is the dispatch-safe equality capability. Unlike a typed
// Equal(T) method it accepts any operand, so values of unknown dynamic
// type can be compared through interface values.
//
// Implementations must return false (never panic) when other's dynamic
// type differs from the receiver's. Equality here is partial: a value
// may be unequal to itself (e.g., a NaN payload).
type Equaler interface {
	AnyView

	// EqualAny reports whether other equals the receiver. Operands of a
	// different dynamic type are unequal, not an error.
	EqualAny(other any) bool
}

// TotalEqualer marks an Equaler whose relation is reflexive for every
// value of the type (no self-unequal payloads). It adds no new
// comparison; AsTotalEqualer is the witness that the guarantee holds.
type TotalEqualer interface {
	Equaler

	// AsTotalEqualer returns the receiver under the total-equality
	// contract. It exists so call sites can demand the stronger
	// guarantee at compile time.
	AsTotalEqualer() TotalEqualer
}

// Equalable is the typed equality capability. It is what most types
// already have (a concrete Equal method); the dispatch-safe layer
// adapts it to Equaler where needed.
type Equalable[T any] interface {
	// Equal reports whether other equals the receiver.
	Equal(other T) bool
}
