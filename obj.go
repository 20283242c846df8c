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

package eqx

import (
	"hash"

	"dirpx.dev/eqx/apis"
)

// Obj is a forwarding wrapper: it holds exactly one payload value and
// carries the full dispatch-safe capability set on its behalf. Wrapping
// a value is how a type with no methods of its own gains Equaler,
// TotalEqualer, and Hasher, including payloads held behind pointers or
// caller-defined interfaces.
//
// Obj has no identity beyond its payload: resolution sees straight
// through it (AsAny), so a wrapped value and its payload compare equal
// and hash identically. Copy semantics mirror the payload's.
//
// The zero Obj wraps the payload type's zero value, which is itself a
// valid operand.
type Obj[T any] struct {
	// V is the wrapped payload.
	V T
}

// Wrap wraps v. Equivalent to Obj[T]{V: v}; it exists for call sites
// where type inference reads better than a composite literal.
func Wrap[T any](v T) Obj[T] {
	return Obj[T]{V: v}
}

// Unwrap returns the payload.
func (o Obj[T]) Unwrap() T {
	return o.V
}

// AsAny exposes the payload for type-identity tests and normalization.
func (o Obj[T]) AsAny() any {
	return o.V
}

// EqualAny reports whether other equals the payload. other may be a
// plain value, a pointer, another Obj, or any apis.AnyView; operands of
// a different concrete type are unequal, not an error.
func (o Obj[T]) EqualAny(other any) bool {
	return Equal(o.V, other)
}

// AsTotalEqualer returns the wrapper under the total-equality contract.
// The reflexivity promise is inherited from the payload type and is not
// verified at runtime.
func (o Obj[T]) AsTotalEqualer() apis.TotalEqualer {
	return o
}

// WriteHash feeds the payload's hash contribution into sink.
func (o Obj[T]) WriteHash(sink hash.Hash) {
	Hash(o.V, sink)
}

// Equal reports whether other wraps an equal payload. It re-derives the
// typed equality capability from the dispatch-safe one, satisfying
// apis.Equalable[Obj[T]].
func (o Obj[T]) Equal(other Obj[T]) bool {
	return Equal(o.V, other.V)
}

// Sum64 returns the payload's murmur3 digest.
func (o Obj[T]) Sum64() uint64 {
	return Sum64(o.V)
}

// Compile-time checks that Obj carries the full capability set.
var (
	_ apis.TotalEqualer        = Obj[int]{}
	_ apis.Hasher              = Obj[int]{}
	_ apis.Equalable[Obj[int]] = Obj[int]{}
)
