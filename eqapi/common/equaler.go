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

package common

// Equaler identifies values that can be compared for equality through
// an interface, without the caller knowing their concrete type.
//
// # Overview
//
// Equaler is the standalone, dependency-free mirror of the dispatch-safe
// equality contract used by the eqx resolution subsystem. It exists so
// that libraries can express "my values are comparable through an
// abstract handle" in their own API surface without importing the eqx
// module itself. When a value implements Equaler, comparison logic MUST
// prefer this interface over any structural or reflective strategy.
//
// Semantically, EqualAny is a total operation: it MUST return a boolean
// for every input and MUST NOT panic. An operand whose concrete type
// differs from the receiver's is simply unequal; a type mismatch is a
// normal false result, never an error condition.
//
// # Usage
//
//	type UserID string
//
//	func (u UserID) AsAny() any { return u }
//	func (u UserID) EqualAny(other any) bool {
//	    o, ok := other.(UserID)
//	    return ok && u == o
//	}
//
//	var a, b common.Equaler = UserID("u-1"), UserID("u-1")
//	_ = a.EqualAny(b.AsAny()) // true
//
// # Contract
//
//   - EqualAny MUST be safe for concurrent use by multiple goroutines.
//   - EqualAny MUST be deterministic for a given pair of operands.
//   - EqualAny MUST return false (not panic, not error) when other's
//     concrete type differs from the receiver's.
//   - Implementations SHOULD first unwrap other via AsAny when it is
//     itself a wrapper, so wrapped and plain operands compare alike.
//   - The relation SHOULD be symmetric: a.EqualAny(b) == b.EqualAny(a)
//     whenever both sides implement Equaler. Reflexivity is NOT required
//     (a value MAY be unequal to itself, e.g. a NaN payload); see
//     TotalEqualer in the eqx module for the stronger promise.
type Equaler interface {
	// AsAny returns the underlying value for type-identity testing.
	// Plain types return themselves; wrappers return their payload.
	AsAny() any

	// EqualAny reports whether other equals the receiver. Operands of
	// a different concrete type are unequal, not an error.
	EqualAny(other any) bool
}

// TypeEqualer decides equality for values of type T.
//
// # Overview
//
// TypeEqualer is a generic, strategy-style equality interface. It
// separates the values being compared (two operands of type T) from the
// policy that decides their equality, so one policy can be reused
// across types or injected per module. It is the abstract-handle
// counterpart of a type's own Equal(T) bool method.
//
// # Usage
//
//	type FoldEqualer struct{}
//
//	func (FoldEqualer) Equal(a, b string) bool {
//	    return strings.EqualFold(a, b)
//	}
//
//	var eq common.TypeEqualer[string] = FoldEqualer{}
//	_ = eq.Equal("Hello", "hello") // true
//
// # Contract
//
//   - Equal MUST be deterministic for a given pair of operands.
//   - Equal MUST be safe for concurrent calls from multiple goroutines.
//   - Equal MUST NOT perform blocking operations or I/O.
//   - The relation SHOULD be symmetric; if it is also reflexive and
//     transitive, implementations SHOULD document that, since hashing
//     layers rely on it when deriving digests.
type TypeEqualer[T any] interface {
	// Equal reports whether a and b are equal under this policy.
	Equal(a, b T) bool
}

// TypeEqualerFunc adapts a plain function to the TypeEqualer interface.
//
// # Overview
//
// TypeEqualerFunc lets standalone functions with signature
// func(a, b T) bool satisfy TypeEqualer, which is convenient when the
// policy is naturally a closure or needs to be passed as a dependency.
// All contractual requirements of TypeEqualer apply to the wrapped
// function: deterministic, concurrency-safe, non-blocking.
//
// # Usage
//
//	eq := common.TypeEqualerFunc[int](func(a, b int) bool { return a == b })
//	_ = eq.Equal(10, 10) // true
type TypeEqualerFunc[T any] func(a, b T) bool

// Equal implements TypeEqualer for TypeEqualerFunc by invoking the
// underlying function. It adds a single call indirection and no
// allocations.
func (f TypeEqualerFunc[T]) Equal(a, b T) bool {
	return f(a, b)
}
