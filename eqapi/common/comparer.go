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

// Comparer augments Equaler with a total-order comparison for values of
// the same concrete type.
//
// # Overview
//
// Comparer is a higher-level contract that extends Equaler with
// ordering. While Equaler answers only "equal or not", Comparer
// additionally ranks two values, which is useful for:
//
//   - Sorted containers and deterministic iteration orders.
//   - Stable output in diagnostics, documentation, and snapshots.
//   - Tie-breaking in deduplication and merge logic.
//
// Ordering across different concrete types is intentionally undefined:
// CompareAny reports ok=false for a cross-type operand instead of
// inventing an arbitrary global order. Equality semantics are unchanged
// from Equaler; the two MUST agree (CompareAny returning 0 if and only
// if EqualAny returns true for the same operands).
//
// # Usage
//
//	type Version int
//
//	func (v Version) AsAny() any { return v }
//	func (v Version) EqualAny(other any) bool {
//	    o, ok := other.(Version)
//	    return ok && v == o
//	}
//	func (v Version) CompareAny(other any) (int, bool) {
//	    o, ok := other.(Version)
//	    if !ok {
//	        return 0, false
//	    }
//	    switch {
//	    case v < o:
//	        return -1, true
//	    case v > o:
//	        return 1, true
//	    }
//	    return 0, true
//	}
//
// # Contract
//
//   - CompareAny MUST return ok=false, and MUST NOT panic, when other's
//     concrete type differs from the receiver's. Callers MUST NOT
//     interpret the int result in that case.
//   - For same-type operands, the result MUST be negative, zero, or
//     positive for "less than", "equal to", "greater than".
//   - The order MUST be consistent with EqualAny: zero iff equal.
//   - The order SHOULD be a total order over the type's values
//     (antisymmetric, transitive); implementations for types with
//     incomparable values (e.g. NaN payloads) MUST document their
//     tie-breaking choice.
//   - CompareAny MUST be safe for concurrent use and MUST NOT perform
//     blocking operations or I/O.
type Comparer interface {
	Equaler

	// CompareAny ranks the receiver against other. ok is false when
	// other's concrete type differs from the receiver's; otherwise the
	// int is negative, zero, or positive as the receiver sorts before,
	// equal to, or after other.
	CompareAny(other any) (int, bool)
}
