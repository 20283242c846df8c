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

import "hash"

// Hasher identifies values that can feed a hash contribution into an
// abstract accumulator through an interface.
//
// # Overview
//
// Hasher is the standalone, dependency-free mirror of the dispatch-safe
// hashing contract used by the eqx resolution subsystem. The sink is
// the standard library's hash.Hash, so one WriteHash implementation
// serves every accumulator algorithm (fnv, crc, maphash, murmur3, ...).
// Libraries can require Hasher in their own API surface without
// importing the eqx module itself.
//
// # Usage
//
//	type UserID string
//
//	func (u UserID) WriteHash(sink hash.Hash) {
//	    sink.Write([]byte(u))
//	}
//
//	h := fnv.New64a()
//	UserID("u-1").WriteHash(h)
//	_ = h.Sum64()
//
// # Contract
//
//   - WriteHash MUST only append to sink via Write; it MUST NOT call
//     Sum, Reset, or otherwise disturb a caller-supplied accumulator.
//   - WriteHash MUST be deterministic for a given value within a
//     process: the same value writes the same byte sequence.
//   - Values that compare equal under the corresponding equality
//     contract MUST write identical byte sequences into any sink. This
//     consistency obligation is inherited from the underlying equality
//     relation and MUST NOT be broken by forwarding layers.
//   - WriteHash MUST be safe for concurrent calls on distinct sinks;
//     the sink itself is the only mutable resource involved.
//   - WriteHash MUST NOT perform blocking operations or I/O.
type Hasher interface {
	// WriteHash feeds the receiver's hash contribution into sink.
	WriteHash(sink hash.Hash)
}

// TypeHasher computes hash contributions for values of type T.
//
// # Overview
//
// TypeHasher is the generic, strategy-style counterpart of Hasher: it
// separates the value being hashed from the policy deciding how its
// bytes are fed to the accumulator. A policy paired with a
// TypeEqualer[T] MUST keep the two consistent: operands the equality
// policy reports equal MUST receive identical contributions.
//
// # Usage
//
//	type FoldHasher struct{}
//
//	func (FoldHasher) WriteHash(v string, sink hash.Hash) {
//	    sink.Write([]byte(strings.ToLower(v)))
//	}
//
//	var th common.TypeHasher[string] = FoldHasher{}
//
// # Contract
//
//   - WriteHash MUST be deterministic for a given value.
//   - WriteHash MUST only append to sink via Write.
//   - WriteHash MUST be safe for concurrent calls on distinct sinks.
type TypeHasher[T any] interface {
	// WriteHash feeds v's hash contribution into sink.
	WriteHash(v T, sink hash.Hash)
}

// TypeHasherFunc adapts a plain function to the TypeHasher interface.
//
// # Usage
//
//	th := common.TypeHasherFunc[int](func(v int, sink hash.Hash) {
//	    var b [8]byte
//	    binary.LittleEndian.PutUint64(b[:], uint64(v))
//	    sink.Write(b[:])
//	})
//
// All contractual requirements of TypeHasher apply to the wrapped
// function.
type TypeHasherFunc[T any] func(v T, sink hash.Hash)

// WriteHash implements TypeHasher for TypeHasherFunc by invoking the
// underlying function.
func (f TypeHasherFunc[T]) WriteHash(v T, sink hash.Hash) {
	f(v, sink)
}
