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

import "hash"

// Resolver coordinates strategies to compare and hash values of
// unknown dynamic type. Typical chain:
// CapabilityStrategy -> RegistryStrategy -> ReflectStrategy.
//
// The Resolver owns normalization and the type gate: it unwraps
// operands (AnyView, pointers per cfg), answers nil cases itself, and
// reports operands of differing dynamic types unequal without
// consulting any strategy.
type Resolver interface {
	// Equal reports whether a and b are equal. Two nil operands are
	// equal; a nil and a non-nil operand are not. Operands of differing
	// dynamic types are unequal, never an error.
	Equal(a, b any, cfg Config) bool

	// Hash feeds v's hashable state into sink and reports whether any
	// strategy handled it. A nil v is handled by the resolver itself
	// with a fixed marker.
	Hash(v any, sink hash.Hash, cfg Config) bool
}
