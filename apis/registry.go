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

import "reflect"

// Registry provides a reflection-free lookup of comparison and hashing
// routines for known types. Keep it minimal so implementations can be
// lock-free or sync.Map-backed.
type Registry interface {
	// RegisterEqual associates a concrete reflect.Type with an equality
	// routine. Re-registering a type that already has one is a conflict.
	RegisterEqual(t reflect.Type, eq EqualFunc) error
	// RegisterHash associates a concrete reflect.Type with a hashing
	// routine. Re-registering a type that already has one is a conflict.
	RegisterHash(t reflect.Type, h HashFunc) error
	// LookupEqual returns the equality routine for a type if present.
	LookupEqual(t reflect.Type) (eq EqualFunc, ok bool)
	// LookupHash returns the hashing routine for a type if present.
	LookupHash(t reflect.Type) (h HashFunc, ok bool)
	// Entries returns a snapshot for diagnostics/docs (order is unspecified).
	Entries() []Entry
	// Count returns the number of types with at least one routine.
	Count() int
	// Reset clears all registered entries.
	Reset()
}

// Entry is a single type binding in a Registry snapshot. Either routine
// may be nil when only the other was registered.
type Entry struct {
	// Type is the registered reflect.Type.
	Type reflect.Type
	// Equal is the registered equality routine, if any.
	Equal EqualFunc
	// Hash is the registered hashing routine, if any.
	Hash HashFunc
}
