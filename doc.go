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

// Package eqx provides a global, process-wide equality and hashing service
// for values of unknown dynamic type.
//
// eqx is responsible for answering two questions that Go itself answers
// only partially: "are these two arbitrary values equal?" and "what does
// this arbitrary value contribute to a hash?". The == operator panics on
// non-comparable dynamic types, typed Equal(T) methods are invisible to
// interface-typed code, and there is no universal hashing contract at all.
// eqx closes that gap with a total, never-failing comparison and an
// accumulator-based hashing operation that work through interface values.
//
// # Design
//
// The core of eqx is a read-mostly global snapshot (state). The snapshot
// holds four things:
//
//   - Config: rules that control how operands are normalized and compared
//     (whether top-level pointers are dereferenced, how deep wrappers are
//     unwrapped, whether non-comparable types fall back to structural
//     comparison, how deep the structural hash walk recurses).
//
//   - Registry: a process-wide mapping from Go types to explicit equality
//     and hashing routines. This is how you bind custom semantics for
//     important domain types (e.g. case-insensitive identifiers, money
//     values compared by normalized amount). The registry can be written
//     to at runtime (RegisterEqual/RegisterHash).
//
//   - Resolver: a read-only object that answers "are these equal?" and
//     "hash this into that sink". The resolver normalizes operands, owns
//     the nil rules and the type gate (operands of different dynamic types
//     are unequal, full stop), then tries strategies in priority order:
//     1. If the value implements apis.Equaler / apis.Hasher, use its own
//     dispatch-safe methods.
//     2. If the type is found in the Registry, use the registered routine.
//     3. Otherwise fall back to a reflect-based strategy: == for
//     comparable types, reflect.DeepEqual for the rest, and a structural
//     walk for hashing.
//     Resolver is expected to be concurrency-safe for reads.
//
//   - Builder: a pluggable factory that knows how to construct Registry
//     and Resolver instances for a given Config (and optional extension
//     data). The Builder is also allowed to reuse/migrate state from
//     previous Registry/Resolver instances.
//
// All of these live inside a single immutable struct called state.
// The package holds an atomic pointer to the current state. Readers load
// that pointer, use it, and never mutate it. Writers build a brand-new
// state and atomically swap it in.
//
// This means eqx operations are lock-free on the hot path:
//
//	ok := eqx.Equal(a, b)
//	eqx.Hash(v, sink)
//	key := eqx.Sum64(v)
//
// and concurrent callers always see a consistent snapshot.
//
// # Dispatch-safe capabilities
//
// The apis package defines the narrow, dispatch-safe contracts that make
// all of this work through interface values:
//
//   - apis.Equaler: EqualAny(other any) bool plus an AsAny view. A
//     cross-type comparison is false, never an error.
//   - apis.TotalEqualer: marks the relation as reflexive for every value
//     of the type. This is a compile-time promise inherited from the
//     underlying type; eqx does not verify it at runtime.
//   - apis.Hasher: WriteHash(sink hash.Hash), feeding the value's
//     contribution into any caller-supplied accumulator.
//
// Every Go value effectively holds these capabilities through the
// resolver; a type gains them as methods either by being wrapped in
// eqx.Obj or by running the eqxgen generator (cmd/eqxgen) over a small
// declarative manifest. Generated methods delegate to EqualValues and
// HashValue, the registry+structural layer that skips the capability
// fast path, so dispatch never re-enters itself.
//
// # Global API
//
// The package exposes three groups of operations:
//
//  1. Read helpers:
//
//     Equal(a, b any) bool
//     Hash(v any, sink hash.Hash) bool
//     Sum64(v any) uint64
//     EqualValues(a, b any) bool
//     HashValue(v any, sink hash.Hash) bool
//     Registry() apis.Registry
//     Resolver() apis.Resolver
//
//     These are safe for concurrent use without additional locking.
//     They always read from the latest published snapshot.
//
//  2. Mutation helpers:
//
//     RegisterEqual[T](fn)
//     RegisterHash[T](fn)
//     SetConfig(cfg apis.Config)
//     SetBuilder(b apis.Builder)
//     SetExt(ext T)
//     SetRegistry(reg apis.Registry)
//     SetResolver(res apis.Resolver)
//     UnpinRegistry()
//     UnpinResolver()
//     SetAll(...)
//
//     Registration writes into the current registry. The Set* helpers
//     acquire an internal build lock, derive a new snapshot (rebuilding
//     or reusing Registry / Resolver as needed), and then atomically
//     publish that snapshot.
//
//     Semantics in short:
//
//     - Config affects how operands are normalized and compared.
//     Calling SetConfig() may trigger a rebuild of Registry and/or
//     Resolver, unless they are explicitly "pinned".
//
//     - Builder controls how Registry and Resolver are constructed.
//     Swapping the Builder lets you replace resolution logic
//     (different strategies, different fallback policies) at runtime.
//
//     - Ext is an opaque extension payload. It is not interpreted by
//     eqx itself. It is simply passed down to the Builder so custom
//     builders (in other binaries) can carry extra policy/state.
//
//     - SetRegistry() / SetResolver() directly overwrite the current
//     Registry / Resolver in the snapshot and "pin" them. Once a
//     layer is pinned, eqx will stop rebuilding that layer
//     automatically until you call UnpinRegistry()/UnpinResolver().
//
//     - SetAll(...) is the "hard reset" API. It lets a process replace
//     Builder, Config, Ext, Registry, Resolver in one shot. This is
//     mainly used by tests to get a clean deterministic state
//     between test cases.
//
//  3. Introspection:
//
//     ExtAs[T]() (T, bool)
//     // plus Registry().Entries(), etc.
//
//     These let callers examine the currently published snapshot for
//     debugging or documentation.
//
// # Concurrency model
//
// Reads (Equal, Hash, Sum64, Registry, Resolver) are wait-free: they load
// the current *state atomically and never take locks. The Resolver and
// Registry returned by that state must themselves be concurrency-safe
// for reads.
//
// Writes (SetConfig, SetBuilder, SetExt, SetRegistry, SetResolver, etc.)
// take a short build mutex, assemble a brand-new state struct, and then
// publish it via an atomic pointer swap. This gives the calling binary
// a predictable "last write wins" behavior without forcing per-lookup
// locking.
//
// # Error model
//
// The comparison and hashing path has no error conditions: operations
// are total and never panic. A cross-type comparison is an ordinary
// false. Errors exist only at the edges: registry misuse (nil types or
// routines, conflicting registrations) and builder misbehavior (nil
// layers, which panic because the process state would be unusable).
//
// # Usage pattern in a binary
//
// A typical component does:
//
//  1. Let eqx init with default builder/config.
//
//  2. Optionally register routines for well-known types up front:
//
//     eqx.RegisterEqual(func(a, b UserID) bool { return a.Normalize() == b.Normalize() })
//     eqx.RegisterHash(func(v UserID, sink hash.Hash) { sink.Write([]byte(v.Normalize())) })
//
//  3. Wrap values that need the capability methods, or run eqxgen for
//     types that should carry them natively.
//
//  4. Use eqx.Equal / eqx.Sum64 everywhere values of unknown dynamic
//     type meet: caches, deduplication, test assertions, set types.
//
//  5. In tests, call eqx.SetAll(...) to get deterministic snapshots
//     and to inject a mock Builder.
//
// # Scope
//
// eqx is intentionally small. It does not try to be a serialization
// framework or a deep-copy library. It only solves one job:
//
//	"Given any two Go values, decide equality totally and hash
//	 consistently with that equality, through any interface."
//
// Everything else (ordering, persistence, codecs, etc.) belongs to
// higher layers.
package eqx
