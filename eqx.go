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
	"errors"
	"hash"
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/spaolacci/murmur3"

	"dirpx.dev/eqx/apis"
	"dirpx.dev/eqx/builder"
	"dirpx.dev/eqx/config"
	"dirpx.dev/eqx/strategy"
	uref "dirpx.dev/eqx/utils/reflect"
)

// init initializes the global res state.
func init() {
	// Initialize state with default cfg, reg, and res.
	s := &state{cfg: config.DefaultConfig()}
	b := builder.New()
	s.reg = b.BuildRegistry(s.cfg, nil, nil)
	s.res = b.BuildResolver(s.cfg, s.reg, nil, nil)
	s.bld = b
	// Store the initial state atomically.
	st.Store(s)
}

var (
	// ErrNilRegistry is returned when a builder returns a nil registry.
	ErrNilRegistry = errors.New("eqx: builder returned nil registry")
	// ErrNilResolver is returned when a builder returns a nil resolver.
	ErrNilResolver = errors.New("eqx: builder returned nil resolver")
)

// Equal reports whether a and b are equal using the global eqx res.
// It uses the global eqx configuration and reg. Operands of differing
// dynamic types are unequal, never an error, and the call never panics.
// This is a convenience wrapper around the global res.
func Equal(a, b any) bool {
	s := st.Load()
	return s.res.Equal(a, b, s.cfg)
}

// Hash feeds v's hash contribution into sink using the global eqx res.
// It reports whether any strategy handled v; with the default builder
// every value is handled. Only Write is called on sink.
// This is a convenience wrapper around the global res.
func Hash(v any, sink hash.Hash) bool {
	s := st.Load()
	return s.res.Hash(v, sink, s.cfg)
}

// Sum64 returns a murmur3 digest of v's hash contribution. It is a
// convenience for map keys, sharding, and tests; values equal under
// Equal produce identical digests.
func Sum64(v any) uint64 {
	h := murmur3.New64()
	Hash(v, h)
	return h.Sum64()
}

// structural is the registry-free fallback used by EqualValues and
// HashValue when no routine is registered for a type.
var structural = strategy.NewReflectStrategy()

// EqualValues compares a and b through the registry and structural
// layers only, skipping the capability fast path. Capability methods
// that delegate back into the dispatcher (generated code, Obj) rely on
// this to avoid re-entering themselves.
func EqualValues(a, b any) bool {
	s := st.Load()
	a = uref.Unwrap(a, s.cfg)
	b = uref.Unwrap(b, s.cfg)
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	if eq, ok := s.reg.LookupEqual(reflect.TypeOf(a)); ok {
		return eq(a, b)
	}
	eq, _ := structural.TryEqual(a, b, s.cfg)
	return eq
}

// HashValue feeds v's hash contribution into sink through the registry
// and structural layers only, skipping the capability fast path. See
// EqualValues.
func HashValue(v any, sink hash.Hash) bool {
	s := st.Load()
	v = uref.Unwrap(v, s.cfg)
	if v == nil {
		uref.WriteNilHash(sink)
		return true
	}
	if h, ok := s.reg.LookupHash(reflect.TypeOf(v)); ok {
		h(v, sink)
		return true
	}
	return structural.TryHash(v, sink, s.cfg)
}

// RegisterEqual adds a typed equality routine for T to the global eqx reg.
// T may be a pointer type: the registry keys it under the pointee (per
// the FollowPointers normalization), and operands are re-addressed back
// to T before the routine runs.
// This is a convenience wrapper around the global reg.
func RegisterEqual[T any](fn func(a, b T) bool) error {
	if fn == nil {
		return RegisterEqualFunc(reflect.TypeOf((*T)(nil)).Elem(), nil)
	}
	return RegisterEqualFunc(reflect.TypeOf((*T)(nil)).Elem(), func(a, b any) bool {
		av, aok := asRegistered[T](a)
		bv, bok := asRegistered[T](b)
		return aok && bok && fn(av, bv)
	})
}

// RegisterHash adds a typed hashing routine for T to the global eqx reg.
// A routine registered alongside RegisterEqual must write identical
// bytes for operands the equality routine reports equal. Pointer T is
// handled like in RegisterEqual.
// This is a convenience wrapper around the global reg.
func RegisterHash[T any](fn func(v T, sink hash.Hash)) error {
	if fn == nil {
		return RegisterHashFunc(reflect.TypeOf((*T)(nil)).Elem(), nil)
	}
	return RegisterHashFunc(reflect.TypeOf((*T)(nil)).Elem(), func(v any, sink hash.Hash) {
		if tv, ok := asRegistered[T](v); ok {
			fn(tv, sink)
		}
	})
}

// asRegistered converts a resolved operand back to the registered type
// T. Registration keys are normalized (a routine for *E is keyed under
// E) and the resolver unwraps operands the same way, so a routine
// registered for a pointer type receives pointee values here; the
// missing pointer layers are rebuilt around an addressable copy.
func asRegistered[T any](v any) (T, bool) {
	if tv, ok := v.(T); ok {
		return tv, true
	}
	if v == nil {
		var zero T
		return zero, false
	}
	rv := reflect.ValueOf(v)
	for t := reflect.TypeOf((*T)(nil)).Elem(); t.Kind() == reflect.Pointer; t = t.Elem() {
		p := reflect.New(rv.Type())
		p.Elem().Set(rv)
		rv = p
		if tv, ok := rv.Interface().(T); ok {
			return tv, true
		}
	}
	var zero T
	return zero, false
}

// RegisterEqualFunc adds an untyped equality routine for t to the global eqx reg.
func RegisterEqualFunc(t reflect.Type, eq apis.EqualFunc) error {
	return st.Load().reg.RegisterEqual(t, eq)
}

// RegisterHashFunc adds an untyped hashing routine for t to the global eqx reg.
func RegisterHashFunc(t reflect.Type, h apis.HashFunc) error {
	return st.Load().reg.RegisterHash(t, h)
}

// SetAll explicitly sets all global eqx state components.
//
// Nil arguments leave the corresponding component unchanged,
// except for ext which is always replaced.
//
// This is a convenience wrapper around the global state.
func SetAll(cfg *apis.Config, ext any, reg apis.Registry, res apis.Resolver, bld apis.Builder) {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Configuration
	ncfg := old.cfg
	if cfg != nil {
		ncfg = *cfg
	}

	// Extension
	next := ext

	// Builder
	nbld := old.bld
	if bld != nil {
		nbld = bld
	}

	// Registry
	nreg := reg
	npreg := false
	if nreg == nil {
		nreg = nbld.BuildRegistry(ncfg, old.reg, next)
	} else {
		npreg = true
	}

	// Resolver
	nres := res
	npres := false
	if nres == nil {
		nres = nbld.BuildResolver(ncfg, nreg, old.res, next)
	} else {
		npres = true
	}

	// Ensure non-nil reg and res.
	if nreg == nil {
		panic(ErrNilRegistry)
	}
	if nres == nil {
		panic(ErrNilResolver)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  ncfg,
			ext:  next,
			reg:  nreg,
			res:  nres,
			bld:  nbld,
			preg: npreg,
			pres: npres,
		},
	)
}

// Config returns the global eqx configuration.
func Config() apis.Config {
	return st.Load().cfg
}

// SetConfig sets the global eqx configuration to cfg.
// It rebuilds the global reg and res using the new configuration.
// This is a convenience wrapper around the global state.
func SetConfig(cfg apis.Config) {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()
	b := old.bld

	// Build new nreg and res based on the new cfg and old state.
	nreg := old.reg
	if !old.preg {
		nreg = b.BuildRegistry(cfg, old.reg, old.ext)
	}
	nres := old.res
	if !old.pres {
		nres = b.BuildResolver(cfg, nreg, old.res, old.ext)
	}

	// Ensure non-nil nreg and res.
	if nreg == nil {
		panic(ErrNilRegistry)
	}
	if nres == nil {
		panic(ErrNilResolver)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  cfg,
			ext:  old.ext,
			reg:  nreg,
			res:  nres,
			bld:  b,
			preg: old.preg,
			pres: old.pres,
		},
	)
}

// Registry returns the global eqx reg.
func Registry() apis.Registry {
	return st.Load().reg
}

// SetRegistry sets the global eqx reg to reg.
// It uses the global eqx configuration to rebuild the global res.
// This is a convenience wrapper around the global state.
func SetRegistry(reg apis.Registry) {
	if reg == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()
	b := old.bld

	// Build new res based on the old cfg and new reg.
	nres := old.res
	if !old.pres {
		nres = b.BuildResolver(old.cfg, reg, old.res, old.ext)
	}

	// Ensure non-nil res.
	if nres == nil {
		panic(ErrNilResolver)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			reg:  reg,
			res:  nres,
			bld:  b,
			preg: true,
			pres: old.pres,
		},
	)
}

// Resolver returns the global eqx res.
func Resolver() apis.Resolver {
	return st.Load().res
}

// SetResolver sets the global eqx res to res.
// It uses the global eqx configuration and reg.
// This is a convenience wrapper around the global state.
func SetResolver(res apis.Resolver) {
	if res == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			reg:  old.reg,
			res:  res,
			bld:  old.bld,
			preg: old.preg,
			pres: true,
		},
	)
}

// Builder returns the global eqx bld.
func Builder() apis.Builder {
	return st.Load().bld
}

// SetBuilder sets the global eqx bld to b.
// This is a convenience wrapper around the global state.
func SetBuilder(b apis.Builder) {
	if b == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Build new reg and res based on the new bld and old state.
	nreg := old.reg
	if !old.preg {
		nreg = b.BuildRegistry(old.cfg, old.reg, old.ext)
	}
	nres := old.res
	if !old.pres {
		nres = b.BuildResolver(old.cfg, nreg, old.res, old.ext)
	}

	// Ensure non-nil reg and res.
	if nreg == nil {
		panic(ErrNilRegistry)
	}
	if nres == nil {
		panic(ErrNilResolver)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			reg:  nreg,
			res:  nres,
			bld:  b,
			preg: old.preg,
			pres: old.pres,
		},
	)
}

// SetExt replaces extension config and rebuilds non-pinned layers via the builder.
func SetExt[T any](ext T) {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()
	b := old.bld

	// Build new reg and res based on the new ext and old state.
	nreg := old.reg
	if !old.preg {
		nreg = b.BuildRegistry(old.cfg, old.reg, ext)
	}
	nres := old.res
	if !old.pres {
		nres = b.BuildResolver(old.cfg, nreg, old.res, ext)
	}

	// Ensure non-nil reg and res.
	if nreg == nil {
		panic(ErrNilRegistry)
	}
	if nres == nil {
		panic(ErrNilResolver)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  ext,
			reg:  nreg,
			res:  nres,
			bld:  b,
			preg: old.preg,
			pres: old.pres,
		},
	)
}

// ExtAs returns the global eqx extension config as type T.
func ExtAs[T any]() (T, bool) {
	ext, ok := st.Load().ext.(T)
	return ext, ok
}

// IsRegistryPinned returns whether the global eqx reg is pinned (immutable).
func IsRegistryPinned() bool {
	return st.Load().preg
}

// PinRegistry makes the global eqx reg immutable.
func PinRegistry() {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			reg:  old.reg,
			res:  old.res,
			bld:  old.bld,
			preg: true,
			pres: old.pres,
		},
	)
}

// UnpinRegistry makes the global eqx reg mutable again.
func UnpinRegistry() {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			reg:  old.reg,
			res:  old.res,
			bld:  old.bld,
			preg: false,
			pres: old.pres,
		},
	)
}

// IsResolverPinned returns whether the global eqx res is pinned (immutable).
func IsResolverPinned() bool {
	return st.Load().pres
}

// PinResolver makes the global eqx res immutable.
func PinResolver() {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			reg:  old.reg,
			res:  old.res,
			bld:  old.bld,
			preg: old.preg,
			pres: true,
		},
	)
}

// UnpinResolver makes the global eqx res mutable again.
func UnpinResolver() {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			reg:  old.reg,
			res:  old.res,
			bld:  old.bld,
			preg: old.preg,
			pres: false,
		},
	)
}

// buildMu serializes writers (reconfigurations/swaps) so we never publish
// partially-built snapshots.
var buildMu sync.Mutex

// st is the global eqx state.
var st atomic.Pointer[state]

// state is the global eqx state snapshot.
// Immutable snapshot published atomically via st.Store; never mutate fields
// of a published state. Writers create a new state and swap it atomically.
type state struct {
	// cfg is the global eqx configuration.
	cfg apis.Config
	// ext is the global eqx extension configuration.
	ext any
	// reg is the global eqx reg.
	reg apis.Registry
	// res is the global eqx res.
	res apis.Resolver
	// bld is the global eqx bld.
	bld apis.Builder
	// preg indicates whether the reg is pinned (immutable).
	preg bool
	// pres indicates whether the res is pinned (immutable).
	pres bool
}
