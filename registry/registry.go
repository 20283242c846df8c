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

package registry

import (
	"errors"
	"reflect"
	"sync"

	"dirpx.dev/eqx/apis"
	"dirpx.dev/eqx/config"
	uref "dirpx.dev/eqx/utils/reflect"
)

var (
	// ErrNilType is returned when a nil reflect.Type is provided.
	ErrNilType = errors.New("eqx(registry): nil reflect.Type provided")
	// ErrNilFunc is returned when a nil routine is provided.
	ErrNilFunc = errors.New("eqx(registry): nil routine provided")
	// ErrConflictingRegistration indicates an attempt to re-register a
	// routine kind that a type already has. Function values cannot be
	// compared, so there is no idempotent re-registration: any second
	// registration of the same kind is a conflict.
	ErrConflictingRegistration = errors.New("eqx(registry): conflicting type registration")
)

// New constructs a Registry that normalizes type keys according to cfg.
// Only FollowPointers and MaxUnwrap are used here.
func New(cfg apis.Config) apis.Registry {
	if cfg.MaxUnwrap <= 0 {
		cfg.MaxUnwrap = config.DefaultMaxUnwrap
	}
	return &registry{cfg: cfg}
}

// registry is a simple Registry implementation backed by sync.Map.
type registry struct {
	// cfg is the configuration used for type-key normalization.
	cfg apis.Config
	// mu guards write-side consistency and counter
	mu sync.Mutex
	// eq maps reflect.Type to the registered equality routine.
	eq sync.Map // map[reflect.Type]apis.EqualFunc
	// hs maps reflect.Type to the registered hashing routine.
	hs sync.Map // map[reflect.Type]apis.HashFunc
	// count tracks the number of types with at least one routine.
	count int
}

// RegisterEqual associates the normalized form of t with eq.
func (r *registry) RegisterEqual(t reflect.Type, eq apis.EqualFunc) error {
	// Validate inputs early.
	if t == nil {
		return ErrNilType
	}
	if eq == nil {
		return ErrNilFunc
	}

	// Normalize the key according to r.cfg so *T and T share a slot.
	b, err := uref.NormalizeType(t, r.cfg)
	if err != nil {
		return err
	}

	// Fast read path: conflict check without locking.
	if _, ok := r.eq.Load(b); ok {
		return ErrConflictingRegistration
	}

	// Write path: guard with a mutex to keep counter consistent and avoid ABA.
	r.mu.Lock()
	defer r.mu.Unlock()

	// Re-check under lock in case another goroutine stored meanwhile.
	if _, ok := r.eq.Load(b); ok {
		return ErrConflictingRegistration
	}

	r.eq.Store(b, eq)
	if _, ok := r.hs.Load(b); !ok {
		r.count++
	}
	return nil
}

// RegisterHash associates the normalized form of t with h.
func (r *registry) RegisterHash(t reflect.Type, h apis.HashFunc) error {
	if t == nil {
		return ErrNilType
	}
	if h == nil {
		return ErrNilFunc
	}

	b, err := uref.NormalizeType(t, r.cfg)
	if err != nil {
		return err
	}

	if _, ok := r.hs.Load(b); ok {
		return ErrConflictingRegistration
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.hs.Load(b); ok {
		return ErrConflictingRegistration
	}

	r.hs.Store(b, h)
	if _, ok := r.eq.Load(b); !ok {
		r.count++
	}
	return nil
}

// LookupEqual returns the equality routine for a type if present.
func (r *registry) LookupEqual(t reflect.Type) (apis.EqualFunc, bool) {
	if t == nil {
		return nil, false
	}
	nt, err := uref.NormalizeType(t, r.cfg)
	if err != nil {
		return nil, false
	}
	if v, ok := r.eq.Load(nt); ok {
		return v.(apis.EqualFunc), true
	}
	return nil, false
}

// LookupHash returns the hashing routine for a type if present.
func (r *registry) LookupHash(t reflect.Type) (apis.HashFunc, bool) {
	if t == nil {
		return nil, false
	}
	nt, err := uref.NormalizeType(t, r.cfg)
	if err != nil {
		return nil, false
	}
	if v, ok := r.hs.Load(nt); ok {
		return v.(apis.HashFunc), true
	}
	return nil, false
}

// Entries returns a snapshot for diagnostics/docs (order is unspecified).
func (r *registry) Entries() []apis.Entry {
	merged := map[reflect.Type]apis.Entry{}
	r.eq.Range(func(key, value any) bool {
		t := key.(reflect.Type)
		e := merged[t]
		e.Type = t
		e.Equal = value.(apis.EqualFunc)
		merged[t] = e
		return true
	})
	r.hs.Range(func(key, value any) bool {
		t := key.(reflect.Type)
		e := merged[t]
		e.Type = t
		e.Hash = value.(apis.HashFunc)
		merged[t] = e
		return true
	})

	entries := make([]apis.Entry, 0, len(merged))
	for _, e := range merged {
		entries = append(entries, e)
	}
	return entries
}

// Count returns the number of types with at least one routine.
func (r *registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// Reset clears all registered entries.
func (r *registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.eq = sync.Map{}
	r.hs = sync.Map{}
	r.count = 0
}
