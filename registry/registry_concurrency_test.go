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

package registry_test

import (
	"hash"
	"reflect"
	"runtime"
	"sync"
	"testing"

	apis "dirpx.dev/eqx/apis"
	"dirpx.dev/eqx/config"
	"dirpx.dev/eqx/registry"
)

// A few named types to avoid anonymous/unnamed pitfalls.
type T0 struct{ A int }
type T1 struct{ A int }
type T2 struct{ A int }
type T3 struct{ A int }
type T4 struct{ A int }
type T5 struct{ A int }
type T6 struct{ A int }
type T7 struct{ A int }
type T8 struct{ A int }
type T9 struct{ A int }

// TestConcurrentRegisterAndLookup verifies that the register/lookup
// surface is race-free and consistent under concurrent use.
func TestConcurrentRegisterAndLookup(t *testing.T) {
	cfg := config.DefaultConfig()
	reg := registry.New(cfg)

	types := []reflect.Type{
		reflect.TypeOf(T0{}), reflect.TypeOf(T1{}), reflect.TypeOf(T2{}),
		reflect.TypeOf(T3{}), reflect.TypeOf(T4{}), reflect.TypeOf(T5{}),
		reflect.TypeOf(T6{}), reflect.TypeOf(T7{}), reflect.TypeOf(T8{}),
		reflect.TypeOf(T9{}),
	}

	// Register once (sequential) to establish baseline.
	for _, tt := range types {
		tt := tt
		if err := reg.RegisterEqual(tt, func(a, b any) bool {
			return reflect.DeepEqual(a, b)
		}); err != nil {
			t.Fatalf("register %s: %v", tt, err)
		}
	}

	// Hammer with concurrent lookups and re-registration attempts. The
	// second registration of a kind always reports a conflict; the point
	// is that it does so without racing the readers.
	wg := sync.WaitGroup{}
	workers := runtime.GOMAXPROCS(0) * 4

	// Readers
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < 5000; i++ {
				tt := types[i%len(types)]
				if _, ok := reg.LookupEqual(tt); !ok {
					t.Errorf("lookup failed for %v", tt)
					return
				}
				_ = reg.Count()
				_ = reg.Entries()
			}
		}()
	}

	// Writers
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(id int) {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				j := (i + id) % len(types)
				err := reg.RegisterEqual(types[j], func(a, b any) bool { return false })
				if err != registry.ErrConflictingRegistration {
					t.Errorf("re-register %v: want conflict, got %v", types[j], err)
					return
				}
			}
		}(w)
	}

	wg.Wait()

	// Final consistency checks.
	if reg.Count() != len(types) {
		t.Fatalf("count mismatch: got %d want %d", reg.Count(), len(types))
	}
	got := map[reflect.Type]bool{}
	for _, e := range reg.Entries() {
		got[e.Type] = e.Equal != nil
	}
	for _, tt := range types {
		if !got[tt] {
			t.Fatalf("entry missing or incomplete for %v", tt)
		}
	}
}

// TestConcurrentMixedRegistration races equality and hash registration
// for the same set of types and checks the per-type counter stays exact.
func TestConcurrentMixedRegistration(t *testing.T) {
	reg := registry.New(config.DefaultConfig())

	types := []reflect.Type{
		reflect.TypeOf(T0{}), reflect.TypeOf(T1{}), reflect.TypeOf(T2{}),
		reflect.TypeOf(T3{}), reflect.TypeOf(T4{}),
	}

	wg := sync.WaitGroup{}
	wg.Add(2)
	go func() {
		defer wg.Done()
		for _, tt := range types {
			_ = reg.RegisterEqual(tt, func(a, b any) bool { return reflect.DeepEqual(a, b) })
		}
	}()
	go func() {
		defer wg.Done()
		for _, tt := range types {
			_ = reg.RegisterHash(tt, func(v any, sink hash.Hash) {})
		}
	}()
	wg.Wait()

	if reg.Count() != len(types) {
		t.Fatalf("count mismatch: got %d want %d", reg.Count(), len(types))
	}
}

// TestResetSnapshot ensures Reset is safe and Entries returns a stable snapshot.
func TestResetSnapshot(t *testing.T) {
	reg := registry.New(config.DefaultConfig())

	_ = reg.RegisterEqual(reflect.TypeOf(T0{}), func(a, b any) bool { return a.(T0) == b.(T0) })
	_ = reg.RegisterEqual(reflect.TypeOf(T1{}), func(a, b any) bool { return a.(T1) == b.(T1) })

	snap := reg.Entries() // snapshot copy expected
	reg.Reset()

	// After Reset, Count() should be 0, but previous snapshot must still be usable.
	if reg.Count() != 0 {
		t.Fatalf("count after reset: got %d want 0", reg.Count())
	}
	if len(snap) != 2 {
		t.Fatalf("snapshot length changed unexpectedly: %d", len(snap))
	}
	// sanity
	if snap[0].Equal == nil || snap[1].Equal == nil {
		t.Fatalf("snapshot contents invalid after reset")
	}
}

// This ensures the interface is satisfied; not a test but a compile-time check.
var _ apis.Registry = registry.New(config.DefaultConfig())
