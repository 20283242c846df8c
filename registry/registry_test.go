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
	"encoding/binary"
	"hash"
	"reflect"
	"testing"

	"dirpx.dev/eqx/config"
	"dirpx.dev/eqx/registry"
)

func eqT1(a, b any) bool {
	return a.(T1) == b.(T1)
}

func hashT1(v any, sink hash.Hash) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(v.(T1).A))
	_, _ = sink.Write(buf[:])
}

func TestRegisterAndLookup(t *testing.T) {
	cfg := config.DefaultConfig()
	reg := registry.New(cfg)

	if err := reg.RegisterEqual(reflect.TypeOf(T1{}), eqT1); err != nil {
		t.Fatalf("RegisterEqual(T1): unexpected error: %v", err)
	}
	if err := reg.RegisterHash(reflect.TypeOf(T1{}), hashT1); err != nil {
		t.Fatalf("RegisterHash(T1): unexpected error: %v", err)
	}

	eq, ok := reg.LookupEqual(reflect.TypeOf(T1{}))
	if !ok {
		t.Fatalf("LookupEqual(T1): not found")
	}
	if !eq(T1{A: 3}, T1{A: 3}) || eq(T1{A: 3}, T1{A: 4}) {
		t.Fatalf("registered equality routine misbehaves")
	}

	if _, ok := reg.LookupHash(reflect.TypeOf(T1{})); !ok {
		t.Fatalf("LookupHash(T1): not found")
	}

	// Both routines on one type are a single counted entry.
	if reg.Count() != 1 {
		t.Fatalf("Count() = %d, want 1", reg.Count())
	}
}

func TestRegisterPointerSharesKey(t *testing.T) {
	cfg := config.DefaultConfig()
	reg := registry.New(cfg)

	// *T1 normalizes to T1, so lookups through either spelling hit the
	// same slot.
	if err := reg.RegisterEqual(reflect.TypeOf(&T1{}), eqT1); err != nil {
		t.Fatalf("RegisterEqual(*T1): unexpected error: %v", err)
	}
	if _, ok := reg.LookupEqual(reflect.TypeOf(T1{})); !ok {
		t.Fatalf("LookupEqual(T1) after registering *T1: not found")
	}
	if _, ok := reg.LookupEqual(reflect.TypeOf(&T1{})); !ok {
		t.Fatalf("LookupEqual(*T1): not found")
	}

	// And a second registration through the other spelling conflicts.
	if err := reg.RegisterEqual(reflect.TypeOf(T1{}), eqT1); err != registry.ErrConflictingRegistration {
		t.Fatalf("re-register via T1: want ErrConflictingRegistration, got %v", err)
	}
}

func TestRegisterConflict(t *testing.T) {
	cfg := config.DefaultConfig()
	reg := registry.New(cfg)

	if err := reg.RegisterEqual(reflect.TypeOf(T1{}), eqT1); err != nil {
		t.Fatalf("RegisterEqual: unexpected error: %v", err)
	}
	// Function values are not comparable, so even re-registering the
	// same routine is a conflict.
	if err := reg.RegisterEqual(reflect.TypeOf(T1{}), eqT1); err != registry.ErrConflictingRegistration {
		t.Fatalf("expected ErrConflictingRegistration, got: %v", err)
	}

	// Hash slots conflict independently of equality slots.
	if err := reg.RegisterHash(reflect.TypeOf(T1{}), hashT1); err != nil {
		t.Fatalf("RegisterHash: unexpected error: %v", err)
	}
	if err := reg.RegisterHash(reflect.TypeOf(T1{}), hashT1); err != registry.ErrConflictingRegistration {
		t.Fatalf("expected ErrConflictingRegistration, got: %v", err)
	}
}

func TestRegisterErrors(t *testing.T) {
	cfg := config.DefaultConfig()
	reg := registry.New(cfg)

	if err := reg.RegisterEqual(nil, eqT1); err != registry.ErrNilType {
		t.Fatalf("nil type: want ErrNilType, got %v", err)
	}
	if err := reg.RegisterEqual(reflect.TypeOf(T1{}), nil); err != registry.ErrNilFunc {
		t.Fatalf("nil routine: want ErrNilFunc, got %v", err)
	}
	if err := reg.RegisterHash(nil, hashT1); err != registry.ErrNilType {
		t.Fatalf("nil type: want ErrNilType, got %v", err)
	}
	if err := reg.RegisterHash(reflect.TypeOf(T1{}), nil); err != registry.ErrNilFunc {
		t.Fatalf("nil routine: want ErrNilFunc, got %v", err)
	}
}

func TestEntriesAndReset(t *testing.T) {
	cfg := config.DefaultConfig()
	reg := registry.New(cfg)

	_ = reg.RegisterEqual(reflect.TypeOf(T1{}), eqT1)
	_ = reg.RegisterHash(reflect.TypeOf(T1{}), hashT1)
	_ = reg.RegisterEqual(reflect.TypeOf(T2{}), func(a, b any) bool { return a.(T2) == b.(T2) })

	entries := reg.Entries()
	if len(entries) != 2 {
		t.Fatalf("Entries len = %d, want 2", len(entries))
	}
	for _, e := range entries {
		switch e.Type {
		case reflect.TypeOf(T1{}):
			if e.Equal == nil || e.Hash == nil {
				t.Fatalf("T1 entry incomplete: %+v", e)
			}
		case reflect.TypeOf(T2{}):
			if e.Equal == nil || e.Hash != nil {
				t.Fatalf("T2 entry should have equality only: %+v", e)
			}
		default:
			t.Fatalf("unexpected entry type %v", e.Type)
		}
	}
	if reg.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", reg.Count())
	}

	reg.Reset()

	if reg.Count() != 0 {
		t.Fatalf("after Reset, Count() = %d, want 0", reg.Count())
	}
	if _, ok := reg.LookupEqual(reflect.TypeOf(T1{})); ok {
		t.Fatalf("LookupEqual after Reset: found stale entry")
	}
}

func TestLookupNilAndUnknown(t *testing.T) {
	cfg := config.DefaultConfig()
	reg := registry.New(cfg)

	if _, ok := reg.LookupEqual(nil); ok {
		t.Fatalf("LookupEqual(nil): ok=true, want false")
	}
	if _, ok := reg.LookupHash(nil); ok {
		t.Fatalf("LookupHash(nil): ok=true, want false")
	}
	if _, ok := reg.LookupEqual(reflect.TypeOf(T1{})); ok {
		t.Fatalf("LookupEqual(unknown): ok=true, want false")
	}
}
