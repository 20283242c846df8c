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

package reflect_test

import (
	"reflect"
	"testing"

	"dirpx.dev/eqx/config"
	uref "dirpx.dev/eqx/utils/reflect"
)

// view wraps a payload and exposes it through apis.AnyView.
type view struct{ payload any }

func (v view) AsAny() any { return v.payload }

// selfView returns itself from AsAny; the unwrap budget bounds it.
type selfView struct{ n int }

func (v selfView) AsAny() any { return v }

type T1 struct{ A int }

func TestUnwrapView(t *testing.T) {
	cfg := config.DefaultConfig()

	if got := uref.Unwrap(view{payload: 10}, cfg); got != 10 {
		t.Fatalf("Unwrap(view{10}) = %v, want 10", got)
	}
	// Nested views peel all the way down, same dynamic type included.
	if got := uref.Unwrap(view{payload: view{payload: "x"}}, cfg); got != "x" {
		t.Fatalf("Unwrap(view{view{x}}) = %v, want x", got)
	}
	if got := uref.Unwrap(view{payload: view{payload: view{payload: 7}}}, cfg); got != 7 {
		t.Fatalf("Unwrap(view{view{view{7}}}) = %v, want 7", got)
	}
	// A view of nil is nil.
	if got := uref.Unwrap(view{payload: nil}, cfg); got != nil {
		t.Fatalf("Unwrap(view{nil}) = %v, want nil", got)
	}
}

func TestUnwrapSelfView(t *testing.T) {
	cfg := config.DefaultConfig()

	got := uref.Unwrap(selfView{n: 3}, cfg)
	if sv, ok := got.(selfView); !ok || sv.n != 3 {
		t.Fatalf("Unwrap(selfView) = %#v, want the selfView itself", got)
	}
}

func TestUnwrapPointers(t *testing.T) {
	cfg := config.DefaultConfig()

	x := 42
	if got := uref.Unwrap(&x, cfg); got != 42 {
		t.Fatalf("Unwrap(&x) = %v, want 42", got)
	}

	p := &x
	if got := uref.Unwrap(&p, cfg); got != 42 {
		t.Fatalf("Unwrap(&&x) = %v, want 42", got)
	}

	// A view of a pointer unwraps both layers.
	if got := uref.Unwrap(view{payload: &x}, cfg); got != 42 {
		t.Fatalf("Unwrap(view{&x}) = %v, want 42", got)
	}

	// Typed nil pointers are kept as-is.
	var np *T1
	got := uref.Unwrap(np, cfg)
	if reflect.TypeOf(got) != reflect.TypeOf(np) {
		t.Fatalf("Unwrap(nil *T1) = %T, want *reflect_test.T1", got)
	}
}

func TestUnwrapFollowPointersOff(t *testing.T) {
	cfg := config.NewConfig(config.WithFollowPointers(false))

	x := 42
	got := uref.Unwrap(&x, cfg)
	if reflect.TypeOf(got).Kind() != reflect.Pointer {
		t.Fatalf("Unwrap(&x) with FollowPointers off = %T, want *int", got)
	}
}

func TestUnwrapMaxUnwrapCap(t *testing.T) {
	cfg := config.NewConfig(config.WithMaxUnwrap(2))

	x := 1
	p1 := &x
	p2 := &p1
	p3 := &p2
	p4 := &p3

	got := uref.Unwrap(p4, cfg)
	if reflect.TypeOf(got).Kind() != reflect.Pointer {
		t.Fatalf("Unwrap(****int) with MaxUnwrap=2 = %T, want a pointer remainder", got)
	}
}

func TestUnwrapNil(t *testing.T) {
	cfg := config.DefaultConfig()
	if got := uref.Unwrap(nil, cfg); got != nil {
		t.Fatalf("Unwrap(nil) = %v, want nil", got)
	}
}

func TestNormalizeType(t *testing.T) {
	cfg := config.DefaultConfig()

	base := reflect.TypeOf(T1{})
	for _, tt := range []reflect.Type{
		base,
		reflect.TypeOf(&T1{}),
		reflect.PointerTo(reflect.TypeOf(&T1{})),
	} {
		nt, err := uref.NormalizeType(tt, cfg)
		if err != nil {
			t.Fatalf("NormalizeType(%v): unexpected error: %v", tt, err)
		}
		if nt != base {
			t.Fatalf("NormalizeType(%v) = %v, want %v", tt, nt, base)
		}
	}

	// Non-pointer containers are not unwrapped: a slice type is its own key.
	st := reflect.TypeOf([]T1{})
	if nt, err := uref.NormalizeType(st, cfg); err != nil || nt != st {
		t.Fatalf("NormalizeType([]T1) = (%v,%v), want ([]T1,nil)", nt, err)
	}
}

func TestNormalizeTypeFollowPointersOff(t *testing.T) {
	cfg := config.NewConfig(config.WithFollowPointers(false))

	pt := reflect.TypeOf(&T1{})
	nt, err := uref.NormalizeType(pt, cfg)
	if err != nil || nt != pt {
		t.Fatalf("NormalizeType(*T1) with FollowPointers off = (%v,%v), want (*T1,nil)", nt, err)
	}
}

func TestNormalizeTypeNil(t *testing.T) {
	cfg := config.DefaultConfig()
	if _, err := uref.NormalizeType(nil, cfg); err != uref.ErrReflectNilType {
		t.Fatalf("NormalizeType(nil): want ErrReflectNilType, got %v", err)
	}
}
