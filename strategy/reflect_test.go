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

package strategy_test

import (
	"hash/fnv"
	"testing"

	"dirpx.dev/eqx/config"
	"dirpx.dev/eqx/strategy"
)

// boxed holds an interface field, so the struct is statically comparable
// while == can still panic at runtime on a non-comparable payload.
type boxed struct{ v any }

func TestReflectTryEqualComparable(t *testing.T) {
	cfg := config.DefaultConfig()
	s := strategy.NewReflectStrategy()

	tests := []struct {
		name string
		a, b any
		eq   bool
	}{
		{"ints equal", 10, 10, true},
		{"ints unequal", 10, 11, false},
		{"strings equal", "Hello, World!", "Hello, World!", true},
		{"strings unequal", "Hello, World!", "banana", false},
		{"structs equal", boxed{v: 1}, boxed{v: 1}, true},
		{"structs unequal", boxed{v: 1}, boxed{v: 2}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eq, handled := s.TryEqual(tt.a, tt.b, cfg)
			if !handled || eq != tt.eq {
				t.Fatalf("TryEqual(%#v, %#v) = (%v,%v), want (%v,true)",
					tt.a, tt.b, eq, handled, tt.eq)
			}
		})
	}
}

func TestReflectTryEqualDeepFallback(t *testing.T) {
	cfg := config.DefaultConfig()
	s := strategy.NewReflectStrategy()

	// Slices are not comparable with ==; DeepEqual takes over.
	if eq, handled := s.TryEqual([]int{1, 2}, []int{1, 2}, cfg); !handled || !eq {
		t.Fatalf("TryEqual(slices) = (%v,%v), want (true,true)", eq, handled)
	}
	if eq, handled := s.TryEqual([]int{1, 2}, []int{1, 3}, cfg); !handled || eq {
		t.Fatalf("TryEqual(unequal slices) = (%v,%v), want (false,true)", eq, handled)
	}

	// A statically comparable struct whose interface field holds a slice
	// panics on ==; the panic is absorbed and DeepEqual decides.
	a := boxed{v: []int{1, 2}}
	b := boxed{v: []int{1, 2}}
	if eq, handled := s.TryEqual(a, b, cfg); !handled || !eq {
		t.Fatalf("TryEqual(boxed slices) = (%v,%v), want (true,true)", eq, handled)
	}
}

func TestReflectTryEqualDeepFallbackDisabled(t *testing.T) {
	cfg := config.NewConfig(config.WithDeepFallback(false))
	s := strategy.NewReflectStrategy()

	// Comparable types still work.
	if eq, handled := s.TryEqual(10, 10, cfg); !handled || !eq {
		t.Fatalf("TryEqual(ints) = (%v,%v), want (true,true)", eq, handled)
	}
	// Non-comparable types fall through unhandled.
	if _, handled := s.TryEqual([]int{1}, []int{1}, cfg); handled {
		t.Fatalf("TryEqual(slices) handled with DeepFallback off")
	}
	if _, handled := s.TryEqual(boxed{v: []int{1}}, boxed{v: []int{1}}, cfg); handled {
		t.Fatalf("TryEqual(boxed slice) handled with DeepFallback off")
	}
}

func TestReflectTryHash(t *testing.T) {
	cfg := config.DefaultConfig()
	s := strategy.NewReflectStrategy()

	// Structural hashing agrees with DeepEqual-style equality.
	h1 := fnv.New64a()
	h2 := fnv.New64a()
	if !s.TryHash([]int{1, 2, 3}, h1, cfg) || !s.TryHash([]int{1, 2, 3}, h2, cfg) {
		t.Fatalf("TryHash(slices): not handled")
	}
	if h1.Sum64() != h2.Sum64() {
		t.Fatalf("equal slices hash differently: %x vs %x", h1.Sum64(), h2.Sum64())
	}

	h3 := fnv.New64a()
	if !s.TryHash([]int{3, 2, 1}, h3, cfg) {
		t.Fatalf("TryHash(reversed slice): not handled")
	}
	if h1.Sum64() == h3.Sum64() {
		t.Fatalf("distinct slices share digest %x", h1.Sum64())
	}
}
