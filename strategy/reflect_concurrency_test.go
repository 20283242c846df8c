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
	"runtime"
	"sync"
	"testing"

	"dirpx.dev/eqx/config"
	"dirpx.dev/eqx/strategy"
)

// Named types for stable shapes.
type Foo struct{ A int }
type Bar[T any] struct{ X T }

// TestReflectStrategyConcurrentNoRace verifies that TryEqual/TryHash are
// race-free and deterministic under heavy concurrency. The strategy is
// stateless; this guards against accidental shared scratch state.
func TestReflectStrategyConcurrentNoRace(t *testing.T) {
	s := strategy.NewReflectStrategy()
	cfg := config.DefaultConfig()

	pairs := []struct {
		a, b any
		eq   bool
	}{
		{Foo{A: 1}, Foo{A: 1}, true},
		{Foo{A: 1}, Foo{A: 2}, false},
		{Bar[int]{X: 3}, Bar[int]{X: 3}, true},
		{[]Foo{{A: 1}}, []Foo{{A: 1}}, true},
		{[]Foo{{A: 1}}, []Foo{{A: 2}}, false},
		{map[string]int{"a": 1}, map[string]int{"a": 1}, true},
		{"abc", "abc", true},
		{123, 124, false},
	}

	// Single-thread sanity, including the expected digests.
	want := make([]uint64, len(pairs))
	for i, p := range pairs {
		if eq, handled := s.TryEqual(p.a, p.b, cfg); !handled || eq != p.eq {
			t.Fatalf("TryEqual(%#v, %#v) = (%v,%v), want (%v,true)", p.a, p.b, eq, handled, p.eq)
		}
		h := fnv.New64a()
		if !s.TryHash(p.a, h, cfg) {
			t.Fatalf("TryHash failed for %T", p.a)
		}
		want[i] = h.Sum64()
	}

	// Concurrent hammer.
	wg := sync.WaitGroup{}
	workers := runtime.GOMAXPROCS(0) * 4
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(id int) {
			defer wg.Done()
			for i := 0; i < 5000; i++ {
				j := (i + id) % len(pairs)
				p := pairs[j]
				if eq, handled := s.TryEqual(p.a, p.b, cfg); !handled || eq != p.eq {
					t.Errorf("TryEqual(%#v, %#v) = (%v,%v), want (%v,true)", p.a, p.b, eq, handled, p.eq)
					return
				}
				h := fnv.New64a()
				if !s.TryHash(p.a, h, cfg) || h.Sum64() != want[j] {
					t.Errorf("TryHash for %T drifted: got %x want %x", p.a, h.Sum64(), want[j])
					return
				}
			}
		}(w)
	}
	wg.Wait()
}
