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

package reflect

import (
	"encoding/binary"
	"hash"
	"math"
	"reflect"

	"github.com/spaolacci/murmur3"

	"dirpx.dev/eqx/apis"
	"dirpx.dev/eqx/config"
)

// Kind tags written ahead of each value's bytes so values of different
// shapes cannot collide through byte layout alone.
const (
	tagNil byte = iota + 1
	tagBool
	tagInt
	tagUint
	tagFloat
	tagComplex
	tagString
	tagSlice
	tagArray
	tagMap
	tagStruct
	tagIdentity
	tagCycle
	tagTruncated
)

// nilMark is the fixed contribution written for a nil operand. Exposed
// through WriteNilHash so the resolver and the facade agree on it.
var nilMark = []byte{tagNil, 0x00}

// WriteNilHash writes the canonical nil marker into sink.
func WriteNilHash(sink hash.Hash) {
	_, _ = sink.Write(nilMark)
}

// WriteAnyHash feeds v's structural hash contribution into sink. It
// reports false only for a nil v; every other value is handled.
//
// The walk mirrors the equality rules used elsewhere in the module, so
// operands that compare equal produce identical byte sequences:
//   - scalars are written as kind tag + fixed-width little-endian bytes,
//     with -0.0 folded onto +0.0
//   - strings, slices and arrays are length-prefixed; a nil slice is
//     distinct from an empty one (DeepEqual makes the same distinction)
//   - struct fields are walked in declaration order, unexported fields
//     included
//   - map entries are folded order-independently: each entry is hashed
//     into its own murmur3 sub-digest and the sub-digests are XORed
//   - pointers are followed (a pointer and its pointee are equal under
//     the pointer-chasing rules of both == on pointees and DeepEqual);
//     cycles terminate with a fixed marker
//   - chans, funcs and unsafe pointers contribute their identity, which
//     is all == observes about them
//
// Recursion is capped by cfg.MaxDepth; crossing the cap writes a
// deterministic truncation marker instead of descending further.
func WriteAnyHash(v any, sink hash.Hash, cfg apis.Config) bool {
	if v == nil {
		return false
	}
	maxDepth := cfg.MaxDepth
	if maxDepth <= 0 {
		maxDepth = config.DefaultMaxDepth
	}
	w := &hashWalker{sink: sink, seen: nil}
	w.walk(reflect.ValueOf(v), maxDepth)
	return true
}

// hashWalker carries the sink and the set of pointers on the current
// walk used to break cycles.
type hashWalker struct {
	sink hash.Hash
	seen map[uintptr]struct{}
}

func (w *hashWalker) walk(rv reflect.Value, depth int) {
	if depth <= 0 {
		w.writeTag(tagTruncated)
		return
	}

	switch rv.Kind() {
	case reflect.Bool:
		b := byte(0)
		if rv.Bool() {
			b = 1
		}
		w.writeBytes(tagBool, []byte{b})

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		w.writeU64(tagInt, uint64(rv.Int()))

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		w.writeU64(tagUint, rv.Uint())

	case reflect.Float32, reflect.Float64:
		w.writeU64(tagFloat, floatBits(rv.Float()))

	case reflect.Complex64, reflect.Complex128:
		c := rv.Complex()
		w.writeU64(tagComplex, floatBits(real(c)))
		w.writeU64(tagComplex, floatBits(imag(c)))

	case reflect.String:
		s := rv.String()
		w.writeU64(tagString, uint64(len(s)))
		_, _ = w.sink.Write([]byte(s))

	case reflect.Slice:
		if rv.IsNil() {
			w.writeTag(tagNil)
			return
		}
		w.writeU64(tagSlice, uint64(rv.Len()))
		for i := 0; i < rv.Len(); i++ {
			w.walk(rv.Index(i), depth-1)
		}

	case reflect.Array:
		w.writeU64(tagArray, uint64(rv.Len()))
		for i := 0; i < rv.Len(); i++ {
			w.walk(rv.Index(i), depth-1)
		}

	case reflect.Map:
		if rv.IsNil() {
			w.writeTag(tagNil)
			return
		}
		w.writeU64(tagMap, uint64(rv.Len()))
		// Iteration order is random; fold per-entry sub-digests with
		// XOR so the result is order-independent.
		var acc uint64
		iter := rv.MapRange()
		for iter.Next() {
			sub := murmur3.New64()
			sw := &hashWalker{sink: sub, seen: w.seen}
			sw.walk(iter.Key(), depth-1)
			sw.walk(iter.Value(), depth-1)
			acc ^= sub.Sum64()
		}
		w.writeU64(tagMap, acc)

	case reflect.Struct:
		w.writeU64(tagStruct, uint64(rv.NumField()))
		for i := 0; i < rv.NumField(); i++ {
			// Kind-typed accessors below read unexported fields fine;
			// only Interface() would refuse them.
			w.walk(rv.Field(i), depth-1)
		}

	case reflect.Interface:
		if rv.IsNil() {
			w.writeTag(tagNil)
			return
		}
		w.walk(rv.Elem(), depth-1)

	case reflect.Pointer:
		if rv.IsNil() {
			w.writeTag(tagNil)
			return
		}
		p := rv.Pointer()
		if _, ok := w.seen[p]; ok {
			w.writeTag(tagCycle)
			return
		}
		if w.seen == nil {
			w.seen = map[uintptr]struct{}{}
		}
		w.seen[p] = struct{}{}
		w.walk(rv.Elem(), depth-1)
		delete(w.seen, p)

	case reflect.Chan, reflect.Func, reflect.UnsafePointer:
		w.writeU64(tagIdentity, uint64(rv.Pointer()))

	default:
		// Invalid or future kinds: contribute a fixed marker.
		w.writeTag(tagTruncated)
	}
}

func (w *hashWalker) writeTag(tag byte) {
	_, _ = w.sink.Write([]byte{tag})
}

func (w *hashWalker) writeBytes(tag byte, b []byte) {
	_, _ = w.sink.Write([]byte{tag})
	_, _ = w.sink.Write(b)
}

func (w *hashWalker) writeU64(tag byte, x uint64) {
	var buf [9]byte
	buf[0] = tag
	binary.LittleEndian.PutUint64(buf[1:], x)
	_, _ = w.sink.Write(buf[:])
}

// floatBits folds -0.0 onto +0.0 so ==-equal floats hash identically.
func floatBits(f float64) uint64 {
	if f == 0 {
		f = 0
	}
	return math.Float64bits(f)
}
