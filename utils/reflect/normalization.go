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
	"errors"
	"reflect"

	"dirpx.dev/eqx/apis"
	"dirpx.dev/eqx/config"
)

var (
	// ErrReflectNilType is returned when a nil reflect.Type is provided.
	ErrReflectNilType = errors.New("reflect: nil reflect.Type provided")
)

// Unwrap normalizes v for comparison and hashing.
//
// Unwrapping policy:
//   - apis.AnyView -> AsAny() (wrapper transparency; Obj and adapters
//     compare by their payload's concrete type, not the wrapper's)
//   - non-nil pointer -> Elem(), if cfg.FollowPointers
//   - anything else -> stop
//
// Wrappers nest arbitrarily, including inside wrappers of the same
// dynamic type, so views are peeled until none is left; the MaxUnwrap
// cap bounds the loop, which also makes a self-returning AsAny
// harmless. Nil pointers are kept as-is: two nil pointers of one type
// still compare equal by identity downstream.
//
// If MaxUnwrap <= 0, DefaultMaxUnwrap is used.
func Unwrap(v any, cfg apis.Config) any {
	maxUnwrap := cfg.MaxUnwrap
	if maxUnwrap <= 0 {
		maxUnwrap = config.DefaultMaxUnwrap
	}

	for i := 0; v != nil && i < maxUnwrap; i++ {
		if av, ok := v.(apis.AnyView); ok {
			inner := av.AsAny()
			if inner == nil {
				return nil
			}
			v = inner
			continue
		}

		if cfg.FollowPointers {
			rv := reflect.ValueOf(v)
			if rv.Kind() == reflect.Pointer && !rv.IsNil() {
				v = rv.Elem().Interface()
				continue
			}
		}

		break
	}
	return v
}

// NormalizeType unwraps pointer types according to cfg so a routine
// registered against *T and a lookup for T (or the reverse) share one
// registry key. Non-pointer types are returned unchanged, as are all
// types when FollowPointers is off.
//
// If MaxUnwrap <= 0, DefaultMaxUnwrap is used.
func NormalizeType(t reflect.Type, cfg apis.Config) (reflect.Type, error) {
	if t == nil {
		return nil, ErrReflectNilType
	}
	if !cfg.FollowPointers {
		return t, nil
	}

	maxUnwrap := cfg.MaxUnwrap
	if maxUnwrap <= 0 {
		maxUnwrap = config.DefaultMaxUnwrap
	}

	for i := 0; t.Kind() == reflect.Pointer && i < maxUnwrap; i++ {
		t = t.Elem()
	}
	return t, nil
}
