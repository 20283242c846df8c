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

package strategy

import (
	"hash"
	"reflect"

	"dirpx.dev/eqx/apis"
)

// NewRegistryStrategy creates an apis.Strategy that uses an apis.Registry.
func NewRegistryStrategy(reg apis.Registry) apis.Strategy {
	return &registryStrategy{reg: reg}
}

// registryStrategy consults a provided apis.Registry for per-type
// routines. The resolver guarantees both TryEqual operands share one
// dynamic type, so a single lookup covers both.
type registryStrategy struct {
	reg apis.Registry
}

// Ensure registryStrategy implements apis.Strategy.
var _ apis.Strategy = (*registryStrategy)(nil)

// TryEqual looks up an equality routine for the operands' type.
func (s *registryStrategy) TryEqual(a, b any, _ apis.Config) (bool, bool) {
	if s.reg == nil {
		return false, false
	}
	if eq, ok := s.reg.LookupEqual(reflect.TypeOf(a)); ok {
		return eq(a, b), true
	}
	return false, false
}

// TryHash looks up a hashing routine for v's type.
func (s *registryStrategy) TryHash(v any, sink hash.Hash, _ apis.Config) bool {
	if s.reg == nil {
		return false
	}
	if h, ok := s.reg.LookupHash(reflect.TypeOf(v)); ok {
		h(v, sink)
		return true
	}
	return false
}
