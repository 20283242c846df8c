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

	"dirpx.dev/eqx/apis"
)

// NewCapabilityStrategy creates an apis.Strategy that uses apis.Equaler
// and apis.Hasher.
func NewCapabilityStrategy() apis.Strategy {
	return &capabilityStrategy{}
}

// capabilityStrategy is a zero-cost fast path: if the operand itself
// implements the dispatch-safe capability, call it and stop the chain.
// The resolver has already unwrapped views, so a wrapper's own
// delegating methods are not re-entered here.
type capabilityStrategy struct{}

// Ensure capabilityStrategy implements apis.Strategy.
var _ apis.Strategy = (*capabilityStrategy)(nil)

// TryEqual checks if a implements apis.Equaler and asks it directly.
func (*capabilityStrategy) TryEqual(a, b any, _ apis.Config) (bool, bool) {
	if e, ok := a.(apis.Equaler); ok {
		return e.EqualAny(b), true
	}
	return false, false
}

// TryHash checks if v implements apis.Hasher and asks it directly.
func (*capabilityStrategy) TryHash(v any, sink hash.Hash, _ apis.Config) bool {
	if h, ok := v.(apis.Hasher); ok {
		h.WriteHash(sink)
		return true
	}
	return false
}
