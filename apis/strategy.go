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

package apis

import "hash"

// Strategy is a pluggable resolution step. A Resolver can chain
// multiple strategies in order (e.g., Capability -> Registry -> Reflect).
//
// The Resolver normalizes operands before a strategy runs: they are
// non-nil, unwrapped, and (for TryEqual) share one dynamic type.
type Strategy interface {
	// TryEqual attempts to compare a and b according to cfg.
	// It returns (eq, true) if handled; otherwise (false, false) to fall through.
	TryEqual(a, b any, cfg Config) (eq bool, handled bool)

	// TryHash attempts to feed v's hashable state into sink.
	// It returns true if handled; otherwise false to fall through.
	TryHash(v any, sink hash.Hash, cfg Config) (handled bool)
}
