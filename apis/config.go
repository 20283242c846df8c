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

// Config carries read-only resolution knobs that influence strategies.
// It is passed by value and should be treated as immutable by implementations.
type Config struct {
	// FollowPointers controls whether non-nil pointers are dereferenced
	// during normalization, so *T operands compare by pointee value.
	// If false, pointers keep identity semantics (equal when same address).
	FollowPointers bool

	// MaxUnwrap limits normalization depth (AnyView views, pointers).
	// Acts as a safety guard against pathological nesting.
	MaxUnwrap int

	// MaxDepth limits structural recursion when comparing or hashing
	// nested values reflectively. Crossing it truncates deterministically
	// rather than recursing further.
	MaxDepth int

	// DeepFallback controls whether non-comparable kinds (slices, maps,
	// funcless composites) fall back to structural comparison. If false,
	// such operands are simply unhandled by the reflect step.
	DeepFallback bool
}
