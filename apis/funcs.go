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

// EqualFunc compares two operands of the same dynamic type. The
// resolver guarantees a and b are non-nil, unwrapped, and share one
// dynamic type before a registered EqualFunc runs.
type EqualFunc func(a, b any) bool

// HashFunc feeds v's hashable state into sink. The resolver guarantees
// v is non-nil and unwrapped before a registered HashFunc runs. A
// HashFunc registered alongside an EqualFunc must write identical
// bytes for operands the EqualFunc reports equal.
type HashFunc func(v any, sink hash.Hash)
