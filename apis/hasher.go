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

// Hasher is the dispatch-safe hashing capability. The sink is an
// abstract accumulator, so one implementation feeds any algorithm
// (fnv, maphash, murmur3, ...).
//
// Implementations must keep hashing consistent with equality: values
// that compare equal write identical byte sequences into the sink.
type Hasher interface {
	// WriteHash feeds the receiver's hashable state into sink.
	// It must be deterministic for a given value within a process.
	WriteHash(sink hash.Hash)
}
