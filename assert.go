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

package eqx

import "dirpx.dev/eqx/apis"

// Compile-time assertions: these fail to compile if the argument type
// does not meet requirements. Misuse of a capability bound surfaces
// here, in the type checker, not at runtime.

type nothing *struct{}

// AssertEqualer fails to compile if its argument is not an apis.Equaler.
func AssertEqualer[T apis.Equaler](T) nothing { return nil }

// AssertTotalEqualer fails to compile if its argument is not an apis.TotalEqualer.
func AssertTotalEqualer[T apis.TotalEqualer](T) nothing { return nil }

// AssertHasher fails to compile if its argument is not an apis.Hasher.
func AssertHasher[T apis.Hasher](T) nothing { return nil }

// AssertEqualable fails to compile if its argument does not expose a
// typed Equal method over its own type.
func AssertEqualable[T apis.Equalable[T]](T) nothing { return nil }
