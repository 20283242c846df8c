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
	"fmt"
	"hash"
	"hash/crc64"
	"hash/fnv"
	"strings"
)

// Strategy selects the accumulator algorithm behind a digest.
//
// # Overview
//
// Strategy is a small enumerated type that describes which hash
// algorithm a component uses when it folds Hasher contributions into a
// fixed-size digest. It governs the accumulator only; what bytes are
// written into the accumulator is decided by the value's own WriteHash
// implementation and is identical across strategies.
//
// Strategy is intentionally minimal and format-agnostic: it does not
// define seeding, truncation, or encoding of the resulting digest, but
// instead selects a broad class of accumulator (FNV-1a 64-bit vs 32-bit
// vs CRC-64).
//
// # Values
//
// The following strategies are defined:
//
//   - FNV64a — 64-bit FNV-1a (the default; good dispersion, no deps).
//   - FNV32a — 32-bit FNV-1a (compact digests for small key spaces).
//   - CRC64  — CRC-64/ISO (detectable, well-known polynomial).
//   - None   — digesting disabled (pass-through behavior).
//
// # Contract
//
//   - Components MUST treat Strategy as a stable, public API; adding
//     new values is allowed, but existing values MUST NOT change their
//     semantics in breaking ways.
//   - Strategy values MUST be safe to use concurrently across
//     goroutines (they are plain integers).
//   - Digests produced under different strategies are NOT comparable
//     with each other; callers persisting digests SHOULD persist the
//     strategy token alongside them.
type Strategy int

const (
	// FNV64a selects the 64-bit FNV-1a accumulator.
	//
	// # Semantics
	//
	// FNV-1a is a fast, allocation-free, non-cryptographic hash with
	// good dispersion for short inputs. The 64-bit variant is the
	// recommended default wherever digests key in-process maps, shard
	// work, or deduplicate values.
	//
	// Implementations MUST NOT use it where an adversary controls the
	// input and collisions are security-relevant; it is not a
	// cryptographic hash.
	FNV64a Strategy = iota

	// FNV32a selects the 32-bit FNV-1a accumulator.
	//
	// # Semantics
	//
	// Identical construction to FNV64a with a 32-bit state. Suitable
	// when digests are persisted in space-constrained encodings and the
	// key space is small; collision probability grows quickly past a
	// few tens of thousands of distinct values.
	FNV32a

	// CRC64 selects the CRC-64/ISO accumulator.
	//
	// # Semantics
	//
	// CRC-64 is a cyclic redundancy check, not a general-purpose hash:
	// its strength is detecting accidental corruption of a byte stream,
	// and its polynomial is standardized, which makes digests
	// reproducible across independent implementations. Prefer it when
	// digests cross process or language boundaries.
	CRC64

	// None disables digesting for the associated component.
	//
	// # Semantics
	//
	// When None is selected, the component MUST NOT derive or compare
	// digests; New returns an error rather than a do-nothing
	// accumulator so a disabled configuration cannot silently produce
	// meaningless values. None is primarily useful for testing and for
	// configurations where digest-based shortcuts are undesirable.
	None
)

// String returns a human-readable representation of the Strategy value.
//
// # Semantics
//
// String implements fmt.Stringer and provides short, stable identifiers
// suitable for logging, configuration dumps, and debugging. For all
// defined enum values, the returned strings are:
//
//   - FNV64a -> "FNV64a"
//   - FNV32a -> "FNV32a"
//   - CRC64  -> "CRC64"
//   - None   -> "None"
//
// For unknown or out-of-range values, String returns a diagnostic form
// "Unknown(<n>)", where <n> is the underlying integer value. This
// behavior is intentional and MUST NOT panic, so that corrupted or
// unexpected values can still be surfaced safely in logs.
//
// # Contract
//
//   - The mapping from known Strategy values to strings MUST remain
//     stable; changing the spelling or casing is a breaking change for
//     systems that persist or parse these strings.
func (ds Strategy) String() string {
	switch ds {
	case FNV64a:
		return "FNV64a"
	case FNV32a:
		return "FNV32a"
	case CRC64:
		return "CRC64"
	case None:
		return "None"
	default:
		return fmt.Sprintf("Unknown(%d)", ds)
	}
}

// Parse parses a textual representation of a Strategy.
//
// # Overview
//
// Parse converts a string token into the corresponding Strategy value.
// It accepts the same canonical tokens that are produced by
// Strategy.String() for known values, with case-insensitive matching.
//
// Accepted (case-insensitive) inputs:
//
//   - "FNV64a" -> FNV64a
//   - "FNV32a" -> FNV32a
//   - "CRC64"  -> CRC64
//   - "None"   -> None
//
// Any other input results in a non-nil error.
//
// # Contract
//
//   - s MAY contain surrounding whitespace; it will be trimmed.
//   - On success, Parse returns a valid Strategy and a nil error.
//   - On failure, Parse returns None and a non-nil error; callers MUST
//     NOT rely on the returned Strategy value in the error case.
//   - Parse MUST NOT panic for any input.
//
// # Usage
//
// Parse is suitable for parsing configuration values, environment
// variables, CLI flags, and other human-authored or external inputs.
// For hard-coded values that are expected to be valid, callers MAY
// prefer MustParse for brevity.
func Parse(s string) (Strategy, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return None, fmt.Errorf("digest: empty strategy")
	}

	switch strings.ToUpper(trimmed) {
	case "FNV64A":
		return FNV64a, nil
	case "FNV32A":
		return FNV32a, nil
	case "CRC64":
		return CRC64, nil
	case "NONE":
		return None, nil
	default:
		return None, fmt.Errorf("digest: unknown strategy %q", s)
	}
}

// MustParse is like Parse but panics on invalid input.
//
// # Overview
//
// MustParse is a convenience helper for contexts where the input string
// is expected to be a valid Strategy token and encountering an invalid
// value is considered a programmer error rather than a recoverable
// condition. It is intended for hard-coded configuration, tests, and
// initialization code where failing fast is acceptable.
//
// # Contract
//
//   - On valid input, MustParse returns the same value as Parse and
//     MUST NOT panic.
//   - On invalid input, MustParse panics with the error Parse would
//     have returned.
func MustParse(s string) Strategy {
	ds, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return ds
}

// New constructs a fresh accumulator for the Strategy.
//
// # Semantics
//
// Each call returns an independent, zero-state hash.Hash; accumulators
// are not safe for concurrent use and MUST NOT be shared across
// goroutines without external synchronization. For None and unknown
// values, New returns a non-nil error instead of a do-nothing
// accumulator, so a disabled or corrupted configuration cannot silently
// produce meaningless digests.
func (ds Strategy) New() (hash.Hash, error) {
	switch ds {
	case FNV64a:
		return fnv.New64a(), nil
	case FNV32a:
		return fnv.New32a(), nil
	case CRC64:
		return crc64.New(crc64.MakeTable(crc64.ISO)), nil
	case None:
		return nil, fmt.Errorf("digest: strategy None has no accumulator")
	default:
		return nil, fmt.Errorf("digest: unknown strategy %d", ds)
	}
}
