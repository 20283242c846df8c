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

// Package gen loads eqxgen manifests and renders the capability methods
// and typed helpers they declare. A manifest is a small declarative list
// of types; running the generator replaces the per-type boilerplate a
// consumer would otherwise write by hand.
package gen

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

var (
	// ErrNoPackage is returned when the manifest names no target package.
	ErrNoPackage = errors.New("eqx(gen): manifest has no package")
	// ErrNoTypes is returned when the manifest declares no types.
	ErrNoTypes = errors.New("eqx(gen): manifest declares no types")
	// ErrBadIdent is returned when a name is not a valid Go identifier.
	ErrBadIdent = errors.New("eqx(gen): not a valid identifier")
	// ErrUnknownKind is returned for a kind outside value|deep|equaler|capability.
	ErrUnknownKind = errors.New("eqx(gen): unknown type kind")
	// ErrUnknownKey is returned when the manifest contains keys the
	// generator does not understand. Typos fail loudly instead of
	// silently generating the default shape.
	ErrUnknownKey = errors.New("eqx(gen): unknown manifest key")
)

// Kinds accepted in a TypeSpec.
const (
	// KindValue generates EqualAny over ==. The type must be comparable.
	KindValue = "value"
	// KindDeep generates EqualAny over the structural layer, for
	// non-comparable types (slices, maps inside).
	KindDeep = "deep"
	// KindEqualer generates EqualAny over the type's own Equal(T) bool.
	KindEqualer = "equaler"
	// KindCapability generates typed helpers for a caller-defined
	// interface that embeds the apis contracts.
	KindCapability = "capability"
)

// Manifest is the declarative input of eqxgen.
type Manifest struct {
	// Package is the package name of the generated file.
	Package string `toml:"package"`
	// Output is the default output path, relative to the manifest's
	// caller. The -output flag overrides it.
	Output string `toml:"output"`
	// Import is the import path of the eqx module. Defaults to
	// "dirpx.dev/eqx"; overridable for forks and vendoring setups.
	Import string `toml:"import"`
	// Types are the declarations to generate for, in manifest order.
	Types []TypeSpec `toml:"types"`
}

// TypeSpec declares one type the generator should cover.
type TypeSpec struct {
	// Name is the type's identifier in the target package.
	Name string `toml:"name"`
	// Kind selects the generated shape: value, deep, equaler, capability.
	// Defaults to value.
	Kind string `toml:"kind"`
	// Params is the type-parameter declaration list for generic types,
	// carried verbatim into the generated code, e.g.
	// "T comparable, U any". Bounds mirror whatever the type declares.
	Params string `toml:"params"`
	// Hash controls whether hashing code is generated. Defaults to true.
	Hash *bool `toml:"hash"`
	// Total controls whether the total-equality marker is generated.
	// Defaults to true; set false for types whose relation is partial.
	Total *bool `toml:"total"`
	// Wrapper emits an Obj alias for capability kinds.
	Wrapper bool `toml:"wrapper"`
}

// WantHash reports whether hashing code should be generated.
func (t TypeSpec) WantHash() bool {
	return t.Hash == nil || *t.Hash
}

// WantTotal reports whether the total-equality marker should be generated.
func (t TypeSpec) WantTotal() bool {
	return t.Total == nil || *t.Total
}

// ParamNames returns the bare parameter names of Params, for use in a
// receiver or instantiation: "T comparable, U any" -> "T, U". Empty for
// non-generic types.
func (t TypeSpec) ParamNames() string {
	if t.Params == "" {
		return ""
	}
	names := make([]string, 0, 4)
	depth := 0
	start := 0
	flush := func(seg string) {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			return
		}
		// First whitespace-separated token is the name; a bare name
		// shares the constraint of the following segment ("K, V any").
		if i := strings.IndexAny(seg, " \t"); i >= 0 {
			seg = seg[:i]
		}
		names = append(names, seg)
	}
	for i, r := range t.Params {
		switch r {
		case '[', '(':
			depth++
		case ']', ')':
			depth--
		case ',':
			if depth == 0 {
				flush(t.Params[start:i])
				start = i + 1
			}
		}
	}
	flush(t.Params[start:])
	return strings.Join(names, ", ")
}

// Load reads, defaults, and validates a manifest file.
func Load(path string) (*Manifest, error) {
	var m Manifest
	meta, err := toml.DecodeFile(path, &m)
	if err != nil {
		return nil, fmt.Errorf("eqx(gen): decode %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKey, undecoded[0].String())
	}
	m.applyDefaults()
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// applyDefaults fills unset optional fields.
func (m *Manifest) applyDefaults() {
	if m.Import == "" {
		m.Import = "dirpx.dev/eqx"
	}
	for i := range m.Types {
		if m.Types[i].Kind == "" {
			m.Types[i].Kind = KindValue
		}
	}
}

// Validate checks the manifest for the misuses the type checker cannot
// catch later (it still catches bounds that do not hold).
func (m *Manifest) Validate() error {
	if m.Package == "" {
		return ErrNoPackage
	}
	if !isIdent(m.Package) {
		return fmt.Errorf("%w: package %q", ErrBadIdent, m.Package)
	}
	if len(m.Types) == 0 {
		return ErrNoTypes
	}
	for _, t := range m.Types {
		if !isIdent(t.Name) {
			return fmt.Errorf("%w: type %q", ErrBadIdent, t.Name)
		}
		switch t.Kind {
		case KindValue, KindDeep, KindEqualer, KindCapability:
		default:
			return fmt.Errorf("%w: type %q kind %q", ErrUnknownKind, t.Name, t.Kind)
		}
		if t.Wrapper && t.Kind != KindCapability {
			return fmt.Errorf("eqx(gen): type %q: wrapper applies to capability kinds only", t.Name)
		}
	}
	return nil
}

// isIdent reports whether s is a plausible Go identifier. Keyword
// collisions are left to the compiler.
func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_',
			r >= 'a' && r <= 'z',
			r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
