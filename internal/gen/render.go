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

package gen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"os"
	"text/template"
)

// Header marks generated output. Files carrying it are regenerated
// freely; anything else needs -force before it is overwritten.
const Header = "// Code generated by eqxgen. DO NOT EDIT."

// ErrExists is returned when the output path holds a file the generator
// did not produce and force is off.
var ErrExists = errors.New("eqx(gen): output exists and is not generated (use -force)")

// renderType is a TypeSpec plus the strings the template needs.
type renderType struct {
	TypeSpec
	// Decl is the usable type expression: "Point" or "Pair[T, U]".
	Decl string
	// FuncParams is the parameter declaration for helper functions:
	// "" or "[T comparable, U any]".
	FuncParams string
	// Assert is true when var _ conformance checks can be emitted
	// (non-generic concrete kinds only; generics cannot be asserted
	// without an instantiation).
	Assert bool
}

// renderData is the top-level template payload.
type renderData struct {
	Package  string
	Import   string
	Types    []renderType
	NeedHash bool
	NeedEqx  bool
	NeedApis bool
}

// Render produces the gofmt-formatted generated file for m.
func Render(m *Manifest) ([]byte, error) {
	data := renderData{Package: m.Package, Import: m.Import}
	for _, t := range m.Types {
		rt := renderType{TypeSpec: t, Decl: t.Name}
		if t.Params != "" {
			rt.Decl = t.Name + "[" + t.ParamNames() + "]"
			rt.FuncParams = "[" + t.Params + "]"
		}
		concrete := t.Kind != KindCapability
		rt.Assert = concrete && t.Params == ""
		if t.WantHash() {
			data.NeedHash = true
			data.NeedEqx = true
		}
		if t.Kind == KindDeep || t.Wrapper || (!concrete && t.WantHash()) {
			data.NeedEqx = true
		}
		if concrete && (t.WantTotal() || rt.Assert) {
			data.NeedApis = true
		}
		data.Types = append(data.Types, rt)
	}

	var buf bytes.Buffer
	if err := fileTmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("eqx(gen): render: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		// Malformed params or names surface here, before anything is
		// written; the raw output goes into the error for debugging.
		return nil, fmt.Errorf("eqx(gen): generated code does not parse: %w", err)
	}
	return src, nil
}

// Write renders m and writes the result to path. A stale generated file
// is replaced; a file without the generated header is only replaced
// when force is set.
func Write(m *Manifest, path string, force bool) error {
	src, err := Render(m)
	if err != nil {
		return err
	}
	if !force {
		if prev, err := os.ReadFile(path); err == nil && !bytes.HasPrefix(prev, []byte(Header)) {
			return fmt.Errorf("%w: %s", ErrExists, path)
		}
	}
	if err := os.WriteFile(path, src, 0o644); err != nil {
		return fmt.Errorf("eqx(gen): write %s: %w", path, err)
	}
	return nil
}

var fileTmpl = template.Must(template.New("eqxgen").Parse(Header + `

package {{.Package}}

import (
{{- if .NeedHash}}
	"hash"
{{- end}}
{{- if .NeedEqx}}

	eqx "{{.Import}}"
{{- end}}
{{- if .NeedApis}}
	"{{.Import}}/apis"
{{- end}}
)
{{- range .Types}}
{{- if eq .Kind "capability"}}

// {{.Name}}Equal reports whether a and b are equal {{.Name}} values.
// Nil handles are equal only to each other; cross-type operands are
// unequal, not an error.
func {{.Name}}Equal{{.FuncParams}}(a, b {{.Decl}}) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.EqualAny(b.AsAny())
}
{{- if .WantHash}}

// {{.Name}}WriteHash feeds v's hash contribution into sink.
func {{.Name}}WriteHash{{.FuncParams}}(v {{.Decl}}, sink hash.Hash) {
	if v == nil {
		eqx.Hash(nil, sink)
		return
	}
	v.WriteHash(sink)
}
{{- end}}
{{- if .Wrapper}}

// {{.Name}}Obj wraps a {{.Name}} handle with the full capability set.
type {{.Name}}Obj{{if .Params}}[{{.Params}}]{{end}} = eqx.Obj[{{.Decl}}]
{{- end}}
{{- else}}

// AsAny implements apis.AnyView for {{.Decl}}.
func (x {{.Decl}}) AsAny() any { return x }

// EqualAny implements apis.Equaler for {{.Decl}}. Operands of a
// different dynamic type are unequal, not an error.
func (x {{.Decl}}) EqualAny(other any) bool {
	o, ok := other.({{.Decl}})
{{- if eq .Kind "value"}}
	return ok && x == o
{{- else if eq .Kind "deep"}}
	return ok && eqx.EqualValues(x, o)
{{- else}}
	return ok && x.Equal(o)
{{- end}}
}
{{- if .WantTotal}}

// AsTotalEqualer marks {{.Name}}'s relation as reflexive.
func (x {{.Decl}}) AsTotalEqualer() apis.TotalEqualer { return x }
{{- end}}
{{- if .WantHash}}

// WriteHash implements apis.Hasher for {{.Decl}}.
func (x {{.Decl}}) WriteHash(sink hash.Hash) { eqx.HashValue(x, sink) }
{{- end}}
{{- if .Assert}}

var _ {{if .WantTotal}}apis.TotalEqualer{{else}}apis.Equaler{{end}} = *new({{.Decl}})
{{- if .WantHash}}
var _ apis.Hasher = *new({{.Decl}})
{{- end}}
{{- end}}
{{- end}}
{{- end}}
`))
