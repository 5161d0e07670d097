// Copyright 2025 go-vkern Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"text/template"

	"golang.org/x/tools/imports"
)

// Generator renders one Family for a set of element types.
type Generator struct {
	Family  Family
	Package string // defaults to Family.Package
	Types   []ElemType
}

// genFunc is one rendered wrapper.
type genFunc struct {
	Name   string
	Doc    string
	Params string
	Result string
	Call   string
}

var fileTmpl = template.Must(template.New("file").Parse(`// Code generated by kernelgen. DO NOT EDIT.

package {{.Package}}
{{range .Funcs}}
// {{.Name}} {{.Doc}}
func {{.Name}}({{.Params}}){{if .Result}} {{.Result}}{{end}} {
	{{if .Result}}return {{end}}{{.Call}}
}
{{end}}`))

// expand fills the element type into a format string. Strings without verbs
// are returned unchanged.
func expand(format, typ string) string {
	if !strings.Contains(format, "%") {
		return format
	}
	return fmt.Sprintf(format, typ)
}

func (g *Generator) funcs() []genFunc {
	var out []genFunc
	for _, op := range g.Family.Ops {
		for _, t := range g.Types {
			name := op.Name + t.Suffix
			out = append(out, genFunc{
				Name:   name,
				Doc:    op.Doc,
				Params: expand(op.Params, t.Go),
				Result: expand(op.Result, t.Go),
				Call:   expand(op.Base, t.Go) + "(" + op.Args + ")",
			})
		}
	}
	return out
}

// NumFuncs returns how many functions Generate emits.
func (g *Generator) NumFuncs() int {
	return len(g.Family.Ops) * len(g.Types)
}

// Generate renders the file and formats it.
func (g *Generator) Generate() ([]byte, error) {
	pkg := g.Package
	if pkg == "" {
		pkg = g.Family.Package
	}
	if len(g.Types) == 0 {
		return nil, fmt.Errorf("%s: no element types selected", g.Family.Name)
	}

	var buf bytes.Buffer
	err := fileTmpl.Execute(&buf, struct {
		Package string
		Funcs   []genFunc
	}{pkg, g.funcs()})
	if err != nil {
		return nil, fmt.Errorf("%s: render: %w", g.Family.Name, err)
	}

	src, err := imports.Process(g.Family.Name+".gen.go", buf.Bytes(), &imports.Options{
		Comments:  true,
		TabIndent: true,
		TabWidth:  8,
		// The wrappers only call into their own package.
		FormatOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: format: %w", g.Family.Name, err)
	}
	return src, nil
}

// WriteFile generates the file and writes it to path.
func (g *Generator) WriteFile(path string) error {
	src, err := g.Generate()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, src, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
