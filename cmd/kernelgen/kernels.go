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
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// ElemType is a concrete element type a kernel is instantiated for.
type ElemType struct {
	Go     string // "float32"
	Suffix string // "Float32", appended to the function name
}

var elemTypes = []ElemType{
	{Go: "float32", Suffix: "Float32"},
	{Go: "float64", Suffix: "Float64"},
	{Go: "int8", Suffix: "Int8"},
	{Go: "int16", Suffix: "Int16"},
	{Go: "int32", Suffix: "Int32"},
	{Go: "int64", Suffix: "Int64"},
	{Go: "uint8", Suffix: "Uint8"},
	{Go: "uint16", Suffix: "Uint16"},
	{Go: "uint32", Suffix: "Uint32"},
	{Go: "uint64", Suffix: "Uint64"},
}

// AllTypeNames lists the supported element types, comma separated.
func AllTypeNames() string {
	return strings.Join(lo.Map(elemTypes, func(e ElemType, _ int) string { return e.Go }), ",")
}

// ParseTypes resolves a comma-separated list of Go type names. "all" (or an
// empty string) selects every supported type. The result keeps the canonical
// table order regardless of the order in s.
func ParseTypes(s string) ([]ElemType, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "all" {
		return elemTypes, nil
	}

	names := lo.Uniq(lo.Map(strings.Split(s, ","), func(n string, _ int) string {
		return strings.TrimSpace(n)
	}))
	byName := lo.KeyBy(elemTypes, func(e ElemType) string { return e.Go })
	if unknown := lo.Filter(names, func(n string, _ int) bool { _, ok := byName[n]; return !ok }); len(unknown) > 0 {
		return nil, fmt.Errorf("unknown element type(s) %s (supported: %s)", strings.Join(unknown, ","), AllTypeNames())
	}
	return lo.Filter(elemTypes, func(e ElemType, _ int) bool { return lo.Contains(names, e.Go) }), nil
}

// Op is one generated operation. Base is the generic kernel it calls; the
// format verbs in Base, Params and Result are filled with the element type.
type Op struct {
	Name   string // "GreaterThanValue", "Max"
	Base   string // "BaseCmpValue[%[1]s, GreaterThan[%[1]s]]", "BaseMax"
	Params string // parameter list, %[1]s is the element type
	Args   string // arguments passed to Base
	Result string // result type or ""; %[1]s is the element type
	Doc    string // doc comment body following the function name
}

// Family is the set of operations generated into one package.
type Family struct {
	Name    string // subcommand name
	Short   string
	Package string
	Ops     []Op
}

// Families returns the kernel families kernelgen knows how to emit.
func Families() []Family {
	return []Family{cmpFamily(), vecFamily()}
}

// predicates lists the compare kernels. Holds describes when a lane is set,
// with {b} standing for the right-hand operand.
var predicates = []struct {
	Name, Holds string
}{
	{"GreaterThan", "a[i] > {b}"},
	{"LessThan", "a[i] < {b}"},
	{"GreaterEqual", "a[i] >= {b}"},
	{"LessEqual", "a[i] <= {b}"},
	{"Equal", "a[i] == {b}"},
	{"NotEqual", "a[i] and {b} are ordered and differ"},
}

func holdsDoc(holds, operand string) string {
	return "sets out[i] to 1 where " + strings.ReplaceAll(holds, "{b}", operand) + " and to 0 elsewhere."
}

func cmpFamily() Family {
	var ops []Op
	for _, p := range predicates {
		ops = append(ops,
			Op{
				Name:   p.Name + "Value",
				Base:   "BaseCmpValue[%[1]s, " + p.Name + "[%[1]s]]",
				Params: "dims int, a []%[1]s, value %[1]s, out []%[1]s",
				Args:   "dims, a, value, out",
				Doc:    holdsDoc(p.Holds, "value"),
			},
			Op{
				Name:   p.Name + "Vector",
				Base:   "BaseCmpVector[%[1]s, " + p.Name + "[%[1]s]]",
				Params: "dims int, a, b, out []%[1]s",
				Args:   "dims, a, b, out",
				Doc:    holdsDoc(p.Holds, "b[i]"),
			},
		)
	}
	return Family{
		Name:    "cmp",
		Short:   "Generate comparison kernels (package cmp)",
		Package: "cmp",
		Ops:     ops,
	}
}

func vecFamily() Family {
	return Family{
		Name:    "vec",
		Short:   "Generate reduction kernels (package vec)",
		Package: "vec",
		Ops: []Op{
			{
				Name:   "Max",
				Base:   "BaseMax",
				Params: "dims int, a []%[1]s",
				Args:   "dims, a",
				Result: "%[1]s",
				Doc:    "returns the largest element of a[:dims]. See BaseMax.",
			},
			{
				Name:   "Min",
				Base:   "BaseMin",
				Params: "dims int, a []%[1]s",
				Args:   "dims, a",
				Result: "%[1]s",
				Doc:    "returns the smallest element of a[:dims]. See BaseMin.",
			},
			{
				Name:   "Sum",
				Base:   "BaseSum",
				Params: "dims int, a []%[1]s",
				Args:   "dims, a",
				Result: "%[1]s",
				Doc:    "returns the sum of a[:dims]. See BaseSum.",
			},
			{
				Name:   "MaxVector",
				Base:   "BaseMaxVector",
				Params: "dims int, a, b, out []%[1]s",
				Args:   "dims, a, b, out",
				Doc:    "sets out[i] to the larger of a[i] and b[i]. See BaseMaxVector.",
			},
			{
				Name:   "MinVector",
				Base:   "BaseMinVector",
				Params: "dims int, a, b, out []%[1]s",
				Args:   "dims, a, b, out",
				Doc:    "sets out[i] to the smaller of a[i] and b[i]. See BaseMinVector.",
			},
			{
				Name:   "MaxVertical",
				Base:   "BaseMaxVertical",
				Params: "matrix []%[1]s, count, dims int, out []%[1]s",
				Args:   "matrix, count, dims, out",
				Doc:    "sets out[j] to the largest element of column j of a count×dims matrix. See BaseMaxVertical.",
			},
			{
				Name:   "MinVertical",
				Base:   "BaseMinVertical",
				Params: "matrix []%[1]s, count, dims int, out []%[1]s",
				Args:   "matrix, count, dims, out",
				Doc:    "sets out[j] to the smallest element of column j of a count×dims matrix. See BaseMinVertical.",
			},
			{
				Name:   "SumVertical",
				Base:   "BaseSumVertical",
				Params: "matrix []%[1]s, count, dims int, out []%[1]s",
				Args:   "matrix, count, dims, out",
				Doc:    "sets out[j] to the sum of column j of a count×dims matrix. See BaseSumVertical.",
			},
		},
	}
}
