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

// Command kernelgen instantiates the generic Base kernels for every concrete
// element type.
//
// Usage:
//
//	kernelgen cmp --output cmp.gen.go                  # compare kernels
//	kernelgen vec --output reduce.gen.go               # reduction kernels
//	kernelgen vec --output reduce.gen.go --types float32,int64
//
// Or via go:generate:
//
//	//go:generate go run ../../../cmd/kernelgen cmp --output cmp.gen.go
//
// Each generated function is a one-line wrapper such as
//
//	func GreaterThanValueFloat32(dims int, a []float32, value float32, out []float32) {
//		BaseCmpValue[float32, GreaterThan[float32]](dims, a, value, out)
//	}
//
// so callers get a concrete, non-generic entry point per element type.
package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("kernelgen: ")

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "kernelgen",
		Short:         "Generate per-type kernel entry points",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	for _, family := range Families() {
		root.AddCommand(newFamilyCmd(family))
	}
	return root
}

func newFamilyCmd(family Family) *cobra.Command {
	var (
		output  string
		types   string
		pkgName string
	)

	cmd := &cobra.Command{
		Use:   family.Name,
		Short: family.Short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			elems, err := ParseTypes(types)
			if err != nil {
				return err
			}
			gen := &Generator{
				Family:  family,
				Package: pkgName,
				Types:   elems,
			}
			if err := gen.WriteFile(output); err != nil {
				return err
			}
			log.Printf("wrote %s (%d functions)", output, gen.NumFuncs())
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", family.Name+".gen.go", "Output file")
	cmd.Flags().StringVarP(&types, "types", "t", "all", "Comma-separated element types ("+AllTypeNames()+") or 'all'")
	cmd.Flags().StringVar(&pkgName, "pkg", family.Package, "Output package name")
	return cmd
}
