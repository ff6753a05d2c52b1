// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"

	"github.com/consensys/go-formula/pkg/ast"
	"github.com/consensys/go-formula/pkg/util/source"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render [flags] expression(s)",
	Short: "print expressions in canonical form.",
	Long: `Compile one or more expressions and print each in canonical form, with redundant
	 brackets removed.  Rendered expressions compile to the same tree as the originals.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		compiler := NewCompiler(cmd)
		//
		CompileAll(compiler, ReadInputs(cmd, args), func(input source.File, e ast.Element) {
			fmt.Println(e.String())
		})
	},
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().BoolP("file", "f", false, "read expressions from files")
}
