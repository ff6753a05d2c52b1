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

var compileCmd = &cobra.Command{
	Use:   "compile [flags] expression(s)",
	Short: "compile expressions and report their types.",
	Long: `Compile one or more expressions against the selected catalogues, reporting the
	 canonical form and result type of each.  Errors are reported with their position.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		compiler := NewCompiler(cmd)
		quiet := GetFlag(cmd, "quiet")
		//
		CompileAll(compiler, ReadInputs(cmd, args), func(input source.File, e ast.Element) {
			if !quiet {
				fmt.Printf("%s : %s\n", e, e.ResultType().Name())
			}
		})
	},
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(compileCmd)
	compileCmd.Flags().BoolP("file", "f", false, "read expressions from files")
	compileCmd.Flags().BoolP("quiet", "q", false, "only report errors")
}
