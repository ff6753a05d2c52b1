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
	"strings"

	"github.com/consensys/go-formula/pkg/ast"
	"github.com/consensys/go-formula/pkg/util/source"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] expression(s)",
	Short: "check expressions and list the names they use.",
	Long: `Check one or more expressions against the selected catalogues.  For each valid
	 expression, the functions and variables it refers to are listed.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		compiler := NewCompiler(cmd)
		//
		CompileAll(compiler, ReadInputs(cmd, args), func(input source.File, e ast.Element) {
			functions, variables := References(e)
			//
			fmt.Printf("%s: ok (%s)\n", input.Filename(), e.ResultType().Name())
			//
			if len(functions) > 0 {
				fmt.Printf("  functions: %s\n", strings.Join(functions, ", "))
			}
			//
			if len(variables) > 0 {
				fmt.Printf("  variables: %s\n", strings.Join(variables, ", "))
			}
		})
	},
}

// References determines the (distinct) functions and variables referred to in
// an expression, in order of first use.
func References(e ast.Element) (functions []string, variables []string) {
	seen := make(map[string]bool)
	//
	ast.Walk(e, func(e ast.Element) bool {
		name := e.Name()
		//
		switch {
		case seen[name]:
		case e.Kind() == ast.FUNCTION:
			functions = append(functions, name)
			seen[name] = true
		case e.Kind() == ast.VARIABLE:
			variables = append(variables, name)
			seen[name] = true
		}
		//
		return true
	})
	//
	return functions, variables
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().BoolP("file", "f", false, "read expressions from files")
}
