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
	"io"
	"os"
	"strings"

	"github.com/consensys/go-formula/pkg/catalog"
	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog [flags]",
	Short: "list the types, functions and variables available.",
	Long: `List the types (with their acceptance rules), functions and variables which
	 expressions can refer to, after installing the selected catalogues.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		compiler := NewCompiler(cmd)
		//
		PrintEnvironment(os.Stdout, compiler.Environment())
	},
}

// PrintEnvironment writes a summary of an environment.
func PrintEnvironment(w io.Writer, env *catalog.Environment) {
	fmt.Fprintln(w, "types:")
	//
	for _, name := range env.Types.Names() {
		fmt.Fprintf(w, "  %s\n", name)
		//
		for _, rule := range env.Types.Lookup(name).Accepts() {
			if rule.Other == "" {
				fmt.Fprintf(w, "    %s%s -> %s\n", rule.Operator, name, rule.Result)
			} else {
				fmt.Fprintf(w, "    %s %s %s -> %s\n", name, rule.Operator, rule.Other, rule.Result)
			}
		}
	}
	//
	fmt.Fprintln(w, "functions:")
	//
	for _, name := range env.Functions.Names() {
		fn := env.Functions.Create(splitName(name))
		params := make([]string, len(fn.Params()))
		//
		for i, p := range fn.Params() {
			params[i] = fmt.Sprintf("%s %s", p.DisplayName, p.Type)
			//
			if p.Omittable {
				params[i] += "?"
			}
		}
		//
		fmt.Fprintf(w, "  %s(%s) %s\n", name, strings.Join(params, ", "), fn.ResultType().Name())
	}
	//
	fmt.Fprintln(w, "variables:")
	//
	for _, name := range env.Variables.Names() {
		v := env.Variables.Create(splitName(name))
		fmt.Fprintf(w, "  %s %s\n", name, v.ResultType().Name())
	}
}

// Split a qualified name into its class and member.
func splitName(name string) (string, string) {
	if class, member, ok := strings.Cut(name, "."); ok {
		return class, member
	}
	//
	return "", name
}

func init() {
	rootCmd.AddCommand(catalogCmd)
}
