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
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/consensys/go-formula/pkg/ast"
	"github.com/consensys/go-formula/pkg/util/source"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [flags] expression(s)",
	Short: "export compiled expressions as JSON.",
	Long: `Compile one or more expressions and print the export tree of each as a JSON
	 document, one per line unless indentation is requested.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		compiler := NewCompiler(cmd)
		indent := GetFlag(cmd, "indent")
		//
		CompileAll(compiler, ReadInputs(cmd, args), func(input source.File, e ast.Element) {
			bytes, err := ast.ToJson(e)
			if err == nil && indent {
				bytes, err = indentJson(bytes)
			}
			//
			if err != nil {
				fmt.Printf("%s: %s\n", input.Filename(), err)
				os.Exit(EXIT_COMPILE_ERROR)
			}
			//
			fmt.Println(string(bytes))
		})
	},
}

func indentJson(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	//
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return nil, err
	}
	//
	return buf.Bytes(), nil
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().BoolP("file", "f", false, "read expressions from files")
	exportCmd.Flags().BoolP("indent", "i", false, "indent JSON output")
}
