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
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/consensys/go-formula/pkg/formula"
	"github.com/consensys/go-formula/pkg/util/source"
	"github.com/consensys/go-formula/pkg/util/termio"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl [flags]",
	Short: "compile expressions interactively.",
	Long: `Read expressions one line at a time, reporting the canonical form and result type
	 of each, or the error it raises.  Enter :help for a list of commands.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		compiler := NewCompiler(cmd)
		//
		console, err := termio.NewConsole("formula> ")
		if err != nil {
			fmt.Println(err)
			os.Exit(EXIT_BAD_INPUT)
		}
		//
		err = Repl(compiler, console)
		// Always restore the terminal
		if cerr := console.Close(); err == nil {
			err = cerr
		}
		//
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

const replHelp = `:help         show this message
:export <e>   print the export tree of an expression
:quit         leave
<e>           compile an expression
`

// Repl reads expressions from a console until it is exhausted, or the user
// quits.
func Repl(compiler *formula.Compiler, console termio.Console) error {
	for n := 1; ; n++ {
		line, err := console.ReadLine()
		if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return err
		}
		//
		line = strings.TrimSpace(line)
		//
		switch {
		case line == "":
			continue
		case line == ":quit" || line == ":q":
			return nil
		case line == ":help":
			fmt.Fprint(console, replHelp)
		case strings.HasPrefix(line, ":export "):
			text := strings.TrimPrefix(line, ":export ")
			//
			if bytes, err := compiler.Export(text); err != nil {
				printCompileError(console, inputFile(n, text), err, console.Colourful())
			} else {
				fmt.Fprintln(console, string(bytes))
			}
		case strings.HasPrefix(line, ":"):
			fmt.Fprintf(console, "unknown command %s (try :help)\n", line)
		default:
			if e, err := compiler.Compile(line); err != nil {
				printCompileError(console, inputFile(n, line), err, console.Colourful())
			} else {
				fmt.Fprintf(console, "%s : %s\n", e, e.ResultType().Name())
			}
		}
	}
}

func inputFile(n int, text string) *source.File {
	return source.NewSourceFile(fmt.Sprintf("<input%d>", n), []byte(text))
}

func init() {
	rootCmd.AddCommand(replCmd)
}
