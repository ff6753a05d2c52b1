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

	"github.com/consensys/go-formula/pkg/ast"
	"github.com/consensys/go-formula/pkg/catalog"
	"github.com/consensys/go-formula/pkg/formula"
	"github.com/consensys/go-formula/pkg/util"
	"github.com/consensys/go-formula/pkg/util/source"
	"github.com/consensys/go-formula/pkg/util/termio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Exit codes
const (
	// EXIT_BAD_INPUT indicates a flag or file could not be read.
	EXIT_BAD_INPUT = 2
	// EXIT_COMPILE_ERROR indicates an expression failed to compile.
	EXIT_COMPILE_ERROR = 3
	// EXIT_CATALOG_ERROR indicates a catalogue could not be loaded.
	EXIT_CATALOG_ERROR = 4
)

// GetFlag gets an expected flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(EXIT_BAD_INPUT)
	}

	return r
}

// GetString gets an expected string, or exits if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(EXIT_BAD_INPUT)
	}

	return r
}

// GetStringArray gets an expected string array, or exits if an error arises.
func GetStringArray(cmd *cobra.Command, flag string) []string {
	r, err := cmd.Flags().GetStringArray(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(EXIT_BAD_INPUT)
	}

	return r
}

// NewCompiler constructs a compiler for the catalogues selected on the command
// line, or exits if they cannot be loaded.
func NewCompiler(cmd *cobra.Command) *formula.Compiler {
	var catalogs []*catalog.Catalog
	//
	if !GetFlag(cmd, "no-default") {
		catalogs = append(catalogs, catalog.Default())
	}
	//
	extra, err := catalog.ReadFiles(GetStringArray(cmd, "catalog")...)
	if err != nil {
		fmt.Println(err)
		os.Exit(EXIT_CATALOG_ERROR)
	}
	//
	env, err := catalog.NewEnvironmentFrom(append(catalogs, extra...)...)
	if err != nil {
		fmt.Println(err)
		os.Exit(EXIT_CATALOG_ERROR)
	}
	//
	log.Debugf("loaded %d types, %d functions and %d variables", len(env.Types.Names()),
		len(env.Functions.Names()), len(env.Variables.Names()))
	//
	return formula.NewCompiler(env)
}

// ReadInputs determines the expressions to process.  These are either given
// directly as arguments or, with --file, read from the named files.
func ReadInputs(cmd *cobra.Command, args []string) []source.File {
	if GetFlag(cmd, "file") {
		files, err := source.ReadFiles(args...)
		if err != nil {
			fmt.Println(err)
			os.Exit(EXIT_BAD_INPUT)
		}
		//
		return files
	}
	//
	files := make([]source.File, len(args))
	//
	for i, arg := range args {
		files[i] = *source.NewSourceFile(fmt.Sprintf("<arg%d>", i+1), []byte(arg))
	}
	//
	return files
}

// CompileAll compiles each input in turn, passing successful results to a
// given function and printing errors.  If any input fails, this exits with an
// error code.
func CompileAll(compiler *formula.Compiler, inputs []source.File, fn func(source.File, ast.Element)) {
	var failed bool
	//
	for _, input := range inputs {
		stats := util.NewPerfStats()
		e, err := compiler.Compile(string(input.Contents()))
		//
		stats.Log(fmt.Sprintf("compiling %s", input.Filename()))
		//
		if err != nil {
			printCompileError(os.Stdout, &input, err, false)
			//
			failed = true
		} else {
			fn(input, e)
		}
	}
	//
	if failed {
		os.Exit(EXIT_COMPILE_ERROR)
	}
}

// Print a compilation error, highlighting where in the input it arose.
func printCompileError(w io.Writer, input *source.File, err error, colour bool) {
	ferr, ok := formula.AsError(err)
	if !ok {
		fmt.Fprintln(w, err)
		return
	}
	//
	msg := fmt.Sprintf("%s error: %s", ferr.Kind, ferr.Message)
	printSyntaxError(w, input.ErrorAt(ferr.Line, ferr.Column, 1, msg), colour)
}

// Print a syntax error with appropriate highlighting.
func printSyntaxError(w io.Writer, err *source.SyntaxError, colour bool) {
	span := err.Span()
	line := err.FirstEnclosingLine()
	lineOffset := span.Start() - line.Start()
	// Calculate length (ensures don't overflow line)
	length := max(1, min(line.Length()-lineOffset, span.Length()))
	highlight := strings.Repeat("^", length)
	//
	if colour {
		highlight = termio.Colour(highlight, termio.TERM_RED)
	}
	// Print error + line number
	fmt.Fprintf(w, "%s:%d:%d-%d %s\n", err.SourceFile().Filename(),
		line.Number(), 1+lineOffset, 1+lineOffset+length, err.Message())
	// Print separator line
	fmt.Fprintln(w)
	// Print line
	fmt.Fprintln(w, line.String())
	// Print indent (todo: account for tabs)
	fmt.Fprint(w, strings.Repeat(" ", lineOffset))
	// Print highlight
	fmt.Fprintln(w, highlight)
}
