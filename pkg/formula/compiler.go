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
package formula

import (
	"errors"

	"github.com/consensys/go-formula/pkg/ast"
	"github.com/consensys/go-formula/pkg/catalog"
	"github.com/consensys/go-formula/pkg/parser"
)

// Error is the first error arising from compiling an expression.
type Error = parser.Error

// ErrorKind classifies compilation errors.
type ErrorKind = parser.ErrorKind

const (
	// LexicalError arises from malformed characters, numbers or strings.
	LexicalError = parser.LexicalError
	// SyntaxError arises when the expression does not fit the grammar.
	SyntaxError = parser.SyntaxError
	// SemanticError arises from unknown names, arity mismatches and type
	// errors.
	SemanticError = parser.SemanticError
)

// Compiler compiles expressions against a fixed environment of types,
// functions and variables.  Since every compilation uses its own parser, a
// compiler can be shared between goroutines provided its environment is not
// modified.
type Compiler struct {
	env *catalog.Environment
}

// NewCompiler constructs a compiler for a given environment.
func NewCompiler(env *catalog.Environment) *Compiler {
	return &Compiler{env}
}

// NewDefaultCompiler constructs a compiler for the builtin catalogue, extended
// with any additional catalogues given.
func NewDefaultCompiler(catalogs ...*catalog.Catalog) (*Compiler, error) {
	env, err := catalog.NewEnvironmentFrom(append([]*catalog.Catalog{catalog.Default()}, catalogs...)...)
	if err != nil {
		return nil, err
	}
	//
	return &Compiler{env}, nil
}

// Environment returns the environment in which names are resolved.
func (c *Compiler) Environment() *catalog.Environment {
	return c.env
}

// Compile an expression into a checked element tree.  Any error returned is an
// *Error.
func (c *Compiler) Compile(text string) (ast.Element, error) {
	return parser.NewParser(c.env).Parse(text)
}

// Render compiles an expression and then renders it back into canonical
// source form.
func (c *Compiler) Render(text string) (string, error) {
	e, err := c.Compile(text)
	if err != nil {
		return "", err
	}
	//
	return e.String(), nil
}

// Export compiles an expression into its JSON export document.
func (c *Compiler) Export(text string) ([]byte, error) {
	e, err := c.Compile(text)
	if err != nil {
		return nil, err
	}
	//
	return ast.ToJson(e)
}

// AsError extracts a compilation error from an error chain.
func AsError(err error) (*Error, bool) {
	var e *Error
	//
	if errors.As(err, &e) {
		return e, true
	}
	//
	return nil, false
}
