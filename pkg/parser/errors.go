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
package parser

import (
	"fmt"

	"github.com/consensys/go-formula/pkg/ast"
	"github.com/consensys/go-formula/pkg/lex"
)

// ErrorKind classifies the errors arising from parsing an expression.
type ErrorKind uint8

// LexicalError arises from malformed characters, numbers or strings.
const LexicalError ErrorKind = 1

// SyntaxError arises when no action applies, or the input is incomplete.
const SyntaxError ErrorKind = 2

// SemanticError arises from unknown names, arity mismatches and type errors.
const SemanticError ErrorKind = 3

func (k ErrorKind) String() string {
	switch k {
	case LexicalError:
		return "lexical"
	case SyntaxError:
		return "syntax"
	case SemanticError:
		return "semantic"
	}
	//
	return "unknown"
}

// Error is the first error encountered whilst parsing an expression.
type Error struct {
	Kind    ErrorKind
	Line    int
	Column  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("[%d:%d]: %s", e.Line, e.Column, e.Message)
}

func syntaxError(t lex.Token, msg string) *Error {
	return &Error{SyntaxError, t.Line, t.Column, msg}
}

func unexpected(t lex.Token) *Error {
	if t.Kind == lex.END {
		return syntaxError(t, "unexpected end of expression")
	}
	//
	return syntaxError(t, fmt.Sprintf("unexpected symbol '%s'", t.Text))
}

func semanticError(line int, column int, format string, args ...any) *Error {
	return &Error{SemanticError, line, column, fmt.Sprintf(format, args...)}
}

// Classify errors arising from the scanner or from checking elements.
func wrap(err error) *Error {
	switch e := err.(type) {
	case *Error:
		return e
	case *lex.Error:
		return &Error{LexicalError, e.Line, e.Column, e.Message}
	case *ast.CheckError:
		return &Error{SemanticError, e.Line, e.Column, e.Message}
	}
	//
	return &Error{SemanticError, 0, 0, err.Error()}
}
