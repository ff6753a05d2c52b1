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
package ast

import (
	"fmt"

	"github.com/consensys/go-formula/pkg/types"
)

// Kind tags the variant of an element.  The numbering is part of the export
// format.
type Kind uint8

// LITERAL identifies a number or string literal.
const LITERAL Kind = 1

// UNARY identifies a prefix operation.
const UNARY Kind = 2

// BINARY identifies an infix operation.
const BINARY Kind = 3

// FUNCTION identifies a (global or member) function call.
const FUNCTION Kind = 4

// VARIABLE identifies a reference to a registered variable.
const VARIABLE Kind = 5

// Element is a node in the syntax tree of an expression.  The set of
// implementations is closed: *Literal, *UnaryOp, *BinaryOp, *FunctionCall and
// *VariableRef.
type Element interface {
	fmt.Stringer
	// Kind returns the variant tag of this element.
	Kind() Kind
	// Name returns the identity of this element.  That is the literal text,
	// the operator symbol or the (qualified) function or variable name.
	Name() string
	// DisplayName returns a human readable name for this element.
	DisplayName() string
	// Hint returns a human readable description of this element.
	Hint() string
	// ResultType returns the type this element evaluates to, or nil if it has
	// not yet been (successfully) checked.
	ResultType() *types.Class
	// Line returns the source line of this element (counting from 1).
	Line() int
	// Column returns the source column of this element (counting from 0).
	Column() int
	// SetPosition updates the source position of this element.
	SetPosition(line int, column int)
	// Params returns the parameter slots of this element.
	Params() []Param
	// CheckParams recursively checks this element's parameters, and then
	// determines its result type.
	CheckParams(dict *types.Dictionary) error
	// Export converts this element into its export tree.
	Export() *Export
	// Marker restricting the set of implementations.
	element()
}

// Param is a parameter slot of an element, which is either empty or bound to a
// child element.
type Param struct {
	DisplayName string
	Hint        string
	// Name of the declared type (empty for operators).
	Type string
	// Marks a parameter which registration data declares as omittable.
	// Arity is nevertheless checked exactly.
	Omittable bool
	// Bound child (if any)
	Value Element
}

// NewParam constructs an unbound parameter slot.
func NewParam(displayName string, hint string, typeName string) Param {
	return Param{displayName, hint, typeName, false, nil}
}

// node holds the fields common to all elements.
type node struct {
	name        string
	displayName string
	hint        string
	resultType  *types.Class
	line        int
	column      int
	params      []Param
}

func (p *node) Name() string {
	return p.name
}

func (p *node) DisplayName() string {
	return p.displayName
}

func (p *node) Hint() string {
	return p.hint
}

func (p *node) ResultType() *types.Class {
	return p.resultType
}

func (p *node) Line() int {
	return p.line
}

func (p *node) Column() int {
	return p.column
}

func (p *node) SetPosition(line int, column int) {
	p.line = line
	p.column = column
}

func (p *node) Params() []Param {
	return p.params
}

// Arity returns the number of parameter slots.
func (p *node) Arity() int {
	return len(p.params)
}

// Bind a child element into a given parameter slot.  This returns false if the
// index is out of bounds.  Types are not checked here, since the type of a
// child may not be known until the enclosing expression is complete.
func (p *node) Bind(index int, child Element) bool {
	if index < 0 || index >= len(p.params) {
		return false
	}
	//
	p.params[index].Value = child
	//
	return true
}

func (p *node) element() {}

// CheckError is a type error found whilst checking an element.
type CheckError struct {
	Line    int
	Column  int
	Message string
}

func (e *CheckError) Error() string {
	return fmt.Sprintf("[%d:%d]: %s", e.Line, e.Column, e.Message)
}

func (p *node) errorf(format string, args ...any) *CheckError {
	return &CheckError{p.line, p.column, fmt.Sprintf(format, args...)}
}

func errorAt(e Element, format string, args ...any) *CheckError {
	return &CheckError{e.Line(), e.Column(), fmt.Sprintf(format, args...)}
}
