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
	"strings"

	"github.com/consensys/go-formula/pkg/types"
)

// Operator describes the display name and hint of an operator symbol.
type Operator struct {
	Symbol      string
	DisplayName string
	Hint        string
}

var unaryOperators = map[string]Operator{
	"!": {"!", "not", "logical negation"},
	"~": {"~", "complement", "bitwise complement"},
	"-": {"-", "negate", "arithmetic negation"},
}

var binaryOperators = map[string]Operator{
	"*":  {"*", "multiply", "multiplication"},
	"/":  {"/", "divide", "division"},
	"%":  {"%", "modulo", "remainder"},
	"+":  {"+", "add", "addition"},
	"-":  {"-", "subtract", "subtraction"},
	">>": {">>", "shift right", "bitwise shift right"},
	"<<": {"<<", "shift left", "bitwise shift left"},
	">":  {">", "greater than", "relational greater than"},
	">=": {">=", "greater or equal", "relational greater than or equal"},
	"<":  {"<", "less than", "relational less than"},
	"<=": {"<=", "less or equal", "relational less than or equal"},
	"!=": {"!=", "not equal", "relational not equal"},
	"==": {"==", "equal", "relational equal"},
	"&":  {"&", "bitwise and", "bitwise and"},
	"^":  {"^", "bitwise xor", "bitwise exclusive or"},
	"|":  {"|", "bitwise or", "bitwise or"},
	"&&": {"&&", "and", "logical and"},
	"||": {"||", "or", "logical or"},
}

// UnaryOperator looks up a prefix operator by symbol.
func UnaryOperator(symbol string) (Operator, bool) {
	op, ok := unaryOperators[symbol]
	return op, ok
}

// BinaryOperator looks up an infix operator by symbol.
func BinaryOperator(symbol string) (Operator, bool) {
	op, ok := binaryOperators[symbol]
	return op, ok
}

// UnaryOp is a prefix operation with a single operand.
type UnaryOp struct {
	node
}

// NewUnaryOp constructs a prefix operation with an unbound operand.
func NewUnaryOp(op Operator) *UnaryOp {
	return &UnaryOp{node{
		name:        op.Symbol,
		displayName: op.DisplayName,
		hint:        op.Hint,
		params:      []Param{NewParam("value1", "value1", "")},
	}}
}

// Kind implementation for Element interface.
func (p *UnaryOp) Kind() Kind {
	return UNARY
}

// Operand returns the operand of this operation (or nil if unbound).
func (p *UnaryOp) Operand() Element {
	return p.params[0].Value
}

// CheckParams implementation for Element interface.
func (p *UnaryOp) CheckParams(dict *types.Dictionary) error {
	p.resultType = nil
	//
	operand := p.params[0].Value
	if operand == nil {
		return p.errorf("operator '%s' operand '%s' cannot be empty", p.name, p.params[0].DisplayName)
	} else if err := operand.CheckParams(dict); err != nil {
		return err
	}
	//
	t := operand.ResultType()
	if t == nil {
		return p.errorf("operator '%s' operand has no type", p.name)
	}
	//
	result, ok := t.IsAccept(p.name, "")
	if !ok {
		return p.errorf("cannot apply operator '%s' to type '%s'", p.name, t.Name())
	}
	//
	return p.resolve(dict, result)
}

// Export implementation for Element interface.
func (p *UnaryOp) Export() *Export {
	return export(p)
}

// The operand is bracketed when it is compound (i.e. has parameters), unless it
// is a function call.
func (p *UnaryOp) String() string {
	var (
		builder strings.Builder
		operand = p.params[0].Value
	)
	//
	builder.WriteString(p.name)
	//
	if operand == nil {
		return builder.String()
	} else if operand.Kind() != FUNCTION && len(operand.Params()) > 0 {
		builder.WriteString("(")
		builder.WriteString(operand.String())
		builder.WriteString(")")
	} else {
		builder.WriteString(operand.String())
	}
	//
	return builder.String()
}

// BinaryOp is an infix operation with a left and right operand.
type BinaryOp struct {
	node
}

// NewBinaryOp constructs an infix operation with unbound operands.
func NewBinaryOp(op Operator) *BinaryOp {
	return &BinaryOp{node{
		name:        op.Symbol,
		displayName: op.DisplayName,
		hint:        op.Hint,
		params:      []Param{NewParam("value1", "value1", ""), NewParam("value2", "value2", "")},
	}}
}

// Kind implementation for Element interface.
func (p *BinaryOp) Kind() Kind {
	return BINARY
}

// Left returns the left operand (or nil if unbound).
func (p *BinaryOp) Left() Element {
	return p.params[0].Value
}

// Right returns the right operand (or nil if unbound).
func (p *BinaryOp) Right() Element {
	return p.params[1].Value
}

// CheckParams implementation for Element interface.  Both operands are checked
// first, after which the left operand's type is asked whether it accepts the
// right operand's type under this operator.
func (p *BinaryOp) CheckParams(dict *types.Dictionary) error {
	p.resultType = nil
	//
	for _, param := range p.params {
		if param.Value == nil {
			return p.errorf("operator '%s' operand '%s' cannot be empty", p.name, param.DisplayName)
		}
	}
	//
	for _, param := range p.params {
		if err := param.Value.CheckParams(dict); err != nil {
			return err
		}
	}
	//
	lhs, rhs := p.Left().ResultType(), p.Right().ResultType()
	if lhs == nil || rhs == nil {
		return p.errorf("operator '%s' operand has no type", p.name)
	}
	//
	result, ok := lhs.IsAccept(p.name, rhs.Name())
	if !ok {
		return p.errorf("type '%s' cannot accept type '%s' with operator '%s'", lhs.Name(), rhs.Name(), p.name)
	}
	//
	return p.resolve(dict, result)
}

// Export implementation for Element interface.
func (p *BinaryOp) Export() *Export {
	return export(p)
}

// Operands are bracketed unless they are functions, literals or bind at least
// as tightly as this operator.  On the right, an infix operand of equal
// priority is bracketed as well since operators associate to the left.
func (p *BinaryOp) String() string {
	var (
		builder strings.Builder
		lhs     = p.Left()
		rhs     = p.Right()
	)
	//
	if lhs != nil {
		writeOperand(&builder, lhs, !Check(lhs.Name(), p.name))
	}
	//
	builder.WriteString(" ")
	builder.WriteString(p.name)
	builder.WriteString(" ")
	//
	if rhs != nil {
		bracket := !Check(rhs.Name(), p.name)
		if rhs.Kind() == BINARY && !bracket {
			bracket = !Precedes(rhs.Name(), p.name)
		}
		//
		writeOperand(&builder, rhs, bracket)
	}
	//
	return builder.String()
}

func writeOperand(builder *strings.Builder, operand Element, bracket bool) {
	kind := operand.Kind()
	//
	if bracket && kind != FUNCTION && kind != LITERAL {
		builder.WriteString("(")
		builder.WriteString(operand.String())
		builder.WriteString(")")
	} else {
		builder.WriteString(operand.String())
	}
}

// Lookup the result type produced by an acceptance rule.
func (p *node) resolve(dict *types.Dictionary, result string) error {
	if p.resultType = dict.Lookup(result); p.resultType == nil {
		return p.errorf("unknown result type '%s'", result)
	}
	//
	return nil
}
