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
	"sync"

	"github.com/consensys/go-formula/pkg/lex"
)

// Production is a grammar rule, which replaces the top Length symbols of the
// stack with its left-hand side.
type Production struct {
	ID     uint
	LHS    Nonterminal
	Length uint
	Text   string
	reduce reducer
}

func (p *Production) String() string {
	return p.Text
}

// infix describes a binary operator spelled with one or two tokens.
type infix struct {
	symbol     string
	first      lex.Kind
	second     lex.Kind
	double     bool
	level      uint
	production uint
}

// Binary operators, where lower levels bind more tightly.  All associate to
// the left.
var infixes = []infix{
	{"*", lex.MUL, 0, false, 4, 5},
	{"/", lex.DIV, 0, false, 4, 6},
	{"%", lex.REM, 0, false, 4, 7},
	{"+", lex.ADD, 0, false, 5, 8},
	{"-", lex.SUB, 0, false, 5, 9},
	{">>", lex.GT, lex.GT, true, 6, 10},
	{"<<", lex.LT, lex.LT, true, 6, 11},
	{">", lex.GT, 0, false, 7, 12},
	{">=", lex.GT, lex.EQ, true, 7, 13},
	{"<", lex.LT, 0, false, 7, 14},
	{"<=", lex.LT, lex.EQ, true, 7, 15},
	{"!=", lex.BANG, lex.EQ, true, 8, 16},
	{"==", lex.EQ, lex.EQ, true, 8, 17},
	{"&", lex.AMP, 0, false, 9, 18},
	{"^", lex.CARET, 0, false, 10, 19},
	{"|", lex.BAR, 0, false, 11, 20},
	{"&&", lex.AMP, lex.AMP, true, 12, 21},
	{"||", lex.BAR, lex.BAR, true, 13, 22},
}

// Tokens which can follow a complete expression.
var follow = []lex.Kind{
	lex.MUL, lex.DIV, lex.REM, lex.ADD, lex.SUB, lex.LT, lex.GT, lex.EQ, lex.BANG, lex.AMP, lex.BAR, lex.CARET,
	lex.DOT, lex.COMMA, lex.RPAREN, lex.END,
}

// Used as the level of contexts where an expression is only ended by a closing
// token.
const unbounded = ^uint(0)

var (
	grammar     *Table
	grammarOnce sync.Once
)

// Grammar returns the (shared) automaton for expressions.  The tables are
// built and validated on first use.
func Grammar() *Table {
	grammarOnce.Do(func() {
		grammar = newGrammar()
		//
		if err := grammar.Validate(); err != nil {
			panic(fmt.Sprintf("invalid grammar: %v", err))
		}
	})
	//
	return grammar
}

func newGrammar() *Table {
	var b builder
	//
	b.productions = productions()
	b.build()
	//
	return &Table{b.states, b.productions}
}

func productions() []*Production {
	ps := []*Production{
		nil,
		{1, S, 1, "S -> E", reduceStart},
		{2, E, 3, "E -> ( E )", reduceParen},
		{3, E, 2, "E -> ! E", reduceUnary("!")},
		{4, E, 2, "E -> ~ E", reduceUnary("~")},
	}
	//
	for _, op := range infixes {
		length, text := uint(3), "E -> E "+op.symbol+" E"
		if op.double {
			length = 4
		}
		//
		ps = append(ps, &Production{op.production, E, length, text, reduceBinary(op.symbol, op.double)})
	}
	//
	return append(ps,
		&Production{23, E, 1, "E -> OBJ", reduceObject},
		&Production{24, OBJ, 1, "OBJ -> id", reduceIdentifier},
		&Production{25, OBJ, 1, "OBJ -> number", reduceNumber},
		&Production{26, OBJ, 1, "OBJ -> string", reduceString},
		&Production{27, E, 1, "E -> FUNC", reduceGlobalCall},
		&Production{28, E, 3, "E -> E . id", reduceMemberVariable},
		&Production{29, E, 3, "E -> E . FUNC", reduceMemberCall},
		&Production{30, FUNC, 3, "FUNC -> FUNC_NAME ( )", reduceCall(false)},
		&Production{31, FUNC, 4, "FUNC -> FUNC_NAME ( ARGS )", reduceCall(true)},
		&Production{32, FUNC_NAME, 1, "FUNC_NAME -> id", reduceFunctionName},
		&Production{33, ARGS, 1, "ARGS -> E", reduceFirstArgument},
		&Production{34, ARGS, 3, "ARGS -> ARGS , E", reduceNextArgument},
		&Production{35, E, 2, "E -> - E", reduceUnary("-")},
	)
}

type builder struct {
	states      []*State
	productions []*Production
	// Shared operand states
	id, number, str, obj, fun, funName *State
	// Unary operators
	neg, not, tilde *State
	// Parentheses
	paren, parenE, parenClose *State
	// Calls
	callOpen, callEmpty, argE, args, comma, argsE2, callClose *State
	// Members
	dot, memberID, memberFun *State
	// First token of each binary operator, indexed by kind.
	firsts map[lex.Kind]*State
	// Operand of each binary operator, indexed by production.
	operands map[uint]*State
}

func (b *builder) state() *State {
	s := newState(uint(len(b.states)))
	b.states = append(b.states, s)
	//
	return s
}

func (b *builder) build() {
	start := b.state()
	top := b.state()
	//
	b.id, b.number, b.str, b.obj, b.fun, b.funName = b.state(), b.state(), b.state(), b.state(), b.state(), b.state()
	b.neg, b.not, b.tilde = b.state(), b.state(), b.state()
	b.paren, b.parenE, b.parenClose = b.state(), b.state(), b.state()
	b.callOpen, b.callEmpty, b.argE, b.args = b.state(), b.state(), b.state(), b.state()
	b.comma, b.argsE2, b.callClose = b.state(), b.state(), b.state()
	b.dot, b.memberID, b.memberFun = b.state(), b.state(), b.state()
	// Binary operators
	b.firsts = make(map[lex.Kind]*State)
	b.operands = make(map[uint]*State)
	//
	for _, op := range infixes {
		if _, ok := b.firsts[op.first]; !ok {
			b.firsts[op.first] = b.state()
		}
	}
	//
	for _, op := range infixes {
		first := b.firsts[op.first]
		//
		if op.double {
			b.operands[op.production] = b.state()
			first.shift(op.second, b.operands[op.production])
		} else {
			b.operands[op.production] = first
		}
	}
	// Expressions
	b.operand(start, top)
	b.complete(top, unbounded, 0)
	top.accept(lex.END)
	// Operands
	b.id.reduce(lex.LPAREN, 32)
	b.reduceOnFollow(b.id, 24)
	b.reduceOnFollow(b.number, 25)
	b.reduceOnFollow(b.str, 26)
	b.reduceOnFollow(b.obj, 23)
	b.reduceOnFollow(b.fun, 27)
	b.funName.shift(lex.LPAREN, b.callOpen)
	// Unary operators
	b.unary(b.neg, 35)
	b.unary(b.not, 3)
	b.unary(b.tilde, 4)
	// Parentheses
	b.operand(b.paren, b.parenE)
	b.complete(b.parenE, unbounded, 0)
	b.parenE.shift(lex.RPAREN, b.parenClose)
	b.reduceOnFollow(b.parenClose, 2)
	// Calls
	b.operand(b.callOpen, b.argE)
	b.callOpen.shift(lex.RPAREN, b.callEmpty)
	b.callOpen.jump(ARGS, b.args)
	b.reduceOnFollow(b.callEmpty, 30)
	b.complete(b.argE, unbounded, 0)
	b.argE.reduce(lex.COMMA, 33)
	b.argE.reduce(lex.RPAREN, 33)
	b.args.shift(lex.COMMA, b.comma)
	b.args.shift(lex.RPAREN, b.callClose)
	b.operand(b.comma, b.argsE2)
	b.complete(b.argsE2, unbounded, 0)
	b.argsE2.reduce(lex.COMMA, 34)
	b.argsE2.reduce(lex.RPAREN, 34)
	b.reduceOnFollow(b.callClose, 31)
	// Members
	b.dot.shift(lex.ID, b.memberID)
	b.dot.jump(FUNC_NAME, b.funName)
	b.dot.jump(FUNC, b.memberFun)
	b.memberID.reduce(lex.LPAREN, 32)
	b.reduceOnFollow(b.memberID, 28)
	b.reduceOnFollow(b.memberFun, 29)
	// Binary operators
	for _, op := range infixes {
		rhs := b.state()
		b.operand(b.operands[op.production], rhs)
		b.complete(rhs, op.level, op.production)
	}
}

// Configure a state in which an expression begins.  Once the expression is
// complete, the automaton moves to the given state.
func (b *builder) operand(s *State, next *State) {
	s.shift(lex.NUMBER, b.number)
	s.shift(lex.STRING, b.str)
	s.shift(lex.ID, b.id)
	s.shift(lex.SUB, b.neg)
	s.shift(lex.BANG, b.not)
	s.shift(lex.TILDE, b.tilde)
	s.shift(lex.LPAREN, b.paren)
	s.jump(E, next)
	s.jump(OBJ, b.obj)
	s.jump(FUNC, b.fun)
	s.jump(FUNC_NAME, b.funName)
}

func (b *builder) unary(s *State, production uint) {
	rhs := b.state()
	b.operand(s, rhs)
	// Unary operators bind more tightly than any binary operator
	b.complete(rhs, 3, production)
}

// Configure a state following a complete expression.  Binary operators binding
// more tightly than the given level are shifted, whilst the others reduce by
// the given production.  Closing tokens also reduce, unless the production is
// 0 in which case the caller decides how closing tokens are handled.
func (b *builder) complete(s *State, level uint, production uint) {
	for _, op := range infixes {
		var (
			first   = b.firsts[op.first]
			shifted = op.level < level
		)
		//
		switch {
		case op.double && shifted:
			s.shift2(op.first, op.second, first)
		case op.double:
			s.reduce2(op.first, op.second, production)
		case shifted:
			s.shift(op.first, first, seconds(op.first)...)
		default:
			s.reduce(op.first, production, seconds(op.first)...)
		}
	}
	//
	s.shift(lex.DOT, b.dot)
	//
	if production != 0 {
		s.reduce(lex.RPAREN, production)
		s.reduce(lex.COMMA, production)
		s.reduce(lex.END, production)
	}
}

func (b *builder) reduceOnFollow(s *State, production uint) {
	for _, k := range follow {
		s.reduce(k, production)
	}
}

// Determine the second tokens of all two token operators starting with a
// given token.
func seconds(first lex.Kind) []lex.Kind {
	var kinds []lex.Kind
	//
	for _, op := range infixes {
		if op.double && op.first == first {
			kinds = append(kinds, op.second)
		}
	}
	//
	return kinds
}
