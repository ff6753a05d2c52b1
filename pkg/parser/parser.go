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
	"github.com/consensys/go-formula/pkg/ast"
	"github.com/consensys/go-formula/pkg/catalog"
	"github.com/consensys/go-formula/pkg/lex"
	"github.com/consensys/go-formula/pkg/util/collection/stack"
)

// Symbol is a terminal or nonterminal on the symbol stack.
type Symbol struct {
	Terminal bool
	ID       uint
}

// Parser drives the automaton over a sequence of tokens, maintaining three
// parallel stacks of states, symbols and attributes.  A parser can be reused
// for many expressions, but is not safe for concurrent use.
type Parser struct {
	table *Table
	env   *catalog.Environment
	// Parallel stacks
	states  *stack.Stack[uint]
	symbols *stack.Stack[Symbol]
	attrs   *stack.Stack[*Attr]
	// Attribute of the start symbol, once accepted.
	result *Attr
	// Signals the end of input was accepted.
	finished bool
	// Called on entering each state
	observer func(uint)
}

// NewParser constructs a parser which resolves names in the given environment.
func NewParser(env *catalog.Environment) *Parser {
	return &Parser{
		table:   Grammar(),
		env:     env,
		states:  stack.NewStack[uint](),
		symbols: stack.NewStack[Symbol](),
		attrs:   stack.NewStack[*Attr](),
	}
}

// Finished indicates whether the last parse accepted its input.
func (p *Parser) Finished() bool {
	return p.finished
}

// Parse an expression into a checked element.
func (p *Parser) Parse(text string) (ast.Element, error) {
	tokens, err := lex.Tokenize(text)
	if err != nil {
		return nil, wrap(err)
	}
	//
	return p.ParseTokens(tokens)
}

// ParseTokens parses a sequence of tokens terminated by an END token.  Parsing
// stops at the first error.
func (p *Parser) ParseTokens(tokens []lex.Token) (ast.Element, error) {
	var i int
	//
	p.reset()
	//
	for i < len(tokens) && !p.finished {
		var (
			leading   = tokens[i]
			following *lex.Kind
		)
		//
		if i+1 < len(tokens) {
			following = &tokens[i+1].Kind
		}
		//
		action, status := p.table.State(p.states.Peek(0)).Lookup(leading.Kind, following)
		//
		switch {
		case status == MISSING:
			return nil, unexpected(leading)
		case status == EXCLUDED:
			return nil, unexpected(tokens[i+1])
		case action.Kind == SHIFT && action.Target == StateAccept:
			if err := p.accept(); err != nil {
				return nil, err
			}
			//
			i++
		case action.Kind == SHIFT:
			p.push(Symbol{true, uint(leading.Kind)}, action.Target, terminal(leading))
			i++
		default:
			if err := p.reduce(action.Target); err != nil {
				return nil, err
			}
		}
	}
	// Check all input was consumed
	if !p.finished || i < len(tokens) {
		var position lex.Token
		//
		if i < len(tokens) {
			position = tokens[i]
		}
		//
		return nil, syntaxError(position, "incomplete expression")
	}
	//
	return p.result.Elem, nil
}

func (p *Parser) reset() {
	p.states.Clear()
	p.symbols.Clear()
	p.attrs.Clear()
	p.result = nil
	p.finished = false
	p.enter(0)
}

func (p *Parser) enter(state uint) {
	p.states.Push(state)
	//
	if p.observer != nil {
		p.observer(state)
	}
}

func (p *Parser) push(symbol Symbol, state uint, attr *Attr) {
	p.symbols.Push(symbol)
	p.attrs.Push(attr)
	p.enter(state)
}

// Apply a production, and then move to the successor state for its left-hand
// side.  This does not consume any input.
func (p *Parser) reduce(id uint) error {
	var production = p.table.Production(id)
	//
	attr, err := production.reduce(p)
	if err != nil {
		return wrap(err)
	}
	//
	p.pop(production.Length)
	//
	next, ok := p.table.State(p.states.Peek(0)).Goto(production.LHS)
	if !ok {
		return semanticError(attr.Line, attr.Column, "no transition on %s after %s", production.LHS, production)
	}
	//
	p.push(Symbol{false, uint(production.LHS)}, next, attr)
	//
	return nil
}

// Accept the expression on top of the stack as the start symbol.
func (p *Parser) accept() error {
	attr, err := p.table.Production(1).reduce(p)
	if err != nil {
		return wrap(err)
	}
	//
	p.result = attr
	p.finished = true
	//
	return nil
}

func (p *Parser) pop(n uint) {
	p.states.Drop(n)
	p.symbols.Drop(n)
	p.attrs.Drop(n)
}

// Get the attribute at a given (negative) offset from the top of the stack,
// where -1 is the top.
func (p *Parser) at(offset int) *Attr {
	return p.attrs.Peek(uint(-offset - 1))
}
