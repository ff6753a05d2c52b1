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
	"errors"
	"strings"

	"github.com/consensys/go-formula/pkg/ast"
	"github.com/consensys/go-formula/pkg/types"
)

// A reducer computes the attribute of a production's left-hand side from the
// attributes of its right-hand side, which are still on the stack.
type reducer func(p *Parser) (*Attr, error)

// S -> E
func reduceStart(p *Parser) (*Attr, error) {
	attr := p.at(-1)
	//
	if _, err := requireValue(attr); err != nil {
		return nil, err
	}
	//
	return attr, nil
}

// E -> ( E )
func reduceParen(p *Parser) (*Attr, error) {
	var (
		open  = p.at(-3)
		inner = *p.at(-2)
	)
	//
	inner.Line, inner.Column = open.Line, open.Column
	//
	return &inner, nil
}

func reduceUnary(symbol string) reducer {
	op, ok := ast.UnaryOperator(symbol)
	if !ok {
		panic("unknown unary operator " + symbol)
	}
	//
	return func(p *Parser) (*Attr, error) {
		var token = p.at(-2)
		//
		operand, err := requireValue(p.at(-1))
		if err != nil {
			return nil, err
		}
		//
		e := ast.NewUnaryOp(op)
		e.Bind(0, operand)
		e.SetPosition(token.Line, token.Column)
		//
		if err := e.CheckParams(p.env.Types); err != nil {
			return nil, err
		}
		//
		return element(e, token), nil
	}
}

func reduceBinary(symbol string, double bool) reducer {
	op, ok := ast.BinaryOperator(symbol)
	if !ok {
		panic("unknown binary operator " + symbol)
	}
	// Offset of the left operand
	var lhs = -3
	if double {
		lhs = -4
	}
	//
	return func(p *Parser) (*Attr, error) {
		var token = p.at(lhs + 1)
		//
		left, err := requireValue(p.at(lhs))
		if err != nil {
			return nil, err
		}
		//
		right, err := requireValue(p.at(-1))
		if err != nil {
			return nil, err
		}
		//
		e := ast.NewBinaryOp(op)
		e.Bind(0, left)
		e.Bind(1, right)
		e.SetPosition(token.Line, token.Column)
		//
		if err := e.CheckParams(p.env.Types); err != nil {
			return nil, err
		}
		//
		return element(e, p.at(lhs)), nil
	}
}

// E -> OBJ
func reduceObject(p *Parser) (*Attr, error) {
	return p.at(-1), nil
}

// OBJ -> id.  An identifier names either a global variable, or a type whose
// members are subsequently accessed.
func reduceIdentifier(p *Parser) (*Attr, error) {
	var (
		token    = p.at(-1)
		isType   = p.env.Types.Has(token.Text)
		variable = p.env.Variables.Create("", token.Text)
	)
	//
	switch {
	case isType && variable != nil:
		return nil, semanticError(token.Line, token.Column, "'%s' is declared as both a type and a variable", token.Text)
	case isType:
		return &Attr{TypeName: token.Text, Line: token.Line, Column: token.Column}, nil
	case variable == nil:
		return nil, semanticError(token.Line, token.Column, "unknown variable '%s'", token.Text)
	}
	//
	variable.SetPosition(token.Line, token.Column)
	//
	return element(variable, token), nil
}

// OBJ -> number
func reduceNumber(p *Parser) (*Attr, error) {
	var token = p.at(-1)
	//
	e := ast.NewNumberLiteral(token.Text, p.env.Types.Lookup(types.NUMBER))
	e.SetPosition(token.Line, token.Column)
	//
	return element(e, token), nil
}

// OBJ -> string
func reduceString(p *Parser) (*Attr, error) {
	var token = p.at(-1)
	//
	e := ast.NewStringLiteral(token.Text, p.env.Types.Lookup(types.STRING))
	e.SetPosition(token.Line, token.Column)
	//
	return element(e, token), nil
}

// E -> FUNC.  Only here is a call known to be global, hence any error from
// resolving it is reported now.
func reduceGlobalCall(p *Parser) (*Attr, error) {
	var call = p.at(-1)
	//
	switch {
	case call.Elem != nil:
		return element(call.Elem, call), nil
	case call.Err != nil:
		return nil, call.Err
	}
	//
	return nil, semanticError(call.Line, call.Column, "unknown function '%s'", call.Member)
}

// E -> E . id
func reduceMemberVariable(p *Parser) (*Attr, error) {
	var (
		target = p.at(-3)
		name   = p.at(-1)
	)
	//
	class, qualifier, err := memberOf(target)
	if err != nil {
		return nil, err
	}
	//
	variable := p.env.Variables.Create(class, name.Text)
	if variable == nil {
		return nil, semanticError(name.Line, name.Column, "type '%s' has no member '%s'", class, name.Text)
	}
	//
	variable.SetQualifier(qualifier)
	variable.SetPosition(name.Line, name.Column)
	//
	return element(variable, target), nil
}

// E -> E . FUNC
func reduceMemberCall(p *Parser) (*Attr, error) {
	var (
		target = p.at(-3)
		call   = p.at(-1)
	)
	//
	class, qualifier, err := memberOf(target)
	if err != nil {
		return nil, err
	}
	//
	fn := p.env.Functions.Create(class, call.Member)
	if fn == nil {
		return nil, semanticError(call.Line, call.Column, "type '%s' has no member '%s'", class, call.Member)
	}
	//
	fn.SetQualifier(qualifier)
	fn.SetPosition(call.Line, call.Column)
	//
	if err := fn.BindArguments(call.Args); err != nil {
		return nil, err
	} else if err := fn.CheckParams(p.env.Types); err != nil {
		return nil, err
	}
	//
	return element(fn, target), nil
}

// FUNC -> FUNC_NAME ( ) | FUNC_NAME ( ARGS ).  Whether the call is global or a
// member is not yet known, so the global function (if any) is resolved
// eagerly but errors are held back.
func reduceCall(withArgs bool) reducer {
	var name = -3
	if withArgs {
		name = -4
	}
	//
	return func(p *Parser) (*Attr, error) {
		var (
			token = p.at(name)
			attr  = &Attr{Member: token.Text, Line: token.Line, Column: token.Column}
		)
		//
		if withArgs {
			attr.Args = p.at(-2).Args
		}
		//
		if fn := p.env.Functions.Create("", token.Text); fn != nil {
			fn.SetPosition(token.Line, token.Column)
			//
			if err := fn.BindArguments(attr.Args); err != nil {
				attr.Err = err
			} else if err := fn.CheckParams(p.env.Types); err != nil {
				attr.Err = err
			} else {
				attr.Elem = fn
			}
		}
		//
		return attr, nil
	}
}

// FUNC_NAME -> id
func reduceFunctionName(p *Parser) (*Attr, error) {
	return p.at(-1), nil
}

// ARGS -> E
func reduceFirstArgument(p *Parser) (*Attr, error) {
	var arg = p.at(-1)
	//
	e, err := requireValue(arg)
	if err != nil {
		return nil, err
	}
	//
	return &Attr{Args: []ast.Element{e}, Line: arg.Line, Column: arg.Column}, nil
}

// ARGS -> ARGS , E
func reduceNextArgument(p *Parser) (*Attr, error) {
	var args = p.at(-3)
	//
	e, err := requireValue(p.at(-1))
	if err != nil {
		return nil, err
	}
	//
	args.Args = append(args.Args, e)
	//
	return args, nil
}

// Extract the value of an expression, which fails for a bare type name.
func requireValue(attr *Attr) (ast.Element, error) {
	switch {
	case attr.TypeName != "":
		return nil, semanticError(attr.Line, attr.Column, "'%s' is a type, not a value", attr.TypeName)
	case attr.Elem == nil:
		return nil, errors.New("expression has no value")
	}
	//
	return attr.Elem, nil
}

// Determine the class whose members are accessed through a given expression,
// along with the text to render before the member.
func memberOf(target *Attr) (class string, qualifier string, err error) {
	if target.TypeName != "" {
		return target.TypeName, target.TypeName, nil
	}
	//
	e, err := requireValue(target)
	if err != nil {
		return "", "", err
	} else if e.ResultType() == nil {
		return "", "", semanticError(target.Line, target.Column, "expression '%s' has no type", e)
	}
	//
	qualifier = e.String()
	if bracketQualifier(e) {
		qualifier = "(" + qualifier + ")"
	}
	//
	return e.ResultType().Name(), qualifier, nil
}

// A qualifier is bracketed when it is compound, or when it is a decimal number
// whose rendering would otherwise run into the following '.'.
func bracketQualifier(e ast.Element) bool {
	switch e.Kind() {
	case ast.UNARY, ast.BINARY:
		return true
	case ast.LITERAL:
		text := e.String()
		//
		return !e.(*ast.Literal).IsString() && !strings.HasPrefix(text, "0x") && !strings.HasPrefix(text, "0X")
	}
	//
	return false
}
