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
	"testing"

	"github.com/consensys/go-formula/pkg/ast"
	"github.com/consensys/go-formula/pkg/catalog"
	"github.com/consensys/go-formula/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// Valid
// ============================================================================

func TestParse_00(t *testing.T) {
	e := checkValid(t, "1", types.NUMBER)
	assert.Equal(t, ast.LITERAL, e.Kind())
}

func TestParse_01(t *testing.T) {
	e := checkValid(t, "'hello'", types.STRING)
	assert.Equal(t, ast.LITERAL, e.Kind())
	assert.Equal(t, "\"hello\"", e.String())
}

func TestParse_02(t *testing.T) {
	e := checkValid(t, "v", types.NUMBER)
	assert.Equal(t, ast.VARIABLE, e.Kind())
	assert.Equal(t, 1, e.Line())
	assert.Equal(t, 0, e.Column())
}

func TestParse_03(t *testing.T) {
	e := checkValid(t, "1 + 2 * 3", types.NUMBER)
	//
	add := e.(*ast.BinaryOp)
	assert.Equal(t, "+", add.Name())
	assert.Equal(t, "*", add.Right().Name())
	assert.Equal(t, 2, add.Column())
}

func TestParse_04(t *testing.T) {
	e := checkValid(t, "(1 + 2) * 3", types.NUMBER)
	//
	mul := e.(*ast.BinaryOp)
	assert.Equal(t, "*", mul.Name())
	assert.Equal(t, "+", mul.Left().Name())
	assert.Equal(t, "(1 + 2) * 3", e.String())
}

func TestParse_05(t *testing.T) {
	// Left associative
	e := checkValid(t, "v - 1 - 2", types.NUMBER)
	//
	sub := e.(*ast.BinaryOp)
	assert.Equal(t, "-", sub.Left().Name())
	assert.Equal(t, ast.LITERAL, sub.Right().Kind())
}

func TestParse_06(t *testing.T) {
	e := checkValid(t, "v - -v + 2", types.NUMBER)
	//
	add := e.(*ast.BinaryOp)
	assert.Equal(t, "+", add.Name())
	//
	sub := add.Left().(*ast.BinaryOp)
	assert.Equal(t, "-", sub.Name())
	assert.Equal(t, ast.UNARY, sub.Right().Kind())
	assert.Equal(t, "v - -v + 2", e.String())
}

func TestParse_07(t *testing.T) {
	e := checkValid(t, "math.sin(0.8 + 0x55)", types.NUMBER)
	//
	fn := e.(*ast.FunctionCall)
	assert.Equal(t, "math.sin", fn.Name())
	assert.Equal(t, "math", fn.Qualifier())
	assert.Equal(t, 5, fn.Column())
	assert.Equal(t, "math.sin(0.8 + 0x55)", e.String())
}

func TestParse_08(t *testing.T) {
	checkValid(t, "v >= 1 && v <= 10 || v != 5", types.BOOLEAN)
	checkValid(t, "v >> 2 << 1", types.NUMBER)
	checkValid(t, "v & 1 | 2 ^ 3", types.NUMBER)
	checkValid(t, "v == 1", types.BOOLEAN)
	checkValid(t, "!(v > 1)", types.BOOLEAN)
	checkValid(t, "~v % 3", types.NUMBER)
}

func TestParse_09(t *testing.T) {
	e := checkValid(t, "v >= 1 && v < 2", types.BOOLEAN)
	//
	and := e.(*ast.BinaryOp)
	assert.Equal(t, "&&", and.Name())
	assert.Equal(t, ">=", and.Left().Name())
	assert.Equal(t, "<", and.Right().Name())
}

func TestParse_10(t *testing.T) {
	// Functions without arguments
	e := checkValid(t, "now()", types.NUMBER)
	assert.Equal(t, ast.FUNCTION, e.Kind())
	assert.Equal(t, "now()", e.String())
	//
	checkValid(t, "now() * 2 + now()", types.NUMBER)
}

func TestParse_11(t *testing.T) {
	e := checkValid(t, "getQuantity(0, 1, 2, startTime, endTime)", "Quantity")
	//
	fn := e.(*ast.FunctionCall)
	require.Len(t, fn.Params(), 5)
	assert.Equal(t, "startTime", fn.Params()[3].Value.Name())
	assert.Equal(t, 15, fn.Params()[1].Value.Column())
}

func TestParse_12(t *testing.T) {
	// Member variable of a type
	e := checkValid(t, "math.PI * 2", types.NUMBER)
	assert.Equal(t, "math.PI", e.(*ast.BinaryOp).Left().Name())
	assert.Equal(t, "math.PI * 2", e.String())
}

func TestParse_13(t *testing.T) {
	// Member function of an expression
	e := checkValid(t, "v.abs()", types.NUMBER)
	assert.Equal(t, "Number.abs", e.Name())
	assert.Equal(t, "v.abs()", e.String())
	//
	e = checkValid(t, "(v + 1).abs() * 2", types.NUMBER)
	assert.Equal(t, "(v + 1).abs() * 2", e.String())
}

func TestParse_14(t *testing.T) {
	// Nested calls
	e := checkValid(t, "math.pow(math.abs(v - 1), math.PI)", types.NUMBER)
	assert.Equal(t, "math.pow(math.abs(v - 1), math.PI)", e.String())
}

func TestParse_15(t *testing.T) {
	// Directional acceptance
	checkValid(t, "\"1\" + 2", types.STRING)
	checkValid(t, "2 + \"1\"", types.STRING)
	checkValid(t, "math.sin(0.8 + 0x55) + 'x'", types.STRING)
	checkValid(t, "1 / getQuantity(0, 1, 2, startTime, endTime)", "Quantity")
	checkInvalid(t, "getQuantity(0, 1, 2, startTime, endTime) / 1", SemanticError, 1, 41,
		"type 'Quantity' cannot accept type 'Number' with operator '/'")
}

func TestParse_16(t *testing.T) {
	// Parser is reusable
	p := NewParser(testEnvironment(t))
	//
	_, err := p.Parse("v +")
	require.Error(t, err)
	assert.False(t, p.Finished())
	//
	e, err := p.Parse("v + 1")
	require.NoError(t, err)
	assert.True(t, p.Finished())
	assert.Equal(t, "v + 1", e.String())
}

func TestParse_17(t *testing.T) {
	// Decimal numbers are bracketed when qualifying a member
	e := checkValid(t, "(1).abs()", types.NUMBER)
	assert.Equal(t, "(1).abs()", e.String())
	e = checkValid(t, "(10).abs() + 1", types.NUMBER)
	assert.Equal(t, "(10).abs() + 1", e.String())
	e = checkValid(t, "0x1F.abs()", types.NUMBER)
	assert.Equal(t, "0x1F.abs()", e.String())
}

// ============================================================================
// Invalid
// ============================================================================

func TestParse_Invalid_00(t *testing.T) {
	checkInvalid(t, "foo", SemanticError, 1, 0, "unknown variable 'foo'")
}

func TestParse_Invalid_01(t *testing.T) {
	checkInvalid(t, "(v + 2) * '3'", SemanticError, 1, 8, "type 'Number' cannot accept type 'String' with operator '*'")
}

func TestParse_Invalid_02(t *testing.T) {
	checkInvalid(t, "math.sin(0.8 + \"0x55\")", SemanticError, 1, 13,
		"function 'math.sin' parameter 'value' cannot accept type 'String'")
}

func TestParse_Invalid_03(t *testing.T) {
	checkInvalid(t, "math.pow(1)", SemanticError, 1, 5, "function 'math.pow' cannot accept 1 arguments")
	checkInvalid(t, "math.pow(1, 2, 3)", SemanticError, 1, 5, "function 'math.pow' cannot accept 3 arguments")
}

func TestParse_Invalid_04(t *testing.T) {
	checkInvalid(t, "getMeasureParamValue(1)", SemanticError, 1, 0,
		"function 'getMeasureParamValue' cannot accept 1 arguments")
	// The omittable parameter must still be given
	checkInvalid(t, "getQuantity(0, 1, 2, startTime)", SemanticError, 1, 0,
		"function 'getQuantity' cannot accept 4 arguments")
}

func TestParse_Invalid_05(t *testing.T) {
	checkInvalid(t, "foo(1)", SemanticError, 1, 0, "unknown function 'foo'")
	checkInvalid(t, "math.foo(1)", SemanticError, 1, 5, "type 'math' has no member 'foo'")
	checkInvalid(t, "math.E", SemanticError, 1, 5, "type 'math' has no member 'E'")
	checkInvalid(t, "v.length", SemanticError, 1, 2, "type 'Number' has no member 'length'")
}

func TestParse_Invalid_06(t *testing.T) {
	checkInvalid(t, "math", SemanticError, 1, 0, "'math' is a type, not a value")
	checkInvalid(t, "-math", SemanticError, 1, 1, "'math' is a type, not a value")
	checkInvalid(t, "1 + math", SemanticError, 1, 4, "'math' is a type, not a value")
	checkInvalid(t, "math.abs(math)", SemanticError, 1, 9, "'math' is a type, not a value")
}

func TestParse_Invalid_07(t *testing.T) {
	env := testEnvironment(t)
	env.Variables.Register("math", "", "math", "math", env.Types.Lookup(types.NUMBER))
	//
	_, err := NewParser(env).Parse("math.PI")
	checkError(t, err, SemanticError, 1, 0, "'math' is declared as both a type and a variable")
}

func TestParse_Invalid_08(t *testing.T) {
	checkInvalid(t, "v )", SyntaxError, 1, 2, "unexpected symbol ')'")
	checkInvalid(t, "v = 1", SyntaxError, 1, 2, "unexpected symbol '='")
	checkInvalid(t, "v 1", SyntaxError, 1, 2, "unexpected symbol '1'")
	checkInvalid(t, "(v", SyntaxError, 1, 2, "unexpected end of expression")
	checkInvalid(t, "v +", SyntaxError, 1, 3, "unexpected end of expression")
	checkInvalid(t, "", SyntaxError, 1, 0, "unexpected end of expression")
}

func TestParse_Invalid_09(t *testing.T) {
	// Only the first expression is accepted
	checkInvalid(t, "1\x002", SyntaxError, 1, 2, "incomplete expression")
}

func TestParse_Invalid_10(t *testing.T) {
	checkInvalid(t, "v # 1", LexicalError, 1, 2, "unrecognized character '#'")
	checkInvalid(t, "'abc", LexicalError, 1, 4, "unterminated string")
}

func TestParse_Invalid_11(t *testing.T) {
	checkInvalid(t, "!v", SemanticError, 1, 0, "cannot apply operator '!' to type 'Number'")
	checkInvalid(t, "-'x'", SemanticError, 1, 0, "cannot apply operator '-' to type 'String'")
	checkInvalid(t, "v > 1 && v", SemanticError, 1, 6, "type 'Boolean' cannot accept type 'Number' with operator '&&'")
}

func TestParse_Invalid_12(t *testing.T) {
	checkInvalid(t, "v.abs(1)", SemanticError, 1, 2, "function 'Number.abs' cannot accept 1 arguments")
	checkInvalid(t, "math.abs('x')", SemanticError, 1, 9, "function 'math.abs' parameter 'value' cannot accept type 'String'")
}

// ============================================================================
// Round trip
// ============================================================================

func TestParse_RoundTrip(t *testing.T) {
	corpus := []string{
		"1", "'x'", "v", "-v", "~v", "!(v > 1)", "v - -v + 2", "v - (1 - 2)", "(v - 1) - 2", "v * (1 + 2)",
		"(v + 1) * 2", "v / 2 / 3", "v / (2 / 3)", "-v * 2", "-(v * 2)", "v >= 1 && (v < 2 || v == 4)",
		"(v > 1 && v < 2) || v == 4", "math.sin(0.8 + 0x55)", "math.pow(v, 2) + math.PI", "(v + 1).abs()",
		"getQuantity(0, 1, 2, startTime, endTime) * 2", "'a\"b' + 1", "now() - -now()",
		"(1).abs()", "(10).abs() + 1", "(1.5).abs()", "0x1F.abs()", "(1.5e3).abs() * 2",
	}
	//
	env := testEnvironment(t)
	//
	for _, input := range corpus {
		p := NewParser(env)
		//
		e1, err := p.Parse(input)
		require.NoError(t, err, input)
		//
		e2, err := p.Parse(e1.String())
		require.NoError(t, err, e1.String())
		//
		assert.Equal(t, e1.String(), e2.String(), input)
		assert.Equal(t, e1.Export(), e2.Export(), input)
	}
}

// ============================================================================
// Framework
// ============================================================================

// Construct the default environment, extended with a few extra names.
func testEnvironment(t *testing.T) *catalog.Environment {
	t.Helper()
	//
	env, err := catalog.NewEnvironmentFrom(catalog.Default())
	require.NoError(t, err)
	//
	number := env.Types.Lookup(types.NUMBER)
	env.Functions.Register("now", "", "now", "current time", nil, number)
	env.Functions.Register("absolute value", types.NUMBER, "abs", "absolute value", nil, number)
	env.Variables.Register("pi", "math", "PI", "pi", number)
	//
	return env
}

func checkValid(t *testing.T, input string, result string) ast.Element {
	t.Helper()
	//
	e, err := NewParser(testEnvironment(t)).Parse(input)
	require.NoError(t, err, input)
	require.NotNil(t, e.ResultType())
	assert.Equal(t, result, e.ResultType().Name(), input)
	//
	return e
}

func checkInvalid(t *testing.T, input string, kind ErrorKind, line int, column int, msg string) {
	t.Helper()
	//
	_, err := NewParser(testEnvironment(t)).Parse(input)
	checkError(t, err, kind, line, column, msg)
}

func checkError(t *testing.T, err error, kind ErrorKind, line int, column int, msg string) {
	t.Helper()
	//
	require.Error(t, err)
	//
	perr, ok := err.(*Error)
	require.True(t, ok, "unexpected error %v", err)
	assert.Equal(t, kind, perr.Kind, perr.Error())
	assert.Equal(t, msg, perr.Message)
	assert.Equal(t, line, perr.Line, perr.Error())
	assert.Equal(t, column, perr.Column, perr.Error())
}
