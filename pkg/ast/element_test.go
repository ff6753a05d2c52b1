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
	"encoding/json"
	"testing"

	"github.com/consensys/go-formula/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElement_00(t *testing.T) {
	dict := types.NewDictionary()
	e := binary("+", number(dict, "1"), number(dict, "2"))
	//
	require.NoError(t, e.CheckParams(dict))
	assert.Equal(t, types.NUMBER, e.ResultType().Name())
	assert.Equal(t, "1 + 2", e.String())
}

func TestElement_01(t *testing.T) {
	dict := types.NewDictionary()
	// Directional: String + Number and Number + String
	e1 := binary("+", str(dict, "1"), number(dict, "2"))
	e2 := binary("+", number(dict, "2"), str(dict, "1"))
	//
	require.NoError(t, e1.CheckParams(dict))
	require.NoError(t, e2.CheckParams(dict))
	assert.Equal(t, types.STRING, e1.ResultType().Name())
	assert.Equal(t, types.STRING, e2.ResultType().Name())
}

func TestElement_02(t *testing.T) {
	dict := types.NewDictionary()
	e := binary("*", number(dict, "2"), str(dict, "3"))
	e.SetPosition(1, 8)
	//
	err := e.CheckParams(dict)
	require.Error(t, err)
	assert.Equal(t, "[1:8]: type 'Number' cannot accept type 'String' with operator '*'", err.Error())
	assert.Nil(t, e.ResultType())
}

func TestElement_03(t *testing.T) {
	dict := types.NewDictionary()
	e := NewBinaryOp(mustBinary("-"))
	e.Bind(0, number(dict, "1"))
	//
	err := e.CheckParams(dict)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "operand 'value2' cannot be empty")
}

func TestElement_04(t *testing.T) {
	dict := types.NewDictionary()
	e := unary("!", number(dict, "1"))
	//
	err := e.CheckParams(dict)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot apply operator '!' to type 'Number'")
	//
	e = unary("-", number(dict, "1"))
	require.NoError(t, e.CheckParams(dict))
	assert.Equal(t, types.NUMBER, e.ResultType().Name())
}

func TestElement_05(t *testing.T) {
	dict := types.NewDictionary()
	// An acceptance rule which names an unregistered type
	dict.Lookup(types.STRING).AddAccept("*", types.NUMBER, "Text")
	e := binary("*", str(dict, "a"), number(dict, "2"))
	//
	err := e.CheckParams(dict)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown result type 'Text'")
}

func TestElement_06(t *testing.T) {
	dict := types.NewDictionary()
	f := sin(dict)
	//
	require.Error(t, f.BindArguments(nil))
	require.NoError(t, f.BindArguments([]Element{binary("+", number(dict, "0.8"), number(dict, "0x55"))}))
	require.NoError(t, f.CheckParams(dict))
	//
	f.SetQualifier("math")
	assert.Equal(t, "math.sin(0.8 + 0x55)", f.String())
	assert.Equal(t, "math.sin", f.Name())
}

func TestElement_07(t *testing.T) {
	dict := types.NewDictionary()
	f := sin(dict)
	arg := binary("+", number(dict, "0.8"), str(dict, "0x55"))
	arg.SetPosition(1, 13)
	//
	require.NoError(t, f.BindArguments([]Element{arg}))
	//
	err := f.CheckParams(dict)
	require.Error(t, err)
	assert.Equal(t, "[1:13]: function 'math.sin' parameter 'value' cannot accept type 'String'", err.Error())
}

func TestElement_08(t *testing.T) {
	dict := types.NewDictionary()
	f := sin(dict)
	f.SetPosition(2, 3)
	//
	err := f.CheckParams(dict)
	require.Error(t, err)
	assert.Equal(t, "[2:3]: function 'math.sin' parameter 'value' cannot be empty", err.Error())
	//
	err = f.BindArguments([]Element{number(dict, "1"), number(dict, "2")})
	require.Error(t, err)
	assert.Equal(t, "[2:3]: function 'math.sin' cannot accept 2 arguments", err.Error())
}

func TestElement_09(t *testing.T) {
	dict := types.NewDictionary()
	f := NewFunctionCall("f", "", "f", "", []Param{NewParam("x", "x", "Unit")}, dict.Lookup(types.NUMBER))
	require.NoError(t, f.BindArguments([]Element{number(dict, "1")}))
	//
	err := f.CheckParams(dict)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "function 'f' parameter 'x' has unknown type 'Unit'")
}

func TestElement_10(t *testing.T) {
	dict := types.NewDictionary()
	f := sin(dict)
	require.NoError(t, f.BindArguments([]Element{number(dict, "1")}))
	// Clones have fresh slots
	g := f.Clone()
	assert.Nil(t, g.Params()[0].Value)
	assert.NotNil(t, f.Params()[0].Value)
	assert.Equal(t, f.Name(), g.Name())
}

func TestElement_11(t *testing.T) {
	dict := types.NewDictionary()
	v := NewVariableRef("current value", "", "v", "current value", dict.Lookup(types.NUMBER))
	w := v.Clone()
	w.SetQualifier("m")
	//
	assert.Equal(t, "v", v.String())
	assert.Equal(t, "m.v", w.String())
	assert.Equal(t, VARIABLE, w.Kind())
	assert.Empty(t, w.Params())
	assert.NoError(t, w.CheckParams(dict))
}

func TestRender_00(t *testing.T) {
	dict := types.NewDictionary()
	v := variable(dict, "v")
	// v - -v + 2
	e := binary("+", binary("-", v, unary("-", variable(dict, "v"))), number(dict, "2"))
	//
	assert.Equal(t, "v - -v + 2", e.String())
}

func TestRender_01(t *testing.T) {
	dict := types.NewDictionary()
	// (v + 2) * 3
	e := binary("*", binary("+", variable(dict, "v"), number(dict, "2")), number(dict, "3"))
	//
	assert.Equal(t, "(v + 2) * 3", e.String())
}

func TestRender_02(t *testing.T) {
	dict := types.NewDictionary()
	// a - (b - c) must keep its brackets, whilst (a - b) - c need not.
	e1 := binary("-", variable(dict, "a"), binary("-", variable(dict, "b"), variable(dict, "c")))
	e2 := binary("-", binary("-", variable(dict, "a"), variable(dict, "b")), variable(dict, "c"))
	//
	assert.Equal(t, "a - (b - c)", e1.String())
	assert.Equal(t, "a - b - c", e2.String())
}

func TestRender_03(t *testing.T) {
	dict := types.NewDictionary()
	// !(a && b), -(1), ~f()
	e1 := unary("!", binary("&&", variable(dict, "a"), variable(dict, "b")))
	e2 := unary("-", number(dict, "1"))
	e3 := unary("~", NewFunctionCall("f", "", "f", "", nil, dict.Lookup(types.NUMBER)))
	//
	assert.Equal(t, "!(a && b)", e1.String())
	assert.Equal(t, "-1", e2.String())
	assert.Equal(t, "~f()", e3.String())
}

func TestRender_04(t *testing.T) {
	dict := types.NewDictionary()
	// a && b || c, and a || (b && c) renders without brackets.
	e1 := binary("||", binary("&&", variable(dict, "a"), variable(dict, "b")), variable(dict, "c"))
	e2 := binary("||", variable(dict, "a"), binary("&&", variable(dict, "b"), variable(dict, "c")))
	e3 := binary("&&", binary("||", variable(dict, "a"), variable(dict, "b")), variable(dict, "c"))
	//
	assert.Equal(t, "a && b || c", e1.String())
	assert.Equal(t, "a || b && c", e2.String())
	assert.Equal(t, "(a || b) && c", e3.String())
}

func TestRender_05(t *testing.T) {
	dict := types.NewDictionary()
	//
	assert.Equal(t, `"abc"`, str(dict, "abc").String())
	assert.Equal(t, `'say "hi"'`, str(dict, `say "hi"`).String())
	assert.Equal(t, `"say \"hi\""`, str(dict, `say \"hi\"`).String())
	assert.Equal(t, "0x1F", number(dict, "0x1F").String())
}

func TestRender_06(t *testing.T) {
	dict := types.NewDictionary()
	// Unbound operands render as empty slots
	op, _ := UnaryOperator("-")
	assert.Equal(t, "-", NewUnaryOp(op).String())
	//
	e := NewBinaryOp(mustBinary("+"))
	assert.Equal(t, " + ", e.String())
	e.Bind(0, number(dict, "1"))
	assert.Equal(t, "1 + ", e.String())
	//
	e = NewBinaryOp(mustBinary("*"))
	e.Bind(1, binary("+", number(dict, "1"), number(dict, "2")))
	assert.Equal(t, " * (1 + 2)", e.String())
}

func TestPriority_00(t *testing.T) {
	assert.True(t, Check("*", "+"))
	assert.True(t, Check("+", "-"))
	assert.False(t, Check("+", "*"))
	assert.True(t, Check("&&", "||"))
	assert.False(t, Check("||", "&&"))
	// Unknown names bind most tightly
	assert.True(t, Check("v", "+"))
	assert.False(t, Check("+", "v"))
	assert.False(t, Check("v", "w"))
	//
	assert.False(t, Precedes("+", "-"))
	assert.True(t, Precedes("*", "-"))
	//
	p, ok := Priority("&&")
	assert.True(t, ok)
	assert.Equal(t, uint(12), p)
}

func TestExport_00(t *testing.T) {
	dict := types.NewDictionary()
	e := binary("+", number(dict, "1"), str(dict, "x"))
	require.NoError(t, e.CheckParams(dict))
	//
	bytes, err := ToJson(e)
	require.NoError(t, err)
	//
	var doc map[string]any
	require.NoError(t, json.Unmarshal(bytes, &doc))
	assert.Equal(t, float64(BINARY), doc["type"])
	assert.Equal(t, "+", doc["name"])
	assert.Equal(t, "add", doc["displayName"])
	assert.Equal(t, "addition", doc["hint"])
	assert.Equal(t, "String", doc["resultType"])
	//
	params := doc["params"].([]any)
	require.Len(t, params, 2)
	lhs := params[0].(map[string]any)
	assert.Equal(t, "value1", lhs["displayName"])
	assert.Equal(t, "", lhs["type"])
	value := lhs["value"].(map[string]any)
	assert.Equal(t, float64(LITERAL), value["type"])
	assert.Equal(t, "Number", value["resultType"])
	assert.Equal(t, []any{}, value["params"])
}

func TestExport_01(t *testing.T) {
	dict := types.NewDictionary()
	f := sin(dict)
	// Unbound slots have no value
	x := f.Export()
	require.Len(t, x.Params, 1)
	assert.Nil(t, x.Params[0].Value)
	assert.Equal(t, types.NUMBER, x.Params[0].Type)
	assert.Equal(t, FUNCTION, x.Type)
}

func TestWalk_00(t *testing.T) {
	var names []string
	//
	dict := types.NewDictionary()
	e := binary("+", unary("-", variable(dict, "v")), number(dict, "2"))
	//
	Walk(e, func(e Element) bool {
		names = append(names, e.Name())
		return e.Kind() != UNARY
	})
	//
	assert.Equal(t, []string{"+", "-", "2"}, names)
}

// ==================================================================
// Framework
// ==================================================================

func number(dict *types.Dictionary, text string) Element {
	return NewNumberLiteral(text, dict.Lookup(types.NUMBER))
}

func str(dict *types.Dictionary, text string) Element {
	return NewStringLiteral(text, dict.Lookup(types.STRING))
}

func variable(dict *types.Dictionary, name string) Element {
	return NewVariableRef(name, "", name, name, dict.Lookup(types.NUMBER))
}

func sin(dict *types.Dictionary) *FunctionCall {
	params := []Param{NewParam("value", "value", types.NUMBER)}
	return NewFunctionCall("sine", "math", "sin", "sine function", params, dict.Lookup(types.NUMBER))
}

func mustBinary(symbol string) Operator {
	op, ok := BinaryOperator(symbol)
	if !ok {
		panic("unknown operator " + symbol)
	}
	//
	return op
}

func binary(symbol string, lhs Element, rhs Element) *BinaryOp {
	e := NewBinaryOp(mustBinary(symbol))
	e.Bind(0, lhs)
	e.Bind(1, rhs)
	//
	return e
}

func unary(symbol string, operand Element) *UnaryOp {
	op, ok := UnaryOperator(symbol)
	if !ok {
		panic("unknown operator " + symbol)
	}
	//
	e := NewUnaryOp(op)
	e.Bind(0, operand)
	//
	return e
}
