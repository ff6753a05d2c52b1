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

// QualifiedName constructs the registered name of a member of a class, or just
// the member name when the class is empty (i.e. for globals).
func QualifiedName(class string, member string) string {
	if class == "" {
		return member
	}
	//
	return class + "." + member
}

// FunctionCall is a call to a registered function.  Its name is the qualified
// name (e.g. "math.sin"), and its parameters are the declared parameters of
// the function.
type FunctionCall struct {
	node
	class  string
	member string
	// Text rendered before the member name (if any).
	qualifier string
}

// NewFunctionCall constructs a function with the given parameter slots and
// result type.
func NewFunctionCall(displayName string, class string, member string, hint string, params []Param,
	result *types.Class) *FunctionCall {
	//
	if params == nil {
		params = []Param{}
	}
	//
	return &FunctionCall{node{
		name:        QualifiedName(class, member),
		displayName: displayName,
		hint:        hint,
		resultType:  result,
		params:      params,
	}, class, member, ""}
}

// Kind implementation for Element interface.
func (p *FunctionCall) Kind() Kind {
	return FUNCTION
}

// Class returns the class this function is a member of (empty for globals).
func (p *FunctionCall) Class() string {
	return p.class
}

// Member returns the unqualified name of this function.
func (p *FunctionCall) Member() string {
	return p.member
}

// Qualifier returns the text rendered before the member name.
func (p *FunctionCall) Qualifier() string {
	return p.qualifier
}

// SetQualifier sets the text rendered before the member name.  This affects
// rendering only.
func (p *FunctionCall) SetQualifier(qualifier string) {
	p.qualifier = qualifier
}

// Clone returns a copy of this function whose parameter slots are all unbound.
func (p *FunctionCall) Clone() *FunctionCall {
	params := make([]Param, len(p.params))
	//
	for i, param := range p.params {
		param.Value = nil
		params[i] = param
	}
	//
	return NewFunctionCall(p.displayName, p.class, p.member, p.hint, params, p.resultType)
}

// BindArguments binds each argument into the corresponding parameter slot.
// The number of arguments must match the number of parameters exactly.
func (p *FunctionCall) BindArguments(args []Element) error {
	if len(args) != len(p.params) {
		return p.errorf("function '%s' cannot accept %d arguments", p.name, len(args))
	}
	//
	for i, arg := range args {
		p.params[i].Value = arg
	}
	//
	return nil
}

// CheckParams implementation for Element interface.  Every argument must be
// bound and must have exactly the declared type of its parameter.
func (p *FunctionCall) CheckParams(dict *types.Dictionary) error {
	for _, param := range p.params {
		arg := param.Value
		//
		if arg == nil {
			return p.errorf("function '%s' parameter '%s' cannot be empty", p.name, param.DisplayName)
		} else if err := arg.CheckParams(dict); err != nil {
			return err
		}
		//
		expected := dict.Lookup(param.Type)
		//
		if expected == nil {
			return errorAt(arg, "function '%s' parameter '%s' has unknown type '%s'", p.name, param.DisplayName,
				param.Type)
		} else if actual := arg.ResultType(); actual == nil || actual.Name() != expected.Name() {
			return errorAt(arg, "function '%s' parameter '%s' cannot accept type '%s'", p.name, param.DisplayName,
				typeName(actual))
		}
	}
	//
	return nil
}

// Export implementation for Element interface.
func (p *FunctionCall) Export() *Export {
	return export(p)
}

func (p *FunctionCall) String() string {
	var builder strings.Builder
	//
	if p.qualifier != "" {
		builder.WriteString(p.qualifier)
		builder.WriteString(".")
	}
	//
	builder.WriteString(p.member)
	builder.WriteString("(")
	//
	for i, param := range p.params {
		if i != 0 {
			builder.WriteString(", ")
		}
		//
		if param.Value != nil {
			builder.WriteString(param.Value.String())
		}
	}
	//
	builder.WriteString(")")
	//
	return builder.String()
}

func typeName(t *types.Class) string {
	if t == nil {
		return ""
	}
	//
	return t.Name()
}
