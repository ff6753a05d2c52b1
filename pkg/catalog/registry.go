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
package catalog

import (
	"sort"

	"github.com/consensys/go-formula/pkg/ast"
	"github.com/consensys/go-formula/pkg/types"
)

// Functions is a registry of function templates keyed by their qualified name
// (e.g. "math.sin", or "getQuantity" for globals).  Registration happens once,
// before any parse begins; afterwards the registry is only read.
type Functions struct {
	definitions map[string]*ast.FunctionCall
}

// NewFunctions constructs an empty function registry.
func NewFunctions() *Functions {
	return &Functions{make(map[string]*ast.FunctionCall)}
}

// Register a function template, replacing any existing template with the same
// qualified name.
func (p *Functions) Register(displayName string, class string, member string, hint string, params []ast.Param,
	result *types.Class) {
	//
	f := ast.NewFunctionCall(displayName, class, member, hint, params, result)
	p.definitions[f.Name()] = f
}

// Create returns a fresh copy of the template registered for the given class
// and member, or nil if there is none.  The copy has its own (unbound)
// parameter slots, hence binding arguments never affects the template.
func (p *Functions) Create(class string, member string) *ast.FunctionCall {
	if f, ok := p.definitions[ast.QualifiedName(class, member)]; ok {
		return f.Clone()
	}
	//
	return nil
}

// Names returns the qualified names of all registered functions, sorted.
func (p *Functions) Names() []string {
	return sortedKeys(p.definitions)
}

// Variables is a registry of variable templates keyed by their qualified
// name.
type Variables struct {
	definitions map[string]*ast.VariableRef
}

// NewVariables constructs an empty variable registry.
func NewVariables() *Variables {
	return &Variables{make(map[string]*ast.VariableRef)}
}

// Register a variable template, replacing any existing template with the same
// qualified name.
func (p *Variables) Register(displayName string, class string, member string, hint string, result *types.Class) {
	v := ast.NewVariableRef(displayName, class, member, hint, result)
	p.definitions[v.Name()] = v
}

// Create returns a fresh copy of the template registered for the given class
// and member, or nil if there is none.
func (p *Variables) Create(class string, member string) *ast.VariableRef {
	if v, ok := p.definitions[ast.QualifiedName(class, member)]; ok {
		return v.Clone()
	}
	//
	return nil
}

// Names returns the qualified names of all registered variables, sorted.
func (p *Variables) Names() []string {
	return sortedKeys(p.definitions)
}

func sortedKeys[T any](m map[string]T) []string {
	keys := make([]string, 0, len(m))
	//
	for k := range m {
		keys = append(keys, k)
	}
	//
	sort.Strings(keys)
	//
	return keys
}
