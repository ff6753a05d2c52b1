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
	"github.com/consensys/go-formula/pkg/types"
)

// VariableRef is a reference to a registered variable.
type VariableRef struct {
	node
	class     string
	member    string
	qualifier string
}

// NewVariableRef constructs a reference to a variable of a given type.
func NewVariableRef(displayName string, class string, member string, hint string,
	result *types.Class) *VariableRef {
	//
	return &VariableRef{node{
		name:        QualifiedName(class, member),
		displayName: displayName,
		hint:        hint,
		resultType:  result,
		params:      []Param{},
	}, class, member, ""}
}

// Kind implementation for Element interface.
func (p *VariableRef) Kind() Kind {
	return VARIABLE
}

// Class returns the class this variable is a member of (empty for globals).
func (p *VariableRef) Class() string {
	return p.class
}

// Member returns the unqualified name of this variable.
func (p *VariableRef) Member() string {
	return p.member
}

// Qualifier returns the text rendered before the member name.
func (p *VariableRef) Qualifier() string {
	return p.qualifier
}

// SetQualifier sets the text rendered before the member name.
func (p *VariableRef) SetQualifier(qualifier string) {
	p.qualifier = qualifier
}

// Clone returns a copy of this variable reference.
func (p *VariableRef) Clone() *VariableRef {
	return NewVariableRef(p.displayName, p.class, p.member, p.hint, p.resultType)
}

// CheckParams implementation for Element interface.
func (p *VariableRef) CheckParams(dict *types.Dictionary) error {
	return nil
}

// Export implementation for Element interface.
func (p *VariableRef) Export() *Export {
	return export(p)
}

func (p *VariableRef) String() string {
	if p.qualifier != "" {
		return p.qualifier + "." + p.member
	}
	//
	return p.member
}
