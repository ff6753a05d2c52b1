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
package types

import (
	"sort"
)

// Accept describes a single acceptance rule of a class: under the given
// operator, the class accepts an operand of type Other and produces a value of
// type Result.  An empty Other identifies a unary operator.
type Accept struct {
	Operator string
	Other    string
	Result   string
}

// Class is a named type together with its (directional) acceptance matrix.
// That is, for each operator, the set of other types this class can be
// combined with and the resulting type.  Observe that A accepting B under some
// operator says nothing about B accepting A.
type Class struct {
	name string
	// operator -> other type -> result type
	accepts map[string]map[string]string
}

// NewClass constructs a class with a given name and an initial set of rules.
func NewClass(name string, rules ...Accept) *Class {
	c := &Class{name, make(map[string]map[string]string)}
	//
	for _, r := range rules {
		c.AddAccept(r.Operator, r.Other, r.Result)
	}
	//
	return c
}

// Name returns the name of this class.
func (p *Class) Name() string {
	return p.name
}

// AddAccept registers that this class accepts a value of type other under the
// given operator, producing a value of type result.  Any existing rule for the
// same operator and other type is replaced.
func (p *Class) AddAccept(operator string, other string, result string) {
	m, ok := p.accepts[operator]
	if !ok {
		m = make(map[string]string)
		p.accepts[operator] = m
	}
	//
	m[other] = result
}

// RemoveAccept removes the rule for a given operator and other type (if it
// exists).
func (p *Class) RemoveAccept(operator string, other string) {
	if m, ok := p.accepts[operator]; ok {
		delete(m, other)
	}
}

// IsAccept determines whether this class accepts a value of type other under
// the given operator.  If so, the name of the resulting type is returned.
// Unary operators are queried with an empty other type.
func (p *Class) IsAccept(operator string, other string) (string, bool) {
	if m, ok := p.accepts[operator]; ok {
		r, ok := m[other]
		return r, ok
	}
	//
	return "", false
}

// Accepts returns all rules of this class, sorted by operator and then by the
// other type.
func (p *Class) Accepts() []Accept {
	var rules []Accept
	//
	for op, m := range p.accepts {
		for other, result := range m {
			rules = append(rules, Accept{op, other, result})
		}
	}
	//
	sort.Slice(rules, func(i, j int) bool {
		if rules[i].Operator != rules[j].Operator {
			return rules[i].Operator < rules[j].Operator
		}
		//
		return rules[i].Other < rules[j].Other
	})
	//
	return rules
}

func (p *Class) String() string {
	return p.name
}
