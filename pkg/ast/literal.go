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
	"fmt"
	"strings"

	"github.com/consensys/go-formula/pkg/types"
)

// Literal is a number or string constant.  Its name is the literal text, which
// for strings excludes the enclosing quotes.
type Literal struct {
	node
	quoted bool
}

// NewNumberLiteral constructs a numeric literal of the given type.
func NewNumberLiteral(text string, class *types.Class) *Literal {
	return &Literal{node{name: text, displayName: text, hint: "number literal " + text, resultType: class}, false}
}

// NewStringLiteral constructs a string literal of the given type.
func NewStringLiteral(text string, class *types.Class) *Literal {
	return &Literal{node{name: text, displayName: text, hint: "string literal " + text, resultType: class}, true}
}

// Kind implementation for Element interface.
func (p *Literal) Kind() Kind {
	return LITERAL
}

// IsString determines whether this is a string literal.
func (p *Literal) IsString() bool {
	return p.quoted
}

// CheckParams implementation for Element interface.  Literals have no
// parameters, and their type is fixed on construction.
func (p *Literal) CheckParams(dict *types.Dictionary) error {
	return nil
}

// Export implementation for Element interface.
func (p *Literal) Export() *Export {
	return export(p)
}

func (p *Literal) String() string {
	if !p.quoted {
		return p.name
	}
	//
	q := quoteFor(p.name)
	//
	return fmt.Sprintf("%c%s%c", q, p.name, q)
}

// Select a quote character which reproduces the given (unquoted) text.  Any
// unescaped double quote means the original was single quoted.
func quoteFor(text string) rune {
	for i := strings.IndexByte(text, '"'); i >= 0; {
		if i == 0 || text[i-1] != '\\' {
			return '\''
		}
		//
		j := strings.IndexByte(text[i+1:], '"')
		if j < 0 {
			break
		}
		//
		i = i + 1 + j
	}
	//
	return '"'
}
