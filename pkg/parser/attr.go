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
	"github.com/consensys/go-formula/pkg/lex"
)

// Attr is the attribute of a symbol on the parser stack.  Which fields are
// populated depends on the symbol:
//
//   - terminals carry their Text and Kind;
//   - expressions carry an Elem or, for the name of a type used to qualify a
//     member, a TypeName;
//   - calls carry the Member name and Args, along with the resolved global
//     function (or the error from resolving it) in Elem and Err;
//   - argument lists carry Args.
//
// All attributes carry the position they are reported at.
type Attr struct {
	Elem     ast.Element
	Text     string
	Kind     lex.Kind
	TypeName string
	Member   string
	Args     []ast.Element
	Err      error
	Line     int
	Column   int
}

func terminal(t lex.Token) *Attr {
	return &Attr{Text: t.Text, Kind: t.Kind, Line: t.Line, Column: t.Column}
}

func element(e ast.Element, at *Attr) *Attr {
	return &Attr{Elem: e, Line: at.Line, Column: at.Column}
}
