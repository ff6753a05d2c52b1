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
package lex

import "fmt"

// Kind identifies the terminal category of a token.
type Kind uint8

// END signals the end of input.
const END Kind = 0

// ID is an identifier (e.g. "v", "math" or "getQuantity").
const ID Kind = 1

// NUMBER is a decimal, fractional or hexadecimal literal.
const NUMBER Kind = 2

// STRING is a single or double quoted literal.
const STRING Kind = 3

// Punctuation.
const (
	ADD Kind = iota + 4
	SUB
	MUL
	DIV
	REM
	LT
	GT
	EQ
	BANG
	AMP
	BAR
	CARET
	TILDE
	DOT
	COMMA
	LPAREN
	RPAREN
	SEMICOLON
)

// NUM_KINDS gives the number of distinct kinds.
const NUM_KINDS = uint(SEMICOLON) + 1

var symbols = [NUM_KINDS]string{
	"<end>", "identifier", "number", "string",
	"+", "-", "*", "/", "%", "<", ">", "=", "!", "&", "|", "^", "~", ".", ",", "(", ")", ";",
}

func (k Kind) String() string {
	if uint(k) < NUM_KINDS {
		return symbols[k]
	}
	//
	return fmt.Sprintf("kind(%d)", uint(k))
}

// Punctuation maps a single character onto its punctuation kind.
func Punctuation(ch rune) (Kind, bool) {
	switch ch {
	case '+':
		return ADD, true
	case '-':
		return SUB, true
	case '*':
		return MUL, true
	case '/':
		return DIV, true
	case '%':
		return REM, true
	case '<':
		return LT, true
	case '>':
		return GT, true
	case '=':
		return EQ, true
	case '!':
		return BANG, true
	case '&':
		return AMP, true
	case '|':
		return BAR, true
	case '^':
		return CARET, true
	case '~':
		return TILDE, true
	case '.':
		return DOT, true
	case ',':
		return COMMA, true
	case '(':
		return LPAREN, true
	case ')':
		return RPAREN, true
	case ';':
		return SEMICOLON, true
	}
	//
	return END, false
}

// Token is a classified chunk of source text.  Lines count from 1, whilst
// columns count from 0 within the line.  For strings, the text excludes the
// enclosing quotes.
type Token struct {
	Kind   Kind
	Text   string
	Line   int
	Column int
	Length int
}

func (t Token) String() string {
	switch t.Kind {
	case END:
		return "<end>"
	case STRING:
		return fmt.Sprintf("'%s'", t.Text)
	}
	//
	return t.Text
}
