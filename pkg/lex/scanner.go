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

import (
	"fmt"
	"strings"
	"unicode"
)

// EOF is the sentinel character which must be written after the last
// character of the input.
const EOF rune = 0

type state uint8

const (
	idle state = iota
	identifier
	singleQuoted
	doubleQuoted
	leadingZero
	integer
	hexPrefix
	hexDigits
	dot
	fraction
	exponent
	exponentSign
	exponentDigits
)

// WriteResult describes the outcome of writing a single character into the
// scanner.  When Retract is 1, the character just written was not part of the
// completed token and must be written again.  Line and Column give the current
// position of the scanner after any retraction.
type WriteResult struct {
	Ok      bool
	Retract int
	Line    int
	Column  int
	// Completed token (if any)
	Token *Token
	// Reason for failure (if not ok)
	Message string
}

// Scanner is a character-fed state machine which groups characters into
// tokens.  A scanner is not safe for concurrent use.
type Scanner struct {
	state state
	// Column of the most recently written character on the current line.
	column int
	// Column at which the current token started.
	start int
	// Current line, counting from 1.
	line  int
	value strings.Builder
	// Number of runes accumulated into value.
	length int
}

// NewScanner constructs a scanner positioned at the start of line 1.
func NewScanner() *Scanner {
	return &Scanner{state: idle, column: -1, start: -1, line: 1}
}

// Write a single character into the scanner.
func (p *Scanner) Write(ch rune) WriteResult {
	var r = WriteResult{Ok: true}
	//
	p.column++
	//
	switch p.state {
	case idle:
		p.idle(ch, &r)
	case singleQuoted:
		p.quoted(ch, '\'', &r)
	case doubleQuoted:
		p.quoted(ch, '"', &r)
	case identifier:
		if isIdentifierRest(ch) {
			p.append(ch)
		} else {
			p.complete(ID, &r)
		}
	case leadingZero:
		switch {
		case ch == 'x' || ch == 'X':
			p.advance(ch, hexPrefix)
		case isDigit(ch):
			p.advance(ch, integer)
		case ch == '.':
			p.advance(ch, dot)
		default:
			p.complete(NUMBER, &r)
		}
	case integer:
		switch {
		case isDigit(ch):
			p.append(ch)
		case ch == '.':
			p.advance(ch, dot)
		default:
			p.complete(NUMBER, &r)
		}
	case hexPrefix:
		if isHexDigit(ch) {
			p.advance(ch, hexDigits)
		} else {
			p.fail("malformed number: expected hex digit", &r)
		}
	case hexDigits:
		if isHexDigit(ch) {
			p.append(ch)
		} else {
			p.complete(NUMBER, &r)
		}
	case dot:
		if isDigit(ch) {
			p.advance(ch, fraction)
		} else {
			p.fail("malformed number: expected digit after '.'", &r)
		}
	case fraction:
		switch {
		case isDigit(ch):
			p.append(ch)
		case ch == 'e' || ch == 'E':
			p.advance(ch, exponent)
		default:
			p.complete(NUMBER, &r)
		}
	case exponent:
		switch {
		case ch == '+' || ch == '-':
			p.advance(ch, exponentSign)
		case isDigit(ch):
			p.advance(ch, exponentDigits)
		default:
			p.fail("malformed number: expected exponent", &r)
		}
	case exponentSign:
		if isDigit(ch) {
			p.advance(ch, exponentDigits)
		} else {
			p.fail("malformed number: expected exponent", &r)
		}
	case exponentDigits:
		if isDigit(ch) {
			p.append(ch)
		} else {
			p.complete(NUMBER, &r)
		}
	}
	//
	p.column -= r.Retract
	r.Line = p.line
	r.Column = p.column
	//
	return r
}

func (p *Scanner) idle(ch rune, r *WriteResult) {
	switch {
	case ch == '_' || unicode.IsLetter(ch):
		p.begin(ch, identifier)
	case ch == '0':
		p.begin(ch, leadingZero)
	case isDigit(ch):
		p.begin(ch, integer)
	case ch == '\'':
		p.state = singleQuoted
		p.start = p.column
	case ch == '"':
		p.state = doubleQuoted
		p.start = p.column
	case ch == ' ' || ch == '\t' || ch == '\r':
		// skip
	case ch == '\n':
		p.line++
		p.column = -1
	case ch == EOF:
		p.start = p.column
		r.Token = p.done(END)
	default:
		if kind, ok := Punctuation(ch); ok {
			p.begin(ch, idle)
			r.Token = p.done(kind)
		} else {
			p.fail(fmt.Sprintf("unrecognized character '%c'", ch), r)
		}
	}
}

// A closing quote is escaped only when the character immediately before it is
// a backslash.
func (p *Scanner) quoted(ch rune, quote rune, r *WriteResult) {
	switch {
	case ch == quote:
		if !strings.HasSuffix(p.value.String(), "\\") {
			r.Token = p.done(STRING)
			return
		}
		//
		p.append(ch)
	case ch == EOF:
		p.fail("unterminated string", r)
	default:
		p.append(ch)
	}
}

func (p *Scanner) begin(ch rune, next state) {
	p.start = p.column
	p.state = next
	p.append(ch)
}

func (p *Scanner) advance(ch rune, next state) {
	p.state = next
	p.append(ch)
}

func (p *Scanner) append(ch rune) {
	p.value.WriteRune(ch)
	p.length++
}

// Complete the current token on a character which does not belong to it.
func (p *Scanner) complete(kind Kind, r *WriteResult) {
	r.Token = p.done(kind)
	r.Retract = 1
}

func (p *Scanner) fail(msg string, r *WriteResult) {
	p.reset()
	r.Ok = false
	r.Message = msg
}

func (p *Scanner) done(kind Kind) *Token {
	t := &Token{kind, p.value.String(), p.line, p.start, p.length}
	p.reset()
	//
	return t
}

func (p *Scanner) reset() {
	p.value.Reset()
	p.length = 0
	p.state = idle
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isHexDigit(ch rune) bool {
	return isDigit(ch) || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

func isIdentifierRest(ch rune) bool {
	return ch == '_' || unicode.IsLetter(ch) || unicode.IsDigit(ch)
}
