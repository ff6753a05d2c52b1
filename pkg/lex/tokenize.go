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

// Error is a lexical error at a given position.
type Error struct {
	Line    int
	Column  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("[%d:%d]: %s", e.Line, e.Column, e.Message)
}

// Tokenize splits a string into tokens, terminated by a single END token.
// Scanning stops at the first error.
func Tokenize(text string) ([]Token, error) {
	var (
		scanner = NewScanner()
		chars   = append([]rune(text), EOF)
		tokens  []Token
	)
	//
	for i := 0; i < len(chars); i++ {
		r := scanner.Write(chars[i])
		//
		if !r.Ok {
			return nil, &Error{r.Line, r.Column, r.Message}
		} else if r.Token != nil {
			tokens = append(tokens, *r.Token)
		}
		//
		i -= r.Retract
	}
	//
	return tokens, nil
}
