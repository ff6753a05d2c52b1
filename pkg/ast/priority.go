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

// Priority levels of operators, where lower binds more tightly.
var priorities = map[string]uint{
	"()": 1, "[]": 1, ".": 1,
	"!": 3, "~": 3,
	"*": 4, "/": 4, "%": 4,
	"-": 5, "+": 5,
	"<<": 6, ">>": 6,
	">": 7, ">=": 7, "<": 7, "<=": 7,
	"==": 8, "!=": 8,
	"&":  9,
	"^":  10,
	"|":  11,
	"&&": 12,
	"||": 13,
}

// Priority returns the priority level of an operator, where lower levels bind
// more tightly.
func Priority(op string) (uint, bool) {
	p, ok := priorities[op]
	return p, ok
}

// Check determines whether op1 binds at least as tightly as op2.  A name which
// is not an operator is considered to bind more tightly than any operator.
func Check(op1 string, op2 string) bool {
	return compare(op1, op2, func(p1, p2 uint) bool { return p1 <= p2 })
}

// Precedes determines whether op1 binds strictly more tightly than op2, with
// unknown names treated as for Check.
func Precedes(op1 string, op2 string) bool {
	return compare(op1, op2, func(p1, p2 uint) bool { return p1 < p2 })
}

func compare(op1 string, op2 string, fn func(uint, uint) bool) bool {
	p1, ok1 := priorities[op1]
	p2, ok2 := priorities[op2]
	//
	switch {
	case !ok1 && !ok2:
		return false
	case !ok1:
		return true
	case !ok2:
		return false
	}
	//
	return fn(p1, p2)
}
