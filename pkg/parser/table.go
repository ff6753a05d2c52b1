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
	"errors"
	"fmt"
	"slices"

	"github.com/consensys/go-formula/pkg/lex"
)

// Nonterminal identifies a symbol produced by a reduction.
type Nonterminal uint8

// S is the start symbol.
const S Nonterminal = 0

// E is an expression.
const E Nonterminal = 1

// OBJ is an identifier, number or string operand.
const OBJ Nonterminal = 2

// FUNC is a call, which may turn out to be either global or a member.
const FUNC Nonterminal = 3

// FUNC_NAME is the name of a call.
const FUNC_NAME Nonterminal = 4

// ARGS is a non-empty argument list.
const ARGS Nonterminal = 5

var nonterminals = []string{"S", "E", "OBJ", "FUNC", "FUNC_NAME", "ARGS"}

func (n Nonterminal) String() string {
	if int(n) < len(nonterminals) {
		return nonterminals[n]
	}
	//
	return fmt.Sprintf("N%d", uint(n))
}

// StateAccept is the pseudo state reached by shifting the end of input in an
// accepting context.
const StateAccept = ^uint(0)

// ActionKind distinguishes shift actions from reduce actions.
type ActionKind uint8

// SHIFT pushes the leading token and moves to the target state.
const SHIFT ActionKind = 1

// REDUCE applies the target production.
const REDUCE ActionKind = 2

// Action is a single entry in the action table of a state.  The target is a
// state identifier for shifts, and a production identifier for reductions.
type Action struct {
	Kind   ActionKind
	Target uint
}

func (a Action) String() string {
	switch {
	case a.Kind == SHIFT && a.Target == StateAccept:
		return "accept"
	case a.Kind == SHIFT:
		return fmt.Sprintf("shift %d", a.Target)
	default:
		return fmt.Sprintf("reduce %d", a.Target)
	}
}

// Key identifies the lookahead an action applies to.  A combined key matches
// the leading token together with the token following it.  A single key
// matches the leading token alone.
type Key struct {
	Leading   lex.Kind
	Following lex.Kind
	Combined  bool
}

// Rule is an action together with the following tokens for which a single key
// action must not apply.
type Rule struct {
	Action
	Exclude []lex.Kind
}

// Status reports the outcome of looking up an action.
type Status uint8

const (
	// FOUND indicates an action applies.
	FOUND Status = iota
	// MISSING indicates no action applies to the leading token.
	MISSING
	// EXCLUDED indicates the only applicable action excludes the following
	// token.
	EXCLUDED
)

// State is a state of the automaton, which determines an action for each
// lookahead and a successor state for each nonterminal.
type State struct {
	ID      uint
	actions map[Key]Rule
	gotos   map[Nonterminal]uint
}

func newState(id uint) *State {
	return &State{id, make(map[Key]Rule), make(map[Nonterminal]uint)}
}

// Lookup the action for a leading token and (optionally) a following token.
// The combined key takes priority over the single key.
func (s *State) Lookup(leading lex.Kind, following *lex.Kind) (Action, Status) {
	if following != nil {
		if r, ok := s.actions[Key{leading, *following, true}]; ok {
			return r.Action, FOUND
		}
	}
	//
	r, ok := s.actions[Key{leading, 0, false}]
	//
	if !ok {
		return Action{}, MISSING
	} else if following != nil && slices.Contains(r.Exclude, *following) {
		return Action{}, EXCLUDED
	}
	//
	return r.Action, FOUND
}

// Goto returns the successor state after reducing to a given nonterminal.
func (s *State) Goto(n Nonterminal) (uint, bool) {
	target, ok := s.gotos[n]
	return target, ok
}

// Actions returns the action table of this state.
func (s *State) Actions() map[Key]Rule {
	return s.actions
}

// Gotos returns the goto table of this state.
func (s *State) Gotos() map[Nonterminal]uint {
	return s.gotos
}

func (s *State) add(key Key, rule Rule) {
	if _, ok := s.actions[key]; ok {
		panic(fmt.Sprintf("state %d has conflicting actions for %v", s.ID, key))
	}
	//
	s.actions[key] = rule
}

func (s *State) shift(leading lex.Kind, target *State, exclude ...lex.Kind) {
	s.add(Key{leading, 0, false}, Rule{Action{SHIFT, target.ID}, exclude})
}

func (s *State) shift2(leading lex.Kind, following lex.Kind, target *State) {
	s.add(Key{leading, following, true}, Rule{Action{SHIFT, target.ID}, nil})
}

func (s *State) accept(leading lex.Kind) {
	s.add(Key{leading, 0, false}, Rule{Action{SHIFT, StateAccept}, nil})
}

func (s *State) reduce(leading lex.Kind, production uint, exclude ...lex.Kind) {
	s.add(Key{leading, 0, false}, Rule{Action{REDUCE, production}, exclude})
}

func (s *State) reduce2(leading lex.Kind, following lex.Kind, production uint) {
	s.add(Key{leading, following, true}, Rule{Action{REDUCE, production}, nil})
}

func (s *State) jump(n Nonterminal, target *State) {
	s.gotos[n] = target.ID
}

// Table is the complete (immutable) description of the automaton.
type Table struct {
	states      []*State
	productions []*Production
}

// State returns the state with the given identifier.
func (t *Table) State(id uint) *State {
	return t.states[id]
}

// States returns the number of states.
func (t *Table) States() uint {
	return uint(len(t.states))
}

// Production returns the production with the given identifier, or nil if there
// is none.
func (t *Table) Production(id uint) *Production {
	if id == 0 || id >= uint(len(t.productions)) {
		return nil
	}
	//
	return t.productions[id]
}

// Productions returns the number of productions.
func (t *Table) Productions() uint {
	return uint(len(t.productions) - 1)
}

// Validate checks that every shift and goto target is a known state, that
// every reduction applies a known production, that no excluded token clashes
// with a combined key, and that every state is reachable from state 0.
func (t *Table) Validate() error {
	var errs []error
	//
	n := uint(len(t.states))
	//
	for i, s := range t.states {
		if s.ID != uint(i) {
			errs = append(errs, fmt.Errorf("state %d has identifier %d", i, s.ID))
		}
		//
		for key, rule := range s.actions {
			switch {
			case rule.Kind == SHIFT && rule.Target != StateAccept && rule.Target >= n:
				errs = append(errs, fmt.Errorf("state %d shifts %v to unknown state %d", s.ID, key, rule.Target))
			case rule.Kind == REDUCE && t.Production(rule.Target) == nil:
				errs = append(errs, fmt.Errorf("state %d reduces %v by unknown production %d", s.ID, key, rule.Target))
			case rule.Kind != SHIFT && rule.Kind != REDUCE:
				errs = append(errs, fmt.Errorf("state %d has invalid action for %v", s.ID, key))
			}
			//
			if key.Combined && len(rule.Exclude) > 0 {
				errs = append(errs, fmt.Errorf("state %d excludes tokens from combined key %v", s.ID, key))
			}
		}
		//
		for nt, target := range s.gotos {
			if target >= n {
				errs = append(errs, fmt.Errorf("state %d goes to unknown state %d on %s", s.ID, target, nt))
			}
		}
	}
	//
	for i, p := range t.productions[1:] {
		if p == nil || p.ID != uint(i+1) {
			errs = append(errs, fmt.Errorf("production %d is missing", i+1))
		}
	}
	//
	if len(errs) == 0 {
		for _, id := range t.Unreachable() {
			errs = append(errs, fmt.Errorf("state %d is unreachable", id))
		}
	}
	//
	return errors.Join(errs...)
}

// Unreachable returns the identifiers of all states which cannot be reached
// from state 0 through shifts and gotos.
func (t *Table) Unreachable() []uint {
	var (
		visited  = make([]bool, len(t.states))
		worklist = []uint{0}
		missing  []uint
	)
	//
	for len(worklist) > 0 {
		id := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		//
		if id >= uint(len(t.states)) || visited[id] {
			continue
		}
		//
		visited[id] = true
		//
		for _, rule := range t.states[id].actions {
			if rule.Kind == SHIFT && rule.Target != StateAccept {
				worklist = append(worklist, rule.Target)
			}
		}
		//
		for _, target := range t.states[id].gotos {
			worklist = append(worklist, target)
		}
	}
	//
	for i, v := range visited {
		if !v {
			missing = append(missing, uint(i))
		}
	}
	//
	return missing
}
