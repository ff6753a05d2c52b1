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

// NUMBER is the name of the builtin numeric type.
const NUMBER = "Number"

// STRING is the name of the builtin string type.
const STRING = "String"

// BOOLEAN is the name of the builtin boolean type.
const BOOLEAN = "Boolean"

// Dictionary maps type names to classes.  A dictionary is populated once
// (typically from a catalogue) before being handed to a parser, and must not be
// modified whilst parses are in flight.
type Dictionary struct {
	classes map[string]*Class
}

// NewDictionary constructs a dictionary seeded with the builtin Number, String
// and Boolean types.
func NewDictionary() *Dictionary {
	d := &Dictionary{make(map[string]*Class)}
	//
	d.Add(NewClass(NUMBER,
		Accept{"~", "", NUMBER},
		Accept{"-", "", NUMBER},
		Accept{"*", NUMBER, NUMBER},
		Accept{"/", NUMBER, NUMBER},
		Accept{"%", NUMBER, NUMBER},
		Accept{"+", NUMBER, NUMBER},
		Accept{"+", STRING, STRING},
		Accept{"-", NUMBER, NUMBER},
		Accept{">>", NUMBER, NUMBER},
		Accept{"<<", NUMBER, NUMBER},
		Accept{"&", NUMBER, NUMBER},
		Accept{"^", NUMBER, NUMBER},
		Accept{"|", NUMBER, NUMBER},
		Accept{">", NUMBER, BOOLEAN},
		Accept{">=", NUMBER, BOOLEAN},
		Accept{"<", NUMBER, BOOLEAN},
		Accept{"<=", NUMBER, BOOLEAN},
		Accept{"!=", NUMBER, BOOLEAN},
		Accept{"==", NUMBER, BOOLEAN}))
	d.Add(NewClass(STRING,
		Accept{"+", STRING, STRING},
		Accept{"+", NUMBER, STRING}))
	d.Add(NewClass(BOOLEAN,
		Accept{"!", "", BOOLEAN},
		Accept{"&&", BOOLEAN, BOOLEAN},
		Accept{"||", BOOLEAN, BOOLEAN}))
	//
	return d
}

// Add a class to this dictionary, replacing any existing class of the same
// name.
func (p *Dictionary) Add(c *Class) {
	p.classes[c.Name()] = c
}

// Lookup a class by name, returning nil if no such class exists.
func (p *Dictionary) Lookup(name string) *Class {
	return p.classes[name]
}

// Has checks whether a class of the given name exists.
func (p *Dictionary) Has(name string) bool {
	_, ok := p.classes[name]
	return ok
}

// ArrayOf constructs a fresh "array of T" class for a known class T.  The
// resulting class has no acceptance rules and is not added to the dictionary.
// Nil is returned if T is unknown.
func (p *Dictionary) ArrayOf(name string) *Class {
	if c, ok := p.classes[name]; ok {
		return NewClass(c.Name() + "[]")
	}
	//
	return nil
}

// Names returns the names of all classes in this dictionary, sorted.
func (p *Dictionary) Names() []string {
	names := make([]string, 0, len(p.classes))
	//
	for n := range p.classes {
		names = append(names, n)
	}
	//
	sort.Strings(names)
	//
	return names
}
