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
	"encoding/json"
)

// Export is the structured form of an element, as exchanged with external
// tooling.
type Export struct {
	Type        Kind          `json:"type"`
	Name        string        `json:"name"`
	DisplayName string        `json:"displayName"`
	Hint        string        `json:"hint"`
	ResultType  string        `json:"resultType"`
	Params      []ExportParam `json:"params"`
}

// ExportParam is the structured form of a parameter slot.  The value is absent
// for unbound slots.
type ExportParam struct {
	DisplayName string  `json:"displayName"`
	Hint        string  `json:"hint"`
	Type        string  `json:"type"`
	Value       *Export `json:"value,omitempty"`
}

func export(e Element) *Export {
	params := e.Params()
	exported := make([]ExportParam, len(params))
	//
	for i, param := range params {
		exported[i] = ExportParam{param.DisplayName, param.Hint, param.Type, nil}
		//
		if param.Value != nil {
			exported[i].Value = param.Value.Export()
		}
	}
	//
	return &Export{e.Kind(), e.Name(), e.DisplayName(), e.Hint(), typeName(e.ResultType()), exported}
}

// ToJson converts an element into its JSON export document.
func ToJson(e Element) ([]byte, error) {
	return json.Marshal(e.Export())
}

// Walk visits an element and then, in order, all elements bound beneath it.
// Children of an element are skipped when fn returns false for it.
func Walk(e Element, fn func(Element) bool) {
	if e == nil || !fn(e) {
		return
	}
	//
	for _, param := range e.Params() {
		Walk(param.Value, fn)
	}
}
