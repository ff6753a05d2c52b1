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
package catalog

import (
	"github.com/consensys/go-formula/pkg/types"
)

// Environment bundles the registries consulted whilst compiling an
// expression.  An environment is built once, typically by installing one or
// more catalogues, and is then shared read-only between compilations.
type Environment struct {
	Types     *types.Dictionary
	Functions *Functions
	Variables *Variables
}

// NewEnvironment constructs an environment holding only the builtin types.
func NewEnvironment() *Environment {
	return &Environment{types.NewDictionary(), NewFunctions(), NewVariables()}
}

// NewEnvironmentFrom constructs an environment from the given catalogues,
// installed in order.
func NewEnvironmentFrom(catalogs ...*Catalog) (*Environment, error) {
	env := NewEnvironment()
	//
	for _, c := range catalogs {
		if err := c.Install(env); err != nil {
			return nil, err
		}
	}
	//
	return env, nil
}
