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
	"os"
	"path/filepath"
	"testing"

	"github.com/consensys/go-formula/pkg/ast"
	"github.com/consensys/go-formula/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_00(t *testing.T) {
	dict := types.NewDictionary()
	funcs := NewFunctions()
	funcs.Register("sine", "math", "sin", "sine", []ast.Param{ast.NewParam("value", "value", types.NUMBER)},
		dict.Lookup(types.NUMBER))
	//
	f1 := funcs.Create("math", "sin")
	f2 := funcs.Create("math", "sin")
	require.NotNil(t, f1)
	require.NotNil(t, f2)
	// Copies are independent
	f1.Bind(0, ast.NewNumberLiteral("1", dict.Lookup(types.NUMBER)))
	assert.Nil(t, f2.Params()[0].Value)
	assert.Nil(t, funcs.Create("math", "sin").Params()[0].Value)
	//
	assert.Nil(t, funcs.Create("", "sin"))
	assert.Equal(t, []string{"math.sin"}, funcs.Names())
}

func TestRegistry_01(t *testing.T) {
	dict := types.NewDictionary()
	vars := NewVariables()
	vars.Register("current value", "", "v", "current value", dict.Lookup(types.NUMBER))
	vars.Register("pi", "math", "PI", "pi", dict.Lookup(types.NUMBER))
	//
	v1 := vars.Create("", "v")
	require.NotNil(t, v1)
	v1.SetQualifier("x")
	assert.Equal(t, "", vars.Create("", "v").Qualifier())
	assert.Equal(t, "math.PI", vars.Create("math", "PI").Name())
	assert.Nil(t, vars.Create("", "PI"))
	assert.Equal(t, []string{"math.PI", "v"}, vars.Names())
}

func TestCatalog_00(t *testing.T) {
	env, err := NewEnvironmentFrom(Default())
	require.NoError(t, err)
	//
	assert.True(t, env.Types.Has("Quantity"))
	assert.True(t, env.Types.Has("math"))
	assert.Contains(t, env.Functions.Names(), "math.sin")
	assert.Contains(t, env.Functions.Names(), "getQuantity")
	assert.Equal(t, []string{"endTime", "startTime", "v"}, env.Variables.Names())
	// Builtin types are extended, not replaced
	r, ok := env.Types.Lookup(types.NUMBER).IsAccept("*", "Quantity")
	assert.True(t, ok)
	assert.Equal(t, "Quantity", r)
	_, ok = env.Types.Lookup(types.NUMBER).IsAccept("+", types.NUMBER)
	assert.True(t, ok)
}

func TestCatalog_01(t *testing.T) {
	env, err := NewEnvironmentFrom(Default())
	require.NoError(t, err)
	//
	f := env.Functions.Create("", "getQuantity")
	require.NotNil(t, f)
	require.Len(t, f.Params(), 5)
	assert.False(t, f.Params()[3].Omittable)
	assert.True(t, f.Params()[4].Omittable)
	assert.Equal(t, types.STRING, f.Params()[4].Type)
	assert.Equal(t, "Quantity", f.ResultType().Name())
	assert.Equal(t, "query measuring point usage", f.DisplayName())
}

func TestCatalog_02(t *testing.T) {
	var input = `
[[types]]
name = "Meter"
accepts = [ { operator = "+", other = "Meter", result = "Meter" } ]

[[types]]
name = "geo"

[[functions]]
class = "geo"
name = "distance"
result = "Meter"

[[functions.params]]
displayName = "from"
type = "String"

[[variables]]
name = "origin"
type = "String"
`
	c, err := Parse("units.toml", []byte(input))
	require.NoError(t, err)
	//
	env, err := NewEnvironmentFrom(c)
	require.NoError(t, err)
	//
	f := env.Functions.Create("geo", "distance")
	require.NotNil(t, f)
	assert.Equal(t, "distance", f.DisplayName())
	assert.Len(t, f.Params(), 1)
	assert.NotNil(t, env.Variables.Create("", "origin"))
	r, ok := env.Types.Lookup("Meter").IsAccept("+", "Meter")
	assert.True(t, ok)
	assert.Equal(t, "Meter", r)
}

func TestCatalog_03(t *testing.T) {
	// Missing required field
	_, err := Parse("bad.yaml", []byte("variables:\n  - name: x\n"))
	require.Error(t, err)
	// Names cannot be qualified
	_, err = Parse("bad.yaml", []byte("variables:\n  - { name: a.b, type: Number }\n"))
	require.Error(t, err)
	// Unknown format
	_, err = Parse("bad.json", []byte("{}"))
	require.Error(t, err)
	// Malformed document
	_, err = Parse("bad.yml", []byte("types: [\n"))
	require.Error(t, err)
}

func TestCatalog_04(t *testing.T) {
	c, err := Parse("c.yaml", []byte("functions:\n  - { name: f, result: Unit }\n"))
	require.NoError(t, err)
	//
	_, err = NewEnvironmentFrom(c)
	require.Error(t, err)
	assert.Equal(t, "function 'f' has unknown result type 'Unit'", err.Error())
	//
	c, err = Parse("c.yaml", []byte("variables:\n  - { class: k, name: x, type: Unit }\n"))
	require.NoError(t, err)
	//
	_, err = NewEnvironmentFrom(c)
	require.Error(t, err)
	assert.Equal(t, "variable 'k.x' has unknown type 'Unit'", err.Error())
}

func TestCatalog_06(t *testing.T) {
	// Member of an unknown class
	c, err := Parse("c.yaml", []byte("functions:\n  - { class: mth, name: f, result: Number }\n"))
	require.NoError(t, err)
	//
	_, err = NewEnvironmentFrom(c)
	assert.EqualError(t, err, "function 'mth.f' has unknown class 'mth'")
	//
	c, err = Parse("c.yaml", []byte("variables:\n  - { class: mth, name: x, type: Number }\n"))
	require.NoError(t, err)
	//
	_, err = NewEnvironmentFrom(c)
	assert.EqualError(t, err, "variable 'mth.x' has unknown class 'mth'")
	// Parameter of an unknown type
	input := "functions:\n  - name: f\n    result: Number\n    params: [{ displayName: a, type: Unit }]\n"
	c, err = Parse("c.yaml", []byte(input))
	require.NoError(t, err)
	//
	_, err = NewEnvironmentFrom(c)
	assert.EqualError(t, err, "function 'f' parameter 'a' has unknown type 'Unit'")
}

func TestCatalog_05(t *testing.T) {
	dir := t.TempDir()
	filename := filepath.Join(dir, "extra.yml")
	require.NoError(t, os.WriteFile(filename, []byte("variables:\n  - { name: w, type: Number }\n"), 0o600))
	//
	catalogs, err := ReadFiles(filename)
	require.NoError(t, err)
	require.Len(t, catalogs, 1)
	//
	env, err := NewEnvironmentFrom(Default(), catalogs[0])
	require.NoError(t, err)
	assert.Equal(t, []string{"endTime", "startTime", "v", "w"}, env.Variables.Names())
	//
	_, err = ReadFiles(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
}
