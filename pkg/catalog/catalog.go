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
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/consensys/go-formula/pkg/ast"
	"github.com/consensys/go-formula/pkg/types"
	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultCatalog []byte

// Catalog is the registration data for a set of types, functions and
// variables, as read from a YAML or TOML file.
type Catalog struct {
	Types     []TypeDef     `yaml:"types" toml:"types" validate:"dive"`
	Functions []FunctionDef `yaml:"functions" toml:"functions" validate:"dive"`
	Variables []VariableDef `yaml:"variables" toml:"variables" validate:"dive"`
}

// TypeDef declares a type, or extends an existing type, with a set of
// acceptance rules.
type TypeDef struct {
	Name    string      `yaml:"name" toml:"name" validate:"required,excludesall=."`
	Accepts []AcceptDef `yaml:"accepts" toml:"accepts" validate:"dive"`
}

// AcceptDef declares a single acceptance rule.  The other type is empty for
// unary operators.
type AcceptDef struct {
	Operator string `yaml:"operator" toml:"operator"`
	Other    string `yaml:"other" toml:"other"`
	Result   string `yaml:"result" toml:"result" validate:"required"`
}

// FunctionDef declares a function, which is global when its class is empty.
type FunctionDef struct {
	Class       string     `yaml:"class" toml:"class" validate:"excludesall=."`
	Name        string     `yaml:"name" toml:"name" validate:"required,excludesall=."`
	DisplayName string     `yaml:"displayName" toml:"displayName"`
	Hint        string     `yaml:"hint" toml:"hint"`
	Result      string     `yaml:"result" toml:"result" validate:"required"`
	Params      []ParamDef `yaml:"params" toml:"params" validate:"dive"`
}

// ParamDef declares a function parameter.
type ParamDef struct {
	DisplayName string `yaml:"displayName" toml:"displayName" validate:"required"`
	Hint        string `yaml:"hint" toml:"hint"`
	Type        string `yaml:"type" toml:"type" validate:"required"`
	Omittable   bool   `yaml:"omittable" toml:"omittable"`
}

// VariableDef declares a variable, which is global when its class is empty.
type VariableDef struct {
	Class       string `yaml:"class" toml:"class" validate:"excludesall=."`
	Name        string `yaml:"name" toml:"name" validate:"required,excludesall=."`
	DisplayName string `yaml:"displayName" toml:"displayName"`
	Hint        string `yaml:"hint" toml:"hint"`
	Type        string `yaml:"type" toml:"type" validate:"required"`
}

// Default returns the builtin catalogue, covering the measurement domain and
// the math library.
func Default() *Catalog {
	c, err := Parse("default.yaml", defaultCatalog)
	// Embedded catalogue is checked by tests
	if err != nil {
		panic(err)
	}
	//
	return c
}

// Parse a catalogue, choosing the format based on the extension of the given
// filename.
func Parse(filename string, bytes []byte) (*Catalog, error) {
	var (
		c   Catalog
		err error
	)
	//
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(bytes, &c)
	case ".toml":
		err = toml.Unmarshal(bytes, &c)
	default:
		return nil, fmt.Errorf("%s: unknown catalogue format %q", filename, ext)
	}
	//
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	} else if err = validator.New().Struct(&c); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	//
	return &c, nil
}

// ReadFiles reads and parses a given set of catalogue files.
func ReadFiles(filenames ...string) ([]*Catalog, error) {
	catalogs := make([]*Catalog, len(filenames))
	//
	for i, n := range filenames {
		bytes, err := os.ReadFile(n)
		if err != nil {
			return nil, err
		}
		//
		log.Debug(fmt.Sprintf("reading catalogue %s", n))
		//
		if catalogs[i], err = Parse(n, bytes); err != nil {
			return nil, err
		}
	}
	//
	return catalogs, nil
}

// Install registers the contents of this catalogue into an environment.  Types
// are installed first, so functions and variables may refer to them.
func (c *Catalog) Install(env *Environment) error {
	for _, t := range c.Types {
		class := env.Types.Lookup(t.Name)
		if class == nil {
			class = types.NewClass(t.Name)
			env.Types.Add(class)
		}
		//
		for _, a := range t.Accepts {
			class.AddAccept(a.Operator, a.Other, a.Result)
		}
	}
	//
	for _, f := range c.Functions {
		result := env.Types.Lookup(f.Result)
		if result == nil {
			return fmt.Errorf("function '%s' has unknown result type '%s'", ast.QualifiedName(f.Class, f.Name), f.Result)
		}
		//
		if err := checkClass(env, "function", f.Class, f.Name); err != nil {
			return err
		}
		//
		params := make([]ast.Param, len(f.Params))
		for i, p := range f.Params {
			if !env.Types.Has(p.Type) {
				return fmt.Errorf("function '%s' parameter '%s' has unknown type '%s'", ast.QualifiedName(f.Class, f.Name),
					p.DisplayName, p.Type)
			}
			//
			params[i] = ast.Param{DisplayName: p.DisplayName, Hint: p.Hint, Type: p.Type, Omittable: p.Omittable}
		}
		//
		env.Functions.Register(orElse(f.DisplayName, f.Name), f.Class, f.Name, f.Hint, params, result)
	}
	//
	for _, v := range c.Variables {
		result := env.Types.Lookup(v.Type)
		if result == nil {
			return fmt.Errorf("variable '%s' has unknown type '%s'", ast.QualifiedName(v.Class, v.Name), v.Type)
		}
		//
		if err := checkClass(env, "variable", v.Class, v.Name); err != nil {
			return err
		}
		//
		env.Variables.Register(orElse(v.DisplayName, v.Name), v.Class, v.Name, v.Hint, result)
	}
	//
	log.Debug(fmt.Sprintf("installed %d types, %d functions and %d variables", len(c.Types), len(c.Functions),
		len(c.Variables)))
	//
	return nil
}

// Members can only be registered against a known type, since otherwise they
// could never be reached.
func checkClass(env *Environment, what string, class string, name string) error {
	if class != "" && !env.Types.Has(class) {
		return fmt.Errorf("%s '%s' has unknown class '%s'", what, ast.QualifiedName(class, name), class)
	}
	//
	return nil
}

func orElse(s string, otherwise string) string {
	if s == "" {
		return otherwise
	}
	//
	return s
}
