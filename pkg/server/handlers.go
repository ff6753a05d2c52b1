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
package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/consensys/go-formula/pkg/ast"
	"github.com/consensys/go-formula/pkg/formula"
	log "github.com/sirupsen/logrus"
)

// MaxRequestBytes bounds the size of a request body, leaving room for an
// expression of the maximum length with every character escaped.
const MaxRequestBytes = 32 * 1024

// CompileRequest is the body of a compile request.
type CompileRequest struct {
	Expression string `json:"expression" validate:"required,max=4096"`
}

// CompileResponse is the body of a successful compile request.
type CompileResponse struct {
	ID         string      `json:"id"`
	Expression string      `json:"expression"`
	Rendered   string      `json:"rendered"`
	Tree       *ast.Export `json:"tree"`
}

// ErrorResponse is the body of a failed request.
type ErrorResponse struct {
	ID    string      `json:"id"`
	Error ErrorDetail `json:"error"`
}

// ErrorDetail describes why a request failed.  The position is only given for
// compilation errors.
type ErrorDetail struct {
	Kind    string `json:"kind"`
	Line    int    `json:"line,omitempty"`
	Column  int    `json:"column"`
	Message string `json:"message"`
}

// CatalogResponse lists everything which can be referred to in expressions.
type CatalogResponse struct {
	Types     []TypeInfo     `json:"types"`
	Functions []FunctionInfo `json:"functions"`
	Variables []VariableInfo `json:"variables"`
}

// TypeInfo describes a type and its acceptance rules.
type TypeInfo struct {
	Name    string       `json:"name"`
	Accepts []AcceptInfo `json:"accepts"`
}

// AcceptInfo describes a single acceptance rule.
type AcceptInfo struct {
	Operator string `json:"operator"`
	Other    string `json:"other,omitempty"`
	Result   string `json:"result"`
}

// FunctionInfo describes a function.
type FunctionInfo struct {
	Name        string            `json:"name"`
	DisplayName string            `json:"displayName"`
	Hint        string            `json:"hint"`
	Result      string            `json:"result"`
	Params      []ast.ExportParam `json:"params"`
}

// VariableInfo describes a variable.
type VariableInfo struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
	Hint        string `json:"hint"`
	Type        string `json:"type"`
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) compile(w http.ResponseWriter, r *http.Request) {
	var (
		id  = GetRequestID(r.Context())
		req CompileRequest
	)
	//
	var tooLarge *http.MaxBytesError
	//
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxRequestBytes)).Decode(&req); errors.As(err, &tooLarge) {
		respondWithError(w, http.StatusRequestEntityTooLarge, id, "request", "request body too large")
		return
	} else if err != nil {
		respondWithError(w, http.StatusBadRequest, id, "request", "malformed request body")
		return
	} else if err := s.validate.Struct(req); err != nil {
		respondWithError(w, http.StatusBadRequest, id, "request", err.Error())
		return
	}
	//
	e, err := s.compiler.Compile(req.Expression)
	if ferr, ok := formula.AsError(err); ok {
		log.WithField("requestID", id).Debugf("compile failed: %s", ferr)
		//
		respondWithJSON(w, http.StatusUnprocessableEntity, ErrorResponse{id,
			ErrorDetail{ferr.Kind.String(), ferr.Line, ferr.Column, ferr.Message}})
		//
		return
	} else if err != nil {
		respondWithError(w, http.StatusInternalServerError, id, "internal", err.Error())
		return
	}
	//
	log.WithField("requestID", id).Debugf("compiled %s", e)
	//
	respondWithJSON(w, http.StatusOK, CompileResponse{id, req.Expression, e.String(), e.Export()})
}

func (s *Server) catalog(w http.ResponseWriter, r *http.Request) {
	var (
		env  = s.compiler.Environment()
		resp = CatalogResponse{[]TypeInfo{}, []FunctionInfo{}, []VariableInfo{}}
	)
	//
	for _, name := range env.Types.Names() {
		info := TypeInfo{name, []AcceptInfo{}}
		//
		for _, rule := range env.Types.Lookup(name).Accepts() {
			info.Accepts = append(info.Accepts, AcceptInfo{rule.Operator, rule.Other, rule.Result})
		}
		//
		resp.Types = append(resp.Types, info)
	}
	//
	for _, name := range env.Functions.Names() {
		fn := env.Functions.Create(splitName(name))
		export := fn.Export()
		//
		resp.Functions = append(resp.Functions, FunctionInfo{name, fn.DisplayName(), fn.Hint(), export.ResultType,
			export.Params})
	}
	//
	for _, name := range env.Variables.Names() {
		v := env.Variables.Create(splitName(name))
		resp.Variables = append(resp.Variables, VariableInfo{name, v.DisplayName(), v.Hint(), v.Export().ResultType})
	}
	//
	respondWithJSON(w, http.StatusOK, resp)
}

// Split a qualified name into its class and member.
func splitName(name string) (string, string) {
	if class, member, ok := strings.Cut(name, "."); ok {
		return class, member
	}
	//
	return "", name
}

func respondWithError(w http.ResponseWriter, code int, id string, kind string, message string) {
	respondWithJSON(w, code, ErrorResponse{id, ErrorDetail{Kind: kind, Message: message}})
}

// respondWithJSON sends a JSON response
func respondWithJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	//
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Errorf("failed to encode response: %v", err)
	}
}
