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
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/consensys/go-formula/pkg/formula"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"
)

// Server exposes a compiler over HTTP.  Since each compilation uses its own
// parser, requests are handled concurrently against the same compiler.
type Server struct {
	compiler *formula.Compiler
	validate *validator.Validate
	router   chi.Router
}

// NewServer constructs a server for a given compiler.
func NewServer(compiler *formula.Compiler) *Server {
	s := &Server{compiler: compiler, validate: validator.New()}
	s.router = s.routes()
	//
	return s
}

// ServeHTTP implementation for the http.Handler interface.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	// Basic middleware stack
	r.Use(requestID)
	r.Use(chimw.RealIP)
	r.Use(logging)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"https://*", "http://*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", RequestIDHeader},
		ExposedHeaders: []string{RequestIDHeader},
		MaxAge:         300,
	}))
	//
	r.Get("/healthz", s.health)
	//
	r.Route("/v1", func(r chi.Router) {
		r.Get("/catalog", s.catalog)
		//
		r.Group(func(r chi.Router) {
			r.Use(chimw.AllowContentType("application/json"))
			r.Post("/compile", s.compile)
		})
	})
	//
	return r
}

// ListenAndServe serves requests on a given address until the context is
// cancelled, at which point outstanding requests are given a deadline to
// complete.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
	}
	// Server error channel
	serverErrors := make(chan error, 1)
	//
	go func() {
		log.Infof("listening on %s", addr)
		serverErrors <- srv.ListenAndServe()
	}()
	//
	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		log.Info("shutting down")
		//
		shutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		//
		if err := srv.Shutdown(shutdown); err != nil && !errors.Is(err, http.ErrServerClosed) {
			srv.Close()
			return err
		}
	}
	//
	return nil
}
