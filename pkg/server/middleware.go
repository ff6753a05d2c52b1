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
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// RequestIDHeader carries the identifier of a request, which is also reported
// in response bodies.
const RequestIDHeader = "X-Request-Id"

type contextKey string

const requestIDKey = contextKey("requestID")

// Assign each request an identifier, reusing one supplied by the client when
// it is a valid UUID.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		//
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		//
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey, id)))
	})
}

// GetRequestID returns the identifier assigned to a request, or "" if there is
// none.
func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	//
	return ""
}

func logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		//
		defer func() {
			log.WithFields(log.Fields{
				"method":    r.Method,
				"path":      r.URL.Path,
				"duration":  time.Since(start),
				"status":    ww.Status(),
				"size":      ww.BytesWritten(),
				"requestID": GetRequestID(r.Context()),
			}).Debug("request completed")
		}()
		//
		next.ServeHTTP(ww, r)
	})
}
