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
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/consensys/go-formula/pkg/server"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// ADDR_ENV names the environment variable which gives the default address to
// serve on.
const ADDR_ENV = "FORMULA_ADDR"

var serveCmd = &cobra.Command{
	Use:   "serve [flags]",
	Short: "serve the compiler over HTTP.",
	Long: `Serve the compiler over HTTP.  Expressions are compiled by POSTing them to
	 /v1/compile, and the catalogue is available from /v1/catalog.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		compiler := NewCompiler(cmd)
		addr := GetString(cmd, "addr")
		// Fall back on the environment
		if addr == "" {
			addr = os.Getenv(ADDR_ENV)
		}
		//
		if addr == "" {
			addr = ":8080"
		}
		//
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		//
		if err := server.NewServer(compiler).ListenAndServe(ctx, addr); err != nil {
			log.Errorf("server error: %v", err)
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("addr", "a", "", fmt.Sprintf("address to listen on (default $%s or :8080)", ADDR_ENV))
}
