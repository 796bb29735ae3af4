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

	"github.com/consensys/go-spirv/pkg/spirv/layout"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [flags] file...",
	Short: "Validate the logical layout of one or more SPIR-V style modules.",
	Long: `Decode each module and check that its instructions are arranged the
way the module-layout grammar requires: capabilities, extensions, extended
instruction imports, a single memory model, entry points, execution modes,
debug and annotation instructions, globals, and finally function bodies each
terminated by OpFunctionEnd.`,
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd)

		if len(args) == 0 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}

		ok := runOverFiles(args, func(_ context.Context, filename string) bool {
			log.WithField("file", filename).Debug("decoding")

			raw, err := readModule(cmd, filename)
			if err != nil {
				stdoutMu.Lock()
				fmt.Printf("%s: decode failed: %s\n", filename, err)
				stdoutMu.Unlock()

				return false
			}

			log.WithField("file", filename).Debug("validating")

			if _, err := layout.Parse(raw); err != nil {
				stdoutMu.Lock()
				fmt.Printf("%s: invalid: %s\n", filename, err)
				stdoutMu.Unlock()

				return false
			}

			stdoutMu.Lock()
			fmt.Printf("%s: ok\n", filename)
			stdoutMu.Unlock()

			return true
		})

		if !ok {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
