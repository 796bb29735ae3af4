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

	"github.com/consensys/go-spirv/pkg/spirv/disasm"
	"github.com/consensys/go-spirv/pkg/spirv/layout"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// disasmCmd represents the disasm command
var disasmCmd = &cobra.Command{
	Use:   "disasm [flags] file...",
	Short: "Disassemble one or more SPIR-V style modules.",
	Long:  "Decode one or more modules and print their textual disassembly.",
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd)

		if len(args) == 0 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}

		colour := GetFlag(cmd, "colour") || (!GetFlag(cmd, "no-colour") && term.IsTerminal(int(os.Stdout.Fd())))
		validate := GetFlag(cmd, "validate")

		ok := runOverFiles(args, func(_ context.Context, filename string) bool {
			log.WithField("file", filename).Debug("decoding")

			raw, err := readModule(cmd, filename)
			if err != nil {
				log.WithField("file", filename).Errorf("decode failed: %s", err)
				return false
			}

			if validate {
				log.WithField("file", filename).Debug("validating")

				if _, err := layout.Parse(raw); err != nil {
					log.WithField("file", filename).Errorf("validation failed: %s", err)
					return false
				}
			}

			stdoutMu.Lock()
			defer stdoutMu.Unlock()

			if colour {
				err = disasm.WriteModuleColour(os.Stdout, raw)
			} else {
				err = disasm.WriteModule(os.Stdout, raw)
			}

			if err != nil {
				log.WithField("file", filename).Errorf("write failed: %s", err)
				return false
			}

			return true
		})

		if !ok {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(disasmCmd)

	disasmCmd.Flags().Bool("validate", false, "reject the module unless it also passes layout validation")
	disasmCmd.Flags().Bool("colour", false, "force ANSI-coloured output even when stdout is not a terminal")
	disasmCmd.Flags().Bool("no-colour", false, "disable ANSI-coloured output even when stdout is a terminal")
}
