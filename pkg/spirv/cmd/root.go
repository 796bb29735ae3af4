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

// Package cmd implements the spirv command-line tool: decode, disassemble,
// validate and reconstruct control flow over SPIR-V style modules.
package cmd

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/consensys/go-spirv/pkg/spirv/extinst"
	"github.com/consensys/go-spirv/pkg/spirv/extinst/glsl450"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Version is filled only when set at link time (go build -ldflags "-X ..."),
// *not* when installing via "go install".
var Version string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "spirv",
	Short: "A decoder and analyser for SPIR-V style intermediate representation modules.",
	Long:  "A toolbox for decoding, disassembling, validating and reconstructing control flow over SPIR-V style modules.",
	Run: func(cmd *cobra.Command, args []string) {
		if GetFlag(cmd, "version") {
			fmt.Print("spirv ")

			if Version != "" {
				// Set at link time
				fmt.Printf("%s", Version)
			} else if info, ok := debug.ReadBuildInfo(); ok {
				// Built via "go install"
				fmt.Printf("%s", info.Main.Version)
			} else {
				// Unknown, perhaps "go run"
				fmt.Printf("(unknown version)")
			}

			fmt.Println()

			return
		}

		_ = cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). It only needs to happen
// once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// extInstSets returns the extended-instruction-set handles every subcommand
// makes available to module.Read. New in-tree sets are registered here,
// rather than at each call site.
func extInstSets() []extinst.Set {
	registry := extinst.NewRegistry()
	registry.Register(glsl450.New())

	return registry.Handles()
}

// configureLogging raises the process-wide logrus level to Debug when
// --verbose is set. Only this package logs; pkg/spirv reports failure
// through returned errors, never through logging.
func configureLogging(cmd *cobra.Command) {
	if GetFlag(cmd, "verbose") {
		log.SetLevel(log.DebugLevel)
	}
}

func init() {
	log.SetFormatter(&log.TextFormatter{
		DisableColors: !term.IsTerminal(int(os.Stdout.Fd())),
		FullTimestamp: true,
	})

	rootCmd.Flags().Bool("version", false, "report version of this executable")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
	rootCmd.PersistentFlags().Bool("le", false, "force little-endian decoding, bypassing magic-word detection")
	rootCmd.PersistentFlags().Bool("be", false, "force big-endian decoding, bypassing magic-word detection")
}
