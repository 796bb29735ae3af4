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
	"fmt"
	"os"
	"strconv"

	"github.com/consensys/go-spirv/pkg/spirv/module"
	"github.com/consensys/go-spirv/pkg/spirv/token"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// GetFlag gets an expected bool flag, or exits the process with status 2 if
// the flag is missing or not a bool. Looked
// up by walking cmd's own flags, then its persistent flags, then each
// ancestor's persistent flags in turn — a root-level persistent flag is
// only merged into a child command's own FlagSet once cobra has executed
// that child, so a caller reaching a subcommand's Run through anything
// other than rootCmd.Execute() (tests, notably) would otherwise see an
// "unknown flag" here even though the flag is declared and has a default.
func GetFlag(cmd *cobra.Command, flag string) bool {
	f := lookupFlag(cmd, flag)
	if f == nil {
		fmt.Printf("unknown flag: --%s\n", flag)
		os.Exit(2)
	}

	r, err := strconv.ParseBool(f.Value.String())
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

func lookupFlag(cmd *cobra.Command, flag string) *pflag.Flag {
	for c := cmd; c != nil; c = c.Parent() {
		if f := c.Flags().Lookup(flag); f != nil {
			return f
		}

		if f := c.PersistentFlags().Lookup(flag); f != nil {
			return f
		}
	}

	return nil
}

// GetString gets an expected string, or exits the process with status 4 if
// an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(4)
	}

	return r
}

// readModule loads and decodes one file from disk. --le/--be, when set,
// force a byte order onto the stream instead of relying on the leading
// magic word — the module-layout grammar has no opinion on order, this is
// purely about surviving a file that does not start with a recognised
// magic word.
func readModule(cmd *cobra.Command, filename string) (*module.RawModule, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	sets := extInstSets()

	switch {
	case GetFlag(cmd, "le"):
		return module.ReadWithOrder(data, token.LittleEndian, sets)
	case GetFlag(cmd, "be"):
		return module.ReadWithOrder(data, token.BigEndian, sets)
	default:
		return module.Read(data, sets)
	}
}
