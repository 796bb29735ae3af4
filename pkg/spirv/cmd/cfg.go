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

	"github.com/consensys/go-spirv/pkg/spirv/cfg"
	"github.com/consensys/go-spirv/pkg/spirv/ir"
	"github.com/consensys/go-spirv/pkg/spirv/layout"
	"github.com/spf13/cobra"
)

// cfgCmd represents the cfg command
var cfgCmd = &cobra.Command{
	Use:   "cfg [flags] file",
	Short: "Reconstruct structured control flow for one function of a module.",
	Long: `Decode and validate a module, then reconstruct the nested If / IfElse
structure of the basic-block graph belonging to the function named by
--function, which may be a debug name (from OpName) or a numeric result id.`,
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd)

		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}

		selector := GetString(cmd, "function")
		if selector == "" {
			fmt.Println("--function is required")
			os.Exit(1)
		}

		raw, err := readModule(cmd, args[0])
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		lm, err := layout.Parse(raw)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		def, err := findFunction(lm, selector)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		chain, err := cfg.Reconstruct(def)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		fmt.Println(chain.String())
	},
}

// findFunction resolves selector — a debug name or a decimal result id —
// against lm's function definitions.
func findFunction(lm *layout.LogicalModule, selector string) (*layout.FunctionDefinition, error) {
	id, byName, err := resolveFunctionId(lm, selector)
	if err != nil {
		return nil, err
	}

	for i := range lm.FunctionDefinitions {
		if lm.FunctionDefinitions[i].Function.ResultID == id {
			return &lm.FunctionDefinitions[i], nil
		}
	}

	for _, decl := range lm.FunctionDeclarations {
		if decl.Function.ResultID == id {
			return nil, fmt.Errorf("function %s has no basic blocks (declaration only)", selector)
		}
	}

	if byName {
		return nil, fmt.Errorf("no function named %q", selector)
	}

	return nil, fmt.Errorf("no function with id %s", id)
}

// resolveFunctionId looks selector up as a debug name first, falling back
// to parsing it as a decimal result id.
func resolveFunctionId(lm *layout.LogicalModule, selector string) (id ir.ResultId, byName bool, err error) {
	for _, insn := range lm.Debug {
		name, ok := insn.(ir.OpNameInsn)
		if ok && string(name.Name_) == selector {
			return ir.ResultId(name.Target), true, nil
		}
	}

	n, err := strconv.ParseUint(selector, 10, 32)
	if err != nil {
		return 0, true, fmt.Errorf("no function named %q", selector)
	}

	return ir.ResultId(n), false, nil
}

func init() {
	rootCmd.AddCommand(cfgCmd)

	cfgCmd.Flags().String("function", "", "name or numeric id of the function to reconstruct")
}
