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

// Package disasm renders a decoded module back to the textual disassembly
// format: a five-line header followed by one instruction line per
// instruction.
package disasm

import (
	"fmt"
	"io"
	"strings"

	"github.com/consensys/go-spirv/pkg/spirv/ir"
	"github.com/consensys/go-spirv/pkg/spirv/module"
)

// resultWidth is the column width the "%<id>" of the gutter is
// right-justified to; the " = " after it makes the whole gutter
// resultWidth+3 columns wide.
const resultWidth = 12

// WriteModule writes raw's header lines followed by one line per instruction.
func WriteModule(w io.Writer, raw *module.RawModule) error {
	if _, err := fmt.Fprintln(w, HeaderLine(raw)); err != nil {
		return err
	}

	for _, insn := range raw.Instructions {
		if _, err := fmt.Fprintln(w, InstructionLine(insn)); err != nil {
			return err
		}
	}

	return nil
}

// HeaderLine renders the fixed "; SPIR-V" header: version, generator,
// id-bound, and the reserved schema word (always 0).
func HeaderLine(raw *module.RawModule) string {
	return fmt.Sprintf("; SPIR-V\n; Version: %s\n; Generator: %s\n; Bound: %d\n; Schema: 0",
		raw.Version, raw.Generator, raw.IdBound)
}

// InstructionLine renders one instruction: a right-justified result gutter
// (or blank space of the same width for result-less ops), the mnemonic, and
// its space-separated operands.
func InstructionLine(insn ir.Instruction) string {
	var b strings.Builder

	if id, ok := insn.Result(); ok {
		fmt.Fprintf(&b, "%*s = ", resultWidth, id)
	} else {
		fmt.Fprintf(&b, "%*s", resultWidth+3, "")
	}

	b.WriteString(insn.Name())

	for _, arg := range insn.Operands() {
		b.WriteByte(' ')
		b.WriteString(arg.String())
	}

	return b.String()
}
