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
package disasm

import (
	"fmt"
	"io"
	"strings"

	"github.com/consensys/go-spirv/pkg/spirv/ir"
	"github.com/consensys/go-spirv/pkg/spirv/module"
	"github.com/consensys/go-spirv/pkg/util/termio"
)

// mnemonicColour and idColour highlight the two tokens a reader scans for
// first: which op ran, and which id it touched.
var (
	mnemonicColour = termio.BoldAnsiEscape().FgColour(termio.TERM_BLUE).Build()
	idColour       = termio.NewAnsiEscape().FgColour(termio.TERM_CYAN).Build()
	resetColour    = termio.ResetAnsiEscape().Build()
)

// WriteModuleColour writes raw the same way WriteModule does, but wraps each
// mnemonic and result id in ANSI colour escapes. Whether to call this
// instead of WriteModule is entirely the caller's decision — this package
// never inspects whether its writer is a terminal.
func WriteModuleColour(w io.Writer, raw *module.RawModule) error {
	if _, err := fmt.Fprintln(w, HeaderLine(raw)); err != nil {
		return err
	}

	for _, insn := range raw.Instructions {
		if _, err := fmt.Fprintln(w, instructionLineColour(insn)); err != nil {
			return err
		}
	}

	return nil
}

func instructionLineColour(insn ir.Instruction) string {
	var b strings.Builder

	if id, ok := insn.Result(); ok {
		fmt.Fprintf(&b, "%s%*s%s = ", idColour, resultWidth, id, resetColour)
	} else {
		fmt.Fprintf(&b, "%*s", resultWidth+3, "")
	}

	fmt.Fprintf(&b, "%s%s%s", mnemonicColour, insn.Name(), resetColour)

	for _, arg := range insn.Operands() {
		b.WriteByte(' ')
		b.WriteString(arg.String())
	}

	return b.String()
}
