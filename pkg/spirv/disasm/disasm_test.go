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
	"strings"
	"testing"

	"github.com/consensys/go-spirv/pkg/spirv/ir"
	"github.com/consensys/go-spirv/pkg/spirv/module"
	"github.com/stretchr/testify/assert"
)

func TestInstructionLineWithResult(t *testing.T) {
	// OpIAddInsn's shared operand shape is an unexported embedded type (see
	// pkg/spirv/ir/ops_shapes.go), so its fields are set through promoted
	// selectors rather than a keyed composite literal from outside the ir
	// package.
	var add ir.OpIAddInsn
	add.ResultType, add.ResultID, add.Operand1, add.Operand2 = 1, 9, 2, 3

	line := InstructionLine(add)

	assert.True(t, strings.HasSuffix(line[:15], "%9 = "))
	assert.Contains(t, line, "OpIAdd")
	assert.Contains(t, line, "%1 %2 %3")
}

func TestInstructionLineWithoutResult(t *testing.T) {
	line := InstructionLine(ir.OpReturnInsn{})

	assert.True(t, strings.HasPrefix(line, strings.Repeat(" ", resultWidth+3)))
	assert.Contains(t, line, "OpReturn")
}

func TestHeaderLineIncludesVersionAndBound(t *testing.T) {
	raw := &module.RawModule{Version: ir.V1_0, IdBound: 42}

	header := HeaderLine(raw)
	assert.Contains(t, header, "; SPIR-V")
	assert.Contains(t, header, "Bound: 42")
}

func TestWriteModuleWritesOneLinePerInstruction(t *testing.T) {
	raw := &module.RawModule{
		Version:      ir.V1_0,
		IdBound:      3,
		Instructions: []ir.Instruction{ir.OpNopInsn{}, ir.OpReturnInsn{}},
	}

	var b strings.Builder
	err := WriteModule(&b, raw)
	assert.NoError(t, err)

	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	assert.GreaterOrEqual(t, len(lines), 2+2) // header (multi-line) + 2 instructions
}
