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
package layout

import (
	"testing"

	"github.com/consensys/go-spirv/pkg/spirv/ir"
	"github.com/stretchr/testify/assert"
)

func TestClassifyFixedPhases(t *testing.T) {
	cases := []struct {
		name  string
		insn  ir.Instruction
		phase Phase
	}{
		{"capability", ir.OpCapabilityInsn{Value: ir.CapabilityShader}, PhaseCapability},
		{"extension", ir.OpExtensionInsn{Name_: "SPV_KHR_storage_buffer_storage_class"}, PhaseExtension},
		{"ext inst import", ir.OpExtInstImportInsn{ResultID: 1, Name_: "GLSL.std.450"}, PhaseExtInstImport},
		{"memory model", ir.OpMemoryModelInsn{Addressing: ir.AddressingModelLogical, Memory: ir.MemoryModelGLSL450}, PhaseMemoryModel},
		{"entry point", ir.OpEntryPointInsn{Model: ir.ExecutionModelFragment, Function: 1, Name_: "main"}, PhaseEntryPoint},
		{"execution mode", ir.OpExecutionModeInsn{EntryPoint: 1}, PhaseExecutionMode},
		{"debug name", ir.OpNameInsn{Target: 1, Name_: "x"}, PhaseDebug},
		{"annotation", ir.OpDecorateInsn{Target: 1}, PhaseAnnotation},
		{"type", ir.OpTypeVoidInsn{}, PhaseGlobal},
		{"constant", ir.OpConstantInsn{ResultType: 1, ResultID: 2, Value: []uint32{1}}, PhaseGlobal},
		{"code arithmetic", ir.OpIAddInsn{}, PhaseCode},
		{"unclassified", ir.OpFunctionEndInsn{}, PhaseOther},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.phase, Classify(c.insn))
		})
	}
}

func TestClassifyVariableByStorageClass(t *testing.T) {
	global := ir.OpVariableInsn{ResultType: 1, ResultID: 2, Storage: ir.StorageClassPrivate}
	assert.Equal(t, PhaseGlobal, Classify(global))

	local := ir.OpVariableInsn{ResultType: 1, ResultID: 2, Storage: ir.StorageClassFunction}
	assert.Equal(t, PhaseCode, Classify(local))
}
