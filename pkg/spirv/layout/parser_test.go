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
	"github.com/consensys/go-spirv/pkg/spirv/module"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var memoryModel = ir.OpMemoryModelInsn{Addressing: ir.AddressingModelLogical, Memory: ir.MemoryModelGLSL450}

func rawOf(insns ...ir.Instruction) *module.RawModule {
	return &module.RawModule{Instructions: insns}
}

func TestParseMinimalModule(t *testing.T) {
	lm, err := Parse(rawOf(
		ir.OpCapabilityInsn{Value: ir.CapabilityShader},
		memoryModel,
	))
	require.NoError(t, err)

	require.Len(t, lm.Capabilities, 1)
	assert.Equal(t, memoryModel, lm.MemoryModel)
	assert.Empty(t, lm.FunctionDeclarations)
	assert.Empty(t, lm.FunctionDefinitions)
}

func TestParseMissingMemoryModel(t *testing.T) {
	_, err := Parse(rawOf(ir.OpCapabilityInsn{Value: ir.CapabilityShader}))
	require.Error(t, err)
	assert.IsType(t, &MemoryModelMissingError{}, err)
}

func TestParseFunctionDeclaration(t *testing.T) {
	lm, err := Parse(rawOf(
		memoryModel,
		ir.OpFunctionInsn{ResultType: 1, ResultID: 2, FnType: 3},
		ir.OpFunctionParameterInsn{ResultType: 1, ResultID: 4},
		ir.OpFunctionEndInsn{},
	))
	require.NoError(t, err)

	require.Len(t, lm.FunctionDeclarations, 1)
	assert.Empty(t, lm.FunctionDefinitions)

	decl := lm.FunctionDeclarations[0]
	assert.Equal(t, ir.ResultId(2), decl.Function.ResultID)
	require.Len(t, decl.Parameters, 1)
	assert.Equal(t, ir.ResultId(4), decl.Parameters[0].ResultID)
}

func TestParseFunctionDefinition(t *testing.T) {
	lm, err := Parse(rawOf(
		memoryModel,
		ir.OpFunctionInsn{ResultType: 1, ResultID: 2, FnType: 3},
		ir.OpLabelInsn{ResultID: 10},
		ir.OpIAddInsn{},
		ir.OpReturnInsn{},
		ir.OpFunctionEndInsn{},
	))
	require.NoError(t, err)

	require.Empty(t, lm.FunctionDeclarations)
	require.Len(t, lm.FunctionDefinitions, 1)

	def := lm.FunctionDefinitions[0]
	require.Len(t, def.Blocks, 1)

	block := def.Blocks[0]
	assert.Equal(t, ir.ResultId(10), block.Label.ResultID)
	require.Len(t, block.Code, 1)
	assert.Nil(t, block.Merge)
	assert.Equal(t, ir.OpReturnInsn{}, block.Terminator)
}

func TestParseFunctionDefinitionWithMergeHint(t *testing.T) {
	lm, err := Parse(rawOf(
		memoryModel,
		ir.OpFunctionInsn{ResultType: 1, ResultID: 2, FnType: 3},
		ir.OpLabelInsn{ResultID: 10},
		ir.OpSelectionMergeInsn{MergeBlock: 20},
		ir.OpBranchConditionalInsn{Condition: 5, TrueLabel: 11, FalseLabel: 12},
		ir.OpLabelInsn{ResultID: 11},
		ir.OpBranchInsn{Target: 20},
		ir.OpLabelInsn{ResultID: 12},
		ir.OpBranchInsn{Target: 20},
		ir.OpLabelInsn{ResultID: 20},
		ir.OpReturnInsn{},
		ir.OpFunctionEndInsn{},
	))
	require.NoError(t, err)
	require.Len(t, lm.FunctionDefinitions, 1)

	blocks := lm.FunctionDefinitions[0].Blocks
	require.Len(t, blocks, 4)
	require.NotNil(t, blocks[0].Merge)
	assert.IsType(t, ir.OpSelectionMergeInsn{}, blocks[0].Merge)
}

func TestParseBasicBlockMissingTerminator(t *testing.T) {
	_, err := Parse(rawOf(
		memoryModel,
		ir.OpFunctionInsn{ResultType: 1, ResultID: 2, FnType: 3},
		ir.OpLabelInsn{ResultID: 10},
		ir.OpFunctionEndInsn{},
	))
	require.Error(t, err)
	assert.IsType(t, &ExpectedBranchError{}, err)
}

func TestParseFunctionMissingEnd(t *testing.T) {
	_, err := Parse(rawOf(
		memoryModel,
		ir.OpFunctionInsn{ResultType: 1, ResultID: 2, FnType: 3},
		ir.OpLabelInsn{ResultID: 10},
		ir.OpReturnInsn{},
	))
	require.Error(t, err)
	assert.IsType(t, &ExpectedOpFunctionEndError{}, err)
}

func TestParseTrailingInstructionRejected(t *testing.T) {
	_, err := Parse(rawOf(
		memoryModel,
		ir.OpCapabilityInsn{Value: ir.CapabilityShader},
	))
	require.Error(t, err)

	unexpected, ok := err.(*UnexpectedInstructionError)
	require.True(t, ok)
	assert.Equal(t, 1, unexpected.Slot)
	assert.Equal(t, "OpCapability", unexpected.Name)
}
