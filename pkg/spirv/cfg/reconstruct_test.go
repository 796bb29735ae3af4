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
package cfg

import (
	"testing"

	"github.com/consensys/go-spirv/pkg/spirv/ir"
	"github.com/consensys/go-spirv/pkg/spirv/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func block(id ir.ResultId, terminator ir.Instruction, merge ir.Instruction) layout.BasicBlock {
	return layout.BasicBlock{
		Label:      ir.OpLabelInsn{ResultID: id},
		Terminator: terminator,
		Merge:      merge,
	}
}

func TestReconstructStraightLine(t *testing.T) {
	def := &layout.FunctionDefinition{Blocks: []layout.BasicBlock{
		block(10, ir.OpBranchInsn{Target: 11}, nil),
		block(11, ir.OpReturnInsn{}, nil),
	}}

	chain, err := Reconstruct(def)
	require.NoError(t, err)

	b, ok := chain.(Block)
	require.True(t, ok)
	require.Len(t, b.Children, 2)
	assert.Equal(t, Atom{Block: 10}, b.Children[0])
	assert.Equal(t, Atom{Block: 11}, b.Children[1])
}

func TestReconstructSingleBlockCollapsesToAtom(t *testing.T) {
	def := &layout.FunctionDefinition{Blocks: []layout.BasicBlock{
		block(10, ir.OpReturnInsn{}, nil),
	}}

	chain, err := Reconstruct(def)
	require.NoError(t, err)
	assert.Equal(t, Atom{Block: 10}, chain)
}

func TestReconstructIfElse(t *testing.T) {
	def := &layout.FunctionDefinition{Blocks: []layout.BasicBlock{
		block(10, ir.OpBranchConditionalInsn{Condition: 1, TrueLabel: 11, FalseLabel: 12},
			ir.OpSelectionMergeInsn{MergeBlock: 20}),
		block(11, ir.OpBranchInsn{Target: 20}, nil),
		block(12, ir.OpBranchInsn{Target: 20}, nil),
		block(20, ir.OpReturnInsn{}, nil),
	}}

	chain, err := Reconstruct(def)
	require.NoError(t, err)

	b, ok := chain.(Block)
	require.True(t, ok)
	require.Len(t, b.Children, 2)

	ifElse, ok := b.Children[0].(IfElse)
	require.True(t, ok)
	assert.Equal(t, ir.ResultId(10), ifElse.Head)
	assert.Equal(t, Atom{Block: 11}, ifElse.Then)
	assert.Equal(t, Atom{Block: 12}, ifElse.Else)
	assert.Equal(t, Atom{Block: 20}, b.Children[1])
}

func TestReconstructIfWithoutElse(t *testing.T) {
	def := &layout.FunctionDefinition{Blocks: []layout.BasicBlock{
		block(10, ir.OpBranchConditionalInsn{Condition: 1, TrueLabel: 11, FalseLabel: 20},
			ir.OpSelectionMergeInsn{MergeBlock: 20}),
		block(11, ir.OpBranchInsn{Target: 20}, nil),
		block(20, ir.OpReturnInsn{}, nil),
	}}

	chain, err := Reconstruct(def)
	require.NoError(t, err)

	b, ok := chain.(Block)
	require.True(t, ok)
	require.Len(t, b.Children, 2)

	ifStmt, ok := b.Children[0].(If)
	require.True(t, ok)
	assert.Equal(t, ir.ResultId(10), ifStmt.Head)
	assert.Equal(t, Atom{Block: 11}, ifStmt.Then)
}

func TestReconstructNoBlocks(t *testing.T) {
	_, err := Reconstruct(&layout.FunctionDefinition{})
	require.Error(t, err)
	assert.IsType(t, &NoBlocksError{}, err)
}

func TestReconstructDuplicateBlockId(t *testing.T) {
	def := &layout.FunctionDefinition{Blocks: []layout.BasicBlock{
		block(10, ir.OpReturnInsn{}, nil),
		block(10, ir.OpReturnInsn{}, nil),
	}}

	_, err := Reconstruct(def)
	require.Error(t, err)
	assert.IsType(t, &DuplicateBlockIdError{}, err)
}

func TestReconstructUnknownBlockId(t *testing.T) {
	def := &layout.FunctionDefinition{Blocks: []layout.BasicBlock{
		block(10, ir.OpBranchInsn{Target: 999}, nil),
	}}

	_, err := Reconstruct(def)
	require.Error(t, err)
	assert.IsType(t, &UnknownBlockIdError{}, err)
}

func TestReconstructMissingSelectionMerge(t *testing.T) {
	def := &layout.FunctionDefinition{Blocks: []layout.BasicBlock{
		block(10, ir.OpBranchConditionalInsn{Condition: 1, TrueLabel: 11, FalseLabel: 12}, nil),
		block(11, ir.OpReturnInsn{}, nil),
		block(12, ir.OpReturnInsn{}, nil),
	}}

	_, err := Reconstruct(def)
	require.Error(t, err)
	assert.IsType(t, &CouldNotPredictConvergeError{}, err)
}

func TestReconstructInvalidConvergePrediction(t *testing.T) {
	def := &layout.FunctionDefinition{Blocks: []layout.BasicBlock{
		block(10, ir.OpBranchConditionalInsn{Condition: 1, TrueLabel: 11, FalseLabel: 12},
			ir.OpSelectionMergeInsn{MergeBlock: 20}),
		block(11, ir.OpReturnInsn{}, nil),
		block(12, ir.OpBranchInsn{Target: 20}, nil),
		block(20, ir.OpReturnInsn{}, nil),
	}}

	_, err := Reconstruct(def)
	require.Error(t, err)
	assert.IsType(t, &InvalidConvergePredictionError{}, err)
}
