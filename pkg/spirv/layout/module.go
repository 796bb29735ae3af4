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

import "github.com/consensys/go-spirv/pkg/spirv/ir"

// LogicalModule is a module.RawModule's instructions regrouped by layout
// phase, in source order within each phase. Unlike the reference validator,
// which carries a closed per-phase sum type (GroupDebug, GroupCode, ...) to
// make illegal placements unrepresentable, this decoder already has a
// single closed ir.Instruction union with an exhaustive Opcode() switch —
// so each phase here is either a slice of its one instruction type or, for
// the phases that mix opcodes, just []ir.Instruction, and the parser (not
// the type system) is what rejects an instruction the grammar didn't expect.
type LogicalModule struct {
	Capabilities        []ir.OpCapabilityInsn
	Extensions          []ir.OpExtensionInsn
	ExtInstImports       []ir.OpExtInstImportInsn
	MemoryModel         ir.OpMemoryModelInsn
	EntryPoints         []ir.OpEntryPointInsn
	ExecutionModes      []ir.OpExecutionModeInsn
	Debug               []ir.Instruction
	Annotations         []ir.Instruction
	Globals             []ir.Instruction
	FunctionDeclarations []FunctionDeclaration
	FunctionDefinitions  []FunctionDefinition
}

// FunctionDeclaration is an OpFunction/parameters/OpFunctionEnd triple with
// no basic blocks between the parameters and the end — a prototype, not a
// body.
type FunctionDeclaration struct {
	Function   ir.OpFunctionInsn
	Parameters []ir.OpFunctionParameterInsn
}

// FunctionDefinition is a FunctionDeclaration with one or more basic blocks
// making up its body.
type FunctionDefinition struct {
	Function   ir.OpFunctionInsn
	Parameters []ir.OpFunctionParameterInsn
	Blocks     []BasicBlock
}

// BasicBlock is a straight-line sequence starting with a label and ending
// with a terminator, with an optional structured-control-flow merge hint
// immediately preceding the terminator.
type BasicBlock struct {
	Label    ir.OpLabelInsn
	Code     []ir.Instruction
	Merge    ir.Instruction // nil, or OpSelectionMergeInsn / OpLoopMergeInsn
	Terminator ir.Instruction // OpBranch / OpBranchConditional / OpReturn / OpReturnValue / OpUnreachable
}
