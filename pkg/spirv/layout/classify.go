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

// Package layout turns a flat module.RawModule into a LogicalModule: the
// same instructions, partitioned by where the module-layout grammar says
// each one belongs. Classification (this file) is a pure, stateless map
// from instruction to bucket; the phase parser (parser.go) consumes buckets
// in grammar order and catches what classification alone cannot: a
// MemoryModel missing entirely, a function whose blocks never terminate, an
// instruction appearing somewhere the grammar does not allow.
package layout

import (
	"github.com/consensys/go-spirv/pkg/spirv/ir"
)

// Phase names the bucket an instruction belongs to within the module-layout
// grammar. Instructions whose placement the classifier cannot decide alone
// — function boundaries and basic-block structure, which the phase parser
// recognises by direct position instead — classify as PhaseOther.
type Phase int

// Recognised phases, in module-layout grammar order.
const (
	PhaseOther Phase = iota
	PhaseCapability
	PhaseExtension
	PhaseExtInstImport
	PhaseMemoryModel
	PhaseEntryPoint
	PhaseExecutionMode
	PhaseDebug
	PhaseAnnotation
	PhaseGlobal
	PhaseCode
)

var fixedPhase = map[ir.Op]Phase{
	ir.OpCapability:    PhaseCapability,
	ir.OpExtension:      PhaseExtension,
	ir.OpExtInstImport:  PhaseExtInstImport,
	ir.OpMemoryModel:    PhaseMemoryModel,
	ir.OpEntryPoint:     PhaseEntryPoint,
	ir.OpExecutionMode:  PhaseExecutionMode,

	ir.OpSourceContinued: PhaseDebug,
	ir.OpSource:          PhaseDebug,
	ir.OpSourceExtension: PhaseDebug,
	ir.OpName:            PhaseDebug,
	ir.OpMemberName:      PhaseDebug,
	ir.OpString:          PhaseDebug,
	ir.OpLine:            PhaseDebug,

	ir.OpDecorate:       PhaseAnnotation,
	ir.OpMemberDecorate: PhaseAnnotation,

	ir.OpTypeVoid:          PhaseGlobal,
	ir.OpTypeBool:          PhaseGlobal,
	ir.OpTypeInt:           PhaseGlobal,
	ir.OpTypeFloat:         PhaseGlobal,
	ir.OpTypeVector:        PhaseGlobal,
	ir.OpTypeMatrix:        PhaseGlobal,
	ir.OpTypeArray:         PhaseGlobal,
	ir.OpTypeRuntimeArray:  PhaseGlobal,
	ir.OpTypeStruct:        PhaseGlobal,
	ir.OpTypePointer:       PhaseGlobal,
	ir.OpTypeFunction:      PhaseGlobal,
	ir.OpConstantTrue:      PhaseGlobal,
	ir.OpConstantFalse:     PhaseGlobal,
	ir.OpConstant:          PhaseGlobal,
	ir.OpConstantComposite: PhaseGlobal,

	ir.OpNop:           PhaseCode,
	ir.OpUndef:         PhaseCode,
	ir.OpExtInst:       PhaseCode,
	ir.OpFunctionCall:  PhaseCode,
	ir.OpLoad:          PhaseCode,
	ir.OpStore:         PhaseCode,
	ir.OpAccessChain:   PhaseCode,
	ir.OpConvertUToF:   PhaseCode,
	ir.OpBitcast:       PhaseCode,
	ir.OpIAdd:          PhaseCode,
	ir.OpFAdd:          PhaseCode,
	ir.OpISub:          PhaseCode,
	ir.OpFSub:          PhaseCode,
	ir.OpIMul:          PhaseCode,
	ir.OpFMul:          PhaseCode,
	ir.OpUDiv:          PhaseCode,
	ir.OpSDiv:          PhaseCode,
	ir.OpFDiv:          PhaseCode,
	ir.OpUMod:          PhaseCode,
	ir.OpSRem:          PhaseCode,
	ir.OpSMod:          PhaseCode,
	ir.OpFRem:          PhaseCode,
	ir.OpIAddCarry:     PhaseCode,
	ir.OpISubBorrow:    PhaseCode,
	ir.OpUMulExtended:  PhaseCode,
	ir.OpSMulExtended:  PhaseCode,
	ir.OpBitwiseOr:     PhaseCode,
	ir.OpBitwiseXor:    PhaseCode,
	ir.OpBitwiseAnd:    PhaseCode,
	ir.OpIEqual:              PhaseCode,
	ir.OpINotEqual:           PhaseCode,
	ir.OpUGreaterThan:        PhaseCode,
	ir.OpSGreaterThan:        PhaseCode,
	ir.OpUGreaterThanEqual:   PhaseCode,
	ir.OpSGreaterThanEqual:   PhaseCode,
	ir.OpULessThan:           PhaseCode,
	ir.OpSLessThan:           PhaseCode,
	ir.OpULessThanEqual:      PhaseCode,
	ir.OpSLessThanEqual:      PhaseCode,
	ir.OpFOrdEqual:              PhaseCode,
	ir.OpFUnordEqual:            PhaseCode,
	ir.OpFOrdNotEqual:           PhaseCode,
	ir.OpFUnordNotEqual:         PhaseCode,
	ir.OpFOrdLessThan:           PhaseCode,
	ir.OpFUnordLessThan:         PhaseCode,
	ir.OpFOrdGreaterThan:        PhaseCode,
	ir.OpFUnordGreaterThan:      PhaseCode,
	ir.OpFOrdLessThanEqual:      PhaseCode,
	ir.OpFUnordLessThanEqual:    PhaseCode,
	ir.OpFOrdGreaterThanEqual:   PhaseCode,
	ir.OpFUnordGreaterThanEqual: PhaseCode,
	ir.OpPhi:                    PhaseCode,
}

// Classify maps insn to its layout bucket. OpVariable is the one dynamic
// case: its storage class decides globals vs. function-local code, the
// same branch the reference validator takes.
func Classify(insn ir.Instruction) Phase {
	if v, ok := insn.(ir.OpVariableInsn); ok {
		if v.Storage == ir.StorageClassFunction {
			return PhaseCode
		}

		return PhaseGlobal
	}

	if p, ok := fixedPhase[insn.Opcode()]; ok {
		return p
	}

	return PhaseOther
}
