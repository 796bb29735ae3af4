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
package isa

import (
	"fmt"

	"github.com/consensys/go-spirv/pkg/spirv/extinst"
	"github.com/consensys/go-spirv/pkg/spirv/ir"
	"github.com/consensys/go-spirv/pkg/spirv/token"
)

// Decoder turns one instruction frame at a time into a typed ir.Instruction.
// It is stateful only in the narrow sense the format requires: extended
// instruction sets are imported by result id and referenced by that id from
// every later OpExtInst, so the binding table must survive across calls for
// the lifetime of one module decode.
type Decoder struct {
	known []extinst.Set
	bound map[ir.ResultId]extinst.Set
}

// NewDecoder constructs a Decoder that may resolve OpExtInstImport against
// any of sets.
func NewDecoder(sets []extinst.Set) *Decoder {
	return &Decoder{known: sets, bound: make(map[ir.ResultId]extinst.Set)}
}

// Decode dispatches on opcode and consumes frame's operand words into a
// typed instruction.  It never returns both a nil instruction and a nil
// error.
func (d *Decoder) Decode(opcode uint16, frame *token.Frame) (ir.Instruction, error) {
	op := ir.Op(opcode)

	insn, err := d.decode(op, frame)
	if err != nil {
		return nil, err
	}

	if insn != nil {
		return insn, nil
	}

	if !op.IsKnown() {
		return ir.UnknownOpInsn{Code: op, WordCount: frame.WordCount()}, nil
	}

	if !op.IsImplemented() {
		return ir.UnimplementedOpInsn{Code: op, Mnemonic: ir.Mnemonics[op]}, nil
	}

	return nil, fmt.Errorf("isa: opcode %s marked implemented but not dispatched", op)
}

//nolint:gocyclo // one opcode per case is the clearest shape for a decode table
func (d *Decoder) decode(op ir.Op, f *token.Frame) (ir.Instruction, error) {
	switch op {
	case ir.OpNop:
		return ir.OpNopInsn{}, nil
	case ir.OpUndef:
		rt, err := readId(f)
		if err != nil {
			return nil, err
		}

		rid, err := readResultId(f)
		if err != nil {
			return nil, err
		}

		var insn ir.OpUndefInsn
		insn.ResultType, insn.ResultID = rt, rid

		return insn, nil
	case ir.OpSource:
		return d.readSource(f)
	case ir.OpSourceContinued:
		s, err := readString(f)
		if err != nil {
			return nil, err
		}

		return ir.OpSourceContinuedInsn{Source: s}, nil
	case ir.OpSourceExtension:
		s, err := readString(f)
		if err != nil {
			return nil, err
		}

		return ir.OpSourceExtensionInsn{Extension: s}, nil
	case ir.OpName:
		target, err := readId(f)
		if err != nil {
			return nil, err
		}

		name, err := readString(f)
		if err != nil {
			return nil, err
		}

		return ir.OpNameInsn{Target: target, Name_: name}, nil
	case ir.OpMemberName:
		target, err := readId(f)
		if err != nil {
			return nil, err
		}

		member, err := readLiteral(f)
		if err != nil {
			return nil, err
		}

		name, err := readString(f)
		if err != nil {
			return nil, err
		}

		return ir.OpMemberNameInsn{Target: target, Member: member, Name_: name}, nil
	case ir.OpString:
		rid, err := readResultId(f)
		if err != nil {
			return nil, err
		}

		s, err := readString(f)
		if err != nil {
			return nil, err
		}

		return ir.OpStringInsn{ResultID: rid, Value: s}, nil
	case ir.OpLine:
		file, err := readId(f)
		if err != nil {
			return nil, err
		}

		line, err := readLiteral(f)
		if err != nil {
			return nil, err
		}

		col, err := readLiteral(f)
		if err != nil {
			return nil, err
		}

		return ir.OpLineInsn{File: file, Line: line, Column: col}, nil
	case ir.OpExtension:
		name, err := readString(f)
		if err != nil {
			return nil, err
		}

		return ir.OpExtensionInsn{Name_: name}, nil
	case ir.OpExtInstImport:
		return d.readExtInstImport(f)
	case ir.OpExtInst:
		return d.readExtInst(f)
	case ir.OpMemoryModel:
		addr, err := readAddressingModel(f)
		if err != nil {
			return nil, err
		}

		mem, err := readMemoryModel(f)
		if err != nil {
			return nil, err
		}

		return ir.OpMemoryModelInsn{Addressing: addr, Memory: mem}, nil
	case ir.OpEntryPoint:
		model, err := readExecutionModel(f)
		if err != nil {
			return nil, err
		}

		fn, err := readId(f)
		if err != nil {
			return nil, err
		}

		name, err := readString(f)
		if err != nil {
			return nil, err
		}

		iface, err := readIdList(f)
		if err != nil {
			return nil, err
		}

		return ir.OpEntryPointInsn{Model: model, Function: fn, Name_: name, Interface: iface}, nil
	case ir.OpExecutionMode:
		ep, err := readId(f)
		if err != nil {
			return nil, err
		}

		mode, err := readExecutionMode(f)
		if err != nil {
			return nil, err
		}

		return ir.OpExecutionModeInsn{EntryPoint: ep, Mode: mode}, nil
	case ir.OpCapability:
		cap, err := readCapability(f)
		if err != nil {
			return nil, err
		}

		return ir.OpCapabilityInsn{Value: cap}, nil
	case ir.OpTypeVoid:
		rid, err := readResultId(f)
		if err != nil {
			return nil, err
		}

		var insn ir.OpTypeVoidInsn
		insn.ResultID = rid

		return insn, nil
	case ir.OpTypeBool:
		rid, err := readResultId(f)
		if err != nil {
			return nil, err
		}

		var insn ir.OpTypeBoolInsn
		insn.ResultID = rid

		return insn, nil
	case ir.OpTypeInt:
		rid, err := readResultId(f)
		if err != nil {
			return nil, err
		}

		width, err := readLiteral(f)
		if err != nil {
			return nil, err
		}

		sign, err := readLiteral(f)
		if err != nil {
			return nil, err
		}

		return ir.OpTypeIntInsn{ResultID: rid, Width: width, Signedness: sign}, nil
	case ir.OpTypeFloat:
		rid, err := readResultId(f)
		if err != nil {
			return nil, err
		}

		width, err := readLiteral(f)
		if err != nil {
			return nil, err
		}

		return ir.OpTypeFloatInsn{ResultID: rid, Width: width}, nil
	case ir.OpTypeVector:
		rid, err := readResultId(f)
		if err != nil {
			return nil, err
		}

		comp, err := readId(f)
		if err != nil {
			return nil, err
		}

		count, err := readLiteral(f)
		if err != nil {
			return nil, err
		}

		return ir.OpTypeVectorInsn{ResultID: rid, ComponentType: comp, Count: count}, nil
	case ir.OpTypeMatrix:
		rid, err := readResultId(f)
		if err != nil {
			return nil, err
		}

		col, err := readId(f)
		if err != nil {
			return nil, err
		}

		count, err := readLiteral(f)
		if err != nil {
			return nil, err
		}

		return ir.OpTypeMatrixInsn{ResultID: rid, ColumnType: col, Count: count}, nil
	case ir.OpTypeArray:
		rid, err := readResultId(f)
		if err != nil {
			return nil, err
		}

		elem, err := readId(f)
		if err != nil {
			return nil, err
		}

		length, err := readId(f)
		if err != nil {
			return nil, err
		}

		return ir.OpTypeArrayInsn{ResultID: rid, ElementType: elem, Length: length}, nil
	case ir.OpTypeRuntimeArray:
		rid, err := readResultId(f)
		if err != nil {
			return nil, err
		}

		elem, err := readId(f)
		if err != nil {
			return nil, err
		}

		return ir.OpTypeRuntimeArrayInsn{ResultID: rid, ElementType: elem}, nil
	case ir.OpTypeStruct:
		rid, err := readResultId(f)
		if err != nil {
			return nil, err
		}

		members, err := readIdList(f)
		if err != nil {
			return nil, err
		}

		return ir.OpTypeStructInsn{ResultID: rid, Members: members}, nil
	case ir.OpTypePointer:
		rid, err := readResultId(f)
		if err != nil {
			return nil, err
		}

		storage, err := readStorageClass(f)
		if err != nil {
			return nil, err
		}

		pointee, err := readId(f)
		if err != nil {
			return nil, err
		}

		return ir.OpTypePointerInsn{ResultID: rid, Storage: storage, Pointee: pointee}, nil
	case ir.OpTypeFunction:
		rid, err := readResultId(f)
		if err != nil {
			return nil, err
		}

		ret, err := readId(f)
		if err != nil {
			return nil, err
		}

		params, err := readIdList(f)
		if err != nil {
			return nil, err
		}

		return ir.OpTypeFunctionInsn{ResultID: rid, ReturnType: ret, Parameters: params}, nil
	case ir.OpConstantTrue:
		rt, err := readId(f)
		if err != nil {
			return nil, err
		}

		rid, err := readResultId(f)
		if err != nil {
			return nil, err
		}

		var insn ir.OpConstantTrueInsn
		insn.ResultType, insn.ResultID = rt, rid

		return insn, nil
	case ir.OpConstantFalse:
		rt, err := readId(f)
		if err != nil {
			return nil, err
		}

		rid, err := readResultId(f)
		if err != nil {
			return nil, err
		}

		var insn ir.OpConstantFalseInsn
		insn.ResultType, insn.ResultID = rt, rid

		return insn, nil
	case ir.OpConstant:
		rt, err := readId(f)
		if err != nil {
			return nil, err
		}

		rid, err := readResultId(f)
		if err != nil {
			return nil, err
		}

		value, err := readWords(f)
		if err != nil {
			return nil, err
		}

		return ir.OpConstantInsn{ResultType: rt, ResultID: rid, Value: value}, nil
	case ir.OpConstantComposite:
		rt, err := readId(f)
		if err != nil {
			return nil, err
		}

		rid, err := readResultId(f)
		if err != nil {
			return nil, err
		}

		constituents, err := readIdList(f)
		if err != nil {
			return nil, err
		}

		return ir.OpConstantCompositeInsn{ResultType: rt, ResultID: rid, Constituents: constituents}, nil
	case ir.OpFunction:
		rt, err := readId(f)
		if err != nil {
			return nil, err
		}

		rid, err := readResultId(f)
		if err != nil {
			return nil, err
		}

		ctrl, err := readFunctionControl(f)
		if err != nil {
			return nil, err
		}

		fnType, err := readId(f)
		if err != nil {
			return nil, err
		}

		return ir.OpFunctionInsn{ResultType: rt, ResultID: rid, Control: ctrl, FnType: fnType}, nil
	case ir.OpFunctionParameter:
		rt, err := readId(f)
		if err != nil {
			return nil, err
		}

		rid, err := readResultId(f)
		if err != nil {
			return nil, err
		}

		return ir.OpFunctionParameterInsn{ResultType: rt, ResultID: rid}, nil
	case ir.OpFunctionEnd:
		return ir.OpFunctionEndInsn{}, nil
	case ir.OpFunctionCall:
		rt, err := readId(f)
		if err != nil {
			return nil, err
		}

		rid, err := readResultId(f)
		if err != nil {
			return nil, err
		}

		fn, err := readId(f)
		if err != nil {
			return nil, err
		}

		args, err := readIdList(f)
		if err != nil {
			return nil, err
		}

		return ir.OpFunctionCallInsn{ResultType: rt, ResultID: rid, Function: fn, Arguments: args}, nil
	case ir.OpVariable:
		rt, err := readId(f)
		if err != nil {
			return nil, err
		}

		rid, err := readResultId(f)
		if err != nil {
			return nil, err
		}

		storage, err := readStorageClass(f)
		if err != nil {
			return nil, err
		}

		init, err := readOptionalId(f)
		if err != nil {
			return nil, err
		}

		return ir.OpVariableInsn{ResultType: rt, ResultID: rid, Storage: storage, Initializer: init}, nil
	case ir.OpLoad:
		rt, err := readId(f)
		if err != nil {
			return nil, err
		}

		rid, err := readResultId(f)
		if err != nil {
			return nil, err
		}

		ptr, err := readId(f)
		if err != nil {
			return nil, err
		}

		access, align, err := readMemoryAccess(f)
		if err != nil {
			return nil, err
		}

		return ir.OpLoadInsn{ResultType: rt, ResultID: rid, Pointer: ptr, Access: access, Alignment: align}, nil
	case ir.OpStore:
		ptr, err := readId(f)
		if err != nil {
			return nil, err
		}

		obj, err := readId(f)
		if err != nil {
			return nil, err
		}

		access, align, err := readMemoryAccess(f)
		if err != nil {
			return nil, err
		}

		return ir.OpStoreInsn{Pointer: ptr, Object: obj, Access: access, Alignment: align}, nil
	case ir.OpAccessChain:
		rt, err := readId(f)
		if err != nil {
			return nil, err
		}

		rid, err := readResultId(f)
		if err != nil {
			return nil, err
		}

		base, err := readId(f)
		if err != nil {
			return nil, err
		}

		indexes, err := readIdList(f)
		if err != nil {
			return nil, err
		}

		return ir.OpAccessChainInsn{ResultType: rt, ResultID: rid, Base: base, Indexes: indexes}, nil
	case ir.OpDecorate:
		target, err := readId(f)
		if err != nil {
			return nil, err
		}

		dec, err := readDecoration(f)
		if err != nil {
			return nil, err
		}

		return ir.OpDecorateInsn{Target: target, Decoration: dec}, nil
	case ir.OpMemberDecorate:
		target, err := readId(f)
		if err != nil {
			return nil, err
		}

		member, err := readLiteral(f)
		if err != nil {
			return nil, err
		}

		dec, err := readDecoration(f)
		if err != nil {
			return nil, err
		}

		return ir.OpMemberDecorateInsn{Target: target, Member: member, Decoration: dec}, nil
	case ir.OpConvertUToF:
		ops, err := readUnaryOperands(f)
		if err != nil {
			return nil, err
		}

		var insn ir.OpConvertUToFInsn
		insn.ResultType, insn.ResultID, insn.Operand = ops.ResultType, ops.ResultID, ops.Operand

		return insn, nil
	case ir.OpBitcast:
		ops, err := readUnaryOperands(f)
		if err != nil {
			return nil, err
		}

		var insn ir.OpBitcastInsn
		insn.ResultType, insn.ResultID, insn.Operand = ops.ResultType, ops.ResultID, ops.Operand

		return insn, nil
	case ir.OpPhi:
		rt, err := readId(f)
		if err != nil {
			return nil, err
		}

		rid, err := readResultId(f)
		if err != nil {
			return nil, err
		}

		pairs, err := readPhiPairs(f)
		if err != nil {
			return nil, err
		}

		return ir.OpPhiInsn{ResultType: rt, ResultID: rid, Pairs: pairs}, nil
	case ir.OpSelectionMerge:
		merge, err := readId(f)
		if err != nil {
			return nil, err
		}

		ctrl, err := readSelectionControl(f)
		if err != nil {
			return nil, err
		}

		return ir.OpSelectionMergeInsn{MergeBlock: merge, Control: ctrl}, nil
	case ir.OpLoopMerge:
		merge, err := readId(f)
		if err != nil {
			return nil, err
		}

		cont, err := readId(f)
		if err != nil {
			return nil, err
		}

		ctrl, dep, err := readLoopControl(f)
		if err != nil {
			return nil, err
		}

		return ir.OpLoopMergeInsn{MergeBlock: merge, ContinueTarget: cont, Control: ctrl, DependencyLength: dep}, nil
	case ir.OpLabel:
		rid, err := readResultId(f)
		if err != nil {
			return nil, err
		}

		return ir.OpLabelInsn{ResultID: rid}, nil
	case ir.OpBranch:
		target, err := readId(f)
		if err != nil {
			return nil, err
		}

		return ir.OpBranchInsn{Target: target}, nil
	case ir.OpBranchConditional:
		cond, err := readId(f)
		if err != nil {
			return nil, err
		}

		t, err := readId(f)
		if err != nil {
			return nil, err
		}

		fa, err := readId(f)
		if err != nil {
			return nil, err
		}

		weights, err := readBranchWeights(f)
		if err != nil {
			return nil, err
		}

		return ir.OpBranchConditionalInsn{Condition: cond, TrueLabel: t, FalseLabel: fa, Weights: weights}, nil
	case ir.OpReturn:
		return ir.OpReturnInsn{}, nil
	case ir.OpReturnValue:
		v, err := readId(f)
		if err != nil {
			return nil, err
		}

		return ir.OpReturnValueInsn{Value: v}, nil
	case ir.OpUnreachable:
		return ir.OpUnreachableInsn{}, nil
	default:
		return d.decodeBinaryOrCompare(op, f)
	}
}

// decodeBinaryOrCompare handles every opcode sharing the plain {result-type,
// result-id, operand1, operand2} shape: arithmetic, bitwise and comparison.
// Split out from decode to keep that switch from drowning in identical
// four-line cases.
func (d *Decoder) decodeBinaryOrCompare(op ir.Op, f *token.Frame) (ir.Instruction, error) {
	ctor, ok := binaryConstructors[op]
	if !ok {
		return nil, nil
	}

	ops, err := readBinaryOperands(f)
	if err != nil {
		return nil, err
	}

	return ctor(ops), nil
}

// binaryCtor builds T (one of the binaryResult-embedding *Insn types) from
// its four operand words.  T's shared shape is embedded unexported in
// package ir, so its fields can only be set through promoted selectors, not
// a keyed composite literal — hence the explicit assignment here instead of
// T{ResultType: ...}.
func binaryCtor[T interface {
	ir.Instruction
}](set func(*T, binaryOperands)) func(binaryOperands) ir.Instruction {
	return func(ops binaryOperands) ir.Instruction {
		var insn T
		set(&insn, ops)

		return insn
	}
}

var binaryConstructors = map[ir.Op]func(binaryOperands) ir.Instruction{
	ir.OpIAdd: binaryCtor(func(i *ir.OpIAddInsn, o binaryOperands) {
		i.ResultType, i.ResultID, i.Operand1, i.Operand2 = o.ResultType, o.ResultID, o.Operand1, o.Operand2
	}),
	ir.OpFAdd: binaryCtor(func(i *ir.OpFAddInsn, o binaryOperands) {
		i.ResultType, i.ResultID, i.Operand1, i.Operand2 = o.ResultType, o.ResultID, o.Operand1, o.Operand2
	}),
	ir.OpISub: binaryCtor(func(i *ir.OpISubInsn, o binaryOperands) {
		i.ResultType, i.ResultID, i.Operand1, i.Operand2 = o.ResultType, o.ResultID, o.Operand1, o.Operand2
	}),
	ir.OpFSub: binaryCtor(func(i *ir.OpFSubInsn, o binaryOperands) {
		i.ResultType, i.ResultID, i.Operand1, i.Operand2 = o.ResultType, o.ResultID, o.Operand1, o.Operand2
	}),
	ir.OpIMul: binaryCtor(func(i *ir.OpIMulInsn, o binaryOperands) {
		i.ResultType, i.ResultID, i.Operand1, i.Operand2 = o.ResultType, o.ResultID, o.Operand1, o.Operand2
	}),
	ir.OpFMul: binaryCtor(func(i *ir.OpFMulInsn, o binaryOperands) {
		i.ResultType, i.ResultID, i.Operand1, i.Operand2 = o.ResultType, o.ResultID, o.Operand1, o.Operand2
	}),
	ir.OpUDiv: binaryCtor(func(i *ir.OpUDivInsn, o binaryOperands) {
		i.ResultType, i.ResultID, i.Operand1, i.Operand2 = o.ResultType, o.ResultID, o.Operand1, o.Operand2
	}),
	ir.OpSDiv: binaryCtor(func(i *ir.OpSDivInsn, o binaryOperands) {
		i.ResultType, i.ResultID, i.Operand1, i.Operand2 = o.ResultType, o.ResultID, o.Operand1, o.Operand2
	}),
	ir.OpFDiv: binaryCtor(func(i *ir.OpFDivInsn, o binaryOperands) {
		i.ResultType, i.ResultID, i.Operand1, i.Operand2 = o.ResultType, o.ResultID, o.Operand1, o.Operand2
	}),
	ir.OpUMod: binaryCtor(func(i *ir.OpUModInsn, o binaryOperands) {
		i.ResultType, i.ResultID, i.Operand1, i.Operand2 = o.ResultType, o.ResultID, o.Operand1, o.Operand2
	}),
	ir.OpSRem: binaryCtor(func(i *ir.OpSRemInsn, o binaryOperands) {
		i.ResultType, i.ResultID, i.Operand1, i.Operand2 = o.ResultType, o.ResultID, o.Operand1, o.Operand2
	}),
	ir.OpSMod: binaryCtor(func(i *ir.OpSModInsn, o binaryOperands) {
		i.ResultType, i.ResultID, i.Operand1, i.Operand2 = o.ResultType, o.ResultID, o.Operand1, o.Operand2
	}),
	ir.OpFRem: binaryCtor(func(i *ir.OpFRemInsn, o binaryOperands) {
		i.ResultType, i.ResultID, i.Operand1, i.Operand2 = o.ResultType, o.ResultID, o.Operand1, o.Operand2
	}),
	ir.OpIAddCarry: binaryCtor(func(i *ir.OpIAddCarryInsn, o binaryOperands) {
		i.ResultType, i.ResultID, i.Operand1, i.Operand2 = o.ResultType, o.ResultID, o.Operand1, o.Operand2
	}),
	ir.OpISubBorrow: binaryCtor(func(i *ir.OpISubBorrowInsn, o binaryOperands) {
		i.ResultType, i.ResultID, i.Operand1, i.Operand2 = o.ResultType, o.ResultID, o.Operand1, o.Operand2
	}),
	ir.OpUMulExtended: binaryCtor(func(i *ir.OpUMulExtendedInsn, o binaryOperands) {
		i.ResultType, i.ResultID, i.Operand1, i.Operand2 = o.ResultType, o.ResultID, o.Operand1, o.Operand2
	}),
	ir.OpSMulExtended: binaryCtor(func(i *ir.OpSMulExtendedInsn, o binaryOperands) {
		i.ResultType, i.ResultID, i.Operand1, i.Operand2 = o.ResultType, o.ResultID, o.Operand1, o.Operand2
	}),
	ir.OpBitwiseOr: binaryCtor(func(i *ir.OpBitwiseOrInsn, o binaryOperands) {
		i.ResultType, i.ResultID, i.Operand1, i.Operand2 = o.ResultType, o.ResultID, o.Operand1, o.Operand2
	}),
	ir.OpBitwiseXor: binaryCtor(func(i *ir.OpBitwiseXorInsn, o binaryOperands) {
		i.ResultType, i.ResultID, i.Operand1, i.Operand2 = o.ResultType, o.ResultID, o.Operand1, o.Operand2
	}),
	ir.OpBitwiseAnd: binaryCtor(func(i *ir.OpBitwiseAndInsn, o binaryOperands) {
		i.ResultType, i.ResultID, i.Operand1, i.Operand2 = o.ResultType, o.ResultID, o.Operand1, o.Operand2
	}),
	ir.OpIEqual: binaryCtor(func(i *ir.OpIEqualInsn, o binaryOperands) {
		i.ResultType, i.ResultID, i.Operand1, i.Operand2 = o.ResultType, o.ResultID, o.Operand1, o.Operand2
	}),
	ir.OpINotEqual: binaryCtor(func(i *ir.OpINotEqualInsn, o binaryOperands) {
		i.ResultType, i.ResultID, i.Operand1, i.Operand2 = o.ResultType, o.ResultID, o.Operand1, o.Operand2
	}),
	ir.OpUGreaterThan: binaryCtor(func(i *ir.OpUGreaterThanInsn, o binaryOperands) {
		i.ResultType, i.ResultID, i.Operand1, i.Operand2 = o.ResultType, o.ResultID, o.Operand1, o.Operand2
	}),
	ir.OpSGreaterThan: binaryCtor(func(i *ir.OpSGreaterThanInsn, o binaryOperands) {
		i.ResultType, i.ResultID, i.Operand1, i.Operand2 = o.ResultType, o.ResultID, o.Operand1, o.Operand2
	}),
	ir.OpUGreaterThanEqual: binaryCtor(func(i *ir.OpUGreaterThanEqualInsn, o binaryOperands) {
		i.ResultType, i.ResultID, i.Operand1, i.Operand2 = o.ResultType, o.ResultID, o.Operand1, o.Operand2
	}),
	ir.OpSGreaterThanEqual: binaryCtor(func(i *ir.OpSGreaterThanEqualInsn, o binaryOperands) {
		i.ResultType, i.ResultID, i.Operand1, i.Operand2 = o.ResultType, o.ResultID, o.Operand1, o.Operand2
	}),
	ir.OpULessThan: binaryCtor(func(i *ir.OpULessThanInsn, o binaryOperands) {
		i.ResultType, i.ResultID, i.Operand1, i.Operand2 = o.ResultType, o.ResultID, o.Operand1, o.Operand2
	}),
	ir.OpSLessThan: binaryCtor(func(i *ir.OpSLessThanInsn, o binaryOperands) {
		i.ResultType, i.ResultID, i.Operand1, i.Operand2 = o.ResultType, o.ResultID, o.Operand1, o.Operand2
	}),
	ir.OpULessThanEqual: binaryCtor(func(i *ir.OpULessThanEqualInsn, o binaryOperands) {
		i.ResultType, i.ResultID, i.Operand1, i.Operand2 = o.ResultType, o.ResultID, o.Operand1, o.Operand2
	}),
	ir.OpSLessThanEqual: binaryCtor(func(i *ir.OpSLessThanEqualInsn, o binaryOperands) {
		i.ResultType, i.ResultID, i.Operand1, i.Operand2 = o.ResultType, o.ResultID, o.Operand1, o.Operand2
	}),
	ir.OpFOrdEqual: binaryCtor(func(i *ir.OpFOrdEqualInsn, o binaryOperands) {
		i.ResultType, i.ResultID, i.Operand1, i.Operand2 = o.ResultType, o.ResultID, o.Operand1, o.Operand2
	}),
	ir.OpFUnordEqual: binaryCtor(func(i *ir.OpFUnordEqualInsn, o binaryOperands) {
		i.ResultType, i.ResultID, i.Operand1, i.Operand2 = o.ResultType, o.ResultID, o.Operand1, o.Operand2
	}),
	ir.OpFOrdNotEqual: binaryCtor(func(i *ir.OpFOrdNotEqualInsn, o binaryOperands) {
		i.ResultType, i.ResultID, i.Operand1, i.Operand2 = o.ResultType, o.ResultID, o.Operand1, o.Operand2
	}),
	ir.OpFUnordNotEqual: binaryCtor(func(i *ir.OpFUnordNotEqualInsn, o binaryOperands) {
		i.ResultType, i.ResultID, i.Operand1, i.Operand2 = o.ResultType, o.ResultID, o.Operand1, o.Operand2
	}),
	ir.OpFOrdLessThan: binaryCtor(func(i *ir.OpFOrdLessThanInsn, o binaryOperands) {
		i.ResultType, i.ResultID, i.Operand1, i.Operand2 = o.ResultType, o.ResultID, o.Operand1, o.Operand2
	}),
	ir.OpFUnordLessThan: binaryCtor(func(i *ir.OpFUnordLessThanInsn, o binaryOperands) {
		i.ResultType, i.ResultID, i.Operand1, i.Operand2 = o.ResultType, o.ResultID, o.Operand1, o.Operand2
	}),
	ir.OpFOrdGreaterThan: binaryCtor(func(i *ir.OpFOrdGreaterThanInsn, o binaryOperands) {
		i.ResultType, i.ResultID, i.Operand1, i.Operand2 = o.ResultType, o.ResultID, o.Operand1, o.Operand2
	}),
	ir.OpFUnordGreaterThan: binaryCtor(func(i *ir.OpFUnordGreaterThanInsn, o binaryOperands) {
		i.ResultType, i.ResultID, i.Operand1, i.Operand2 = o.ResultType, o.ResultID, o.Operand1, o.Operand2
	}),
	ir.OpFOrdLessThanEqual: binaryCtor(func(i *ir.OpFOrdLessThanEqualInsn, o binaryOperands) {
		i.ResultType, i.ResultID, i.Operand1, i.Operand2 = o.ResultType, o.ResultID, o.Operand1, o.Operand2
	}),
	ir.OpFUnordLessThanEqual: binaryCtor(func(i *ir.OpFUnordLessThanEqualInsn, o binaryOperands) {
		i.ResultType, i.ResultID, i.Operand1, i.Operand2 = o.ResultType, o.ResultID, o.Operand1, o.Operand2
	}),
	ir.OpFOrdGreaterThanEqual: binaryCtor(func(i *ir.OpFOrdGreaterThanEqualInsn, o binaryOperands) {
		i.ResultType, i.ResultID, i.Operand1, i.Operand2 = o.ResultType, o.ResultID, o.Operand1, o.Operand2
	}),
	ir.OpFUnordGreaterThanEqual: binaryCtor(func(i *ir.OpFUnordGreaterThanEqualInsn, o binaryOperands) {
		i.ResultType, i.ResultID, i.Operand1, i.Operand2 = o.ResultType, o.ResultID, o.Operand1, o.Operand2
	}),
}

func (d *Decoder) readSource(f *token.Frame) (ir.Instruction, error) {
	lang, err := readLiteral(f)
	if err != nil {
		return nil, err
	}

	version, err := readLiteral(f)
	if err != nil {
		return nil, err
	}

	file, err := readOptionalId(f)
	if err != nil {
		return nil, err
	}

	source, err := readOptionalString(f)
	if err != nil {
		return nil, err
	}

	return ir.OpSourceInsn{
		Language: ir.SourceLanguage(lang),
		Version:  version,
		File:     file,
		Source:   source,
	}, nil
}

func (d *Decoder) readExtInstImport(f *token.Frame) (ir.Instruction, error) {
	rid, err := readResultId(f)
	if err != nil {
		return nil, err
	}

	name, err := readString(f)
	if err != nil {
		return nil, err
	}

	for _, set := range d.known {
		if set.Name() != string(name) {
			continue
		}

		if _, exists := d.bound[rid]; exists {
			return nil, &DuplicateResultIdError{Id: rid}
		}

		d.bound[rid] = set.Duplicate()

		return ir.OpExtInstImportInsn{ResultID: rid, Name_: name}, nil
	}

	return nil, &UnknownInstSetError{SetName: string(name)}
}

func (d *Decoder) readExtInst(f *token.Frame) (ir.Instruction, error) {
	rt, err := readId(f)
	if err != nil {
		return nil, err
	}

	rid, err := readResultId(f)
	if err != nil {
		return nil, err
	}

	setID, err := readId(f)
	if err != nil {
		return nil, err
	}

	sub, err := readLiteral(f)
	if err != nil {
		return nil, err
	}

	set, ok := d.bound[ir.ResultId(setID)]
	if !ok {
		return nil, &UnknownInstSetIdError{Id: setID}
	}

	value, err := set.ReadInstruction(sub, f)
	if err != nil {
		return nil, err
	}

	return ir.OpExtInstInsn{ResultType: rt, ResultID: rid, Set: setID, Instruction: value}, nil
}
