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
package ir

// Numeric opcodes recognised by this decoder.  Numbering follows the
// Khronos SPIR-V registry so that fixtures produced by real front-ends
// remain meaningful.
const (
	OpNop              Op = 0
	OpUndef            Op = 1
	OpSourceContinued  Op = 2
	OpSource           Op = 3
	OpSourceExtension  Op = 4
	OpName             Op = 5
	OpMemberName       Op = 6
	OpString           Op = 7
	OpLine             Op = 8
	OpExtension        Op = 10
	OpExtInstImport    Op = 11
	OpExtInst          Op = 12
	OpMemoryModel      Op = 14
	OpEntryPoint       Op = 15
	OpExecutionMode    Op = 16
	OpCapability       Op = 17
	OpTypeVoid         Op = 19
	OpTypeBool         Op = 20
	OpTypeInt          Op = 21
	OpTypeFloat        Op = 22
	OpTypeVector       Op = 23
	OpTypeMatrix       Op = 24
	OpTypeArray        Op = 28
	OpTypeRuntimeArray Op = 29
	OpTypeStruct       Op = 30
	OpTypePointer      Op = 32
	OpTypeFunction     Op = 33
	OpConstantTrue     Op = 41
	OpConstantFalse    Op = 42
	OpConstant         Op = 43
	OpConstantComposite Op = 44
	OpFunction         Op = 54
	OpFunctionParameter Op = 55
	OpFunctionEnd      Op = 56
	OpFunctionCall     Op = 57
	OpVariable         Op = 59
	OpLoad             Op = 61
	OpStore            Op = 62
	OpAccessChain      Op = 65
	OpDecorate         Op = 71
	OpMemberDecorate   Op = 72
	OpConvertUToF      Op = 112
	OpBitcast          Op = 124
	OpIAdd             Op = 128
	OpFAdd             Op = 129
	OpISub             Op = 130
	OpFSub             Op = 131
	OpIMul             Op = 132
	OpFMul             Op = 133
	OpUDiv             Op = 134
	OpSDiv             Op = 135
	OpFDiv             Op = 136
	OpUMod             Op = 137
	OpSRem             Op = 138
	OpSMod             Op = 139
	OpFRem             Op = 140
	OpIAddCarry        Op = 149
	OpISubBorrow       Op = 150
	OpUMulExtended     Op = 151
	OpSMulExtended     Op = 152
	OpBitwiseOr        Op = 197
	OpBitwiseXor       Op = 198
	OpBitwiseAnd       Op = 199
	OpIEqual           Op = 170
	OpINotEqual        Op = 171
	OpUGreaterThan     Op = 172
	OpSGreaterThan     Op = 173
	OpUGreaterThanEqual Op = 174
	OpSGreaterThanEqual Op = 175
	OpULessThan        Op = 176
	OpSLessThan        Op = 177
	OpULessThanEqual   Op = 178
	OpSLessThanEqual   Op = 179
	OpFOrdEqual            Op = 180
	OpFUnordEqual          Op = 181
	OpFOrdNotEqual         Op = 182
	OpFUnordNotEqual       Op = 183
	OpFOrdLessThan         Op = 184
	OpFUnordLessThan       Op = 185
	OpFOrdGreaterThan      Op = 186
	OpFUnordGreaterThan    Op = 187
	OpFOrdLessThanEqual    Op = 188
	OpFUnordLessThanEqual  Op = 189
	OpFOrdGreaterThanEqual Op = 190
	OpFUnordGreaterThanEqual Op = 191
	OpPhi              Op = 245
	OpLoopMerge        Op = 246
	OpSelectionMerge   Op = 247
	OpLabel            Op = 248
	OpBranch           Op = 249
	OpBranchConditional Op = 250
	OpSwitch           Op = 251
	OpReturn           Op = 253
	OpReturnValue      Op = 254
	OpUnreachable      Op = 255
)

// unimplementedOpcodes names opcodes this decoder recognises (so an
// unrecognised-but-real opcode is distinguished from a genuinely unknown
// one) but deliberately does not construct a typed variant for — these
// surface as UnimplementedOp(name) rather than UnknownOp.
var unimplementedOpcodes = map[Op]string{
	9:   "OpExtInstImport2", // reserved slot, kept distinct from OpExtInstImport
	13:  "OpExtInstAnnot",
	18:  "OpTypeForwardPointer",
	25:  "OpTypeImage",
	26:  "OpTypeSampler",
	27:  "OpTypeSampledImage",
	31:  "OpTypeOpaque",
	34:  "OpTypeEvent",
	35:  "OpTypeDeviceEvent",
	36:  "OpTypeQueue",
	37:  "OpTypePipe",
	45:  "OpConstantSampler",
	46:  "OpConstantNull",
	50:  "OpSpecConstantTrue",
	58:  "OpFunctionParameterAttribute",
	60:  "OpImageTexelPointer",
	63:  "OpCopyMemory",
	68:  "OpInBoundsAccessChain",
	79:  "OpVectorExtractDynamic",
	80:  "OpVectorInsertDynamic",
	81:  "OpVectorShuffle",
	82:  "OpCompositeConstruct",
	83:  "OpCompositeExtract",
	84:  "OpCompositeInsert",
	87:  "OpTranspose",
	90:  "OpSampledImage",
	141: "OpFMod",
	145: "OpVectorTimesScalar",
	154: "OpShiftRightLogical",
	155: "OpShiftRightArithmetic",
	156: "OpShiftLeftLogical",
	200: "OpNot",
	203: "OpLogicalEqual",
	204: "OpLogicalNotEqual",
	205: "OpLogicalOr",
	206: "OpLogicalAnd",
	207: "OpLogicalNot",
	208: "OpSelect",
	224: "OpConvertFToU",
	225: "OpConvertFToS",
	226: "OpConvertSToF",
	230: "OpFConvert",
	232: "OpQuantizeToF16",
	233: "OpControlBarrier",
	234: "OpMemoryBarrier",
	227: "OpUConvert",
	263: "OpAtomicLoad",
	264: "OpAtomicStore",
	265: "OpAtomicExchange",
	327: "OpGroupAll",
	328: "OpGroupAny",
	331: "OpLoopControlINTEL",
	OpSwitch: "OpSwitch",
}

// Mnemonics is the complete set of opcode names this decoder knows —
// whether implemented or merely recognised — used by the opcode dispatch
// table (isa/decode.go) to classify an opcode number as unknown,
// unimplemented, or decoded.
var Mnemonics = buildMnemonics()

func buildMnemonics() map[Op]string {
	m := map[Op]string{
		OpNop: "OpNop", OpUndef: "OpUndef", OpSourceContinued: "OpSourceContinued",
		OpSource: "OpSource", OpSourceExtension: "OpSourceExtension", OpName: "OpName",
		OpMemberName: "OpMemberName", OpString: "OpString", OpLine: "OpLine",
		OpExtension: "OpExtension", OpExtInstImport: "OpExtInstImport", OpExtInst: "OpExtInst",
		OpMemoryModel: "OpMemoryModel", OpEntryPoint: "OpEntryPoint", OpExecutionMode: "OpExecutionMode",
		OpCapability: "OpCapability", OpTypeVoid: "OpTypeVoid", OpTypeBool: "OpTypeBool",
		OpTypeInt: "OpTypeInt", OpTypeFloat: "OpTypeFloat", OpTypeVector: "OpTypeVector",
		OpTypeMatrix: "OpTypeMatrix", OpTypeArray: "OpTypeArray", OpTypeRuntimeArray: "OpTypeRuntimeArray",
		OpTypeStruct: "OpTypeStruct", OpTypePointer: "OpTypePointer", OpTypeFunction: "OpTypeFunction",
		OpConstantTrue: "OpConstantTrue", OpConstantFalse: "OpConstantFalse", OpConstant: "OpConstant",
		OpConstantComposite: "OpConstantComposite", OpFunction: "OpFunction",
		OpFunctionParameter: "OpFunctionParameter", OpFunctionEnd: "OpFunctionEnd",
		OpFunctionCall: "OpFunctionCall", OpVariable: "OpVariable", OpLoad: "OpLoad", OpStore: "OpStore",
		OpAccessChain: "OpAccessChain", OpDecorate: "OpDecorate", OpMemberDecorate: "OpMemberDecorate",
		OpConvertUToF: "OpConvertUToF", OpBitcast: "OpBitcast", OpIAdd: "OpIAdd", OpFAdd: "OpFAdd",
		OpISub: "OpISub", OpFSub: "OpFSub", OpIMul: "OpIMul", OpFMul: "OpFMul", OpUDiv: "OpUDiv",
		OpSDiv: "OpSDiv", OpFDiv: "OpFDiv", OpUMod: "OpUMod", OpSRem: "OpSRem", OpSMod: "OpSMod",
		OpFRem: "OpFRem", OpIAddCarry: "OpIAddCarry", OpISubBorrow: "OpISubBorrow",
		OpUMulExtended: "OpUMulExtended", OpSMulExtended: "OpSMulExtended", OpBitwiseOr: "OpBitwiseOr",
		OpBitwiseXor: "OpBitwiseXor", OpBitwiseAnd: "OpBitwiseAnd", OpIEqual: "OpIEqual",
		OpINotEqual: "OpINotEqual", OpUGreaterThan: "OpUGreaterThan", OpSGreaterThan: "OpSGreaterThan",
		OpUGreaterThanEqual: "OpUGreaterThanEqual", OpSGreaterThanEqual: "OpSGreaterThanEqual",
		OpULessThan: "OpULessThan", OpSLessThan: "OpSLessThan", OpULessThanEqual: "OpULessThanEqual",
		OpSLessThanEqual: "OpSLessThanEqual", OpFOrdEqual: "OpFOrdEqual", OpFUnordEqual: "OpFUnordEqual",
		OpFOrdNotEqual: "OpFOrdNotEqual", OpFUnordNotEqual: "OpFUnordNotEqual",
		OpFOrdLessThan: "OpFOrdLessThan", OpFUnordLessThan: "OpFUnordLessThan",
		OpFOrdGreaterThan: "OpFOrdGreaterThan", OpFUnordGreaterThan: "OpFUnordGreaterThan",
		OpFOrdLessThanEqual: "OpFOrdLessThanEqual", OpFUnordLessThanEqual: "OpFUnordLessThanEqual",
		OpFOrdGreaterThanEqual: "OpFOrdGreaterThanEqual", OpFUnordGreaterThanEqual: "OpFUnordGreaterThanEqual",
		OpPhi: "OpPhi", OpLoopMerge: "OpLoopMerge", OpSelectionMerge: "OpSelectionMerge",
		OpLabel: "OpLabel", OpBranch: "OpBranch", OpBranchConditional: "OpBranchConditional",
		OpReturn: "OpReturn", OpReturnValue: "OpReturnValue",
		OpUnreachable: "OpUnreachable",
	}

	for op, name := range unimplementedOpcodes {
		m[op] = name
	}

	return m
}

// IsImplemented reports whether op has a typed constructor in this
// decoder (as opposed to being merely recognised, see unimplementedOpcodes).
func (op Op) IsImplemented() bool {
	_, unimplemented := unimplementedOpcodes[op]
	_, known := Mnemonics[op]

	return known && !unimplemented
}

// IsKnown reports whether op is recognised at all (implemented or not).
func (op Op) IsKnown() bool {
	_, ok := Mnemonics[op]
	return ok
}
