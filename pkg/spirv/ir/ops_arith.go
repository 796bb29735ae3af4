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

// Binary arithmetic opcodes.  All share the {result-type, result-id,
// operand1, operand2} shape via the embedded binaryResult.

type OpIAddInsn struct{ binaryResult }

func (OpIAddInsn) Opcode() Op   { return OpIAdd }
func (OpIAddInsn) Name() string { return "OpIAdd" }

type OpFAddInsn struct{ binaryResult }

func (OpFAddInsn) Opcode() Op   { return OpFAdd }
func (OpFAddInsn) Name() string { return "OpFAdd" }

type OpISubInsn struct{ binaryResult }

func (OpISubInsn) Opcode() Op   { return OpISub }
func (OpISubInsn) Name() string { return "OpISub" }

type OpFSubInsn struct{ binaryResult }

func (OpFSubInsn) Opcode() Op   { return OpFSub }
func (OpFSubInsn) Name() string { return "OpFSub" }

type OpIMulInsn struct{ binaryResult }

func (OpIMulInsn) Opcode() Op   { return OpIMul }
func (OpIMulInsn) Name() string { return "OpIMul" }

type OpFMulInsn struct{ binaryResult }

func (OpFMulInsn) Opcode() Op   { return OpFMul }
func (OpFMulInsn) Name() string { return "OpFMul" }

type OpUDivInsn struct{ binaryResult }

func (OpUDivInsn) Opcode() Op   { return OpUDiv }
func (OpUDivInsn) Name() string { return "OpUDiv" }

type OpSDivInsn struct{ binaryResult }

func (OpSDivInsn) Opcode() Op   { return OpSDiv }
func (OpSDivInsn) Name() string { return "OpSDiv" }

type OpFDivInsn struct{ binaryResult }

func (OpFDivInsn) Opcode() Op   { return OpFDiv }
func (OpFDivInsn) Name() string { return "OpFDiv" }

type OpUModInsn struct{ binaryResult }

func (OpUModInsn) Opcode() Op   { return OpUMod }
func (OpUModInsn) Name() string { return "OpUMod" }

type OpSRemInsn struct{ binaryResult }

func (OpSRemInsn) Opcode() Op   { return OpSRem }
func (OpSRemInsn) Name() string { return "OpSRem" }

type OpSModInsn struct{ binaryResult }

func (OpSModInsn) Opcode() Op   { return OpSMod }
func (OpSModInsn) Name() string { return "OpSMod" }

type OpFRemInsn struct{ binaryResult }

func (OpFRemInsn) Opcode() Op   { return OpFRem }
func (OpFRemInsn) Name() string { return "OpFRem" }

// Extended-arithmetic opcodes that return a two-component struct result
// (e.g. {sum, carry}).  Modelled with the same binaryResult shape since the
// struct-typed ResultType already encodes the extra component — the
// decoder does not interpret result types, only carries them.

type OpIAddCarryInsn struct{ binaryResult }

func (OpIAddCarryInsn) Opcode() Op   { return OpIAddCarry }
func (OpIAddCarryInsn) Name() string { return "OpIAddCarry" }

type OpISubBorrowInsn struct{ binaryResult }

func (OpISubBorrowInsn) Opcode() Op   { return OpISubBorrow }
func (OpISubBorrowInsn) Name() string { return "OpISubBorrow" }

type OpUMulExtendedInsn struct{ binaryResult }

func (OpUMulExtendedInsn) Opcode() Op   { return OpUMulExtended }
func (OpUMulExtendedInsn) Name() string { return "OpUMulExtended" }

type OpSMulExtendedInsn struct{ binaryResult }

func (OpSMulExtendedInsn) Opcode() Op   { return OpSMulExtended }
func (OpSMulExtendedInsn) Name() string { return "OpSMulExtended" }

// Bitwise opcodes.

type OpBitwiseOrInsn struct{ binaryResult }

func (OpBitwiseOrInsn) Opcode() Op   { return OpBitwiseOr }
func (OpBitwiseOrInsn) Name() string { return "OpBitwiseOr" }

type OpBitwiseXorInsn struct{ binaryResult }

func (OpBitwiseXorInsn) Opcode() Op   { return OpBitwiseXor }
func (OpBitwiseXorInsn) Name() string { return "OpBitwiseXor" }

type OpBitwiseAndInsn struct{ binaryResult }

func (OpBitwiseAndInsn) Opcode() Op   { return OpBitwiseAnd }
func (OpBitwiseAndInsn) Name() string { return "OpBitwiseAnd" }

// Conversion opcodes share the {result-type, result-id, operand} shape.

type OpConvertUToFInsn struct{ unaryResult }

func (OpConvertUToFInsn) Opcode() Op   { return OpConvertUToF }
func (OpConvertUToFInsn) Name() string { return "OpConvertUToF" }

type OpBitcastInsn struct{ unaryResult }

func (OpBitcastInsn) Opcode() Op   { return OpBitcast }
func (OpBitcastInsn) Name() string { return "OpBitcast" }
