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

// Comparison opcodes.  All share the {result-type, result-id, operand1,
// operand2} shape; result-type is always bool or a bool vector.

type OpIEqualInsn struct{ binaryResult }

func (OpIEqualInsn) Opcode() Op   { return OpIEqual }
func (OpIEqualInsn) Name() string { return "OpIEqual" }

type OpINotEqualInsn struct{ binaryResult }

func (OpINotEqualInsn) Opcode() Op   { return OpINotEqual }
func (OpINotEqualInsn) Name() string { return "OpINotEqual" }

type OpUGreaterThanInsn struct{ binaryResult }

func (OpUGreaterThanInsn) Opcode() Op   { return OpUGreaterThan }
func (OpUGreaterThanInsn) Name() string { return "OpUGreaterThan" }

type OpSGreaterThanInsn struct{ binaryResult }

func (OpSGreaterThanInsn) Opcode() Op   { return OpSGreaterThan }
func (OpSGreaterThanInsn) Name() string { return "OpSGreaterThan" }

type OpUGreaterThanEqualInsn struct{ binaryResult }

func (OpUGreaterThanEqualInsn) Opcode() Op   { return OpUGreaterThanEqual }
func (OpUGreaterThanEqualInsn) Name() string { return "OpUGreaterThanEqual" }

type OpSGreaterThanEqualInsn struct{ binaryResult }

func (OpSGreaterThanEqualInsn) Opcode() Op   { return OpSGreaterThanEqual }
func (OpSGreaterThanEqualInsn) Name() string { return "OpSGreaterThanEqual" }

type OpULessThanInsn struct{ binaryResult }

func (OpULessThanInsn) Opcode() Op   { return OpULessThan }
func (OpULessThanInsn) Name() string { return "OpULessThan" }

type OpSLessThanInsn struct{ binaryResult }

func (OpSLessThanInsn) Opcode() Op   { return OpSLessThan }
func (OpSLessThanInsn) Name() string { return "OpSLessThan" }

type OpULessThanEqualInsn struct{ binaryResult }

func (OpULessThanEqualInsn) Opcode() Op   { return OpULessThanEqual }
func (OpULessThanEqualInsn) Name() string { return "OpULessThanEqual" }

type OpSLessThanEqualInsn struct{ binaryResult }

func (OpSLessThanEqualInsn) Opcode() Op   { return OpSLessThanEqual }
func (OpSLessThanEqualInsn) Name() string { return "OpSLessThanEqual" }

type OpFOrdEqualInsn struct{ binaryResult }

func (OpFOrdEqualInsn) Opcode() Op   { return OpFOrdEqual }
func (OpFOrdEqualInsn) Name() string { return "OpFOrdEqual" }

type OpFUnordEqualInsn struct{ binaryResult }

func (OpFUnordEqualInsn) Opcode() Op   { return OpFUnordEqual }
func (OpFUnordEqualInsn) Name() string { return "OpFUnordEqual" }

type OpFOrdNotEqualInsn struct{ binaryResult }

func (OpFOrdNotEqualInsn) Opcode() Op   { return OpFOrdNotEqual }
func (OpFOrdNotEqualInsn) Name() string { return "OpFOrdNotEqual" }

type OpFUnordNotEqualInsn struct{ binaryResult }

func (OpFUnordNotEqualInsn) Opcode() Op   { return OpFUnordNotEqual }
func (OpFUnordNotEqualInsn) Name() string { return "OpFUnordNotEqual" }

type OpFOrdLessThanInsn struct{ binaryResult }

func (OpFOrdLessThanInsn) Opcode() Op   { return OpFOrdLessThan }
func (OpFOrdLessThanInsn) Name() string { return "OpFOrdLessThan" }

type OpFUnordLessThanInsn struct{ binaryResult }

func (OpFUnordLessThanInsn) Opcode() Op   { return OpFUnordLessThan }
func (OpFUnordLessThanInsn) Name() string { return "OpFUnordLessThan" }

type OpFOrdGreaterThanInsn struct{ binaryResult }

func (OpFOrdGreaterThanInsn) Opcode() Op   { return OpFOrdGreaterThan }
func (OpFOrdGreaterThanInsn) Name() string { return "OpFOrdGreaterThan" }

type OpFUnordGreaterThanInsn struct{ binaryResult }

func (OpFUnordGreaterThanInsn) Opcode() Op   { return OpFUnordGreaterThan }
func (OpFUnordGreaterThanInsn) Name() string { return "OpFUnordGreaterThan" }

type OpFOrdLessThanEqualInsn struct{ binaryResult }

func (OpFOrdLessThanEqualInsn) Opcode() Op   { return OpFOrdLessThanEqual }
func (OpFOrdLessThanEqualInsn) Name() string { return "OpFOrdLessThanEqual" }

type OpFUnordLessThanEqualInsn struct{ binaryResult }

func (OpFUnordLessThanEqualInsn) Opcode() Op   { return OpFUnordLessThanEqual }
func (OpFUnordLessThanEqualInsn) Name() string { return "OpFUnordLessThanEqual" }

type OpFOrdGreaterThanEqualInsn struct{ binaryResult }

func (OpFOrdGreaterThanEqualInsn) Opcode() Op   { return OpFOrdGreaterThanEqual }
func (OpFOrdGreaterThanEqualInsn) Name() string { return "OpFOrdGreaterThanEqual" }

type OpFUnordGreaterThanEqualInsn struct{ binaryResult }

func (OpFUnordGreaterThanEqualInsn) Opcode() Op   { return OpFUnordGreaterThanEqual }
func (OpFUnordGreaterThanEqualInsn) Name() string { return "OpFUnordGreaterThanEqual" }
