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

// This file holds the handful of shared operand shapes that recur across
// dozens of opcodes (binary arithmetic, unary conversion, comparisons).
// Each opcode still gets its own named type so the exhaustive switch in
// isa/decode.go and disasm stay dispatch-on-concrete-type, but the shape
// itself — and its Result/Operands plumbing — is written once and embedded,
// composition standing in for what would be a base class elsewhere.

// binaryResult is the {result-type, result-id, operand1, operand2} shape
// shared by every binary arithmetic, bitwise and comparison opcode.
type binaryResult struct {
	ResultType Id
	ResultID   ResultId
	Operand1   Id
	Operand2   Id
}

func (o binaryResult) Result() (ResultId, bool) { return o.ResultID, true }
func (o binaryResult) Operands() []Arg          { return []Arg{o.ResultType, o.Operand1, o.Operand2} }

// unaryResult is the {result-type, result-id, operand} shape shared by
// conversion and unary opcodes.
type unaryResult struct {
	ResultType Id
	ResultID   ResultId
	Operand    Id
}

func (o unaryResult) Result() (ResultId, bool) { return o.ResultID, true }
func (o unaryResult) Operands() []Arg          { return []Arg{o.ResultType, o.Operand} }

// noResult is embedded by opcodes that never define a value (branches,
// decorations, module-level declarations).
type noResult struct{}

func (noResult) Result() (ResultId, bool) { return 0, false }
