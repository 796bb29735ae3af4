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

// UnknownOpInsn stands in for an opcode number this decoder has never heard
// of.  isa.Decoder.Decode returns it without reading any operand words, so
// module.Read, which requires every frame to be consumed exactly, accepts
// it only for a word count of 1 and otherwise fails with
// token.InstructionHadExcessDataError.
type UnknownOpInsn struct {
	noResult
	Code      Op
	WordCount uint16
}

func (o UnknownOpInsn) Opcode() Op   { return o.Code }
func (UnknownOpInsn) Name() string   { return "UnknownOp" }
func (o UnknownOpInsn) Operands() []Arg {
	return []Arg{Literal(uint32(o.Code)), Literal(uint32(o.WordCount))}
}

// UnimplementedOpInsn stands in for an opcode this decoder recognises by
// name but has deliberately not given a typed constructor to.
type UnimplementedOpInsn struct {
	noResult
	Code     Op
	Mnemonic string
}

func (o UnimplementedOpInsn) Opcode() Op      { return o.Code }
func (o UnimplementedOpInsn) Name() string    { return o.Mnemonic }
func (UnimplementedOpInsn) Operands() []Arg   { return nil }
