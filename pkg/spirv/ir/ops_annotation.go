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

// OpDecorateInsn attaches a decoration to an id.
type OpDecorateInsn struct {
	noResult
	Target     Id
	Decoration DecorationPayload
}

func (OpDecorateInsn) Opcode() Op   { return OpDecorate }
func (OpDecorateInsn) Name() string { return "OpDecorate" }
func (o OpDecorateInsn) Operands() []Arg {
	return []Arg{o.Target, o.Decoration}
}

// OpMemberDecorateInsn attaches a decoration to a specific member of a
// struct type.
type OpMemberDecorateInsn struct {
	noResult
	Target     Id
	Member     uint32
	Decoration DecorationPayload
}

func (OpMemberDecorateInsn) Opcode() Op   { return OpMemberDecorate }
func (OpMemberDecorateInsn) Name() string { return "OpMemberDecorate" }
func (o OpMemberDecorateInsn) Operands() []Arg {
	return []Arg{o.Target, Literal(o.Member), o.Decoration}
}
