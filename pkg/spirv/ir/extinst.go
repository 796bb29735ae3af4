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

import "fmt"

// ExtInstOpValue is the opaque value a registered extended-instruction-set
// returns from its decoder.  The core never interprets its contents; it
// only needs display and the instruction's name for disassembly. Concrete
// extended-instruction types (see pkg/spirv/extinst/glsl450) are plain
// comparable structs, so equality is free via ==  on the concrete type.
type ExtInstOpValue interface {
	// OpName returns the extended instruction's mnemonic, e.g. "Sin".
	OpName() string
	// String renders the instruction's operands for disassembly.
	String() string
}

// OpExtInstInsn invokes one instruction from a previously imported
// extended-instruction set.
type OpExtInstInsn struct {
	ResultType  Id
	ResultID    ResultId
	Set         Id
	Instruction ExtInstOpValue
}

func (OpExtInstInsn) Opcode() Op                 { return OpExtInst }
func (OpExtInstInsn) Name() string               { return "OpExtInst" }
func (o OpExtInstInsn) Result() (ResultId, bool) { return o.ResultID, true }
func (o OpExtInstInsn) Operands() []Arg {
	return []Arg{o.ResultType, o.Set, extInstArg{o.Instruction}}
}

// extInstArg adapts an ExtInstOpValue to Arg, rendering "<Name> <operands>"
// inline the way the reference disassembler prints an ExtInst call.
type extInstArg struct{ inst ExtInstOpValue }

func (a extInstArg) String() string {
	return fmt.Sprintf("%s %s", a.inst.OpName(), a.inst.String())
}
