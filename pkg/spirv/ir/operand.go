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

// DecorationPayload is the sub-record attached to OpDecorate / OpMemberDecorate:
// a tag selecting which, if any, additional words belong to the variant.
type DecorationPayload struct {
	Tag     Decoration
	Literal uint32  // valid iff Tag.HasLiteralPayload()
	BuiltIn BuiltIn // valid iff Tag == DecorationBuiltIn
}

// String renders the decoration the way the reference disassembler does.
func (d DecorationPayload) String() string {
	switch {
	case d.Tag == DecorationBuiltIn:
		return fmt.Sprintf("%s %s", d.Tag, d.BuiltIn)
	case d.Tag.HasLiteralPayload():
		return fmt.Sprintf("%s %d", d.Tag, d.Literal)
	default:
		return d.Tag.String()
	}
}

// ExecutionModeOperand is the sub-record attached to OpExecutionMode: a tag
// dispatching among "no payload", "one u32", "three u32" and "one id".
type ExecutionModeOperand struct {
	Tag      ExecutionModeTag
	Literals []uint32 // length 0, 1 or 3 depending on Tag.PayloadKind()
	Target   Id        // valid iff Tag.PayloadKind() == ExecutionModePayloadOneId
}

// String renders the execution mode the way the reference disassembler does.
func (e ExecutionModeOperand) String() string {
	switch e.Tag.PayloadKind() {
	case ExecutionModePayloadOneId:
		return fmt.Sprintf("%s %s", e.Tag, e.Target)
	case ExecutionModePayloadNone:
		return e.Tag.String()
	default:
		s := e.Tag.String()
		for _, lit := range e.Literals {
			s += fmt.Sprintf(" %d", lit)
		}

		return s
	}
}

// BranchWeights is the optional pair of relative branch-taken weights that
// may trail a BranchConditional.
type BranchWeights struct {
	True  uint32
	False uint32
}

// String renders the weights as "<true> <false>".
func (w BranchWeights) String() string {
	return fmt.Sprintf("%d %d", w.True, w.False)
}
