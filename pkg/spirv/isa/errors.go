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

// Package isa turns an opcode number and its operand frame into a typed
// ir.Instruction: the per-enum and per-bitmask operand readers, and the
// dense opcode dispatch table they back.
package isa

import (
	"fmt"

	"github.com/consensys/go-spirv/pkg/spirv/ir"
)

// UnknownEnumError reports an operand word that does not name a recognised
// value of the given closed-table enum.
type UnknownEnumError struct {
	Kind string
	Word uint32
}

func (e *UnknownEnumError) Error() string {
	return fmt.Sprintf("unknown %s value: %d", e.Kind, e.Word)
}

// UnknownMaskError reports a bitmask operand with a bit set outside the
// kind's known mask.
type UnknownMaskError struct {
	Kind string
	Word uint32
}

func (e *UnknownMaskError) Error() string {
	return fmt.Sprintf("unknown bit(s) in %s mask: 0x%x", e.Kind, e.Word)
}

// InvalidStringError reports a string-literal operand whose bytes are not
// valid UTF-8.
type InvalidStringError struct{}

func (e *InvalidStringError) Error() string { return "invalid string literal: not valid UTF-8" }

// WrongWordCountError reports an instruction whose declared word count is
// too small for the opcode's fixed-shape operands. No decode path in this
// package currently returns it: a frame that runs short fails with
// token.UnexpectedEndOfInstructionError instead.
type WrongWordCountError struct {
	Mnemonic string
}

func (e *WrongWordCountError) Error() string {
	return fmt.Sprintf("wrong word count for %s", e.Mnemonic)
}

// UnknownInstSetError reports an OpExtInstImport naming a set this decoder
// was not given a handle for.
type UnknownInstSetError struct{ SetName string }

func (e *UnknownInstSetError) Error() string {
	return fmt.Sprintf("unknown extended instruction set: %q", e.SetName)
}

// DuplicateResultIdError reports a result id bound twice, e.g. two
// OpExtInstImport instructions racing for the same id.
type DuplicateResultIdError struct{ Id ir.ResultId }

func (e *DuplicateResultIdError) Error() string {
	return fmt.Sprintf("duplicate result id: %s", e.Id)
}

// UnknownInstSetIdError reports an OpExtInst referencing a set id that was
// never bound by an OpExtInstImport.
type UnknownInstSetIdError struct{ Id ir.Id }

func (e *UnknownInstSetIdError) Error() string {
	return fmt.Sprintf("unknown extended instruction set id: %s", e.Id)
}
