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
	"github.com/consensys/go-spirv/pkg/spirv/ir"
	"github.com/consensys/go-spirv/pkg/spirv/token"
)

func readFunctionControl(f *token.Frame) (ir.FunctionControl, error) {
	w, err := f.ReadWord()
	if err != nil {
		return 0, err
	}

	m := ir.FunctionControl(w)
	if m.Unknown() {
		return 0, &UnknownMaskError{Kind: "FunctionControl", Word: w}
	}

	return m, nil
}

func readSelectionControl(f *token.Frame) (ir.SelectionControl, error) {
	w, err := f.ReadWord()
	if err != nil {
		return 0, err
	}

	m := ir.SelectionControl(w)
	if m.Unknown() {
		return 0, &UnknownMaskError{Kind: "SelectionControl", Word: w}
	}

	return m, nil
}

// readLoopControl reads a LoopMerge's control mask, plus its gated trailing
// dependency-length word when LoopControlDependencyLength is set.
func readLoopControl(f *token.Frame) (ir.LoopControl, *uint32, error) {
	w, err := f.ReadWord()
	if err != nil {
		return 0, nil, err
	}

	m := ir.LoopControl(w)
	if m.Unknown() {
		return 0, nil, &UnknownMaskError{Kind: "LoopControl", Word: w}
	}

	if !m.HasDependencyLength() {
		return m, nil, nil
	}

	length, err := readLiteral(f)
	if err != nil {
		return 0, nil, err
	}

	return m, &length, nil
}

// readMemoryAccess reads an optional Load/Store memory-access mask, plus its
// gated trailing alignment word.  Absent entirely when the frame is already
// exhausted — MemoryAccess itself is an optional trailing operand.
func readMemoryAccess(f *token.Frame) (*ir.MemoryAccess, *uint32, error) {
	if f.End() {
		return nil, nil, nil
	}

	w, err := f.ReadWord()
	if err != nil {
		return nil, nil, err
	}

	m := ir.MemoryAccess(w)
	if m.Unknown() {
		return nil, nil, &UnknownMaskError{Kind: "MemoryAccess", Word: w}
	}

	if !m.HasAlignment() {
		return &m, nil, nil
	}

	align, err := readLiteral(f)
	if err != nil {
		return nil, nil, err
	}

	return &m, &align, nil
}
