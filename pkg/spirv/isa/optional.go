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

// readOptionalString reads a trailing string literal only if the frame is
// not yet exhausted.
func readOptionalString(f *token.Frame) (*ir.StringArg, error) {
	if f.End() {
		return nil, nil
	}

	s, err := readString(f)
	if err != nil {
		return nil, err
	}

	return &s, nil
}

// readBranchWeights reads the optional pair of relative branch weights
// trailing an OpBranchConditional.
func readBranchWeights(f *token.Frame) (*ir.BranchWeights, error) {
	if f.End() {
		return nil, nil
	}

	t, err := readLiteral(f)
	if err != nil {
		return nil, err
	}

	fa, err := readLiteral(f)
	if err != nil {
		return nil, err
	}

	return &ir.BranchWeights{True: t, False: fa}, nil
}

// readPhiPairs reads every remaining (variable, parent) pair in an OpPhi's
// frame.
func readPhiPairs(f *token.Frame) ([]ir.PhiPair, error) {
	var out []ir.PhiPair

	for !f.End() {
		variable, err := readId(f)
		if err != nil {
			return nil, err
		}

		parent, err := readId(f)
		if err != nil {
			return nil, err
		}

		out = append(out, ir.PhiPair{Variable: variable, Parent: parent})
	}

	return out, nil
}

// binaryOperands is the {result-type, result-id, operand1, operand2} read
// shared by every binaryResult-shaped opcode.
type binaryOperands struct {
	ResultType Id
	ResultID   ResultId
	Operand1   Id
	Operand2   Id
}

// Id and ResultId alias ir's types so binaryOperands reads without an import
// cycle through ir's unexported binaryResult shape.
type (
	Id       = ir.Id
	ResultId = ir.ResultId
)

func readBinaryOperands(f *token.Frame) (binaryOperands, error) {
	rt, err := readId(f)
	if err != nil {
		return binaryOperands{}, err
	}

	rid, err := readResultId(f)
	if err != nil {
		return binaryOperands{}, err
	}

	o1, err := readId(f)
	if err != nil {
		return binaryOperands{}, err
	}

	o2, err := readId(f)
	if err != nil {
		return binaryOperands{}, err
	}

	return binaryOperands{ResultType: rt, ResultID: rid, Operand1: o1, Operand2: o2}, nil
}

// unaryOperands is the {result-type, result-id, operand} read shared by
// every unaryResult-shaped opcode.
type unaryOperands struct {
	ResultType Id
	ResultID   ResultId
	Operand    Id
}

func readUnaryOperands(f *token.Frame) (unaryOperands, error) {
	rt, err := readId(f)
	if err != nil {
		return unaryOperands{}, err
	}

	rid, err := readResultId(f)
	if err != nil {
		return unaryOperands{}, err
	}

	o, err := readId(f)
	if err != nil {
		return unaryOperands{}, err
	}

	return unaryOperands{ResultType: rt, ResultID: rid, Operand: o}, nil
}
