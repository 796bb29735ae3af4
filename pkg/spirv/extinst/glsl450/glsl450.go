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

// Package glsl450 is the in-tree reference extended-instruction set for
// "GLSL.std.450". It implements only the two trigonometric functions
// (Sin, Cos) needed to exercise the registration/dispatch contract
// end-to-end; it is not a complete GLSL.std.450 implementation.
package glsl450

import (
	"github.com/consensys/go-spirv/pkg/spirv/extinst"
	"github.com/consensys/go-spirv/pkg/spirv/ir"
	"github.com/consensys/go-spirv/pkg/spirv/token"
)

const name = "GLSL.std.450"

// Sub-opcode numbers, matching the Khronos GLSL.std.450 extended
// instruction registry.
const (
	subOpcodeSin uint32 = 13
	subOpcodeCos uint32 = 14
)

// Set is the GLSL.std.450 reference handle.  It carries no state, so
// Duplicate simply returns a fresh zero value.
type Set struct{}

// New constructs the GLSL.std.450 reference handle.
func New() Set { return Set{} }

// Name implements extinst.Set.
func (Set) Name() string { return name }

// Duplicate implements extinst.Set.
func (s Set) Duplicate() extinst.Set { return s }

// ReadInstruction implements extinst.Set.
func (s Set) ReadInstruction(subOpcode uint32, frame *token.Frame) (ir.ExtInstOpValue, error) {
	switch subOpcode {
	case subOpcodeSin:
		x, err := readOperand(frame)
		if err != nil {
			return nil, err
		}

		return Sin{X: x}, nil
	case subOpcodeCos:
		x, err := readOperand(frame)
		if err != nil {
			return nil, err
		}

		return Cos{X: x}, nil
	default:
		return nil, &extinst.UnknownExtInstOpError{SetName: name, Number: subOpcode}
	}
}

func readOperand(frame *token.Frame) (ir.Id, error) {
	w, err := frame.ReadWord()
	if err != nil {
		return 0, err
	}

	return ir.Id(w), nil
}

// Sin computes sin(x).
type Sin struct{ X ir.Id }

// OpName implements ir.ExtInstOpValue.
func (Sin) OpName() string { return "Sin" }

// String implements ir.ExtInstOpValue.
func (s Sin) String() string { return s.X.String() }

// Cos computes cos(x).
type Cos struct{ X ir.Id }

// OpName implements ir.ExtInstOpValue.
func (Cos) OpName() string { return "Cos" }

// String implements ir.ExtInstOpValue.
func (c Cos) String() string { return c.X.String() }
