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

// readEnum reads one word and resolves it against decode, the shape shared
// by every closed-table enum operand (AddressingModel, Capability, ...).
func readEnum[T ~uint32](f *token.Frame, kind string, decode func(uint32) (T, bool)) (T, error) {
	w, err := f.ReadWord()
	if err != nil {
		return 0, err
	}

	v, ok := decode(w)
	if !ok {
		return 0, &UnknownEnumError{Kind: kind, Word: w}
	}

	return v, nil
}

func readAddressingModel(f *token.Frame) (ir.AddressingModel, error) {
	return readEnum(f, "AddressingModel", ir.DecodeAddressingModel)
}

func readMemoryModel(f *token.Frame) (ir.MemoryModel, error) {
	return readEnum(f, "MemoryModel", ir.DecodeMemoryModel)
}

func readExecutionModel(f *token.Frame) (ir.ExecutionModel, error) {
	return readEnum(f, "ExecutionModel", ir.DecodeExecutionModel)
}

func readCapability(f *token.Frame) (ir.Capability, error) {
	return readEnum(f, "Capability", ir.DecodeCapability)
}

func readStorageClass(f *token.Frame) (ir.StorageClass, error) {
	return readEnum(f, "StorageClass", ir.DecodeStorageClass)
}

func readDecorationTag(f *token.Frame) (ir.Decoration, error) {
	return readEnum(f, "Decoration", ir.DecodeDecoration)
}

func readBuiltIn(f *token.Frame) (ir.BuiltIn, error) {
	return readEnum(f, "BuiltIn", ir.DecodeBuiltIn)
}

func readExecutionModeTag(f *token.Frame) (ir.ExecutionModeTag, error) {
	return readEnum(f, "ExecutionModeTag", ir.DecodeExecutionModeTag)
}

// readDecoration reads an OpDecorate/OpMemberDecorate sub-record: a tag plus
// whatever trailing payload that tag implies.
func readDecoration(f *token.Frame) (ir.DecorationPayload, error) {
	tag, err := readDecorationTag(f)
	if err != nil {
		return ir.DecorationPayload{}, err
	}

	switch {
	case tag == ir.DecorationBuiltIn:
		b, err := readBuiltIn(f)
		if err != nil {
			return ir.DecorationPayload{}, err
		}

		return ir.DecorationPayload{Tag: tag, BuiltIn: b}, nil
	case tag.HasLiteralPayload():
		lit, err := readLiteral(f)
		if err != nil {
			return ir.DecorationPayload{}, err
		}

		return ir.DecorationPayload{Tag: tag, Literal: lit}, nil
	default:
		return ir.DecorationPayload{Tag: tag}, nil
	}
}

// readExecutionMode reads an OpExecutionMode sub-record: a tag plus zero,
// one or three trailing literals, or one trailing id.
func readExecutionMode(f *token.Frame) (ir.ExecutionModeOperand, error) {
	tag, err := readExecutionModeTag(f)
	if err != nil {
		return ir.ExecutionModeOperand{}, err
	}

	switch tag.PayloadKind() {
	case ir.ExecutionModePayloadNone:
		return ir.ExecutionModeOperand{Tag: tag}, nil
	case ir.ExecutionModePayloadOneId:
		id, err := readId(f)
		if err != nil {
			return ir.ExecutionModeOperand{}, err
		}

		return ir.ExecutionModeOperand{Tag: tag, Target: id}, nil
	case ir.ExecutionModePayloadThreeLiterals:
		lits := make([]uint32, 3)

		for i := range lits {
			lits[i], err = readLiteral(f)
			if err != nil {
				return ir.ExecutionModeOperand{}, err
			}
		}

		return ir.ExecutionModeOperand{Tag: tag, Literals: lits}, nil
	default: // ExecutionModePayloadOneLiteral
		lit, err := readLiteral(f)
		if err != nil {
			return ir.ExecutionModeOperand{}, err
		}

		return ir.ExecutionModeOperand{Tag: tag, Literals: []uint32{lit}}, nil
	}
}
