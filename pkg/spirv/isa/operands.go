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
	"unicode/utf8"

	"github.com/consensys/go-spirv/pkg/spirv/ir"
	"github.com/consensys/go-spirv/pkg/spirv/token"
)

// readId reads a single use-site id operand.
func readId(f *token.Frame) (ir.Id, error) {
	w, err := f.ReadWord()
	if err != nil {
		return 0, err
	}

	return ir.Id(w), nil
}

// readResultId reads a single definition-site id operand.
func readResultId(f *token.Frame) (ir.ResultId, error) {
	w, err := f.ReadWord()
	if err != nil {
		return 0, err
	}

	return ir.ResultId(w), nil
}

// readLiteral reads a single bare u32 literal operand.
func readLiteral(f *token.Frame) (uint32, error) {
	return f.ReadWord()
}

// readOptionalId reads a trailing id operand only if the frame is not yet
// exhausted, reporting its presence as a *ir.Id so callers can thread it
// straight into an optional struct field.
func readOptionalId(f *token.Frame) (*ir.Id, error) {
	if f.End() {
		return nil, nil
	}

	id, err := readId(f)
	if err != nil {
		return nil, err
	}

	return &id, nil
}

// readOptionalLiteral reads a trailing bare literal only if present.
func readOptionalLiteral(f *token.Frame) (*uint32, error) {
	if f.End() {
		return nil, nil
	}

	w, err := f.ReadWord()
	if err != nil {
		return nil, err
	}

	return &w, nil
}

// readIdList reads every remaining word in the frame as an id, the shape
// used by every instruction whose final operand is a variable-length list
// of ids (OpEntryPoint's interface, OpTypeStruct's members, ...).
func readIdList(f *token.Frame) (ir.IdList, error) {
	var out ir.IdList

	for !f.End() {
		id, err := readId(f)
		if err != nil {
			return nil, err
		}

		out = append(out, id)
	}

	return out, nil
}

// readWords reads every remaining word in the frame verbatim, the shape
// used by OpConstant's literal payload (whose width depends on the result
// type, which this decoder never interprets).
func readWords(f *token.Frame) ([]uint32, error) {
	var out []uint32

	for !f.End() {
		w, err := f.ReadWord()
		if err != nil {
			return nil, err
		}

		out = append(out, w)
	}

	return out, nil
}

// readString reads a nul-terminated, 4-byte-word-packed UTF-8 string
// literal, the wire shape shared by every string operand in the format.
func readString(f *token.Frame) (ir.StringArg, error) {
	var bytes []byte

loop:
	for {
		w, err := f.ReadWord()
		if err != nil {
			return "", err
		}

		chars := [4]byte{byte(w), byte(w >> 8), byte(w >> 16), byte(w >> 24)}

		for _, c := range chars {
			if c == 0 {
				break loop
			}

			bytes = append(bytes, c)
		}
	}

	if !utf8.Valid(bytes) {
		return "", &InvalidStringError{}
	}

	return ir.StringArg(bytes), nil
}
