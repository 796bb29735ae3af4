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
package module

import (
	"github.com/consensys/go-spirv/pkg/spirv/extinst"
	"github.com/consensys/go-spirv/pkg/spirv/ir"
	"github.com/consensys/go-spirv/pkg/spirv/isa"
	"github.com/consensys/go-spirv/pkg/spirv/token"
)

// Read decodes data into a RawModule.  sets lists the extended instruction
// sets available for OpExtInstImport to bind against; a module that never
// imports an extended set may pass nil. Byte order is taken from data's
// leading magic word.
func Read(data []byte, sets []extinst.Set) (*RawModule, error) {
	stream := token.NewStream(data)

	if err := stream.ReadMagic(); err != nil {
		return nil, err
	}

	return readFrom(stream, sets)
}

// ReadWithOrder decodes data the same way Read does, except it skips magic
// detection and forces order onto the stream up front. This exists for
// tooling callers working with headerless fixture fragments, or input whose
// leading word Read has already rejected via a BadMagicError and the caller
// wants to force a byte order onto anyway.
func ReadWithOrder(data []byte, order token.Order, sets []extinst.Set) (*RawModule, error) {
	stream := token.NewStreamWithOrder(data, order)

	return readFrom(stream, sets)
}

func readFrom(stream *token.Stream, sets []extinst.Set) (*RawModule, error) {
	header, err := token.ReadHeader(stream)
	if err != nil {
		return nil, err
	}

	decoder := isa.NewDecoder(sets)

	var instructions []ir.Instruction

	for i := 0; !stream.AtEnd(); i++ {
		frame, err := token.ReadFrame(stream)
		if err != nil {
			return nil, &DecodeError{Index: i, Err: err}
		}

		insn, err := decoder.Decode(frame.Opcode(), frame)
		if err != nil {
			return nil, &DecodeError{Index: i, Err: err}
		}

		if err := frame.Finish(); err != nil {
			return nil, &DecodeError{Index: i, Err: err}
		}

		instructions = append(instructions, insn)
	}

	return &RawModule{
		Version:      decodeVersion(header.VersionWord),
		Generator:    ir.DecodeGenerator(header.GeneratorWord),
		IdBound:      header.IdBound,
		Instructions: instructions,
	}, nil
}

// decodeVersion splits a header version word into its major/minor halves.
// token.ReadHeader has already rejected every shape but "0 | major | minor |
// 0" naming version 1.0, so this never needs to report failure.
func decodeVersion(word uint32) ir.Version {
	return ir.Version{
		Major: uint8((word >> 16) & 0xff),
		Minor: uint8((word >> 8) & 0xff),
	}
}
