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
	"testing"

	"github.com/consensys/go-spirv/pkg/spirv/extinst"
	"github.com/consensys/go-spirv/pkg/spirv/extinst/glsl450"
	"github.com/consensys/go-spirv/pkg/spirv/ir"
	"github.com/consensys/go-spirv/pkg/spirv/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wordBytes(w uint32) []byte {
	return []byte{byte(w), byte(w >> 8), byte(w >> 16), byte(w >> 24)}
}

// frameOf builds a Frame as if ReadFrame had just pulled it off a stream:
// head word (wordCount<<16 | opcode) followed by the given operand words.
func frameOf(t *testing.T, opcode uint16, operands ...uint32) *token.Frame {
	t.Helper()

	head := uint32(len(operands)+1)<<16 | uint32(opcode)

	var data []byte
	for _, w := range append([]uint32{head}, operands...) {
		data = append(data, wordBytes(w)...)
	}

	s := token.NewStream(data)
	f, err := token.ReadFrame(s)
	require.NoError(t, err)

	return f
}

func TestDecodeIAdd(t *testing.T) {
	d := NewDecoder(nil)
	f := frameOf(t, uint16(ir.OpIAdd), 10, 20, 30, 31)

	insn, err := d.Decode(uint16(ir.OpIAdd), f)
	require.NoError(t, err)
	require.NoError(t, f.Finish())

	add, ok := insn.(ir.OpIAddInsn)
	require.True(t, ok)
	assert.Equal(t, ir.Id(10), add.ResultType)
	assert.Equal(t, ir.ResultId(20), add.ResultID)
	assert.Equal(t, ir.Id(30), add.Operand1)
	assert.Equal(t, ir.Id(31), add.Operand2)
}

func TestDecodeFOrdLessThanEqual(t *testing.T) {
	d := NewDecoder(nil)
	f := frameOf(t, uint16(ir.OpFOrdLessThanEqual), 1, 2, 3, 4)

	insn, err := d.Decode(uint16(ir.OpFOrdLessThanEqual), f)
	require.NoError(t, err)

	cmp, ok := insn.(ir.OpFOrdLessThanEqualInsn)
	require.True(t, ok)
	assert.Equal(t, ir.Id(3), cmp.Operand1)
	assert.Equal(t, ir.Id(4), cmp.Operand2)
}

func TestDecodeUnknownOpcode(t *testing.T) {
	d := NewDecoder(nil)
	f := frameOf(t, 0xffff, 1, 2)

	insn, err := d.Decode(0xffff, f)
	require.NoError(t, err)

	unk, ok := insn.(ir.UnknownOpInsn)
	require.True(t, ok)
	assert.Equal(t, ir.Op(0xffff), unk.Code)
	assert.Equal(t, uint16(3), unk.WordCount)
}

func TestDecodeExtInstRoundTrip(t *testing.T) {
	sets := []extinst.Set{glsl450.New()}
	d := NewDecoder(sets)

	importFrame := frameOf(t, uint16(ir.OpExtInstImport), asWords("GLSL.std.450")...)

	imp, err := d.Decode(uint16(ir.OpExtInstImport), importFrame)
	require.NoError(t, err)

	importInsn, ok := imp.(ir.OpExtInstImportInsn)
	require.True(t, ok)

	useFrame := frameOf(t, uint16(ir.OpExtInst), 100, 101, uint32(importInsn.ResultID), 13, 55)

	use, err := d.Decode(uint16(ir.OpExtInst), useFrame)
	require.NoError(t, err)

	extInsn, ok := use.(ir.OpExtInstInsn)
	require.True(t, ok)

	sin, ok := extInsn.Instruction.(glsl450.Sin)
	require.True(t, ok)
	assert.Equal(t, ir.Id(55), sin.X)
}

func TestDecodeExtInstUnknownSet(t *testing.T) {
	d := NewDecoder(nil)
	f := frameOf(t, uint16(ir.OpExtInstImport), asWords("GLSL.std.450")...)

	_, err := d.Decode(uint16(ir.OpExtInstImport), f)
	require.Error(t, err)
	assert.IsType(t, &UnknownInstSetError{}, err)
}

// asWords packs s the way readString expects to find it: null-terminated,
// little-endian, padded to a full word.
func asWords(s string) []uint32 {
	b := append([]byte(s), 0)
	for len(b)%4 != 0 {
		b = append(b, 0)
	}

	out := make([]uint32, len(b)/4)
	for i := range out {
		out[i] = uint32(b[i*4]) | uint32(b[i*4+1])<<8 | uint32(b[i*4+2])<<16 | uint32(b[i*4+3])<<24
	}

	return out
}
