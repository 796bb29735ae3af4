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
package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func streamOf(words ...uint32) *Stream {
	var data []byte
	for _, w := range words {
		data = append(data, littleEndianWord(w)...)
	}

	s := NewStream(append(littleEndianWord(Magic), data...))
	_ = s.ReadMagic()

	return s
}

func TestReadFrameSplitsOpcodeAndWordCount(t *testing.T) {
	head := uint32(3)<<16 | uint32(42)
	s := streamOf(head, 0xaa, 0xbb)

	f, err := ReadFrame(s)
	require.NoError(t, err)
	assert.Equal(t, uint16(42), f.Opcode())
	assert.Equal(t, uint16(3), f.WordCount())
	assert.Equal(t, 2, f.Remaining())
}

func TestReadFrameRejectsZeroWordCount(t *testing.T) {
	s := streamOf(uint32(0)<<16 | uint32(1))

	_, err := ReadFrame(s)
	require.Error(t, err)
	assert.IsType(t, &MalformedInstructionError{}, err)
}

func TestFrameReadWordExhaustion(t *testing.T) {
	f := &Frame{opcode: 1, words: []uint32{10, 20}}

	w, err := f.ReadWord()
	require.NoError(t, err)
	assert.Equal(t, uint32(10), w)

	w, ok := f.PeekWord()
	assert.True(t, ok)
	assert.Equal(t, uint32(20), w)

	_, err = f.ReadWord()
	require.NoError(t, err)
	assert.True(t, f.End())

	_, err = f.ReadWord()
	assert.IsType(t, &UnexpectedEndOfInstructionError{}, err)
}

func TestFrameFinishDetectsExcessData(t *testing.T) {
	f := &Frame{opcode: 1, words: []uint32{10}}

	err := f.Finish()
	require.Error(t, err)
	assert.IsType(t, &InstructionHadExcessDataError{}, err)

	_, _ = f.ReadWord()
	assert.NoError(t, f.Finish())
}
