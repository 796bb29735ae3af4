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

func littleEndianWord(w uint32) []byte {
	return []byte{byte(w), byte(w >> 8), byte(w >> 16), byte(w >> 24)}
}

func bigEndianWord(w uint32) []byte {
	return []byte{byte(w >> 24), byte(w >> 16), byte(w >> 8), byte(w)}
}

func TestReadMagicDetectsEndianness(t *testing.T) {
	tests := []struct {
		name  string
		bytes []byte
		order Order
	}{
		{"little endian", littleEndianWord(Magic), LittleEndian},
		{"big endian", bigEndianWord(Magic), BigEndian},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStream(tt.bytes)
			require.NoError(t, s.ReadMagic())
			assert.Equal(t, tt.order, s.Order())
		})
	}
}

func TestReadMagicRejectsGarbage(t *testing.T) {
	s := NewStream(littleEndianWord(0xdeadbeef))
	err := s.ReadMagic()
	require.Error(t, err)
	assert.IsType(t, &BadMagicError{}, err)
}

func TestReadMagicRejectsShortInput(t *testing.T) {
	s := NewStream([]byte{1, 2, 3})
	err := s.ReadMagic()
	require.Error(t, err)
	assert.IsType(t, &UnexpectedStreamAlignmentError{}, err)
}

func TestReadWordHonoursByteOrder(t *testing.T) {
	data := append(littleEndianWord(Magic), littleEndianWord(0x01020304)...)

	s := NewStream(data)
	require.NoError(t, s.ReadMagic())

	w, err := s.ReadWord()
	require.NoError(t, err)
	assert.Equal(t, uint32(0x01020304), w)
	assert.True(t, s.AtEnd())
}

func TestReadWordDistinguishesAlignmentFromEnd(t *testing.T) {
	s := &Stream{data: []byte{1, 2, 3}}
	_, err := s.ReadWord()
	assert.IsType(t, &UnexpectedStreamAlignmentError{}, err)

	s2 := &Stream{data: []byte{}}
	_, err = s2.ReadWord()
	assert.IsType(t, &UnexpectedEndOfStreamError{}, err)
}
