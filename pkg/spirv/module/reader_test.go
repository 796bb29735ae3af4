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
	"testing"

	"github.com/consensys/go-spirv/pkg/spirv/ir"
	"github.com/consensys/go-spirv/pkg/spirv/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wordBytes(w uint32) []byte {
	return []byte{byte(w), byte(w >> 8), byte(w >> 16), byte(w >> 24)}
}

func appendWords(data []byte, words ...uint32) []byte {
	for _, w := range words {
		data = append(data, wordBytes(w)...)
	}

	return data
}

// minimalModule builds the smallest legal module: header plus a single
// Capability/MemoryModel/FunctionEnd-free instruction stream — in this case
// just one OpNop, which is valid framing even though the layout validator
// would reject the module as structurally incomplete. Decode-level Read
// never inspects phase ordering.
func minimalModule() []byte {
	var data []byte

	data = appendWords(data, token.Magic)
	data = appendWords(data, uint32(1)<<16, 0, 7, 0) // version 1.0, no generator, id-bound 7, reserved 0
	data = appendWords(data, uint32(1)<<16|uint32(ir.OpNop))

	return data
}

func TestReadDecodesHeaderAndInstructions(t *testing.T) {
	m, err := Read(minimalModule(), nil)
	require.NoError(t, err)

	assert.Equal(t, ir.V1_0, m.Version)
	assert.Equal(t, uint32(7), m.IdBound)
	require.Len(t, m.Instructions, 1)
	assert.Equal(t, ir.OpNop, m.Instructions[0].Opcode())
}

func TestReadRejectsBadMagic(t *testing.T) {
	_, err := Read([]byte{1, 2, 3, 4}, nil)
	require.Error(t, err)
	assert.IsType(t, &token.BadMagicError{}, err)
}

func TestReadWrapsDecodeErrorsWithPosition(t *testing.T) {
	data := minimalModule()
	data = appendWords(data, uint32(1)<<16|uint32(ir.OpUndef)) // missing its two id operands

	_, err := Read(data, nil)
	require.Error(t, err)

	decErr, ok := err.(*DecodeError)
	require.True(t, ok)
	assert.Equal(t, 1, decErr.Index)
}
