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

const validVersionWord = uint32(1)<<16 | uint32(0)<<8

func TestReadHeaderAccepts1_0(t *testing.T) {
	s := streamOf(validVersionWord, 0x00080001, 42, 0)

	h, err := ReadHeader(s)
	require.NoError(t, err)
	assert.Equal(t, validVersionWord, h.VersionWord)
	assert.Equal(t, uint32(0x00080001), h.GeneratorWord)
	assert.Equal(t, uint32(42), h.IdBound)
}

func TestReadHeaderRejectsBadVersionBytes(t *testing.T) {
	s := streamOf(0xffffffff, 0, 0, 0)

	_, err := ReadHeader(s)
	require.Error(t, err)
	assert.IsType(t, &UnknownVersionBytesError{}, err)
}

func TestReadHeaderRejectsUnknownVersion(t *testing.T) {
	s := streamOf(uint32(2)<<16, 0, 0, 0)

	_, err := ReadHeader(s)
	require.Error(t, err)
	assert.IsType(t, &UnknownVersionError{}, err)
}

func TestReadHeaderRejectsNonZeroReservedSchema(t *testing.T) {
	s := streamOf(validVersionWord, 0, 0, 7)

	_, err := ReadHeader(s)
	require.Error(t, err)
	assert.IsType(t, &UnknownReservedSchemaError{}, err)
}
