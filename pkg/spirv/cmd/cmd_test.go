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
package cmd

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/consensys/go-spirv/pkg/spirv/ir"
	"github.com/consensys/go-spirv/pkg/spirv/layout"
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

func head(wordCount int, op ir.Op) uint32 {
	return uint32(wordCount)<<16 | uint32(op)
}

// voidFunctionModule builds a minimal, fully valid module: one capability,
// a memory model, a void type, a void-returning function type, and a
// function with a single straight-line block.
func voidFunctionModule() []byte {
	var data []byte

	data = appendWords(data, token.Magic)
	data = appendWords(data, uint32(1)<<16, 0, 5, 0) // version 1.0, no generator, id-bound 5

	data = appendWords(data, head(2, ir.OpCapability), 1) // Shader
	data = appendWords(data, head(3, ir.OpMemoryModel), 0, 1)

	data = appendWords(data, head(2, ir.OpTypeVoid), 1)
	data = appendWords(data, head(3, ir.OpTypeFunction), 2, 1)
	data = appendWords(data, head(5, ir.OpFunction), 1, 3, 0, 2)
	data = appendWords(data, head(2, ir.OpLabel), 4)
	data = appendWords(data, head(1, ir.OpReturn))
	data = appendWords(data, head(1, ir.OpFunctionEnd))

	return data
}

func TestValidateCmdAcceptsWellFormedModule(t *testing.T) {
	path := writeFixture(t, voidFunctionModule())

	raw, err := readModule(rootCmd, path)
	require.NoError(t, err)

	_, err = layout.Parse(raw)
	assert.NoError(t, err)
}

func TestValidateCmdRejectsTrailingInstruction(t *testing.T) {
	data := voidFunctionModule()
	data = appendWords(data, head(2, ir.OpCapability), 1) // trailing, after the function closed

	path := writeFixture(t, data)

	raw, err := readModule(rootCmd, path)
	require.NoError(t, err)

	_, err = layout.Parse(raw)
	assert.Error(t, err)
}

func writeFixture(t *testing.T, data []byte) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "module.spv")
	require.NoError(t, os.WriteFile(path, data, 0644))

	return path
}

func TestResolveFunctionIdByNumericId(t *testing.T) {
	lm := &layout.LogicalModule{}

	id, byName, err := resolveFunctionId(lm, "7")
	require.NoError(t, err)
	assert.False(t, byName)
	assert.Equal(t, ir.ResultId(7), id)
}

func TestResolveFunctionIdByDebugName(t *testing.T) {
	var name ir.OpNameInsn
	name.Target, name.Name_ = 9, "main"

	lm := &layout.LogicalModule{Debug: []ir.Instruction{name}}

	id, byName, err := resolveFunctionId(lm, "main")
	require.NoError(t, err)
	assert.True(t, byName)
	assert.Equal(t, ir.ResultId(9), id)
}

func TestResolveFunctionIdUnknownSelector(t *testing.T) {
	lm := &layout.LogicalModule{}

	_, _, err := resolveFunctionId(lm, "nope")
	assert.Error(t, err)
}

func TestFindFunctionReportsDeclarationOnly(t *testing.T) {
	lm := &layout.LogicalModule{
		FunctionDeclarations: []layout.FunctionDeclaration{
			{Function: functionInsn(5)},
		},
	}

	_, err := findFunction(lm, "5")
	assert.ErrorContains(t, err, "declaration only")
}

func TestFindFunctionLocatesDefinition(t *testing.T) {
	def := layout.FunctionDefinition{Function: functionInsn(5)}
	lm := &layout.LogicalModule{FunctionDefinitions: []layout.FunctionDefinition{def}}

	got, err := findFunction(lm, "5")
	require.NoError(t, err)
	assert.Equal(t, ir.ResultId(5), got.Function.ResultID)
}

func functionInsn(id ir.ResultId) ir.OpFunctionInsn {
	var fn ir.OpFunctionInsn
	fn.ResultID = id

	return fn
}

func TestRunOverFilesVisitsEveryFile(t *testing.T) {
	files := []string{"a", "b", "c", "d", "e"}

	var (
		mu   sync.Mutex
		seen []string
	)

	ok := runOverFiles(files, func(_ context.Context, filename string) bool {
		mu.Lock()
		seen = append(seen, filename)
		mu.Unlock()

		return true
	})

	assert.True(t, ok)
	assert.ElementsMatch(t, files, seen)
}

func TestRunOverFilesReportsFailure(t *testing.T) {
	files := []string{"good", "bad", "good-too"}

	ok := runOverFiles(files, func(_ context.Context, filename string) bool {
		return filename != "bad"
	})

	assert.False(t, ok)
}

// The peak number of callbacks in flight is only checked to be at least one:
// these callbacks are too short for an overlap between them to be certain.
func TestRunOverFilesTracksCallbacksInFlight(t *testing.T) {
	files := make([]string, 32)
	for i := range files {
		files[i] = "f"
	}

	var inFlight, maxInFlight atomic.Int64

	runOverFiles(files, func(_ context.Context, _ string) bool {
		n := inFlight.Add(1)

		for {
			cur := maxInFlight.Load()
			if n <= cur || maxInFlight.CompareAndSwap(cur, n) {
				break
			}
		}

		inFlight.Add(-1)

		return true
	})

	assert.GreaterOrEqual(t, maxInFlight.Load(), int64(1))
}
