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
package cfg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBlockCollapsesSingleChild(t *testing.T) {
	got := newBlock([]ControlFlowChain{Atom{Block: 1}})
	assert.Equal(t, Atom{Block: 1}, got)
}

func TestNewBlockFlattensNestedBlock(t *testing.T) {
	inner := Block{Children: []ControlFlowChain{Atom{Block: 2}, Atom{Block: 3}}}
	got := newBlock([]ControlFlowChain{Atom{Block: 1}, inner, Atom{Block: 4}})

	want := Block{Children: []ControlFlowChain{Atom{Block: 1}, Atom{Block: 2}, Atom{Block: 3}, Atom{Block: 4}}}
	assert.Equal(t, want, got)
}

func TestNewBlockKeepsEmpty(t *testing.T) {
	got := newBlock(nil)
	assert.Equal(t, Block{}, got)
}

func TestNewConditionalEmptyElseProducesIf(t *testing.T) {
	got := newConditional(1, Atom{Block: 2}, Block{}, 0, nil)
	assert.Equal(t, If{Head: 1, Then: Atom{Block: 2}}, got)
}

func TestNewConditionalNonEmptyElseProducesIfElse(t *testing.T) {
	got := newConditional(1, Atom{Block: 2}, Atom{Block: 3}, 0, nil)
	assert.Equal(t, IfElse{Head: 1, Then: Atom{Block: 2}, Else: Atom{Block: 3}}, got)
}
