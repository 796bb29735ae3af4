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

// Package cfg reconstructs structured control flow — nested If/IfElse/Block
// trees — from the basic-block graph of a layout.FunctionDefinition.
package cfg

import (
	"fmt"
	"strings"

	"github.com/consensys/go-spirv/pkg/spirv/ir"
)

// ControlFlowChain is the recursive sum of reconstructed control-flow shapes:
// Atom, Block, If, IfElse.
type ControlFlowChain interface {
	fmt.Stringer
	chainNode()
}

// Atom is a single basic block with no reconstructed structure of its own.
type Atom struct {
	Block ir.ResultId
}

func (Atom) chainNode() {}

func (a Atom) String() string { return a.Block.String() }

// Block is a straight-line sequence of chains. A zero-length Block is the
// internal "no tail" marker produced mid-reconstruction; the builder
// guarantees none reach a caller — see newBlock.
type Block struct {
	Children []ControlFlowChain
}

func (Block) chainNode() {}

func (b Block) String() string {
	parts := make([]string, len(b.Children))
	for i, c := range b.Children {
		parts[i] = c.String()
	}

	return strings.Join(parts, "; ")
}

// If is a conditional branch whose false edge rejoins the converge block
// directly, with no else-side structure.
type If struct {
	Head    ir.ResultId
	Then    ControlFlowChain
	Control ir.SelectionControl
	Weights *ir.BranchWeights
}

func (If) chainNode() {}

func (i If) String() string {
	return fmt.Sprintf("if %s { %s }", i.Head, i.Then)
}

// IfElse is a conditional branch with structure on both edges.
type IfElse struct {
	Head    ir.ResultId
	Then    ControlFlowChain
	Else    ControlFlowChain
	Control ir.SelectionControl
	Weights *ir.BranchWeights
}

func (IfElse) chainNode() {}

func (i IfElse) String() string {
	return fmt.Sprintf("if %s { %s } else { %s }", i.Head, i.Then, i.Else)
}

// newBlock normalizes a freshly-assembled sequence of chains per the builder
// rules: a single child collapses to that child; a nested Block's children
// splice into the outer sequence one level.
func newBlock(children []ControlFlowChain) ControlFlowChain {
	var flat []ControlFlowChain

	for _, c := range children {
		if b, ok := c.(Block); ok {
			flat = append(flat, b.Children...)
			continue
		}

		flat = append(flat, c)
	}

	if len(flat) == 1 {
		return flat[0]
	}

	return Block{Children: flat}
}

// newConditional builds If or IfElse depending on whether elseChain carries
// any structure: an empty Block on the else edge means the false branch
// rejoins the converge block directly, i.e. a plain If.
func newConditional(head ir.ResultId, thenChain, elseChain ControlFlowChain, control ir.SelectionControl, weights *ir.BranchWeights) ControlFlowChain {
	if b, ok := elseChain.(Block); ok && len(b.Children) == 0 {
		return If{Head: head, Then: thenChain, Control: control, Weights: weights}
	}

	return IfElse{Head: head, Then: thenChain, Else: elseChain, Control: control, Weights: weights}
}
