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
	"fmt"

	"github.com/bits-and-blooms/bitset"
	"github.com/consensys/go-spirv/pkg/spirv/ir"
	"github.com/consensys/go-spirv/pkg/spirv/layout"
)

// continuation is what a search left off at: either "control falls through
// to Next block", or "this arm returned".
type continuation struct {
	next    ir.ResultId
	hasNext bool
}

// reconstructor holds the block index for one function definition.
type reconstructor struct {
	blocks map[ir.ResultId]*layout.BasicBlock
}

// Reconstruct builds a ControlFlowChain over def's basic-block graph.
func Reconstruct(def *layout.FunctionDefinition) (ControlFlowChain, error) {
	if len(def.Blocks) == 0 {
		return nil, &NoBlocksError{}
	}

	r := &reconstructor{blocks: make(map[ir.ResultId]*layout.BasicBlock, len(def.Blocks))}

	seen := bitset.New(0)

	for i := range def.Blocks {
		block := &def.Blocks[i]
		id := block.Label.ResultID

		if seen.Test(uint(id)) {
			return nil, &DuplicateBlockIdError{Id: id}
		}

		seen.Set(uint(id))
		r.blocks[id] = block
	}

	entry := def.Blocks[0].Label.ResultID

	chain, _, err := r.search(entry, map[ir.ResultId]bool{})
	if err != nil {
		return nil, err
	}

	return chain, nil
}

// search walks the block graph starting at id. Straight-line runs of
// unconditional branches and returns are accumulated iteratively, so
// recursion depth tracks conditional-nesting depth rather than block count;
// only a conditional branch's two arms recurse.
func (r *reconstructor) search(id ir.ResultId, backtrack map[ir.ResultId]bool) (ControlFlowChain, continuation, error) {
	var children []ControlFlowChain

	for {
		if backtrack[id] {
			return newBlock(children), continuation{next: id, hasNext: true}, nil
		}

		block, ok := r.blocks[id]
		if !ok {
			return nil, continuation{}, &UnknownBlockIdError{Id: id}
		}

		switch term := block.Terminator.(type) {
		case ir.OpBranchInsn:
			children = append(children, Atom{Block: id})
			id = ir.ResultId(term.Target)

		case ir.OpReturnInsn, ir.OpReturnValueInsn, ir.OpUnreachableInsn:
			children = append(children, Atom{Block: id})
			return newBlock(children), continuation{}, nil

		case ir.OpBranchConditionalInsn:
			cond, err := r.searchConditional(id, block, term, backtrack)
			if err != nil {
				return nil, continuation{}, err
			}

			children = append(children, cond)

			converge, _ := r.convergeOf(block)
			id = converge

		default:
			// layout.Parse only ever produces one of the terminator kinds
			// handled above; reaching here means a BasicBlock escaped that
			// invariant.
			return nil, continuation{}, fmt.Errorf("cfg: block %s has unrecognised terminator %T", id, term)
		}
	}
}

// searchConditional handles one OpBranchConditional terminator: it requires
// an adjacent SelectionMerge naming a converge block, recurses into both
// arms with that converge point added to backtrack, and requires both arms
// to fall through to exactly that converge block.
func (r *reconstructor) searchConditional(
	id ir.ResultId,
	block *layout.BasicBlock,
	term ir.OpBranchConditionalInsn,
	backtrack map[ir.ResultId]bool,
) (ControlFlowChain, error) {
	converge, ok := r.convergeOf(block)
	if !ok {
		return nil, &CouldNotPredictConvergeError{Kind: ConstructIfElse, Block: id}
	}

	nested := make(map[ir.ResultId]bool, len(backtrack)+1)
	for k := range backtrack {
		nested[k] = true
	}

	nested[converge] = true

	thenChain, thenCont, err := r.search(ir.ResultId(term.TrueLabel), nested)
	if err != nil {
		return nil, err
	}

	elseChain, elseCont, err := r.search(ir.ResultId(term.FalseLabel), nested)
	if err != nil {
		return nil, err
	}

	if !thenCont.hasNext || thenCont.next != converge || !elseCont.hasNext || elseCont.next != converge {
		return nil, &InvalidConvergePredictionError{Kind: ConstructIfElse, Block: id}
	}

	merge := block.Merge.(ir.OpSelectionMergeInsn)

	return newConditional(id, thenChain, elseChain, merge.Control, term.Weights), nil
}

// convergeOf extracts the converge block named by block's merge hint, if
// it is a SelectionMerge (the only merge kind a BranchConditional expects).
func (r *reconstructor) convergeOf(block *layout.BasicBlock) (ir.ResultId, bool) {
	merge, ok := block.Merge.(ir.OpSelectionMergeInsn)
	if !ok {
		return 0, false
	}

	return ir.ResultId(merge.MergeBlock), true
}
