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
package layout

import (
	"github.com/consensys/go-spirv/pkg/spirv/ir"
	"github.com/consensys/go-spirv/pkg/spirv/module"
)

// cursor walks raw's flat instruction stream one slot at a time. It never
// looks back — every many()/parseX helper either commits an instruction by
// advancing past it, or leaves the cursor untouched and reports "doesn't
// match", exactly the speculate-then-restore shape the function-vs-
// declaration ambiguity (see parseFunction) depends on.
type cursor struct {
	insns []ir.Instruction
	pos   int
}

func (c *cursor) peek() (ir.Instruction, bool) {
	if c.pos >= len(c.insns) {
		return nil, false
	}

	return c.insns[c.pos], true
}

func (c *cursor) advance() ir.Instruction {
	insn := c.insns[c.pos]
	c.pos++

	return insn
}

// Parse recognises the module-layout grammar over raw's instruction stream,
// phase by phase, and regroups it into a LogicalModule.
func Parse(raw *module.RawModule) (*LogicalModule, error) {
	c := &cursor{insns: raw.Instructions}
	lm := &LogicalModule{}

	lm.Capabilities = manyAs[ir.OpCapabilityInsn](c)
	lm.Extensions = manyAs[ir.OpExtensionInsn](c)
	lm.ExtInstImports = manyAs[ir.OpExtInstImportInsn](c)

	insn, ok := c.peek()
	if !ok || Classify(insn) != PhaseMemoryModel {
		return nil, &MemoryModelMissingError{}
	}

	lm.MemoryModel = c.advance().(ir.OpMemoryModelInsn)

	lm.EntryPoints = manyAs[ir.OpEntryPointInsn](c)
	lm.ExecutionModes = manyAs[ir.OpExecutionModeInsn](c)
	lm.Debug = manyPhase(c, PhaseDebug)
	lm.Annotations = manyPhase(c, PhaseAnnotation)
	lm.Globals = manyPhase(c, PhaseGlobal)

	for {
		insn, ok := c.peek()
		if !ok {
			break
		}

		if _, isFunction := insn.(ir.OpFunctionInsn); !isFunction {
			break
		}

		fn, err := parseFunction(c)
		if err != nil {
			return nil, err
		}

		switch v := fn.(type) {
		case FunctionDeclaration:
			lm.FunctionDeclarations = append(lm.FunctionDeclarations, v)
		case FunctionDefinition:
			lm.FunctionDefinitions = append(lm.FunctionDefinitions, v)
		}
	}

	if insn, ok := c.peek(); ok {
		return nil, &UnexpectedInstructionError{Slot: c.pos, Name: insn.Name()}
	}

	return lm, nil
}

// manyAs greedily consumes a run of instructions of concrete type T,
// stopping (without error) at the first instruction that doesn't match.
func manyAs[T ir.Instruction](c *cursor) []T {
	var out []T

	for {
		insn, ok := c.peek()
		if !ok {
			break
		}

		v, ok := insn.(T)
		if !ok {
			break
		}

		out = append(out, v)
		c.advance()
	}

	return out
}

// manyPhase greedily consumes a run of instructions classified into phase.
func manyPhase(c *cursor, phase Phase) []ir.Instruction {
	var out []ir.Instruction

	for {
		insn, ok := c.peek()
		if !ok || Classify(insn) != phase {
			break
		}

		out = append(out, insn)
		c.advance()
	}

	return out
}

// parseFunction parses one OpFunction through its matching OpFunctionEnd,
// returning either a FunctionDeclaration or a FunctionDefinition. The
// declaration case is tried first, speculatively: if no basic block follows
// the parameters, this must be a prototype, and an immediate OpFunctionEnd
// is required. Anything else — a label, or nothing at all — falls through
// to the definition path instead.
func parseFunction(c *cursor) (any, error) {
	fn := c.advance().(ir.OpFunctionInsn)
	params := manyAs[ir.OpFunctionParameterInsn](c)

	if insn, ok := c.peek(); ok {
		if _, isEnd := insn.(ir.OpFunctionEndInsn); isEnd {
			c.advance()
			return FunctionDeclaration{Function: fn, Parameters: params}, nil
		}
	}

	var blocks []BasicBlock

	for {
		insn, ok := c.peek()
		if !ok {
			break
		}

		if _, isLabel := insn.(ir.OpLabelInsn); !isLabel {
			break
		}

		block, err := parseBasicBlock(c)
		if err != nil {
			return nil, err
		}

		blocks = append(blocks, block)
	}

	insn, ok := c.peek()
	if !ok {
		return nil, &ExpectedOpFunctionEndError{Slot: c.pos}
	}

	if _, isEnd := insn.(ir.OpFunctionEndInsn); !isEnd {
		return nil, &ExpectedOpFunctionEndError{Slot: c.pos}
	}

	c.advance()

	return FunctionDefinition{Function: fn, Parameters: params, Blocks: blocks}, nil
}

// parseBasicBlock recognises Label, many(Code), an optional merge hint, and
// a required terminator.
func parseBasicBlock(c *cursor) (BasicBlock, error) {
	label := c.advance().(ir.OpLabelInsn)
	code := manyPhase(c, PhaseCode)

	var merge ir.Instruction

	if insn, ok := c.peek(); ok && isMergeHint(insn) {
		merge = insn
		c.advance()
	}

	insn, ok := c.peek()
	if !ok || !isTerminator(insn) {
		return BasicBlock{}, &ExpectedBranchError{Slot: c.pos}
	}

	c.advance()

	return BasicBlock{Label: label, Code: code, Merge: merge, Terminator: insn}, nil
}

func isMergeHint(insn ir.Instruction) bool {
	switch insn.(type) {
	case ir.OpSelectionMergeInsn, ir.OpLoopMergeInsn:
		return true
	default:
		return false
	}
}

func isTerminator(insn ir.Instruction) bool {
	switch insn.(type) {
	case ir.OpBranchInsn, ir.OpBranchConditionalInsn, ir.OpReturnInsn, ir.OpReturnValueInsn, ir.OpUnreachableInsn:
		return true
	default:
		return false
	}
}
