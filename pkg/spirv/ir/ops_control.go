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
package ir

import "fmt"

// PhiPair is one (variable, predecessor-block) pair within an OpPhi.
type PhiPair struct {
	Variable Id
	Parent   Id
}

// String renders a phi pair as "<variable> <parent>".
func (p PhiPair) String() string { return fmt.Sprintf("%s %s", p.Variable, p.Parent) }

// OpPhiInsn selects among several predecessor-dependent values.
type OpPhiInsn struct {
	ResultType Id
	ResultID   ResultId
	Pairs      []PhiPair
}

func (OpPhiInsn) Opcode() Op                 { return OpPhi }
func (OpPhiInsn) Name() string               { return "OpPhi" }
func (o OpPhiInsn) Result() (ResultId, bool) { return o.ResultID, true }
func (o OpPhiInsn) Operands() []Arg {
	out := []Arg{o.ResultType}
	for _, p := range o.Pairs {
		out = append(out, p)
	}

	return out
}

// OpSelectionMergeInsn names the convergence point of an immediately
// following conditional branch.  Must directly precede a terminator.
type OpSelectionMergeInsn struct {
	noResult
	MergeBlock Id
	Control    SelectionControl
}

func (OpSelectionMergeInsn) Opcode() Op   { return OpSelectionMerge }
func (OpSelectionMergeInsn) Name() string { return "OpSelectionMerge" }
func (o OpSelectionMergeInsn) Operands() []Arg {
	return []Arg{o.MergeBlock, o.Control}
}

// OpLoopMergeInsn names the convergence and continue-target blocks of an
// immediately following loop terminator.  Must directly precede a
// terminator.
type OpLoopMergeInsn struct {
	noResult
	MergeBlock       Id
	ContinueTarget   Id
	Control          LoopControl
	DependencyLength *uint32
}

func (OpLoopMergeInsn) Opcode() Op   { return OpLoopMerge }
func (OpLoopMergeInsn) Name() string { return "OpLoopMerge" }
func (o OpLoopMergeInsn) Operands() []Arg {
	out := []Arg{o.MergeBlock, o.ContinueTarget, o.Control}
	if o.DependencyLength != nil {
		out = append(out, Literal(*o.DependencyLength))
	}

	return out
}

// OpLabelInsn opens a basic block.
type OpLabelInsn struct {
	ResultID ResultId
}

func (OpLabelInsn) Opcode() Op                 { return OpLabel }
func (OpLabelInsn) Name() string               { return "OpLabel" }
func (o OpLabelInsn) Result() (ResultId, bool) { return o.ResultID, true }
func (o OpLabelInsn) Operands() []Arg          { return nil }

// OpBranchInsn unconditionally transfers control to Target.  A basic
// block's terminator.
type OpBranchInsn struct {
	noResult
	Target Id
}

func (OpBranchInsn) Opcode() Op        { return OpBranch }
func (OpBranchInsn) Name() string      { return "OpBranch" }
func (o OpBranchInsn) Operands() []Arg { return []Arg{o.Target} }

// OpBranchConditionalInsn transfers control to TrueLabel or FalseLabel
// depending on Condition.  A basic block's terminator; expects an adjacent
// OpSelectionMerge naming the converge block.
type OpBranchConditionalInsn struct {
	noResult
	Condition  Id
	TrueLabel  Id
	FalseLabel Id
	Weights    *BranchWeights
}

func (OpBranchConditionalInsn) Opcode() Op   { return OpBranchConditional }
func (OpBranchConditionalInsn) Name() string { return "OpBranchConditional" }
func (o OpBranchConditionalInsn) Operands() []Arg {
	out := []Arg{o.Condition, o.TrueLabel, o.FalseLabel}
	if o.Weights != nil {
		out = append(out, *o.Weights)
	}

	return out
}

// OpReturnInsn returns from a void function.  A basic block's terminator.
type OpReturnInsn struct{ noResult }

func (OpReturnInsn) Opcode() Op       { return OpReturn }
func (OpReturnInsn) Name() string     { return "OpReturn" }
func (OpReturnInsn) Operands() []Arg  { return nil }

// OpReturnValueInsn returns a value from a non-void function.  A basic
// block's terminator.
type OpReturnValueInsn struct {
	noResult
	Value Id
}

func (OpReturnValueInsn) Opcode() Op        { return OpReturnValue }
func (OpReturnValueInsn) Name() string      { return "OpReturnValue" }
func (o OpReturnValueInsn) Operands() []Arg { return []Arg{o.Value} }

// OpUnreachableInsn marks a point the compiler has proven unreachable.  A
// basic block's terminator: the layout phase parser accepts it as one, and
// the control-flow reconstructor ends the current arm at it, as it does at
// OpReturn.
type OpUnreachableInsn struct{ noResult }

func (OpUnreachableInsn) Opcode() Op      { return OpUnreachable }
func (OpUnreachableInsn) Name() string    { return "OpUnreachable" }
func (OpUnreachableInsn) Operands() []Arg { return nil }
