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

	"github.com/consensys/go-spirv/pkg/spirv/ir"
)

// DuplicateBlockIdError reports two basic blocks in the same function
// definition labelled with the same result id.
type DuplicateBlockIdError struct {
	Id ir.ResultId
}

func (e *DuplicateBlockIdError) Error() string {
	return fmt.Sprintf("duplicate block id %s", e.Id)
}

// NoBlocksError reports a function definition with no basic blocks at all.
type NoBlocksError struct{}

func (e *NoBlocksError) Error() string { return "function definition has no basic blocks" }

// UnknownBlockIdError reports a branch target, merge block, or continue
// target naming an id that is not any block's label in this function.
type UnknownBlockIdError struct {
	Id ir.ResultId
}

func (e *UnknownBlockIdError) Error() string {
	return fmt.Sprintf("unknown block id %s", e.Id)
}

// ConstructKind names which shape a convergence-prediction error was raised
// against.
type ConstructKind int

// Recognised construct kinds.
const (
	ConstructIf ConstructKind = iota
	ConstructIfElse
	// ConstructWhile names a loop construct. Reconstruct does not structure
	// loops, so no current code path raises an error with this kind.
	ConstructWhile
)

func (k ConstructKind) String() string {
	switch k {
	case ConstructIf:
		return "If"
	case ConstructWhile:
		return "While"
	default:
		return "IfElse"
	}
}

// CouldNotPredictConvergeError reports a conditional branch with no adjacent
// SelectionMerge naming a converge block.
type CouldNotPredictConvergeError struct {
	Kind  ConstructKind
	Block ir.ResultId
}

func (e *CouldNotPredictConvergeError) Error() string {
	return fmt.Sprintf("could not predict converge point for %s at block %s", e.Kind, e.Block)
}

// InvalidConvergePredictionError reports a conditional branch whose true and
// false arms did not both terminate at the predicted converge block.
type InvalidConvergePredictionError struct {
	Kind  ConstructKind
	Block ir.ResultId
}

func (e *InvalidConvergePredictionError) Error() string {
	return fmt.Sprintf("invalid converge prediction for %s at block %s", e.Kind, e.Block)
}
