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

// constBoolResult is the {result-type, result-id} shape shared by the two
// boolean constants.
type constBoolResult struct {
	ResultType Id
	ResultID   ResultId
}

func (o constBoolResult) Result() (ResultId, bool) { return o.ResultID, true }
func (o constBoolResult) Operands() []Arg          { return []Arg{o.ResultType} }

// OpConstantTrueInsn defines a result of value `true`.
type OpConstantTrueInsn struct{ constBoolResult }

func (OpConstantTrueInsn) Opcode() Op   { return OpConstantTrue }
func (OpConstantTrueInsn) Name() string { return "OpConstantTrue" }

// OpConstantFalseInsn defines a result of value `false`.
type OpConstantFalseInsn struct{ constBoolResult }

func (OpConstantFalseInsn) Opcode() Op   { return OpConstantFalse }
func (OpConstantFalseInsn) Name() string { return "OpConstantFalse" }

// OpConstantInsn defines a result from a literal payload of one or more
// trailing words (the word count is determined by the result type, which
// this decoder does not interpret — it stores the raw words verbatim).
type OpConstantInsn struct {
	ResultType Id
	ResultID   ResultId
	Value      []uint32
}

func (OpConstantInsn) Opcode() Op                 { return OpConstant }
func (OpConstantInsn) Name() string               { return "OpConstant" }
func (o OpConstantInsn) Result() (ResultId, bool) { return o.ResultID, true }
func (o OpConstantInsn) Operands() []Arg {
	out := []Arg{o.ResultType}
	for _, w := range o.Value {
		out = append(out, Literal(w))
	}

	return out
}

// OpConstantCompositeInsn defines a result built from previously defined
// constant constituents (e.g. a vec3 of three scalar constants).
type OpConstantCompositeInsn struct {
	ResultType   Id
	ResultID     ResultId
	Constituents IdList
}

func (OpConstantCompositeInsn) Opcode() Op                 { return OpConstantComposite }
func (OpConstantCompositeInsn) Name() string               { return "OpConstantComposite" }
func (o OpConstantCompositeInsn) Result() (ResultId, bool) { return o.ResultID, true }
func (o OpConstantCompositeInsn) Operands() []Arg {
	out := []Arg{o.ResultType}
	if len(o.Constituents) > 0 {
		out = append(out, o.Constituents)
	}

	return out
}
