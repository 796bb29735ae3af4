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

// typeResult is the {result-id} shape shared by type declarations that take
// no further operands (OpTypeVoid, OpTypeBool).
type typeResult struct {
	ResultID ResultId
}

func (o typeResult) Result() (ResultId, bool) { return o.ResultID, true }
func (o typeResult) Operands() []Arg          { return nil }

// OpTypeVoidInsn declares the void type.
type OpTypeVoidInsn struct{ typeResult }

func (OpTypeVoidInsn) Opcode() Op   { return OpTypeVoid }
func (OpTypeVoidInsn) Name() string { return "OpTypeVoid" }

// OpTypeBoolInsn declares the boolean type.
type OpTypeBoolInsn struct{ typeResult }

func (OpTypeBoolInsn) Opcode() Op   { return OpTypeBool }
func (OpTypeBoolInsn) Name() string { return "OpTypeBool" }

// OpTypeIntInsn declares an integer type of a given bit width and
// signedness.
type OpTypeIntInsn struct {
	ResultID   ResultId
	Width      uint32
	Signedness uint32
}

func (OpTypeIntInsn) Opcode() Op                 { return OpTypeInt }
func (OpTypeIntInsn) Name() string               { return "OpTypeInt" }
func (o OpTypeIntInsn) Result() (ResultId, bool) { return o.ResultID, true }
func (o OpTypeIntInsn) Operands() []Arg {
	return []Arg{Literal(o.Width), Literal(o.Signedness)}
}

// OpTypeFloatInsn declares a floating-point type of a given bit width.
type OpTypeFloatInsn struct {
	ResultID ResultId
	Width    uint32
}

func (OpTypeFloatInsn) Opcode() Op                 { return OpTypeFloat }
func (OpTypeFloatInsn) Name() string               { return "OpTypeFloat" }
func (o OpTypeFloatInsn) Result() (ResultId, bool) { return o.ResultID, true }
func (o OpTypeFloatInsn) Operands() []Arg          { return []Arg{Literal(o.Width)} }

// OpTypeVectorInsn declares a vector type over a component type and count.
type OpTypeVectorInsn struct {
	ResultID     ResultId
	ComponentType Id
	Count        uint32
}

func (OpTypeVectorInsn) Opcode() Op                 { return OpTypeVector }
func (OpTypeVectorInsn) Name() string               { return "OpTypeVector" }
func (o OpTypeVectorInsn) Result() (ResultId, bool) { return o.ResultID, true }
func (o OpTypeVectorInsn) Operands() []Arg {
	return []Arg{o.ComponentType, Literal(o.Count)}
}

// OpTypeMatrixInsn declares a matrix type over a column-vector type and
// column count.
type OpTypeMatrixInsn struct {
	ResultID   ResultId
	ColumnType Id
	Count      uint32
}

func (OpTypeMatrixInsn) Opcode() Op                 { return OpTypeMatrix }
func (OpTypeMatrixInsn) Name() string               { return "OpTypeMatrix" }
func (o OpTypeMatrixInsn) Result() (ResultId, bool) { return o.ResultID, true }
func (o OpTypeMatrixInsn) Operands() []Arg {
	return []Arg{o.ColumnType, Literal(o.Count)}
}

// OpTypeArrayInsn declares a fixed-length array type.
type OpTypeArrayInsn struct {
	ResultID    ResultId
	ElementType Id
	Length      Id
}

func (OpTypeArrayInsn) Opcode() Op                 { return OpTypeArray }
func (OpTypeArrayInsn) Name() string               { return "OpTypeArray" }
func (o OpTypeArrayInsn) Result() (ResultId, bool) { return o.ResultID, true }
func (o OpTypeArrayInsn) Operands() []Arg          { return []Arg{o.ElementType, o.Length} }

// OpTypeRuntimeArrayInsn declares an array type whose length is determined
// at runtime.
type OpTypeRuntimeArrayInsn struct {
	ResultID    ResultId
	ElementType Id
}

func (OpTypeRuntimeArrayInsn) Opcode() Op                 { return OpTypeRuntimeArray }
func (OpTypeRuntimeArrayInsn) Name() string               { return "OpTypeRuntimeArray" }
func (o OpTypeRuntimeArrayInsn) Result() (ResultId, bool) { return o.ResultID, true }
func (o OpTypeRuntimeArrayInsn) Operands() []Arg          { return []Arg{o.ElementType} }

// OpTypeStructInsn declares an aggregate type over an ordered list of member
// types.
type OpTypeStructInsn struct {
	ResultID ResultId
	Members  IdList
}

func (OpTypeStructInsn) Opcode() Op                 { return OpTypeStruct }
func (OpTypeStructInsn) Name() string               { return "OpTypeStruct" }
func (o OpTypeStructInsn) Result() (ResultId, bool) { return o.ResultID, true }
func (o OpTypeStructInsn) Operands() []Arg           { return []Arg{o.Members} }

// OpTypePointerInsn declares a pointer type over a storage class and pointee
// type.
type OpTypePointerInsn struct {
	ResultID ResultId
	Storage  StorageClass
	Pointee  Id
}

func (OpTypePointerInsn) Opcode() Op                 { return OpTypePointer }
func (OpTypePointerInsn) Name() string               { return "OpTypePointer" }
func (o OpTypePointerInsn) Result() (ResultId, bool) { return o.ResultID, true }
func (o OpTypePointerInsn) Operands() []Arg {
	return []Arg{o.Storage, o.Pointee}
}

// OpTypeFunctionInsn declares a function signature: a return type and an
// ordered list of parameter types.
type OpTypeFunctionInsn struct {
	ResultID   ResultId
	ReturnType Id
	Parameters IdList
}

func (OpTypeFunctionInsn) Opcode() Op                 { return OpTypeFunction }
func (OpTypeFunctionInsn) Name() string               { return "OpTypeFunction" }
func (o OpTypeFunctionInsn) Result() (ResultId, bool) { return o.ResultID, true }
func (o OpTypeFunctionInsn) Operands() []Arg {
	out := []Arg{o.ReturnType}
	if len(o.Parameters) > 0 {
		out = append(out, o.Parameters)
	}

	return out
}
