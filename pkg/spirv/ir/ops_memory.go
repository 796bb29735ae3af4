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

// OpVariableInsn allocates storage for a pointer-typed result.  Its storage
// class determines, via the layout classifier (pkg/spirv/layout), whether it
// belongs to the globals phase or to a function's code.
type OpVariableInsn struct {
	ResultType  Id
	ResultID    ResultId
	Storage     StorageClass
	Initializer *Id
}

func (OpVariableInsn) Opcode() Op                 { return OpVariable }
func (OpVariableInsn) Name() string               { return "OpVariable" }
func (o OpVariableInsn) Result() (ResultId, bool) { return o.ResultID, true }
func (o OpVariableInsn) Operands() []Arg {
	out := []Arg{o.ResultType, o.Storage}
	if o.Initializer != nil {
		out = append(out, *o.Initializer)
	}

	return out
}

// OpLoadInsn reads the value a pointer refers to.
type OpLoadInsn struct {
	ResultType Id
	ResultID   ResultId
	Pointer    Id
	Access     *MemoryAccess
	Alignment  *uint32
}

func (OpLoadInsn) Opcode() Op                 { return OpLoad }
func (OpLoadInsn) Name() string               { return "OpLoad" }
func (o OpLoadInsn) Result() (ResultId, bool) { return o.ResultID, true }
func (o OpLoadInsn) Operands() []Arg {
	out := []Arg{o.ResultType, o.Pointer}
	if o.Access != nil {
		out = append(out, *o.Access)
	}

	if o.Alignment != nil {
		out = append(out, Literal(*o.Alignment))
	}

	return out
}

// OpStoreInsn writes a value through a pointer; defines no result.
type OpStoreInsn struct {
	noResult
	Pointer   Id
	Object    Id
	Access    *MemoryAccess
	Alignment *uint32
}

func (OpStoreInsn) Opcode() Op   { return OpStore }
func (OpStoreInsn) Name() string { return "OpStore" }
func (o OpStoreInsn) Operands() []Arg {
	out := []Arg{o.Pointer, o.Object}
	if o.Access != nil {
		out = append(out, *o.Access)
	}

	if o.Alignment != nil {
		out = append(out, Literal(*o.Alignment))
	}

	return out
}

// OpAccessChainInsn computes a pointer to a sub-element of a composite
// pointee by walking a list of constant or dynamic indices.
type OpAccessChainInsn struct {
	ResultType Id
	ResultID   ResultId
	Base       Id
	Indexes    IdList
}

func (OpAccessChainInsn) Opcode() Op                 { return OpAccessChain }
func (OpAccessChainInsn) Name() string               { return "OpAccessChain" }
func (o OpAccessChainInsn) Result() (ResultId, bool) { return o.ResultID, true }
func (o OpAccessChainInsn) Operands() []Arg {
	out := []Arg{o.ResultType, o.Base}
	if len(o.Indexes) > 0 {
		out = append(out, o.Indexes)
	}

	return out
}
