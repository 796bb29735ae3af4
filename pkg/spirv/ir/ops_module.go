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

// OpCapabilityInsn declares a single optional capability the module
// requires.
type OpCapabilityInsn struct {
	noResult
	Value Capability
}

func (OpCapabilityInsn) Opcode() Op        { return OpCapability }
func (OpCapabilityInsn) Name() string      { return "OpCapability" }
func (o OpCapabilityInsn) Operands() []Arg { return []Arg{o.Value} }

// OpExtensionInsn names a recognised extension the module depends on.
type OpExtensionInsn struct {
	noResult
	Name_ StringArg
}

func (OpExtensionInsn) Opcode() Op        { return OpExtension }
func (OpExtensionInsn) Name() string      { return "OpExtension" }
func (o OpExtensionInsn) Operands() []Arg { return []Arg{o.Name_} }

// OpExtInstImportInsn registers an extended-instruction-set handle under a
// fresh result id, which later OpExtInst instructions reference.
type OpExtInstImportInsn struct {
	ResultID ResultId
	Name_    StringArg
}

func (OpExtInstImportInsn) Opcode() Op                 { return OpExtInstImport }
func (OpExtInstImportInsn) Name() string               { return "OpExtInstImport" }
func (o OpExtInstImportInsn) Result() (ResultId, bool) { return o.ResultID, true }
func (o OpExtInstImportInsn) Operands() []Arg           { return []Arg{o.Name_} }

// OpMemoryModelInsn fixes the module's addressing and memory model.  Exactly
// one must appear, preceding all entry points and globals.
type OpMemoryModelInsn struct {
	noResult
	Addressing AddressingModel
	Memory     MemoryModel
}

func (OpMemoryModelInsn) Opcode() Op   { return OpMemoryModel }
func (OpMemoryModelInsn) Name() string { return "OpMemoryModel" }
func (o OpMemoryModelInsn) Operands() []Arg {
	return []Arg{o.Addressing, o.Memory}
}

// OpEntryPointInsn declares an entry point into the module: an execution
// model, the function implementing it, its exported name, and the set of
// globals it touches.
type OpEntryPointInsn struct {
	noResult
	Model     ExecutionModel
	Function  Id
	Name_     StringArg
	Interface IdList
}

func (OpEntryPointInsn) Opcode() Op   { return OpEntryPoint }
func (OpEntryPointInsn) Name() string { return "OpEntryPoint" }
func (o OpEntryPointInsn) Operands() []Arg {
	out := []Arg{o.Model, o.Function, o.Name_}
	if len(o.Interface) > 0 {
		out = append(out, o.Interface)
	}

	return out
}

// OpExecutionModeInsn attaches an execution mode to a previously declared
// entry point.
type OpExecutionModeInsn struct {
	noResult
	EntryPoint Id
	Mode       ExecutionModeOperand
}

func (OpExecutionModeInsn) Opcode() Op   { return OpExecutionMode }
func (OpExecutionModeInsn) Name() string { return "OpExecutionMode" }
func (o OpExecutionModeInsn) Operands() []Arg {
	return []Arg{o.EntryPoint, o.Mode}
}
