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

// enumTable is a small closed lookup used by every fixed-table operand
// below.  Shared so each enum only has to supply its name map.
type enumTable[T ~uint32] struct {
	names map[T]string
}

func (t enumTable[T]) lookup(v T) (string, bool) {
	name, ok := t.names[v]
	return name, ok
}

func (t enumTable[T]) decode(word uint32) (T, bool) {
	v := T(word)
	_, ok := t.names[v]

	return v, ok
}

func (t enumTable[T]) render(v T) string {
	if name, ok := t.names[v]; ok {
		return name
	}

	return fmt.Sprintf("Unknown(%d)", uint32(v))
}

// AddressingModel names the memory addressing scheme a module uses.
type AddressingModel uint32

// Known AddressingModel values.
const (
	AddressingModelLogical         AddressingModel = 0
	AddressingModelPhysical32      AddressingModel = 1
	AddressingModelPhysical64      AddressingModel = 2
	AddressingModelPhysicalStorageBuffer64 AddressingModel = 5348
)

var addressingModelTable = enumTable[AddressingModel]{names: map[AddressingModel]string{
	AddressingModelLogical:                 "Logical",
	AddressingModelPhysical32:              "Physical32",
	AddressingModelPhysical64:              "Physical64",
	AddressingModelPhysicalStorageBuffer64: "PhysicalStorageBuffer64",
}}

// DecodeAddressingModel resolves a header word into a known AddressingModel.
func DecodeAddressingModel(word uint32) (AddressingModel, bool) { return addressingModelTable.decode(word) }

// String renders the addressing model by name.
func (v AddressingModel) String() string { return addressingModelTable.render(v) }

// MemoryModel names the memory model a module targets.
type MemoryModel uint32

// Known MemoryModel values.
const (
	MemoryModelSimple MemoryModel = 0
	MemoryModelGLSL450 MemoryModel = 1
	MemoryModelOpenCL MemoryModel = 2
	MemoryModelVulkan MemoryModel = 3
)

var memoryModelTable = enumTable[MemoryModel]{names: map[MemoryModel]string{
	MemoryModelSimple:  "Simple",
	MemoryModelGLSL450: "GLSL450",
	MemoryModelOpenCL:  "OpenCL",
	MemoryModelVulkan:  "Vulkan",
}}

// DecodeMemoryModel resolves a header word into a known MemoryModel.
func DecodeMemoryModel(word uint32) (MemoryModel, bool) { return memoryModelTable.decode(word) }

// String renders the memory model by name.
func (v MemoryModel) String() string { return memoryModelTable.render(v) }

// ExecutionModel names the kind of shader stage or kernel an entry point
// implements.
type ExecutionModel uint32

// Known ExecutionModel values.
const (
	ExecutionModelVertex                 ExecutionModel = 0
	ExecutionModelTessellationControl    ExecutionModel = 1
	ExecutionModelTessellationEvaluation ExecutionModel = 2
	ExecutionModelGeometry               ExecutionModel = 3
	ExecutionModelFragment               ExecutionModel = 4
	ExecutionModelGLCompute              ExecutionModel = 5
	ExecutionModelKernel                 ExecutionModel = 6
)

var executionModelTable = enumTable[ExecutionModel]{names: map[ExecutionModel]string{
	ExecutionModelVertex:                 "Vertex",
	ExecutionModelTessellationControl:    "TessellationControl",
	ExecutionModelTessellationEvaluation: "TessellationEvaluation",
	ExecutionModelGeometry:               "Geometry",
	ExecutionModelFragment:               "Fragment",
	ExecutionModelGLCompute:              "GLCompute",
	ExecutionModelKernel:                 "Kernel",
}}

// DecodeExecutionModel resolves a word into a known ExecutionModel.
func DecodeExecutionModel(word uint32) (ExecutionModel, bool) { return executionModelTable.decode(word) }

// String renders the execution model by name.
func (v ExecutionModel) String() string { return executionModelTable.render(v) }

// Capability names a single optional hardware/language feature a module
// declares it needs.
type Capability uint32

// Known Capability values (subset of the Khronos registry sufficient for
// the compute-shader fixtures this decoder targets).
const (
	CapabilityMatrix   Capability = 0
	CapabilityShader   Capability = 1
	CapabilityGeometry Capability = 2
	CapabilityKernel   Capability = 6
	CapabilityAddresses Capability = 4
	CapabilityInt64    Capability = 11
	CapabilityFloat64  Capability = 10
)

var capabilityTable = enumTable[Capability]{names: map[Capability]string{
	CapabilityMatrix:    "Matrix",
	CapabilityShader:    "Shader",
	CapabilityGeometry:  "Geometry",
	CapabilityAddresses: "Addresses",
	CapabilityFloat64:   "Float64",
	CapabilityInt64:     "Int64",
	CapabilityKernel:    "Kernel",
}}

// DecodeCapability resolves a word into a known Capability.
func DecodeCapability(word uint32) (Capability, bool) { return capabilityTable.decode(word) }

// String renders the capability by name.
func (v Capability) String() string { return capabilityTable.render(v) }

// StorageClass names where a pointer type's pointee lives.
type StorageClass uint32

// Known StorageClass values.
const (
	StorageClassUniformConstant StorageClass = 0
	StorageClassInput           StorageClass = 1
	StorageClassUniform         StorageClass = 2
	StorageClassOutput          StorageClass = 3
	StorageClassWorkgroup       StorageClass = 4
	StorageClassPrivate         StorageClass = 6
	StorageClassFunction        StorageClass = 7
	StorageClassPushConstant    StorageClass = 9
	StorageClassStorageBuffer   StorageClass = 12
)

var storageClassTable = enumTable[StorageClass]{names: map[StorageClass]string{
	StorageClassUniformConstant: "UniformConstant",
	StorageClassInput:           "Input",
	StorageClassUniform:         "Uniform",
	StorageClassOutput:          "Output",
	StorageClassWorkgroup:       "Workgroup",
	StorageClassPrivate:         "Private",
	StorageClassFunction:        "Function",
	StorageClassPushConstant:    "PushConstant",
	StorageClassStorageBuffer:   "StorageBuffer",
}}

// DecodeStorageClass resolves a word into a known StorageClass.
func DecodeStorageClass(word uint32) (StorageClass, bool) { return storageClassTable.decode(word) }

// String renders the storage class by name.
func (v StorageClass) String() string { return storageClassTable.render(v) }

// Decoration names an annotation attached to an id or a struct member.  Some
// variants carry a trailing literal payload (handled in ir/operand.go's
// Decoration sub-record, not here).
type Decoration uint32

// Known Decoration tags.
const (
	DecorationRelaxedPrecision  Decoration = 0
	DecorationSpecId            Decoration = 1
	DecorationBlock             Decoration = 2
	DecorationBufferBlock       Decoration = 3
	DecorationColMajor          Decoration = 5
	DecorationArrayStride       Decoration = 6
	DecorationMatrixStride      Decoration = 7
	DecorationBuiltIn           Decoration = 11
	DecorationLocation          Decoration = 30
	DecorationComponent         Decoration = 31
	DecorationBinding           Decoration = 33
	DecorationDescriptorSet     Decoration = 34
	DecorationOffset            Decoration = 35
)

var decorationTable = enumTable[Decoration]{names: map[Decoration]string{
	DecorationRelaxedPrecision: "RelaxedPrecision",
	DecorationSpecId:           "SpecId",
	DecorationBlock:            "Block",
	DecorationBufferBlock:      "BufferBlock",
	DecorationColMajor:         "ColMajor",
	DecorationArrayStride:      "ArrayStride",
	DecorationMatrixStride:     "MatrixStride",
	DecorationBuiltIn:          "BuiltIn",
	DecorationLocation:         "Location",
	DecorationComponent:        "Component",
	DecorationBinding:          "Binding",
	DecorationDescriptorSet:    "DescriptorSet",
	DecorationOffset:           "Offset",
}}

// DecodeDecoration resolves a word into a known Decoration tag.
func DecodeDecoration(word uint32) (Decoration, bool) { return decorationTable.decode(word) }

// String renders the decoration tag by name.
func (v Decoration) String() string { return decorationTable.render(v) }

// HasLiteralPayload reports whether this decoration tag carries one trailing
// literal word (e.g. Location, Binding), as opposed to none (Block) or a
// built-in sub-enum (BuiltIn).
func (v Decoration) HasLiteralPayload() bool {
	switch v {
	case DecorationSpecId, DecorationArrayStride, DecorationMatrixStride, DecorationLocation,
		DecorationComponent, DecorationBinding, DecorationDescriptorSet, DecorationOffset:
		return true
	default:
		return false
	}
}

// BuiltIn names a builtin variable bound by a BuiltIn decoration.
type BuiltIn uint32

// Known BuiltIn values.
const (
	BuiltInPosition       BuiltIn = 0
	BuiltInPointSize      BuiltIn = 1
	BuiltInVertexId       BuiltIn = 5
	BuiltInInstanceId     BuiltIn = 6
	BuiltInLocalInvocationId  BuiltIn = 27
	BuiltInWorkgroupSize      BuiltIn = 25
	BuiltInGlobalInvocationId BuiltIn = 28
)

var builtInTable = enumTable[BuiltIn]{names: map[BuiltIn]string{
	BuiltInPosition:           "Position",
	BuiltInPointSize:          "PointSize",
	BuiltInVertexId:           "VertexId",
	BuiltInInstanceId:         "InstanceId",
	BuiltInWorkgroupSize:      "WorkgroupSize",
	BuiltInLocalInvocationId:  "LocalInvocationId",
	BuiltInGlobalInvocationId: "GlobalInvocationId",
}}

// DecodeBuiltIn resolves a word into a known BuiltIn.
func DecodeBuiltIn(word uint32) (BuiltIn, bool) { return builtInTable.decode(word) }

// String renders the builtin by name.
func (v BuiltIn) String() string { return builtInTable.render(v) }

// ExecutionModeTag names the kind of execution mode attached to an entry
// point.  The payload shape (none / one literal / three literals / one id)
// is determined by the tag; see ir/operand.go's ExecutionMode sub-record.
type ExecutionModeTag uint32

// Known ExecutionModeTag values.
const (
	ExecutionModeInvocations   ExecutionModeTag = 0
	ExecutionModeOriginUpperLeft ExecutionModeTag = 7
	ExecutionModeLocalSize     ExecutionModeTag = 17
	ExecutionModeOutputVertices ExecutionModeTag = 18
)

var executionModeTable = enumTable[ExecutionModeTag]{names: map[ExecutionModeTag]string{
	ExecutionModeInvocations:    "Invocations",
	ExecutionModeOriginUpperLeft: "OriginUpperLeft",
	ExecutionModeLocalSize:      "LocalSize",
	ExecutionModeOutputVertices: "OutputVertices",
}}

// DecodeExecutionModeTag resolves a word into a known ExecutionModeTag.
func DecodeExecutionModeTag(word uint32) (ExecutionModeTag, bool) { return executionModeTable.decode(word) }

// String renders the execution mode tag by name.
func (v ExecutionModeTag) String() string { return executionModeTable.render(v) }

// ExecutionModePayload classifies how many literal words (or one id) follow
// an ExecutionModeTag.
type ExecutionModePayload int

// Kinds of ExecutionMode payload.
const (
	ExecutionModePayloadNone ExecutionModePayload = iota
	ExecutionModePayloadOneLiteral
	ExecutionModePayloadThreeLiterals
	ExecutionModePayloadOneId
)

// PayloadKind reports the payload shape for a given tag.
func (v ExecutionModeTag) PayloadKind() ExecutionModePayload {
	switch v {
	case ExecutionModeInvocations:
		return ExecutionModePayloadOneLiteral
	case ExecutionModeLocalSize:
		return ExecutionModePayloadThreeLiterals
	case ExecutionModeOutputVertices:
		return ExecutionModePayloadOneLiteral
	default:
		return ExecutionModePayloadNone
	}
}

// FunctionParameterAttribute names an ABI hint attached to a function
// parameter or return value.
type FunctionParameterAttribute uint32

// Known FunctionParameterAttribute values.
const (
	FunctionParameterAttributeZext  FunctionParameterAttribute = 0
	FunctionParameterAttributeSext  FunctionParameterAttribute = 1
	FunctionParameterAttributeByVal FunctionParameterAttribute = 2
)

var functionParameterAttributeTable = enumTable[FunctionParameterAttribute]{names: map[FunctionParameterAttribute]string{
	FunctionParameterAttributeZext:  "Zext",
	FunctionParameterAttributeSext:  "Sext",
	FunctionParameterAttributeByVal: "ByVal",
}}

// DecodeFunctionParameterAttribute resolves a word into a known value.
func DecodeFunctionParameterAttribute(word uint32) (FunctionParameterAttribute, bool) {
	return functionParameterAttributeTable.decode(word)
}

// String renders the attribute by name.
func (v FunctionParameterAttribute) String() string { return functionParameterAttributeTable.render(v) }
