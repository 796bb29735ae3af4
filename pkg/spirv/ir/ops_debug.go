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

// OpNopInsn is a literal no-operation; word-count 1, no operands.
type OpNopInsn struct{ noResult }

func (OpNopInsn) Opcode() Op       { return OpNop }
func (OpNopInsn) Name() string     { return "OpNop" }
func (OpNopInsn) Operands() []Arg  { return nil }

// OpUndefInsn defines a result whose value is unconstrained.
type OpUndefInsn struct {
	ResultType Id
	ResultID   ResultId
}

func (OpUndefInsn) Opcode() Op                { return OpUndef }
func (OpUndefInsn) Name() string              { return "OpUndef" }
func (o OpUndefInsn) Result() (ResultId, bool) { return o.ResultID, true }
func (o OpUndefInsn) Operands() []Arg          { return []Arg{o.ResultType} }

// OpSourceInsn records the source language and version debug info dumped by
// the front-end.
type OpSourceInsn struct {
	noResult
	Language SourceLanguage
	Version  uint32
	File     *Id
	Source   *StringArg
}

func (OpSourceInsn) Opcode() Op   { return OpSource }
func (OpSourceInsn) Name() string { return "OpSource" }
func (o OpSourceInsn) Operands() []Arg {
	out := []Arg{o.Language, Literal(o.Version)}
	if o.File != nil {
		out = append(out, *o.File)
	}

	if o.Source != nil {
		out = append(out, *o.Source)
	}

	return out
}

// SourceLanguage names the shading/compute language a module was written in.
type SourceLanguage uint32

// Known SourceLanguage values.
const (
	SourceLanguageUnknown SourceLanguage = 0
	SourceLanguageGLSL    SourceLanguage = 2
	SourceLanguageOpenCLC SourceLanguage = 3
)

var sourceLanguageNames = map[SourceLanguage]string{
	SourceLanguageUnknown: "Unknown",
	SourceLanguageGLSL:    "GLSL",
	SourceLanguageOpenCLC: "OpenCL_C",
}

// String renders the source language by name.
func (v SourceLanguage) String() string {
	if name, ok := sourceLanguageNames[v]; ok {
		return name
	}

	return "Unknown"
}

// OpSourceContinuedInsn appends further source text to the preceding OpSource.
type OpSourceContinuedInsn struct {
	noResult
	Source StringArg
}

func (OpSourceContinuedInsn) Opcode() Op   { return OpSourceContinued }
func (OpSourceContinuedInsn) Name() string { return "OpSourceContinued" }
func (o OpSourceContinuedInsn) Operands() []Arg { return []Arg{o.Source} }

// OpSourceExtensionInsn names a source-level extension used by the front-end.
type OpSourceExtensionInsn struct {
	noResult
	Extension StringArg
}

func (OpSourceExtensionInsn) Opcode() Op   { return OpSourceExtension }
func (OpSourceExtensionInsn) Name() string { return "OpSourceExtension" }
func (o OpSourceExtensionInsn) Operands() []Arg { return []Arg{o.Extension} }

// OpNameInsn attaches a debug name to an id.
type OpNameInsn struct {
	noResult
	Target Id
	Name_  StringArg
}

func (OpNameInsn) Opcode() Op   { return OpName }
func (OpNameInsn) Name() string { return "OpName" }
func (o OpNameInsn) Operands() []Arg { return []Arg{o.Target, o.Name_} }

// OpMemberNameInsn attaches a debug name to a struct member.
type OpMemberNameInsn struct {
	noResult
	Target Id
	Member uint32
	Name_  StringArg
}

func (OpMemberNameInsn) Opcode() Op   { return OpMemberName }
func (OpMemberNameInsn) Name() string { return "OpMemberName" }
func (o OpMemberNameInsn) Operands() []Arg {
	return []Arg{o.Target, Literal(o.Member), o.Name_}
}

// OpStringInsn defines a result id naming a debug string literal.
type OpStringInsn struct {
	ResultID ResultId
	Value    StringArg
}

func (OpStringInsn) Opcode() Op                 { return OpString }
func (OpStringInsn) Name() string               { return "OpString" }
func (o OpStringInsn) Result() (ResultId, bool) { return o.ResultID, true }
func (o OpStringInsn) Operands() []Arg           { return []Arg{o.Value} }

// OpLineInsn attaches a source-line marker to the instructions that follow,
// until the next OpLine or OpNoLine.
type OpLineInsn struct {
	noResult
	File   Id
	Line   uint32
	Column uint32
}

func (OpLineInsn) Opcode() Op   { return OpLine }
func (OpLineInsn) Name() string { return "OpLine" }
func (o OpLineInsn) Operands() []Arg {
	return []Arg{o.File, Literal(o.Line), Literal(o.Column)}
}
