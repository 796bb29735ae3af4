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

// Version identifies the module's instruction set version.  Only (1,0) is
// accepted by the decoder, but the pair is kept general so future versions
// can be recognised without reshaping the type.
type Version struct {
	Major uint8
	Minor uint8
}

// String renders a version as "1.0".
func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// V1_0 is the only version this decoder accepts.
var V1_0 = Version{Major: 1, Minor: 0}

// Tool identifies the vendor that produced a module, encoded in the high 16
// bits of the generator word.
type Tool uint16

// Recognised generator vendors.  Numbers match the Khronos SPIR-V registry.
const (
	ToolUnknown        Tool = 0
	ToolKhronosLLVM    Tool = 6
	ToolKhronosGlslang Tool = 8
	ToolGoogleShaderc  Tool = 13
	ToolGoogleSpiregg  Tool = 14
)

var toolNames = map[Tool]string{
	ToolUnknown:        "Unknown",
	ToolKhronosLLVM:    "Khronos LLVM Translator",
	ToolKhronosGlslang: "KhronosGlslang",
	ToolGoogleShaderc:  "Google Shaderc",
	ToolGoogleSpiregg:  "Google spiregg",
}

// String renders a tool by name, or "Other(<n>)" for an unrecognised vendor.
func (t Tool) String() string {
	if name, ok := toolNames[t]; ok {
		return name
	}

	return fmt.Sprintf("Other(%d)", uint16(t))
}

// Generator pairs a vendor with a tool-specific version number.  Packed as
// (vendor << 16) | version in the header word.
type Generator struct {
	Tool    Tool
	Version uint16
}

// String renders a generator as "(<tool>, <version>)".
func (g Generator) String() string {
	return fmt.Sprintf("(%s, %d)", g.Tool, g.Version)
}

// DecodeGenerator splits a header generator word into its vendor/version
// halves.
func DecodeGenerator(word uint32) Generator {
	return Generator{
		Tool:    Tool(word >> 16),
		Version: uint16(word & 0xffff),
	}
}
