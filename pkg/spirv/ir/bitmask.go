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

import "strings"

// FunctionControl is a bitmask attached to OpFunction hinting at inlining
// behaviour.  Known bits: 0xF.
type FunctionControl uint32

// Known FunctionControl bits.
const (
	FunctionControlInline       FunctionControl = 1 << 0
	FunctionControlDontInline   FunctionControl = 1 << 1
	FunctionControlPure         FunctionControl = 1 << 2
	FunctionControlConst        FunctionControl = 1 << 3
	functionControlKnownMask                    = FunctionControlInline | FunctionControlDontInline |
		FunctionControlPure | FunctionControlConst
)

// Unknown reports whether m has any bit set outside the known mask.
func (m FunctionControl) Unknown() bool {
	return uint32(m)&^uint32(functionControlKnownMask) != 0
}

// String renders the set flags joined by " | ", or "None" if empty.
func (m FunctionControl) String() string {
	return joinFlags(m == 0, []flagBit{
		{uint32(FunctionControlInline), "Inline"},
		{uint32(FunctionControlDontInline), "DontInline"},
		{uint32(FunctionControlPure), "Pure"},
		{uint32(FunctionControlConst), "Const"},
	}, uint32(m))
}

// SelectionControl hints at how a conditional branch should be compiled.
// Known bits: 0x3.
type SelectionControl uint32

// Known SelectionControl bits.
const (
	SelectionControlFlatten              SelectionControl = 1 << 0
	SelectionControlDontFlatten          SelectionControl = 1 << 1
	selectionControlKnownMask                             = SelectionControlFlatten | SelectionControlDontFlatten
)

// Unknown reports whether m has any bit set outside the known mask.
func (m SelectionControl) Unknown() bool {
	return uint32(m)&^uint32(selectionControlKnownMask) != 0
}

// String renders the set flags joined by " | ", or "None" if empty.
func (m SelectionControl) String() string {
	return joinFlags(m == 0, []flagBit{
		{uint32(SelectionControlFlatten), "Flatten"},
		{uint32(SelectionControlDontFlatten), "DontFlatten"},
	}, uint32(m))
}

// LoopControl hints at how a loop merge should be compiled.  Known bits:
// 0x7, plus bit 0x8 ("DependencyLength present") which gates one trailing
// word carrying the dependency length literal.
type LoopControl uint32

// Known LoopControl bits.
const (
	LoopControlUnroll             LoopControl = 1 << 0
	LoopControlDontUnroll         LoopControl = 1 << 1
	LoopControlDependencyInfinite LoopControl = 1 << 2
	// LoopControlDependencyLength gates one trailing word.  This is the bit
	// the source material's older decode path confuses with fast-math's
	// AllowRecip (see FpFastMathMode below); here it is independent and
	// unambiguous.
	LoopControlDependencyLength LoopControl = 1 << 3
	loopControlKnownMask                    = LoopControlUnroll | LoopControlDontUnroll |
		LoopControlDependencyInfinite | LoopControlDependencyLength
)

// Unknown reports whether m has any bit set outside the known mask.
func (m LoopControl) Unknown() bool {
	return uint32(m)&^uint32(loopControlKnownMask) != 0
}

// HasDependencyLength reports whether the trailing dependency-length word is
// present.
func (m LoopControl) HasDependencyLength() bool {
	return m&LoopControlDependencyLength != 0
}

// String renders the set flags joined by " | ", or "None" if empty.
func (m LoopControl) String() string {
	return joinFlags(m == 0, []flagBit{
		{uint32(LoopControlUnroll), "Unroll"},
		{uint32(LoopControlDontUnroll), "DontUnroll"},
		{uint32(LoopControlDependencyInfinite), "DependencyInfinite"},
		{uint32(LoopControlDependencyLength), "DependencyLength"},
	}, uint32(m))
}

// MemoryAccess hints at alignment/volatility of a load or store.  Known
// bits: 0x7; the Aligned bit gates one trailing alignment word.
type MemoryAccess uint32

// Known MemoryAccess bits.
const (
	MemoryAccessVolatile    MemoryAccess = 1 << 0
	MemoryAccessAligned     MemoryAccess = 1 << 1
	MemoryAccessNontemporal MemoryAccess = 1 << 2
	memoryAccessKnownMask                = MemoryAccessVolatile | MemoryAccessAligned | MemoryAccessNontemporal
)

// Unknown reports whether m has any bit set outside the known mask.
func (m MemoryAccess) Unknown() bool {
	return uint32(m)&^uint32(memoryAccessKnownMask) != 0
}

// HasAlignment reports whether the trailing alignment word is present.
func (m MemoryAccess) HasAlignment() bool {
	return m&MemoryAccessAligned != 0
}

// String renders the set flags joined by " | ", or "None" if empty.
func (m MemoryAccess) String() string {
	return joinFlags(m == 0, []flagBit{
		{uint32(MemoryAccessVolatile), "Volatile"},
		{uint32(MemoryAccessAligned), "Aligned"},
		{uint32(MemoryAccessNontemporal), "Nontemporal"},
	}, uint32(m))
}

// FpFastMathMode hints at permissible floating-point relaxations.  Known
// bits: 0x1F.
//
// The source material's older decode path (reader/mod.rs) reads AllowRecip
// as mask 0x9, which actually names {NotNaN, AllowRecip} combined rather
// than AllowRecip alone — a bug, not an intentional union. The canonical
// decode path (spv/raw/mod.rs) and this implementation use 0x8.
type FpFastMathMode uint32

// Known FpFastMathMode bits.
const (
	FpFastMathModeNotNaN     FpFastMathMode = 1 << 0
	FpFastMathModeNotInf     FpFastMathMode = 1 << 1
	FpFastMathModeNSZ        FpFastMathMode = 1 << 2
	FpFastMathModeAllowRecip FpFastMathMode = 1 << 3
	FpFastMathModeFast       FpFastMathMode = 1 << 4
	fpFastMathModeKnownMask                 = FpFastMathModeNotNaN | FpFastMathModeNotInf | FpFastMathModeNSZ |
		FpFastMathModeAllowRecip | FpFastMathModeFast
)

// Unknown reports whether m has any bit set outside the known mask.
func (m FpFastMathMode) Unknown() bool {
	return uint32(m)&^uint32(fpFastMathModeKnownMask) != 0
}

// String renders the set flags joined by " | ", or "None" if empty.
func (m FpFastMathMode) String() string {
	return joinFlags(m == 0, []flagBit{
		{uint32(FpFastMathModeNotNaN), "NotNaN"},
		{uint32(FpFastMathModeNotInf), "NotInf"},
		{uint32(FpFastMathModeNSZ), "NSZ"},
		{uint32(FpFastMathModeAllowRecip), "AllowRecip"},
		{uint32(FpFastMathModeFast), "Fast"},
	}, uint32(m))
}

type flagBit struct {
	bit  uint32
	name string
}

func joinFlags(empty bool, bits []flagBit, value uint32) string {
	if empty {
		return "None"
	}

	var names []string

	for _, b := range bits {
		if value&b.bit != 0 {
			names = append(names, b.name)
		}
	}

	return strings.Join(names, " | ")
}
