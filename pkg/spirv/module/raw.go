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

// Package module assembles the token and isa layers into the top-level raw
// decode entrypoint: given a byte slice and a set of registered extended
// instruction sets, it produces a flat, append-only RawModule.
package module

import "github.com/consensys/go-spirv/pkg/spirv/ir"

// RawModule is the decoder's complete output: a header plus the flat,
// source-ordered sequence of every instruction the module contains.  It
// performs no validation beyond what decoding each instruction already
// requires — phase ordering and structural shape are the layout validator's
// concern, not this package's.
type RawModule struct {
	Version      ir.Version
	Generator    ir.Generator
	IdBound      uint32
	Instructions []ir.Instruction
}
