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

// Package extinst defines the host-facing extended-instruction-set
// contract, and a small process-wide registry of in-tree reference sets
// that cmd/spirv populates before decoding.
package extinst

import (
	"fmt"

	"github.com/consensys/go-spirv/pkg/spirv/ir"
	"github.com/consensys/go-spirv/pkg/spirv/token"
)

// Set is implemented by every extended-instruction-set handle.  A handle is
// immutable once constructed; the decoder calls Duplicate to obtain its own
// owned copy per module, so a handle outliving its module is always safe.
type Set interface {
	// Name returns the static name the source module must import, e.g.
	// "GLSL.std.450".
	Name() string
	// ReadInstruction decodes one instruction given its sub-opcode and the
	// remaining operand frame.  It must consume between 0 and
	// frame.Remaining() words; the core enforces "consume exactly" by
	// calling frame.Finish() itself afterwards.
	ReadInstruction(subOpcode uint32, frame *token.Frame) (ir.ExtInstOpValue, error)
	// Duplicate returns an owned copy of this handle.
	Duplicate() Set
}

// UnknownExtInstOpError reports a sub-opcode a registered set does not
// recognise.
type UnknownExtInstOpError struct {
	SetName string
	Number  uint32
}

func (e *UnknownExtInstOpError) Error() string {
	return fmt.Sprintf("unknown extended instruction %d in set %q", e.Number, e.SetName)
}

// Registry is a small process-wide catalogue of extended-instruction-set
// handles, keyed by name.  It exists purely as a convenience for cmd/spirv;
// library callers of module.Read are free to build their own []extinst.Set
// and bypass the registry entirely.
type Registry struct {
	sets map[string]Set
}

// NewRegistry constructs an empty registry.
func NewRegistry() *Registry {
	return &Registry{sets: make(map[string]Set)}
}

// Register adds a handle under its own Name().  Re-registering a name
// overwrites the previous handle.
func (r *Registry) Register(set Set) {
	r.sets[set.Name()] = set
}

// Handles returns duplicated copies of every registered handle, ready to
// pass to module.Read.
func (r *Registry) Handles() []Set {
	out := make([]Set, 0, len(r.sets))

	for _, s := range r.sets {
		out = append(out, s.Duplicate())
	}

	return out
}
