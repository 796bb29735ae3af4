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

// Package ir defines the strongly-typed data model produced by the raw
// decoder: identifiers, versions, generators, operand records and the full
// set of instruction variants.
package ir

import "fmt"

// Id identifies a use-site reference to a previously defined result.  Bit
// identical to ResultId, but kept as a distinct type so that mixing up a
// use-site and a definition-site is a compile error rather than a silent bug.
type Id uint32

// String renders an id the way the reference disassembler does, e.g. "%12".
func (id Id) String() string {
	return fmt.Sprintf("%%%d", uint32(id))
}

// ResultId identifies the value defined by the instruction that carries it.
type ResultId uint32

// String renders a result id the way the reference disassembler does.
func (id ResultId) String() string {
	return fmt.Sprintf("%%%d", uint32(id))
}
