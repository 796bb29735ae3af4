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
package token

// Frame is a bounded window over the operand words of exactly one
// instruction.  Operand readers pull from a Frame, never from the
// underlying Stream directly, so stream reads and frame reads are never
// mixed mid-instruction.
type Frame struct {
	opcode uint16
	words  []uint32
	pos    int
}

// ReadFrame pulls one full instruction off s: the head word (opcode in the
// low 16 bits, word count including the head word in the high 16 bits) plus
// exactly WordCount-1 further words.  A declared word count of zero is
// malformed framing.
func ReadFrame(s *Stream) (*Frame, error) {
	head, err := s.ReadWord()
	if err != nil {
		return nil, err
	}

	wordCount := uint16(head >> 16)
	opcode := uint16(head & 0xffff)

	if wordCount == 0 {
		return nil, &MalformedInstructionError{HeadWord: head}
	}

	words := make([]uint32, wordCount-1)

	for i := range words {
		w, err := s.ReadWord()
		if err != nil {
			return nil, err
		}

		words[i] = w
	}

	return &Frame{opcode: opcode, words: words}, nil
}

// Opcode returns the numeric opcode of the instruction this frame carries.
func (f *Frame) Opcode() uint16 { return f.opcode }

// WordCount returns the total instruction word count, including the head
// word, as declared in the source.
func (f *Frame) WordCount() uint16 { return uint16(len(f.words) + 1) }

// Remaining reports how many operand words have not yet been read.
func (f *Frame) Remaining() int { return len(f.words) - f.pos }

// End reports whether every operand word has been consumed.
func (f *Frame) End() bool { return f.pos >= len(f.words) }

// ReadWord consumes the next operand word.
func (f *Frame) ReadWord() (uint32, error) {
	if f.End() {
		return 0, &UnexpectedEndOfInstructionError{}
	}

	w := f.words[f.pos]
	f.pos++

	return w, nil
}

// PeekWord returns the next operand word without consuming it.  Used by
// optional readers to decide presence without committing to a read.
func (f *Frame) PeekWord() (uint32, bool) {
	if f.End() {
		return 0, false
	}

	return f.words[f.pos], true
}

// Finish checks that every operand word was consumed exactly; a non-empty
// frame at this point is InstructionHadExcessData.
func (f *Frame) Finish() error {
	if !f.End() {
		return &InstructionHadExcessDataError{Remaining: f.Remaining()}
	}

	return nil
}
