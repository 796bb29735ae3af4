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

// Package token implements the two lowest layers of the decode pipeline: an
// endian-adaptive word stream over a byte slice, and length-prefixed
// instruction framing on top of it.
package token

import "encoding/binary"

// Magic is the canonical little-endian magic word every module begins
// with.  Its byte-swapped form selects big-endian for the rest of the
// stream.
const Magic uint32 = 0x07230203

// Order names which byte order a stream was detected to use.
type Order int

// Recognised byte orders.
const (
	LittleEndian Order = iota
	BigEndian
)

// Stream reads 32-bit words from a byte slice, one at a time, honouring
// whichever endianness the leading magic word selected.
type Stream struct {
	data  []byte
	pos   int
	order Order
}

// NewStream constructs a stream positioned at the very start of data; the
// caller must read the magic word first via ReadMagic before calling
// ReadWord.
func NewStream(data []byte) *Stream {
	return &Stream{data: data}
}

// NewStreamWithOrder constructs a stream with order fixed up front, for
// callers that already know the byte order and want to skip magic-word
// detection entirely — headerless fixture fragments in tests, or input a
// caller insists on forcing a byte order onto despite an unrecognised
// leading word.
func NewStreamWithOrder(data []byte, order Order) *Stream {
	return &Stream{data: data, order: order}
}

// ReadMagic consumes the first four bytes, determines byte order, and
// leaves the stream positioned to read the header.  It must be called
// exactly once, before any other read.
func (s *Stream) ReadMagic() error {
	if len(s.data) < 4 {
		return newStreamError(s.data)
	}

	le := binary.LittleEndian.Uint32(s.data[:4])
	be := binary.BigEndian.Uint32(s.data[:4])

	switch {
	case le == Magic:
		s.order = LittleEndian
	case be == Magic:
		s.order = BigEndian
	default:
		return &BadMagicError{Word: le}
	}

	s.pos = 4

	return nil
}

// Order reports the byte order selected by the magic word.
func (s *Stream) Order() Order { return s.order }

// AtEnd reports whether every byte of the input has been consumed.
func (s *Stream) AtEnd() bool { return s.pos >= len(s.data) }

// Remaining reports the number of whole words left unread.
func (s *Stream) Remaining() int { return (len(s.data) - s.pos) / 4 }

// ReadWord consumes the next 32-bit word.
func (s *Stream) ReadWord() (uint32, error) {
	remaining := len(s.data) - s.pos

	if remaining < 4 {
		if remaining > 0 {
			return 0, &UnexpectedStreamAlignmentError{}
		}

		return 0, &UnexpectedEndOfStreamError{}
	}

	var word uint32

	switch s.order {
	case BigEndian:
		word = binary.BigEndian.Uint32(s.data[s.pos : s.pos+4])
	default:
		word = binary.LittleEndian.Uint32(s.data[s.pos : s.pos+4])
	}

	s.pos += 4

	return word, nil
}

func newStreamError(data []byte) error {
	if len(data) > 0 {
		return &UnexpectedStreamAlignmentError{}
	}

	return &UnexpectedEndOfStreamError{}
}
