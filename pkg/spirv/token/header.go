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

// Header carries the header words following the magic number: version,
// generator and id-bound. The fourth word, the reserved schema word, is
// checked to be zero and not kept.
type Header struct {
	VersionWord   uint32
	GeneratorWord uint32
	IdBound       uint32
}

// ReadHeader consumes the four header words from s, which must already have
// had ReadMagic called on it.
func ReadHeader(s *Stream) (Header, error) {
	version, err := s.ReadWord()
	if err != nil {
		return Header{}, err
	}

	if err := validateVersionBytes(version); err != nil {
		return Header{}, err
	}

	generator, err := s.ReadWord()
	if err != nil {
		return Header{}, err
	}

	bound, err := s.ReadWord()
	if err != nil {
		return Header{}, err
	}

	reserved, err := s.ReadWord()
	if err != nil {
		return Header{}, err
	}

	if reserved != 0 {
		return Header{}, &UnknownReservedSchemaError{Word: reserved}
	}

	return Header{VersionWord: version, GeneratorWord: generator, IdBound: bound}, nil
}

// validateVersionBytes checks the version word's shape is "0 | major |
// minor | 0" and that the named version is the only one this decoder
// accepts, (1, 0).
func validateVersionBytes(word uint32) error {
	if word&0xff0000ff != 0 {
		return &UnknownVersionBytesError{Word: word}
	}

	major := uint8((word >> 16) & 0xff)
	minor := uint8((word >> 8) & 0xff)

	if major != 1 || minor != 0 {
		return &UnknownVersionError{Major: major, Minor: minor}
	}

	return nil
}
