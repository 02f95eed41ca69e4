// Copyright 2014 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

package rlp

import (
	"errors"
	"io"
)

var (
	// ErrCanonSize is returned when an explicit length field carries leading
	// zero bytes or a value below 56.
	ErrCanonSize = errors.New("rlp: non-canonical size information")
	// ErrCanonSingleByte is returned when a single byte below 0x80 was
	// wrapped in a string header instead of encoding as itself.
	ErrCanonSingleByte = errors.New("rlp: non-canonical encoding of a single byte")
	// ErrValueTooLarge is returned when a declared payload overruns the input.
	ErrValueTooLarge = errors.New("rlp: value size exceeds available input length")
	// ErrElemTooLarge is returned when a list element overruns the span
	// declared by its containing list.
	ErrElemTooLarge = errors.New("rlp: element is larger than containing list")
	// ErrMoreThanOneValue is returned when trailing bytes follow the first
	// top-level value.
	ErrMoreThanOneValue = errors.New("rlp: input contains more than one value")
	// ErrNestingTooDeep is returned when list nesting exceeds maxNestingDepth.
	ErrNestingTooDeep = errors.New("rlp: value is nested too deep")
)

// maxNestingDepth bounds recursive descent during Decode so that adversarial
// input cannot exhaust the goroutine stack.
const maxNestingDepth = 10000

// Decode parses buf as exactly one RLP value and returns it as an item tree.
// The whole buffer must be consumed; trailing bytes are an error. Decoding
// validates canonical form: non-minimal length fields and string-wrapped
// single bytes are rejected rather than silently accepted. The returned tree
// holds fresh copies of all payload bytes.
//
// An empty buffer decodes to a nil item without error.
func Decode(buf []byte) (*Item, error) {
	if len(buf) == 0 {
		return nil, nil
	}
	item, rest, err := decodeItem(buf, 0)
	if err != nil {
		return nil, err
	}
	if len(rest) > 0 {
		return nil, ErrMoreThanOneValue
	}
	return item, nil
}

// decodeItem parses the first value in buf and returns it along with the
// unconsumed remainder. No partial tree is returned on error.
func decodeItem(buf []byte, depth int) (*Item, []byte, error) {
	if depth > maxNestingDepth {
		return nil, buf, ErrNestingTooDeep
	}
	kind, tagsize, size, err := readKind(buf)
	if err != nil {
		return nil, buf, err
	}
	content := buf[tagsize : tagsize+size]
	rest := buf[tagsize+size:]
	switch kind {
	case Byte:
		return &Item{kind: String, str: []byte{buf[0]}}, rest, nil
	case String:
		str := make([]byte, len(content))
		copy(str, content)
		return &Item{kind: String, str: str}, rest, nil
	default:
		var elems []*Item
		for len(content) > 0 {
			var elem *Item
			elem, content, err = decodeItem(content, depth+1)
			if err != nil {
				// An element claiming bytes beyond the span declared by the
				// list header is a framing violation of the list itself.
				if errors.Is(err, ErrValueTooLarge) || errors.Is(err, io.ErrUnexpectedEOF) {
					err = ErrElemTooLarge
				}
				return nil, buf, err
			}
			elems = append(elems, elem)
		}
		return &Item{kind: List, list: elems}, rest, nil
	}
}

// readKind reads the prefix of the first value in buf, returning its kind,
// the size of the prefix itself and the size of the payload that follows.
func readKind(buf []byte) (k Kind, tagsize, contentsize uint64, err error) {
	if len(buf) == 0 {
		return 0, 0, 0, io.ErrUnexpectedEOF
	}
	b := buf[0]
	switch {
	case b < 0x80:
		k = Byte
		tagsize = 0
		contentsize = 1
	case b < 0xB8:
		k = String
		tagsize = 1
		contentsize = uint64(b - 0x80)
		// Reject strings that should've been single bytes.
		if contentsize == 1 && len(buf) > 1 && buf[1] < 0x80 {
			return 0, 0, 0, ErrCanonSingleByte
		}
	case b < 0xC0:
		k = String
		tagsize = uint64(b-0xB7) + 1
		contentsize, err = readSize(buf[1:], b-0xB7)
	case b < 0xF8:
		k = List
		tagsize = 1
		contentsize = uint64(b - 0xC0)
	default:
		k = List
		tagsize = uint64(b-0xF7) + 1
		contentsize, err = readSize(buf[1:], b-0xF7)
	}
	if err != nil {
		return 0, 0, 0, err
	}
	// Reject values larger than the input slice.
	if contentsize > uint64(len(buf))-tagsize {
		return 0, 0, 0, ErrValueTooLarge
	}
	return k, tagsize, contentsize, nil
}

// readSize parses an explicit big-endian length field of slen bytes.
func readSize(b []byte, slen byte) (uint64, error) {
	if int(slen) > len(b) {
		return 0, io.ErrUnexpectedEOF
	}
	var s uint64
	for i := byte(0); i < slen; i++ {
		s = s<<8 | uint64(b[i])
	}
	// Reject sizes < 56 (shouldn't have separate size) and sizes with
	// leading zero bytes.
	if s < 56 || b[0] == 0 {
		return 0, ErrCanonSize
	}
	return s, nil
}
