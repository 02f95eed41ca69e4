// Copyright 2015 The go-ethereum Authors
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
	"math"
)

var (
	// ErrExpectedString is returned by SplitString when the value is a list.
	ErrExpectedString = errors.New("rlp: expected String or Byte")
	// ErrExpectedList is returned by SplitList when the value is a string.
	ErrExpectedList = errors.New("rlp: expected List")
)

// RawValue represents an encoded RLP value and can be used to delay
// RLP decoding or to precompute an encoding. Note that the codec does
// not verify whether the content of RawValues is valid RLP.
type RawValue []byte

// PeekSize returns the total encoded size (prefix plus payload) of the first
// RLP value in b, reading only the prefix bytes. The payload itself need not
// be present, so the result can be used to slice a value out of a stream.
// PeekSize fails if the prefix is truncated or non-canonical.
func PeekSize(b []byte) (uint64, error) {
	if len(b) == 0 {
		return 0, io.ErrUnexpectedEOF
	}
	var (
		tagsize     uint64
		contentsize uint64
		err         error
	)
	switch c := b[0]; {
	case c < 0x80:
		return 1, nil
	case c < 0xB8:
		tagsize, contentsize = 1, uint64(c-0x80)
	case c < 0xC0:
		tagsize = uint64(c-0xB7) + 1
		contentsize, err = readSize(b[1:], c-0xB7)
	case c < 0xF8:
		tagsize, contentsize = 1, uint64(c-0xC0)
	default:
		tagsize = uint64(c-0xF7) + 1
		contentsize, err = readSize(b[1:], c-0xF7)
	}
	if err != nil {
		return 0, err
	}
	if contentsize > math.MaxUint64-tagsize {
		return 0, ErrValueTooLarge
	}
	return tagsize + contentsize, nil
}

// ListSize returns the encoded size of an RLP list with the given
// content size.
func ListSize(contentSize uint64) uint64 {
	return uint64(headsize(contentSize)) + contentSize
}

// Split returns the content of the first RLP value and any
// bytes after the value as subslices of b.
func Split(b []byte) (k Kind, content, rest []byte, err error) {
	k, ts, cs, err := readKind(b)
	if err != nil {
		return 0, nil, b, err
	}
	return k, b[ts : ts+cs], b[ts+cs:], nil
}

// SplitString splits b into the content of an RLP string
// and any remaining bytes after the string.
func SplitString(b []byte) (content, rest []byte, err error) {
	k, content, rest, err := Split(b)
	if err != nil {
		return nil, b, err
	}
	if k == List {
		return nil, b, ErrExpectedString
	}
	return content, rest, nil
}

// SplitList splits b into the content of a list and any remaining
// bytes after the list.
func SplitList(b []byte) (content, rest []byte, err error) {
	k, content, rest, err := Split(b)
	if err != nil {
		return nil, b, err
	}
	if k != List {
		return nil, b, ErrExpectedList
	}
	return content, rest, nil
}

// CountValues counts the number of encoded values in b.
func CountValues(b []byte) (int, error) {
	i := 0
	for ; len(b) > 0; i++ {
		_, tagsize, size, err := readKind(b)
		if err != nil {
			return 0, err
		}
		b = b[tagsize+size:]
	}
	return i, nil
}

// AppendUint64 appends the RLP encoding of i to b, and returns the resulting
// slice.
func AppendUint64(b []byte, i uint64) []byte {
	if i == 0 {
		return append(b, 0x80)
	} else if i < 128 {
		return append(b, byte(i))
	}
	var tmp [8]byte
	n := putint(tmp[:], i)
	b = append(b, 0x80+byte(n))
	return append(b, tmp[:n]...)
}
