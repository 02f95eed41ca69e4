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

import "math/bits"

var (
	// Common encoded values.

	// EmptyString is the encoding of an empty string.
	EmptyString = []byte{0x80}
	// EmptyList is the encoding of an empty list.
	EmptyList = []byte{0xC0}
)

// Encode returns the canonical RLP encoding of item. Encoding cannot fail
// for a well-formed item tree. A nil item encodes as the empty list.
func Encode(item *Item) []byte {
	var buf encBuffer
	buf.encode(item)
	return buf.makeBytes()
}

// AppendEncoded appends the canonical RLP encoding of item to dst and
// returns the extended buffer.
func AppendEncoded(dst []byte, item *Item) []byte {
	var buf encBuffer
	buf.encode(item)
	return buf.appendTo(dst)
}

// EncodedSize returns the number of bytes Encode will produce for item.
func EncodedSize(item *Item) int {
	if item == nil {
		return 1
	}
	if item.kind == String {
		if len(item.str) == 1 && item.str[0] < 0x80 {
			return 1
		}
		return headsize(uint64(len(item.str))) + len(item.str)
	}
	contentSize := 0
	for _, elem := range item.list {
		contentSize += EncodedSize(elem)
	}
	return headsize(uint64(contentSize)) + contentSize
}

// encBuffer accumulates string data and list headers during encoding.
// A list header depends on the total size of its content, so headers are
// recorded as listhead placeholders while content is written and spliced
// into place by copyTo afterwards. This keeps encoding linear in the size
// of the tree: no subtree is measured more than once.
type encBuffer struct {
	str    []byte     // string data, contains everything except list headers
	lheads []listhead // all list headers
	lhsize int        // sum of sizes of all encoded list headers
}

type listhead struct {
	offset int // index of this header in string data
	size   int // total size of encoded data (including list headers)
}

// encode writes head to the given buffer, which must be at least
// 9 bytes long. It returns the encoded bytes.
func (head *listhead) encode(buf []byte) []byte {
	return buf[:puthead(buf, 0xC0, 0xF7, uint64(head.size))]
}

// size returns the length of the encoded data so far.
func (buf *encBuffer) size() int {
	return len(buf.str) + buf.lhsize
}

func (buf *encBuffer) encode(item *Item) {
	if item == nil {
		buf.listEnd(buf.list())
		return
	}
	if item.kind == String {
		buf.writeBytes(item.str)
		return
	}
	idx := buf.list()
	for _, elem := range item.list {
		buf.encode(elem)
	}
	buf.listEnd(idx)
}

func (buf *encBuffer) writeBytes(b []byte) {
	if len(b) == 1 && b[0] < 0x80 {
		// A small single byte is its own encoding.
		buf.str = append(buf.str, b[0])
		return
	}
	buf.encodeStringHeader(len(b))
	buf.str = append(buf.str, b...)
}

func (buf *encBuffer) encodeStringHeader(size int) {
	if size < 56 {
		buf.str = append(buf.str, 0x80+byte(size))
		return
	}
	var head [9]byte
	n := puthead(head[:], 0x80, 0xB7, uint64(size))
	buf.str = append(buf.str, head[:n]...)
}

// list adds a new list header to the header stack. It returns the index of
// the header. Call listEnd with this index after encoding the content.
func (buf *encBuffer) list() int {
	buf.lheads = append(buf.lheads, listhead{offset: len(buf.str), size: buf.lhsize})
	return len(buf.lheads) - 1
}

func (buf *encBuffer) listEnd(index int) {
	lh := &buf.lheads[index]
	lh.size = buf.size() - lh.offset - lh.size
	if lh.size < 56 {
		buf.lhsize++ // length encoded into kind tag
	} else {
		buf.lhsize += 1 + intsize(uint64(lh.size))
	}
}

func (buf *encBuffer) makeBytes() []byte {
	out := make([]byte, buf.size())
	buf.copyTo(out)
	return out
}

func (buf *encBuffer) appendTo(dst []byte) []byte {
	size := buf.size()
	dst = append(dst, make([]byte, size)...)
	buf.copyTo(dst[len(dst)-size:])
	return dst
}

func (buf *encBuffer) copyTo(dst []byte) {
	strpos := 0
	pos := 0
	for _, head := range buf.lheads {
		// write string data before header
		n := copy(dst[pos:], buf.str[strpos:head.offset])
		pos += n
		strpos += n
		// write the header
		enc := head.encode(dst[pos:])
		pos += len(enc)
	}
	// copy string data after the last list header
	copy(dst[pos:], buf.str[strpos:])
}

// headsize returns the size of a list or string header
// for a value of the given size.
func headsize(size uint64) int {
	if size < 56 {
		return 1
	}
	return 1 + intsize(size)
}

// puthead writes a list or string header to buf.
// buf must be at least 9 bytes long.
func puthead(buf []byte, smalltag, largetag byte, size uint64) int {
	if size < 56 {
		buf[0] = smalltag + byte(size)
		return 1
	}
	sizesize := putint(buf[1:], size)
	buf[0] = largetag + byte(sizesize)
	return sizesize + 1
}

// putint writes i to the beginning of b in big endian byte
// order, using the least number of bytes needed to represent i.
func putint(b []byte, i uint64) (size int) {
	size = intsize(i)
	for j := size - 1; j >= 0; j-- {
		b[j] = byte(i)
		i >>= 8
	}
	return size
}

// intsize computes the minimum number of bytes required to store i.
func intsize(i uint64) int {
	if i == 0 {
		return 1
	}
	return (bits.Len64(i) + 7) / 8
}
