// Copyright 2022 The go-ethereum Authors
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

/*
Package rlp implements the RLP serialization format.

The purpose of RLP (Recursive Length Prefix) is to encode arbitrarily nested
arrays of binary data. The only purpose of RLP is to encode structure; encoding
specific atomic data types (strings, ints, floats) is left up to higher-order
protocols. Integers must be represented in big endian binary form with no
leading zeroes, making the integer value zero equivalent to the empty string.

Unlike reflection-based RLP packages, this package exposes the value domain of
RLP directly: an Item is either a byte string or a list of further items, and
nothing else. Encode and Decode are exhaustive over these two cases.

# Encoding Rules

A string of zero length encodes as 0x80. A single byte below 0x80 is its own
encoding. Any other string is prefixed with a header derived from its length:
for lengths below 56 a single byte 0x80+length, otherwise 0xB7+len(lengthBytes)
followed by the big-endian length itself.

A list encodes as the concatenation of its encoded elements, prefixed with a
header built the same way from offset 0xC0 (short form) or 0xF7 (long form).
The empty list encodes as 0xC0.

# Canonical Form

Every value has exactly one valid encoding. Decode rejects any input that a
non-canonical encoder might produce for the same value: explicit length fields
with leading zero bytes or values below 56, and single bytes below 0x80 wrapped
in a string header. Decoding also requires the input buffer to contain exactly
one value with no trailing bytes.

# Scalar Conversion

ToBytes and FromValue convert Go scalars into the byte-string domain before
encoding: byte slices pass through, "0x"-prefixed strings are hex decoded (odd
length tolerated by left-padding one zero digit), other strings become their
raw bytes, unsigned and non-negative signed integers become their minimal
big-endian representation with zero mapping to the empty string, and nil
becomes the empty string. big.Int and uint256.Int values convert through their
big-endian byte view. Everything else fails with ErrInvalidType.
*/
package rlp
