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

package rlp

import "golang.org/x/crypto/sha3"

// Keccak256 returns the Keccak-256 hash of the canonical encoding of item.
// This is the hash used to refer to encoded values in Merkle trie structures,
// e.g. Keccak256 of the empty string item is the well-known empty trie root.
func Keccak256(item *Item) []byte {
	h := sha3.NewLegacyKeccak256()
	h.Write(Encode(item))
	return h.Sum(nil)
}
