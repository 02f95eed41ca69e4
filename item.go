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

import "bytes"

// Kind represents the kind of value contained in an RLP encoding.
type Kind int8

const (
	Byte Kind = iota
	String
	List
)

func (k Kind) String() string {
	switch k {
	case Byte:
		return "Byte"
	case String:
		return "String"
	case List:
		return "List"
	default:
		return "Unknown"
	}
}

// Item is an RLP value: either a byte string or a list of further items.
// There is no third variant. Items are immutable once constructed and hold
// no reference to the buffer they were decoded from.
type Item struct {
	kind Kind
	str  []byte
	list []*Item
}

// NewString creates a byte string item. The slice is retained by the item
// and must not be modified afterwards.
func NewString(b []byte) *Item {
	return &Item{kind: String, str: b}
}

// NewList creates a list item with the given elements.
func NewList(items ...*Item) *Item {
	return &Item{kind: List, list: items}
}

// Kind reports whether the item is a byte string or a list. It never
// returns Byte: single bytes are just strings of length one.
func (it *Item) Kind() Kind {
	return it.kind
}

// Bytes returns the payload of a string item. It returns nil for lists.
// The returned slice must not be modified.
func (it *Item) Bytes() []byte {
	if it.kind != String {
		return nil
	}
	return it.str
}

// Items returns the elements of a list item, nil for strings.
func (it *Item) Items() []*Item {
	if it.kind != List {
		return nil
	}
	return it.list
}

// Equal reports whether two items encode to the same RLP value.
func (it *Item) Equal(other *Item) bool {
	if it == nil || other == nil {
		return it == other
	}
	if it.kind != other.kind {
		return false
	}
	if it.kind == String {
		return bytes.Equal(it.str, other.str)
	}
	if len(it.list) != len(other.list) {
		return false
	}
	for i := range it.list {
		if !it.list[i].Equal(other.list[i]) {
			return false
		}
	}
	return true
}
