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
	"bytes"
	"testing"
)

var encodeTests = []struct {
	item   *Item
	output string
}{
	// byte strings
	{item: NewString(nil), output: "80"},
	{item: NewString([]byte{}), output: "80"},
	{item: NewString([]byte{0x00}), output: "00"},
	{item: NewString([]byte{0x7F}), output: "7f"},
	{item: NewString([]byte{0x80}), output: "8180"},
	{item: NewString([]byte{0xFF}), output: "81ff"},
	{item: NewString([]byte("dog")), output: "83646f67"},
	{
		item:   NewString([]byte("Lorem ipsum dolor sit amet, consectetur adipisicing eli")),
		output: "b74c6f72656d20697073756d20646f6c6f722073697420616d65742c20636f6e7365637465747572206164697069736963696e6720656c69",
	},
	// 56 bytes needs the long-string form
	{
		item:   NewString([]byte("Lorem ipsum dolor sit amet, consectetur adipisicing elit")),
		output: "b8384c6f72656d20697073756d20646f6c6f722073697420616d65742c20636f6e7365637465747572206164697069736963696e6720656c6974",
	},

	// lists
	{item: nil, output: "c0"},
	{item: NewList(), output: "c0"},
	{item: NewList(NewString([]byte("cat")), NewString([]byte("dog"))), output: "c88363617483646f67"},
	{item: NewList(
		NewList(),
		NewList(NewList()),
		NewList(NewList(), NewList(NewList())),
	), output: "c7c0c1c0c3c0c1c0"},
}

func TestEncode(t *testing.T) {
	for i, test := range encodeTests {
		enc := Encode(test.item)
		if !bytes.Equal(enc, unhex(test.output)) {
			t.Errorf("test %d: output mismatch\ngot  %x\nwant %s", i, enc, test.output)
		}
		if size := EncodedSize(test.item); size != len(enc) {
			t.Errorf("test %d: EncodedSize mismatch: got %d, want %d", i, size, len(enc))
		}
	}
}

func TestEncodeLongString(t *testing.T) {
	// 1024 payload bytes need a two-byte length field.
	payload := bytes.Repeat([]byte{0x42}, 1024)
	enc := Encode(NewString(payload))
	if want := append(unhex("b90400"), payload...); !bytes.Equal(enc, want) {
		t.Fatalf("output mismatch\ngot  %x...\nwant %x...", enc[:4], want[:4])
	}
}

func TestEncodeLongList(t *testing.T) {
	// 19 three-byte strings make a 76 byte payload, forcing the long-list form.
	var elems []*Item
	for i := 0; i < 19; i++ {
		elems = append(elems, NewString([]byte("abc")))
	}
	enc := Encode(NewList(elems...))
	if !bytes.Equal(enc[:2], unhex("f84c")) {
		t.Fatalf("head mismatch: got %x, want f84c", enc[:2])
	}
	if len(enc) != 2+76 {
		t.Fatalf("length mismatch: got %d, want %d", len(enc), 2+76)
	}
}

// Deeply nested lists must encode in one pass over the tree, without
// re-measuring a subtree once per enclosing list.
func TestEncodeDeepList(t *testing.T) {
	const depth = maxNestingDepth + 1
	item := nestedList(depth)
	enc := Encode(item)
	if size := EncodedSize(item); size != len(enc) {
		t.Fatalf("EncodedSize mismatch: got %d, want %d", size, len(enc))
	}
	// The innermost levels fit the short-list form: ... c2 c1 c0.
	if !bytes.Equal(enc[len(enc)-3:], unhex("c2c1c0")) {
		t.Fatalf("tail mismatch: got %x, want c2c1c0", enc[len(enc)-3:])
	}
	dec, err := Decode(enc)
	if err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if !dec.Equal(item) {
		t.Fatal("round trip mismatch")
	}
}

func TestAppendEncoded(t *testing.T) {
	buf := []byte("prefix")
	buf = AppendEncoded(buf, NewString([]byte("dog")))
	if want := append([]byte("prefix"), unhex("83646f67")...); !bytes.Equal(buf, want) {
		t.Fatalf("output mismatch: got %x, want %x", buf, want)
	}
}

func TestEmptyValueConstants(t *testing.T) {
	if !bytes.Equal(Encode(NewString(nil)), EmptyString) {
		t.Errorf("empty string encoding does not match EmptyString")
	}
	if !bytes.Equal(Encode(NewList()), EmptyList) {
		t.Errorf("empty list encoding does not match EmptyList")
	}
}

func TestPuthead(t *testing.T) {
	tests := []struct {
		size   uint64
		output string
	}{
		{size: 0, output: "80"},
		{size: 1, output: "81"},
		{size: 55, output: "b7"},
		{size: 56, output: "b838"},
		{size: 1024, output: "b90400"},
		{size: 0xFFFFFF, output: "baffffff"},
	}
	for _, test := range tests {
		var buf [9]byte
		n := puthead(buf[:], 0x80, 0xB7, test.size)
		if got := buf[:n]; !bytes.Equal(got, unhex(test.output)) {
			t.Errorf("puthead(%d): got %x, want %s", test.size, got, test.output)
		}
		if hs := headsize(test.size); hs != n {
			t.Errorf("headsize(%d): got %d, want %d", test.size, hs, n)
		}
	}
}

func TestIntsize(t *testing.T) {
	tests := []struct {
		val  uint64
		size int
	}{
		{0, 1}, {1, 1}, {255, 1}, {256, 2}, {65535, 2}, {65536, 3},
		{1 << 32, 5}, {1<<56 - 1, 7}, {1 << 56, 8},
	}
	for _, test := range tests {
		if got := intsize(test.val); got != test.size {
			t.Errorf("intsize(%d): got %d, want %d", test.val, got, test.size)
		}
	}
}

func BenchmarkEncode(b *testing.B) {
	item := NewList(
		NewString([]byte("cat")),
		NewString(bytes.Repeat([]byte{0x42}, 100)),
		NewList(NewString([]byte("dog")), NewString([]byte{0x01})),
	)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		Encode(item)
	}
}
