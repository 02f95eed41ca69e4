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

import (
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/holiman/uint256"
)

// ErrInvalidType is returned when a value cannot be coerced into the RLP
// byte-string domain.
var ErrInvalidType = errors.New("rlp: value cannot be represented as bytes")

// ToBytes normalizes v into the canonical byte-string representation used
// before encoding:
//
//	[]byte           unchanged
//	string           "0x"-prefixed hex decoded (odd length left-padded with
//	                 one zero digit), otherwise the raw bytes of the string
//	unsigned ints    minimal big-endian, zero maps to the empty string
//	signed ints      as above; negative values are rejected
//	*big.Int         big-endian byte view; negative values are rejected
//	*uint256.Int     big-endian byte view
//	nil              the empty string
//
// Any other value fails with an error wrapping ErrInvalidType.
func ToBytes(v interface{}) ([]byte, error) {
	switch v := v.(type) {
	case nil:
		return []byte{}, nil
	case []byte:
		return v, nil
	case string:
		if strings.HasPrefix(v, "0x") {
			return hexBytes(v[2:])
		}
		return []byte(v), nil
	case uint:
		return uintBytes(uint64(v)), nil
	case uint8:
		return uintBytes(uint64(v)), nil
	case uint16:
		return uintBytes(uint64(v)), nil
	case uint32:
		return uintBytes(uint64(v)), nil
	case uint64:
		return uintBytes(v), nil
	case int:
		return signedBytes(int64(v))
	case int8:
		return signedBytes(int64(v))
	case int16:
		return signedBytes(int64(v))
	case int32:
		return signedBytes(int64(v))
	case int64:
		return signedBytes(v)
	case *big.Int:
		if v == nil {
			return []byte{}, nil
		}
		if v.Sign() < 0 {
			return nil, fmt.Errorf("%w: negative big.Int", ErrInvalidType)
		}
		return v.Bytes(), nil
	case *uint256.Int:
		if v == nil {
			return []byte{}, nil
		}
		return v.Bytes(), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrInvalidType, v)
	}
}

// FromValue builds an item tree from v. Slices of values become lists,
// recursively; everything else goes through ToBytes.
func FromValue(v interface{}) (*Item, error) {
	switch v := v.(type) {
	case *Item:
		return v, nil
	case []*Item:
		return NewList(v...), nil
	case [][]byte:
		items := make([]*Item, len(v))
		for i, b := range v {
			items[i] = NewString(b)
		}
		return NewList(items...), nil
	case []interface{}:
		items := make([]*Item, len(v))
		for i, elem := range v {
			item, err := FromValue(elem)
			if err != nil {
				return nil, err
			}
			items[i] = item
		}
		return NewList(items...), nil
	default:
		b, err := ToBytes(v)
		if err != nil {
			return nil, err
		}
		return NewString(b), nil
	}
}

// EncodeValue coerces v into an item tree and returns its encoding.
func EncodeValue(v interface{}) ([]byte, error) {
	item, err := FromValue(v)
	if err != nil {
		return nil, err
	}
	return Encode(item), nil
}

func hexBytes(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		s = "0" + s
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid hex string", ErrInvalidType)
	}
	return b, nil
}

func signedBytes(i int64) ([]byte, error) {
	if i < 0 {
		return nil, fmt.Errorf("%w: negative integer", ErrInvalidType)
	}
	return uintBytes(uint64(i)), nil
}

func uintBytes(i uint64) []byte {
	if i == 0 {
		return []byte{}
	}
	b := make([]byte, intsize(i))
	putint(b, i)
	return b
}
