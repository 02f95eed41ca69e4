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

// rlpdump prints RLP data in a human readable structured form and converts
// that form back into hex. All parsing and validation is done by the rlp
// package; this command is display glue only.
package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ethwire/rlp"
	"github.com/urfave/cli/v2"
)

var (
	reverseFlag = &cli.BoolFlag{
		Name:  "reverse",
		Usage: "convert a structured dump back into hex encoded RLP",
	}
	singleFlag = &cli.BoolFlag{
		Name:  "single",
		Usage: "print only the first value in the input",
	}
	noASCIIFlag = &cli.BoolFlag{
		Name:  "noascii",
		Usage: "don't print ASCII strings readably",
	}
)

func main() {
	app := &cli.App{
		Name:      "rlpdump",
		Usage:     "prints RLP data in a structured form",
		ArgsUsage: "[hexdata]",
		Flags:     []cli.Flag{reverseFlag, singleFlag, noASCIIFlag},
		Action:    run,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx *cli.Context) error {
	var text string
	if ctx.NArg() > 0 {
		text = ctx.Args().First()
	} else {
		in, err := io.ReadAll(os.Stdin)
		if err != nil {
			return err
		}
		text = string(in)
	}
	text = strings.TrimSpace(text)

	if ctx.Bool(reverseFlag.Name) {
		item, rest, err := parseDump(text)
		if err != nil {
			return err
		}
		if strings.TrimSpace(rest) != "" {
			return errors.New("trailing data after value")
		}
		fmt.Printf("0x%x\n", rlp.Encode(item))
		return nil
	}

	data, err := hex.DecodeString(strings.TrimPrefix(text, "0x"))
	if err != nil {
		return fmt.Errorf("invalid hex input: %v", err)
	}
	for len(data) > 0 {
		size, err := rlp.PeekSize(data)
		if err != nil {
			return err
		}
		if size > uint64(len(data)) {
			return rlp.ErrValueTooLarge
		}
		item, err := rlp.Decode(data[:size])
		if err != nil {
			return err
		}
		fmt.Println(format(item, ctx.Bool(noASCIIFlag.Name)))
		data = data[size:]
		if ctx.Bool(singleFlag.Name) {
			if len(data) > 0 {
				fmt.Printf("... %d bytes of input remain\n", len(data))
			}
			break
		}
	}
	return nil
}

func format(item *rlp.Item, noascii bool) string {
	var buf strings.Builder
	dump(&buf, item, 0, noascii)
	return buf.String()
}

func dump(w *strings.Builder, item *rlp.Item, depth int, noascii bool) {
	if item.Kind() == rlp.List {
		elems := item.Items()
		if len(elems) == 0 {
			w.WriteString("[]")
			return
		}
		w.WriteString("[\n")
		for i, elem := range elems {
			w.WriteString(strings.Repeat("  ", depth+1))
			dump(w, elem, depth+1, noascii)
			if i < len(elems)-1 {
				w.WriteByte(',')
			}
			w.WriteByte('\n')
		}
		w.WriteString(strings.Repeat("  ", depth))
		w.WriteByte(']')
		return
	}
	b := item.Bytes()
	if !noascii && len(b) > 0 && isASCII(b) {
		fmt.Fprintf(w, "%q", b)
	} else {
		fmt.Fprintf(w, "0x%x", b)
	}
}

func isASCII(b []byte) bool {
	for _, c := range b {
		if c < 0x20 || c > 0x7e {
			return false
		}
	}
	return true
}

// parseDump reads one value of the structured dump syntax: a bracketed list,
// a quoted string, or 0x-prefixed hex. It returns the unconsumed remainder.
func parseDump(s string) (*rlp.Item, string, error) {
	s = strings.TrimLeft(s, " \t\r\n")
	if s == "" {
		return nil, s, errors.New("unexpected end of input")
	}
	switch {
	case s[0] == '[':
		s = s[1:]
		var elems []*rlp.Item
		for {
			s = strings.TrimLeft(s, " \t\r\n")
			if s == "" {
				return nil, s, errors.New("unterminated list")
			}
			if s[0] == ']' {
				return rlp.NewList(elems...), s[1:], nil
			}
			elem, rest, err := parseDump(s)
			if err != nil {
				return nil, s, err
			}
			elems = append(elems, elem)
			s = strings.TrimLeft(rest, " \t\r\n")
			if s != "" && s[0] == ',' {
				s = s[1:]
			}
		}
	case s[0] == '"':
		q, err := strconv.QuotedPrefix(s)
		if err != nil {
			return nil, s, errors.New("invalid quoted string")
		}
		unq, err := strconv.Unquote(q)
		if err != nil {
			return nil, s, errors.New("invalid quoted string")
		}
		return rlp.NewString([]byte(unq)), s[len(q):], nil
	case strings.HasPrefix(s, "0x"):
		end := 2
		for end < len(s) && isHexDigit(s[end]) {
			end++
		}
		b, err := rlp.ToBytes(s[:end])
		if err != nil {
			return nil, s, err
		}
		return rlp.NewString(b), s[end:], nil
	default:
		return nil, s, fmt.Errorf("unexpected character %q", s[0])
	}
}

func isHexDigit(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}
