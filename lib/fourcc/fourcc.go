// Copyright 2026 The Refmovie Authors
// SPDX-License-Identifier: Apache-2.0

// Package fourcc provides the four-character code value type used
// throughout the QuickTime container format: atom types, data
// reference kinds, and classic Mac OS file type/creator metadata are
// all 4-byte tags stored in wire (big-endian) order.
package fourcc

import (
	"encoding/binary"
	"fmt"
)

// FourCC is a four-character code. The zero value is not a valid tag.
type FourCC [4]byte

// Parse converts a 4-byte string such as "moov" or "url " into a
// FourCC. The string must be exactly 4 bytes long; no character
// restrictions beyond that, matching the classic toolbox which
// accepted arbitrary 32-bit codes.
func Parse(s string) (FourCC, error) {
	if len(s) != 4 {
		return FourCC{}, fmt.Errorf("four-character code must be exactly 4 bytes, got %d (%q)", len(s), s)
	}
	var code FourCC
	copy(code[:], s)
	return code, nil
}

// MustParse is Parse for compile-time constants. Panics on invalid
// input.
func MustParse(s string) FourCC {
	code, err := Parse(s)
	if err != nil {
		panic("fourcc: " + err.Error())
	}
	return code
}

// IsZero reports whether the code is the all-zero value.
func (c FourCC) IsZero() bool {
	return c == FourCC{}
}

// Uint32 returns the code as a big-endian 32-bit integer, the form in
// which it appears on the wire.
func (c FourCC) Uint32() uint32 {
	return binary.BigEndian.Uint32(c[:])
}

// AppendTo appends the 4 tag bytes to buf and returns the extended
// slice.
func (c FourCC) AppendTo(buf []byte) []byte {
	return append(buf, c[:]...)
}

// String renders the code for logs and error messages. Bytes outside
// printable ASCII are shown as '.' so that binary garbage read from a
// malformed file cannot mangle terminal output.
func (c FourCC) String() string {
	var printable [4]byte
	for i, b := range c {
		if b < 0x20 || b > 0x7e {
			b = '.'
		}
		printable[i] = b
	}
	return string(printable[:])
}
