// Copyright 2026 The Refmovie Authors
// SPDX-License-Identifier: Apache-2.0

package atom

import (
	"encoding/binary"
	"errors"
	"math"

	"github.com/mediafoundry/refmovie/lib/dataref"
	"github.com/mediafoundry/refmovie/lib/fourcc"
)

// Atom type tags for the shortcut chain, from QuickTime's
// MoviesFormat.h.
var (
	// MovieAID is the outermost movie atom.
	MovieAID = fourcc.MustParse("moov")

	// MovieDataRefAliasAID is the movie data reference alias atom.
	MovieDataRefAliasAID = fourcc.MustParse("mdra")

	// DataRefAID is the innermost data reference atom.
	DataRefAID = fourcc.MustParse("dref")
)

const (
	// headerSize is the fixed atom header: 4-byte size + 4-byte type.
	headerSize = 8

	// MinShortcutSize is the smallest well-formed shortcut file:
	// three atom headers plus the payload type tag, zero payload
	// bytes.
	MinShortcutSize = 3*headerSize + 4
)

// ErrTooLarge is returned when a payload would push the outer atom's
// size past the 32-bit size field the format mandates. The size is
// never silently truncated.
var ErrTooLarge = errors.New("atom: data reference too large for 32-bit atom size")

// shortcutSize returns the outer movie atom size for a payload of
// payloadLen bytes, or ErrTooLarge if it does not fit the format's
// u32 size field.
func shortcutSize(payloadLen int) (uint32, error) {
	total := uint64(MinShortcutSize) + uint64(payloadLen)
	if total > math.MaxUint32 {
		return 0, ErrTooLarge
	}
	return uint32(total), nil
}

// BuildShortcut serializes ref as a complete shortcut movie: the
// three nested atom headers followed by the payload type tag and the
// payload bytes. Pure in-memory construction; no I/O. An empty
// payload is valid and yields the minimum 28-byte file.
func BuildShortcut(ref dataref.Ref) ([]byte, error) {
	total, err := shortcutSize(len(ref.Data))
	if err != nil {
		return nil, err
	}

	// Sizes nest top-down: each inner atom is 8 bytes smaller than
	// the one containing it.
	buf := make([]byte, 0, total)
	buf = binary.BigEndian.AppendUint32(buf, total)
	buf = MovieAID.AppendTo(buf)
	buf = binary.BigEndian.AppendUint32(buf, total-headerSize)
	buf = MovieDataRefAliasAID.AppendTo(buf)
	buf = binary.BigEndian.AppendUint32(buf, total-2*headerSize)
	buf = DataRefAID.AppendTo(buf)
	buf = ref.Type.AppendTo(buf)
	buf = append(buf, ref.Data...)
	return buf, nil
}
