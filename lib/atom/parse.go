// Copyright 2026 The Refmovie Authors
// SPDX-License-Identifier: Apache-2.0

package atom

import (
	"encoding/binary"
	"fmt"

	"github.com/mediafoundry/refmovie/lib/dataref"
	"github.com/mediafoundry/refmovie/lib/fourcc"
)

// Shortcut is the parsed form of a shortcut movie file.
type Shortcut struct {
	// Ref is the data reference the shortcut points at. Ref.Data is a
	// copy; it does not alias the parsed buffer.
	Ref dataref.Ref
}

// ParseShortcut reads back a buffer produced by [BuildShortcut],
// verifying the fixed moov/mdra/dref chain and the size arithmetic of
// all three headers. It is deliberately not a general atom parser:
// any other atom type, extra trailing bytes, or a size field that
// disagrees with the buffer length is an error.
func ParseShortcut(data []byte) (*Shortcut, error) {
	if len(data) < MinShortcutSize {
		return nil, fmt.Errorf("buffer is %d bytes, shortest valid shortcut is %d", len(data), MinShortcutSize)
	}
	if uint64(len(data)) > uint64(^uint32(0)) {
		return nil, fmt.Errorf("buffer is %d bytes, larger than any valid shortcut", len(data))
	}

	want := [3]struct {
		tag  fourcc.FourCC
		size uint32
	}{
		{MovieAID, uint32(len(data))},
		{MovieDataRefAliasAID, uint32(len(data)) - headerSize},
		{DataRefAID, uint32(len(data)) - 2*headerSize},
	}
	for i, header := range want {
		offset := i * headerSize
		size := binary.BigEndian.Uint32(data[offset:])
		var tag fourcc.FourCC
		copy(tag[:], data[offset+4:])
		if tag != header.tag {
			return nil, fmt.Errorf("atom %d has type %q, want %q", i, tag, header.tag)
		}
		if size != header.size {
			return nil, fmt.Errorf("%q atom size is %d, want %d", tag, size, header.size)
		}
	}

	var refType fourcc.FourCC
	copy(refType[:], data[3*headerSize:])
	payload := make([]byte, len(data)-MinShortcutSize)
	copy(payload, data[MinShortcutSize:])

	return &Shortcut{Ref: dataref.Ref{Type: refType, Data: payload}}, nil
}
