// Copyright 2026 The Refmovie Authors
// SPDX-License-Identifier: Apache-2.0

package atom

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"testing"

	"github.com/mediafoundry/refmovie/lib/dataref"
	"github.com/mediafoundry/refmovie/lib/fourcc"
)

func TestBuildShortcutStructure(t *testing.T) {
	// For a variety of payloads, check that the three headers chain
	// by exactly 8 bytes and that the tail is tag ++ payload.
	payloads := [][]byte{
		[]byte("x"),
		[]byte("a longer data reference payload with some length to it"),
		bytes.Repeat([]byte{0xAB}, 4096),
	}
	for _, payload := range payloads {
		ref := dataref.Alias(payload)
		buf, err := BuildShortcut(ref)
		if err != nil {
			t.Fatalf("BuildShortcut failed for %d-byte payload: %v", len(payload), err)
		}

		if len(buf) != MinShortcutSize+len(payload) {
			t.Fatalf("buffer length = %d, want %d", len(buf), MinShortcutSize+len(payload))
		}
		outer := binary.BigEndian.Uint32(buf[0x00:])
		alias := binary.BigEndian.Uint32(buf[0x08:])
		dref := binary.BigEndian.Uint32(buf[0x10:])
		if outer != uint32(len(buf)) {
			t.Errorf("moov size = %d, want buffer length %d", outer, len(buf))
		}
		if alias != outer-8 {
			t.Errorf("mdra size = %d, want %d", alias, outer-8)
		}
		if dref != alias-8 {
			t.Errorf("dref size = %d, want %d", dref, alias-8)
		}

		tail := buf[0x18:]
		if !bytes.Equal(tail[:4], ref.Type[:]) {
			t.Errorf("payload type tag = %q", tail[:4])
		}
		if !bytes.Equal(tail[4:], payload) {
			t.Errorf("payload bytes do not round-trip for %d-byte payload", len(payload))
		}
	}
}

func TestBuildShortcutEmptyPayload(t *testing.T) {
	// The minimum well-formed shortcut is exactly 28 bytes.
	buf, err := BuildShortcut(dataref.Alias(nil))
	if err != nil {
		t.Fatalf("BuildShortcut failed: %v", err)
	}
	want := []byte{
		0x00, 0x00, 0x00, 0x1C, 'm', 'o', 'o', 'v',
		0x00, 0x00, 0x00, 0x14, 'm', 'd', 'r', 'a',
		0x00, 0x00, 0x00, 0x0C, 'd', 'r', 'e', 'f',
		'a', 'l', 'i', 's',
	}
	if !bytes.Equal(buf, want) {
		t.Errorf("empty-payload shortcut:\n got %x\nwant %x", buf, want)
	}
}

func TestShortcutSizeOverflow(t *testing.T) {
	// A payload that would push the moov size past the u32 field is
	// rejected, never truncated. Checked on the size computation so
	// the test does not need a 4 GiB allocation.
	if _, err := shortcutSize(math.MaxUint32); !errors.Is(err, ErrTooLarge) {
		t.Errorf("shortcutSize(MaxUint32) error = %v, want ErrTooLarge", err)
	}
	if _, err := shortcutSize(math.MaxUint32 - MinShortcutSize + 1); !errors.Is(err, ErrTooLarge) {
		t.Errorf("first overflowing length not rejected: %v", err)
	}
	if size, err := shortcutSize(math.MaxUint32 - MinShortcutSize); err != nil || size != math.MaxUint32 {
		t.Errorf("largest representable payload: size=%d err=%v", size, err)
	}
}

func TestParseShortcutRoundTrip(t *testing.T) {
	ref, err := dataref.URL("rtsp://media.example.com/live")
	if err != nil {
		t.Fatalf("URL failed: %v", err)
	}
	buf, err := BuildShortcut(ref)
	if err != nil {
		t.Fatalf("BuildShortcut failed: %v", err)
	}

	parsed, err := ParseShortcut(buf)
	if err != nil {
		t.Fatalf("ParseShortcut failed: %v", err)
	}
	if parsed.Ref.Type != ref.Type {
		t.Errorf("type = %v, want %v", parsed.Ref.Type, ref.Type)
	}
	if !bytes.Equal(parsed.Ref.Data, ref.Data) {
		t.Errorf("payload does not round-trip")
	}

	// The parsed payload must be a copy, not a view of the input.
	buf[len(buf)-1] ^= 0xFF
	if !bytes.Equal(parsed.Ref.Data, ref.Data) {
		t.Error("parsed payload aliases the input buffer")
	}
}

func TestParseShortcutRejectsMalformed(t *testing.T) {
	good, err := BuildShortcut(dataref.Alias([]byte("payload")))
	if err != nil {
		t.Fatalf("BuildShortcut failed: %v", err)
	}

	corrupt := func(mutate func(b []byte)) []byte {
		b := bytes.Clone(good)
		mutate(b)
		return b
	}

	cases := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"truncated header", good[:27]},
		{"wrong moov tag", corrupt(func(b []byte) { copy(b[4:], "free") })},
		{"wrong mdra tag", corrupt(func(b []byte) { copy(b[12:], "mdat") })},
		{"wrong dref tag", corrupt(func(b []byte) { copy(b[20:], "drEF") })},
		{"moov size too small", corrupt(func(b []byte) { binary.BigEndian.PutUint32(b, uint32(len(good)-1)) })},
		{"mdra size broken", corrupt(func(b []byte) { binary.BigEndian.PutUint32(b[8:], 0) })},
		{"dref size broken", corrupt(func(b []byte) { binary.BigEndian.PutUint32(b[16:], uint32(len(good))) })},
		{"trailing garbage", append(bytes.Clone(good), 0x00)},
	}
	for _, c := range cases {
		if _, err := ParseShortcut(c.data); err == nil {
			t.Errorf("%s: ParseShortcut accepted malformed input", c.name)
		}
	}
}

func TestAtomTags(t *testing.T) {
	// The wire tags are part of the format, not tunable.
	if MovieAID != fourcc.MustParse("moov") ||
		MovieDataRefAliasAID != fourcc.MustParse("mdra") ||
		DataRefAID != fourcc.MustParse("dref") {
		t.Error("atom tags changed; existing shortcut files would be unreadable")
	}
}
