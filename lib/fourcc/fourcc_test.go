// Copyright 2026 The Refmovie Authors
// SPDX-License-Identifier: Apache-2.0

package fourcc

import (
	"bytes"
	"testing"
)

func TestParse(t *testing.T) {
	code, err := Parse("moov")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if code != (FourCC{'m', 'o', 'o', 'v'}) {
		t.Errorf("Parse(\"moov\") = %v", code)
	}

	// Trailing space is significant (QuickTime's 'url ' type).
	code, err = Parse("url ")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if code[3] != ' ' {
		t.Errorf("trailing space lost: %v", code)
	}

	for _, bad := range []string{"", "mo", "moovie"} {
		if _, err := Parse(bad); err == nil {
			t.Errorf("Parse(%q) succeeded, want error", bad)
		}
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("MustParse on bad input did not panic")
		}
	}()
	MustParse("toolong")
}

func TestUint32(t *testing.T) {
	// 'moov' = 0x6D6F6F76 big-endian.
	if got := MustParse("moov").Uint32(); got != 0x6D6F6F76 {
		t.Errorf("Uint32 = %#x, want 0x6D6F6F76", got)
	}
}

func TestAppendTo(t *testing.T) {
	buf := []byte{0xAA}
	buf = MustParse("dref").AppendTo(buf)
	if !bytes.Equal(buf, []byte{0xAA, 'd', 'r', 'e', 'f'}) {
		t.Errorf("AppendTo = %v", buf)
	}
}

func TestStringSanitizesUnprintable(t *testing.T) {
	code := FourCC{0x00, 'a', 0xFF, '~'}
	if got := code.String(); got != ".a.~" {
		t.Errorf("String = %q, want \".a.~\"", got)
	}
}

func TestIsZero(t *testing.T) {
	if !(FourCC{}).IsZero() {
		t.Error("zero value not reported as zero")
	}
	if MustParse("alis").IsZero() {
		t.Error("non-zero value reported as zero")
	}
}
