// Copyright 2026 The Refmovie Authors
// SPDX-License-Identifier: Apache-2.0

// Package dataref models QuickTime data references: typed, opaque
// handles that describe where a movie's media actually lives. A
// shortcut movie serializes exactly one of these verbatim; nothing in
// this module interprets the payload bytes.
package dataref

import (
	"fmt"
	"strings"

	"github.com/mediafoundry/refmovie/lib/fourcc"
)

// Well-known data reference types. These are the QuickTime data
// handler subtypes; any other 4-byte code is equally valid as far as
// the container format is concerned.
var (
	// TypeAlias marks the payload as a classic alias record locating
	// a file.
	TypeAlias = fourcc.MustParse("alis")

	// TypeURL marks the payload as a NUL-terminated URL string.
	TypeURL = fourcc.MustParse("url ")
)

// Ref is a single data reference: a type tag plus the raw payload
// bytes that tag describes. The payload is owned by the Ref; the
// constructors copy their input so callers can reuse their buffers.
type Ref struct {
	Type fourcc.FourCC
	Data []byte
}

// Alias wraps an opaque alias record (or any caller-provided locator
// blob) as an 'alis' reference. An empty record is permitted; it
// produces the minimum-size shortcut file.
func Alias(record []byte) Ref {
	data := make([]byte, len(record))
	copy(data, record)
	return Ref{Type: TypeAlias, Data: data}
}

// URL builds a 'url ' reference. QuickTime's URL data handler expects
// the string NUL-terminated, so the terminator is appended here and
// embedded NUL bytes are rejected.
func URL(url string) (Ref, error) {
	if url == "" {
		return Ref{}, fmt.Errorf("url data reference must not be empty")
	}
	if strings.IndexByte(url, 0) >= 0 {
		return Ref{}, fmt.Errorf("url data reference contains a NUL byte")
	}
	data := make([]byte, 0, len(url)+1)
	data = append(data, url...)
	data = append(data, 0)
	return Ref{Type: TypeURL, Data: data}, nil
}

// Raw wraps an arbitrary type tag and payload without interpretation,
// for data reference kinds this package has no constructor for.
func Raw(tag fourcc.FourCC, payload []byte) (Ref, error) {
	if tag.IsZero() {
		return Ref{}, fmt.Errorf("data reference type tag must not be zero")
	}
	data := make([]byte, len(payload))
	copy(data, payload)
	return Ref{Type: tag, Data: data}, nil
}
