// Copyright 2026 The Refmovie Authors
// SPDX-License-Identifier: Apache-2.0

// Package atom builds and reads the binary layout of QuickTime
// shortcut movies.
//
// A shortcut is the simplest possible reference movie: a file whose
// entire content is one movie atom, containing one movie data
// reference alias atom, containing one data reference atom. The
// innermost atom carries the data reference type tag followed by the
// reference bytes themselves. Atoms here are plain length-prefixed
// chunks (4-byte big-endian size including the 8-byte header, then a
// 4-byte type tag), unrelated to the QT atom container structures.
//
// On-disk layout for a payload of N bytes:
//
//	0x00  u32 size = 28 + N     'moov'
//	0x08  u32 size = 20 + N     'mdra'
//	0x10  u32 size = 12 + N     'dref'
//	0x18  payload type tag (4 bytes)
//	0x1C  N payload bytes
//
// [BuildShortcut] produces this layout; [ParseShortcut] reads exactly
// this layout back and nothing else. General-purpose atom parsing is
// out of scope.
package atom
