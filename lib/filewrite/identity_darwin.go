// Copyright 2026 The Refmovie Authors
// SPDX-License-Identifier: Apache-2.0

//go:build darwin

package filewrite

import "golang.org/x/sys/unix"

// finderInfoAttr is the xattr under which macOS keeps classic Finder
// info. The first 8 bytes of the 32-byte blob are the file type and
// creator codes; the rest stays zero.
const finderInfoAttr = "com.apple.FinderInfo"

func applyIdentity(path string, identity Identity) error {
	if identity.Type.IsZero() && identity.Creator.IsZero() {
		return nil
	}
	var info [32]byte
	copy(info[0:4], identity.Type[:])
	copy(info[4:8], identity.Creator[:])
	return unix.Setxattr(path, finderInfoAttr, info[:], 0)
}
