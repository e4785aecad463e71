// Copyright 2026 The Refmovie Authors
// SPDX-License-Identifier: Apache-2.0

// Package shortcut creates QuickTime shortcut movie files: reference
// movies whose entire content is a single data reference to media
// stored elsewhere.
//
// When a [Host] framework is available and new enough, its native
// facility builds the file. Otherwise the atom layout is built by
// hand (lib/atom) and written durably (lib/filewrite). Both paths
// produce a file the framework resolves at open time.
package shortcut

import (
	"errors"
	"fmt"

	"github.com/mediafoundry/refmovie/lib/atom"
	"github.com/mediafoundry/refmovie/lib/dataref"
	"github.com/mediafoundry/refmovie/lib/filewrite"
	"github.com/mediafoundry/refmovie/lib/fourcc"
)

// MovieFileIdentity is the classic type/creator pair stamped on
// shortcut files: a QuickTime movie owned by the QuickTime player.
var MovieFileIdentity = filewrite.Identity{
	Type:    fourcc.MustParse("MooV"),
	Creator: fourcc.MustParse("TVOD"),
}

// ErrCapabilityQuery marks a failure of the host's version query
// itself. It is not a fallback condition: callers distinguishing "the
// framework is old" from "the framework could not be asked" check for
// this with errors.Is.
var ErrCapabilityQuery = errors.New("host capability query failed")

// Negotiate asks host for its framework version and reports whether
// the native create-shortcut facility may be used. A query failure is
// returned wrapped in [ErrCapabilityQuery]; no fallback decision is
// made on it.
func Negotiate(host Host) (native bool, err error) {
	version, err := host.QuickTimeVersion()
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrCapabilityQuery, err)
	}
	return version.AtLeast(MinNativeShortcut), nil
}

// Create writes a shortcut movie for ref at path.
//
// With a non-nil host, the host's version decides the path: the
// native facility when it is new enough, the manual build otherwise.
// A nil host skips negotiation and always builds manually. On any
// error from the write sequence the on-disk state of path is
// undefined; retrying Create from scratch is safe because the write
// always clears prior state first.
func Create(host Host, ref dataref.Ref, path string) error {
	if host != nil {
		native, err := Negotiate(host)
		if err != nil {
			return err
		}
		if native {
			if err := host.CreateShortcutFile(path, ref); err != nil {
				return fmt.Errorf("native shortcut creation: %w", err)
			}
			return nil
		}
	}

	buffer, err := atom.BuildShortcut(ref)
	if err != nil {
		return err
	}
	return filewrite.Write(path, buffer, MovieFileIdentity)
}
