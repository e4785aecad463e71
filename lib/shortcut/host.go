// Copyright 2026 The Refmovie Authors
// SPDX-License-Identifier: Apache-2.0

package shortcut

import (
	"fmt"

	"github.com/mediafoundry/refmovie/lib/dataref"
)

// Version is a packed multimedia framework version as reported by the
// host's capability query: binary-coded decimal with the major number
// in the top byte, the minor and bugfix digits in the next two
// nibbles, and the low 16 bits reserved. QuickTime 4.0 reports
// 0x04000000, 7.6.4 reports 0x07648000's upper half as 0x0764.
type Version uint32

// MinNativeShortcut is the first framework version whose native
// create-shortcut entry point exists (QuickTime 4.0).
const MinNativeShortcut Version = 0x04000000

// Major returns the decoded major version number.
func (v Version) Major() int {
	return int(v>>28&0xF)*10 + int(v>>24&0xF)
}

// Minor returns the decoded minor version number.
func (v Version) Minor() int {
	return int(v >> 20 & 0xF)
}

// Bugfix returns the decoded bugfix version number.
func (v Version) Bugfix() int {
	return int(v >> 16 & 0xF)
}

// AtLeast compares only the version halves of the packed values; the
// reserved low 16 bits never participate.
func (v Version) AtLeast(min Version) bool {
	return v>>16 >= min>>16
}

func (v Version) String() string {
	if bugfix := v.Bugfix(); bugfix != 0 {
		return fmt.Sprintf("%d.%d.%d", v.Major(), v.Minor(), bugfix)
	}
	return fmt.Sprintf("%d.%d", v.Major(), v.Minor())
}

// Host abstracts the multimedia framework this process runs next to.
// Implementations bridge to whatever framework the platform actually
// has; the library itself ships none, and a nil Host means "build the
// file by hand, no negotiation".
type Host interface {
	// QuickTimeVersion reports the framework's packed version. An
	// error means the capability query itself failed (the framework
	// is absent or unresponsive), which is distinct from an old
	// version being reported.
	QuickTimeVersion() (Version, error)

	// CreateShortcutFile is the framework's native shortcut facility,
	// present from [MinNativeShortcut] on. It owns the entire file
	// creation when the negotiator selects the native path.
	CreateShortcutFile(path string, ref dataref.Ref) error
}
