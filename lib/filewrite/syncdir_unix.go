// Copyright 2026 The Refmovie Authors
// SPDX-License-Identifier: Apache-2.0

//go:build !windows

package filewrite

import "os"

// syncDir fsyncs the directory so the entry created inside it is
// durably discoverable across a crash. This is the modern analog of
// the classic toolbox's volume flush after closing a new file.
func syncDir(dir string) error {
	handle, err := os.Open(dir)
	if err != nil {
		return err
	}
	defer handle.Close()
	return handle.Sync()
}
