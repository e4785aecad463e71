// Copyright 2026 The Refmovie Authors
// SPDX-License-Identifier: Apache-2.0

// Package filewrite performs overwrite-safe whole-buffer file writes.
//
// The write sequence is fixed: remove any prior file (absence is
// success), create the entry, open it, write the buffer from offset
// zero, truncate to the exact buffer length, close, and flush the
// containing directory's metadata to stable storage. Each step that
// fails aborts the rest and is reported as a [StageError] naming the
// step; nothing is rolled back, so after any error the target's state
// is undefined and the caller retries the whole write.
package filewrite

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mediafoundry/refmovie/lib/fourcc"
)

// Stage identifies the step of the write sequence that failed.
type Stage string

// Write sequence stages, in execution order.
const (
	StageRemove Stage = "remove"
	StageCreate Stage = "create"
	StageOpen   Stage = "open"
	StageWrite  Stage = "write"
	StageResize Stage = "resize"
	StageClose  Stage = "close"
	StageFlush  Stage = "flush"
)

// StageError reports a failed write step. Unwrap exposes the
// underlying OS error for errors.Is/As checks.
type StageError struct {
	Stage Stage
	Path  string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Stage, e.Path, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// Identity is the classic Mac OS file type and creator pair. It is
// file-dispatch metadata, not part of the written bytes; on platforms
// with no home for it (anywhere but Darwin) it is ignored. The zero
// Identity applies nothing on any platform.
type Identity struct {
	Type    fourcc.FourCC
	Creator fourcc.FourCC
}

// Write replaces the file at path with exactly the contents of
// buffer. A prior file is removed first; its absence is not an error.
// On success the file contains len(buffer) bytes, no more, no less,
// and the directory entry has been flushed to stable storage where
// the platform supports it.
func Write(path string, buffer []byte, identity Identity) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return &StageError{StageRemove, path, err}
	}

	// Bring the entry into existence with its identity metadata
	// before opening it for the data write, mirroring the classic
	// create-then-open sequence. O_EXCL: the remove above is the only
	// sanctioned way an entry at this path disappears.
	created, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return &StageError{StageCreate, path, err}
	}
	if err := created.Close(); err != nil {
		return &StageError{StageCreate, path, err}
	}
	if err := applyIdentity(path, identity); err != nil {
		return &StageError{StageCreate, path, err}
	}

	file, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return &StageError{StageOpen, path, err}
	}
	closed := false
	defer func() {
		if !closed {
			file.Close()
		}
	}()

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return &StageError{StageWrite, path, err}
	}
	n, err := file.Write(buffer)
	if err != nil {
		return &StageError{StageWrite, path, err}
	}
	if n != len(buffer) {
		return &StageError{StageWrite, path, io.ErrShortWrite}
	}

	if err := file.Truncate(int64(len(buffer))); err != nil {
		return &StageError{StageResize, path, err}
	}

	if err := file.Sync(); err != nil {
		return &StageError{StageFlush, path, err}
	}

	closed = true
	if err := file.Close(); err != nil {
		return &StageError{StageClose, path, err}
	}

	if err := syncDir(filepath.Dir(path)); err != nil {
		return &StageError{StageFlush, path, err}
	}
	return nil
}
