// Copyright 2026 The Refmovie Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/pflag"
	"github.com/zeebo/blake3"
	"golang.org/x/term"

	"github.com/mediafoundry/refmovie/lib/atom"
	"github.com/mediafoundry/refmovie/lib/filewrite"
	"github.com/mediafoundry/refmovie/lib/shortcut"
	"github.com/mediafoundry/refmovie/lib/shortcutdef"
)

func runBatch(args []string) error {
	flags := pflag.NewFlagSet("batch", pflag.ContinueOnError)
	skipUnchanged := flags.Bool("skip-unchanged", false, "leave byte-identical existing files untouched")
	noProgress := flags.Bool("no-progress", false, "disable the progress bar")
	verbose := flags.BoolP("verbose", "v", false, "enable debug logging")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() != 1 {
		return fmt.Errorf("usage: refmovie batch <definition.yaml>")
	}
	logger := newLogger(*verbose)

	definition, err := shortcutdef.Load(flags.Arg(0))
	if err != nil {
		return err
	}

	var bar *progressbar.ProgressBar
	if !*noProgress && term.IsTerminal(int(os.Stderr.Fd())) {
		bar = progressbar.NewOptions(len(definition.Shortcuts),
			progressbar.OptionSetDescription("writing shortcuts"),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionClearOnFinish(),
		)
	}

	written, skipped := 0, 0
	for _, entry := range definition.Shortcuts {
		wrote, err := processEntry(entry, *skipUnchanged, logger)
		if err != nil {
			return fmt.Errorf("shortcut %s: %w", entry.Output, err)
		}
		if wrote {
			written++
		} else {
			skipped++
		}
		if bar != nil {
			bar.Add(1)
		}
	}
	logger.Info("batch complete", "written", written, "skipped", skipped)
	return nil
}

// processEntry builds and writes one shortcut. It reports false when
// skip-unchanged found the file already up to date.
func processEntry(entry shortcutdef.Entry, skipUnchanged bool, logger *slog.Logger) (wrote bool, err error) {
	ref, err := entry.DataRef()
	if err != nil {
		return false, err
	}
	buffer, err := atom.BuildShortcut(ref)
	if err != nil {
		return false, err
	}

	if skipUnchanged && unchanged(entry.Output, buffer) {
		logger.Debug("unchanged, skipped", "path", entry.Output)
		return false, nil
	}

	if err := os.MkdirAll(filepath.Dir(entry.Output), 0o755); err != nil {
		return false, fmt.Errorf("creating output directory: %w", err)
	}
	if err := filewrite.Write(entry.Output, buffer, shortcut.MovieFileIdentity); err != nil {
		return false, err
	}
	logger.Debug("written", "path", entry.Output, "bytes", len(buffer))
	return true, nil
}

// unchanged reports whether the file at path already holds exactly
// buffer, compared by content hash so a rewrite (and its directory
// flush) can be skipped.
func unchanged(path string, buffer []byte) bool {
	existing, err := os.ReadFile(path)
	if err != nil || len(existing) != len(buffer) {
		return false
	}
	return blake3.Sum256(existing) == blake3.Sum256(buffer)
}
