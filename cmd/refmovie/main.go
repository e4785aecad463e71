// Copyright 2026 The Refmovie Authors
// SPDX-License-Identifier: Apache-2.0

// refmovie creates QuickTime shortcut movie files: tiny containers
// whose only content is a data reference (a URL or an alias record)
// to media stored elsewhere.
package main

import (
	"fmt"
	"log/slog"
	"os"
)

const toolVersion = "0.1.0"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if len(os.Args) < 2 {
		printUsage()
		return fmt.Errorf("subcommand required")
	}

	switch os.Args[1] {
	case "create":
		return runCreate(os.Args[2:])
	case "batch":
		return runBatch(os.Args[2:])
	case "inspect":
		return runInspect(os.Args[2:])
	case "version":
		fmt.Printf("refmovie %s\n", toolVersion)
		return nil
	case "-h", "--help", "help":
		printUsage()
		return nil
	default:
		printUsage()
		return fmt.Errorf("unknown subcommand: %q", os.Args[1])
	}
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

func printUsage() {
	fmt.Fprint(os.Stderr, `refmovie - create QuickTime shortcut movies

Usage:
  refmovie create --out FILE (--url URL | --alias-file FILE) [-v]
  refmovie batch DEFINITION.yaml [--skip-unchanged] [--no-progress] [-v]
  refmovie inspect FILE [--json]
  refmovie version

A shortcut movie is the simplest reference movie: opening it opens the
media its single data reference points at. The batch definition format
is documented in lib/shortcutdef.
`)
}
