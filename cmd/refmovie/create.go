// Copyright 2026 The Refmovie Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/mediafoundry/refmovie/lib/dataref"
	"github.com/mediafoundry/refmovie/lib/shortcut"
)

func runCreate(args []string) error {
	flags := pflag.NewFlagSet("create", pflag.ContinueOnError)
	out := flags.String("out", "", "path of the shortcut movie to write")
	url := flags.String("url", "", "movie URL the shortcut points at")
	aliasFile := flags.String("alias-file", "", "file holding a raw alias record the shortcut points at")
	verbose := flags.BoolP("verbose", "v", false, "enable debug logging")
	if err := flags.Parse(args); err != nil {
		return err
	}
	logger := newLogger(*verbose)

	if *out == "" {
		return fmt.Errorf("--out is required")
	}
	ref, err := resolveRef(*url, *aliasFile)
	if err != nil {
		return err
	}

	if err := shortcut.Create(nil, ref, *out); err != nil {
		return err
	}
	logger.Info("shortcut written", "path", *out, "ref_type", ref.Type.String(), "payload_bytes", len(ref.Data))
	return nil
}

// resolveRef turns the mutually exclusive --url / --alias-file pair
// into a data reference.
func resolveRef(url, aliasFile string) (dataref.Ref, error) {
	if (url == "") == (aliasFile == "") {
		return dataref.Ref{}, fmt.Errorf("exactly one of --url or --alias-file is required")
	}
	if url != "" {
		return dataref.URL(url)
	}
	record, err := os.ReadFile(aliasFile)
	if err != nil {
		return dataref.Ref{}, fmt.Errorf("reading alias record: %w", err)
	}
	return dataref.Alias(record), nil
}
