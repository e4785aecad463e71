// Copyright 2026 The Refmovie Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/mediafoundry/refmovie/lib/atom"
	"github.com/mediafoundry/refmovie/lib/dataref"
)

// inspectReport is the machine-readable form of an inspected
// shortcut.
type inspectReport struct {
	File         string `json:"file"`
	Size         int    `json:"size"`
	RefType      string `json:"ref_type"`
	PayloadBytes int    `json:"payload_bytes"`
	URL          string `json:"url,omitempty"`
}

func runInspect(args []string) error {
	flags := pflag.NewFlagSet("inspect", pflag.ContinueOnError)
	asJSON := flags.Bool("json", false, "emit the report as JSON")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() != 1 {
		return fmt.Errorf("usage: refmovie inspect <file.mov>")
	}
	path := flags.Arg(0)

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	parsed, err := atom.ParseShortcut(data)
	if err != nil {
		return fmt.Errorf("%s is not a shortcut movie: %w", path, err)
	}

	report := inspectReport{
		File:         path,
		Size:         len(data),
		RefType:      parsed.Ref.Type.String(),
		PayloadBytes: len(parsed.Ref.Data),
	}
	if parsed.Ref.Type == dataref.TypeURL {
		// The payload is a NUL-terminated URL string.
		report.URL = strings.TrimRight(string(parsed.Ref.Data), "\x00")
	}

	if *asJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(report)
	}

	fmt.Printf("file:          %s\n", report.File)
	fmt.Printf("size:          %d bytes\n", report.Size)
	fmt.Printf("ref type:      %s\n", report.RefType)
	fmt.Printf("payload:       %d bytes\n", report.PayloadBytes)
	if report.URL != "" {
		fmt.Printf("url:           %s\n", report.URL)
	}
	return nil
}
