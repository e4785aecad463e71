// Copyright 2026 The Refmovie Authors
// SPDX-License-Identifier: Apache-2.0

// Package shortcutdef loads YAML definition files describing a batch
// of shortcut movies to create.
//
// A definition file looks like:
//
//	shortcuts:
//	  - output: trailers/launch.mov
//	    url: http://media.example.com/launch.mov
//	  - output: local/master.mov
//	    alias-file: aliases/master.alias
//
// Each entry names exactly one data reference source: a url (becomes
// a 'url ' reference) or an alias-file whose raw bytes become an
// 'alis' reference. Relative paths are resolved against the directory
// containing the definition file, so a definition behaves the same
// from any working directory.
package shortcutdef

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mediafoundry/refmovie/lib/dataref"
)

// File is a parsed definition file.
type File struct {
	Shortcuts []Entry `yaml:"shortcuts"`
}

// Entry describes one shortcut movie to create.
type Entry struct {
	// Output is the path of the shortcut file to write.
	Output string `yaml:"output"`

	// URL, when set, is the movie's location; it is serialized as a
	// NUL-terminated 'url ' data reference.
	URL string `yaml:"url,omitempty"`

	// AliasFile, when set, names a file whose raw bytes are an alias
	// record; they are serialized verbatim as an 'alis' reference.
	AliasFile string `yaml:"alias-file,omitempty"`
}

// Load reads and validates the definition file at path. Unknown YAML
// fields are rejected so typos fail loudly instead of silently doing
// nothing.
func Load(path string) (*File, error) {
	handle, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening definition file: %w", err)
	}
	defer handle.Close()

	decoder := yaml.NewDecoder(handle)
	decoder.KnownFields(true)

	var file File
	if err := decoder.Decode(&file); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	baseDir := filepath.Dir(path)
	for i := range file.Shortcuts {
		file.Shortcuts[i].resolve(baseDir)
	}

	if err := file.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &file, nil
}

// resolve anchors the entry's relative paths at baseDir.
func (e *Entry) resolve(baseDir string) {
	if e.Output != "" && !filepath.IsAbs(e.Output) {
		e.Output = filepath.Join(baseDir, e.Output)
	}
	if e.AliasFile != "" && !filepath.IsAbs(e.AliasFile) {
		e.AliasFile = filepath.Join(baseDir, e.AliasFile)
	}
}

// Validate checks the definition as a whole: every entry well formed,
// no two entries writing the same output.
func (f *File) Validate() error {
	if len(f.Shortcuts) == 0 {
		return fmt.Errorf("definition file lists no shortcuts")
	}
	seen := make(map[string]int, len(f.Shortcuts))
	for i, entry := range f.Shortcuts {
		if err := entry.validate(); err != nil {
			return fmt.Errorf("shortcut %d: %w", i, err)
		}
		if prior, dup := seen[entry.Output]; dup {
			return fmt.Errorf("shortcut %d: output %q already written by shortcut %d", i, entry.Output, prior)
		}
		seen[entry.Output] = i
	}
	return nil
}

func (e *Entry) validate() error {
	if e.Output == "" {
		return fmt.Errorf("output is required")
	}
	if (e.URL == "") == (e.AliasFile == "") {
		return fmt.Errorf("exactly one of url or alias-file must be set")
	}
	return nil
}

// DataRef materializes the entry's data reference, reading the alias
// file if the entry uses one.
func (e *Entry) DataRef() (dataref.Ref, error) {
	if e.URL != "" {
		return dataref.URL(e.URL)
	}
	record, err := os.ReadFile(e.AliasFile)
	if err != nil {
		return dataref.Ref{}, fmt.Errorf("reading alias record: %w", err)
	}
	return dataref.Alias(record), nil
}
