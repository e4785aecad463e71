// Copyright 2026 The Refmovie Authors
// SPDX-License-Identifier: Apache-2.0

//go:build !darwin

package filewrite

// Only Darwin has a filesystem home for type/creator metadata; other
// platforms carry the identity in the file extension alone.
func applyIdentity(string, Identity) error {
	return nil
}
