// Copyright 2025 The Sequtil Authors.
//
// Use of this software is governed by the BSD-style license
// included in the /LICENSE file.

// Package testutils holds small helpers shared by the package tests.
package testutils

import (
	"path/filepath"
	"testing"
)

// TestDataPath returns a path under the calling test's testdata directory.
func TestDataPath(tb testing.TB, relative ...string) string {
	tb.Helper()
	return filepath.Join(append([]string{"testdata"}, relative...)...)
}
