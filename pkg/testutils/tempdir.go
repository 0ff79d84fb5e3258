// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Relay Authors

package testutils

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// TempDir creates a temporary directory and returns its path along with a
// cleanup function.
func TempDir(t *testing.T, pattern string) (string, func()) {
	t.Helper()
	dir, err := os.MkdirTemp("", pattern)
	require.NoError(t, err)
	return dir, func() {
		require.NoError(t, os.RemoveAll(dir))
	}
}
