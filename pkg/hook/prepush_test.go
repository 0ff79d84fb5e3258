// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Relay Authors

package hook

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relay-vc/relay/pkg/push"
	"github.com/relay-vc/relay/pkg/testutils"
)

func writeHook(t *testing.T, dir, script string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, PrePush), []byte(script), 0755))
}

func TestPrePushHookMissing(t *testing.T) {
	dir, cleanup := testutils.TempDir(t, "hooks")
	defer cleanup()
	h := NewPrePushHook(dir, "https://relay.example.com")
	assert.NoError(t, h.Run("origin", nil))
}

func TestPrePushHookAccepts(t *testing.T) {
	dir, cleanup := testutils.TempDir(t, "hooks")
	defer cleanup()
	out := filepath.Join(dir, "out")
	writeHook(t, dir, "#!/bin/sh\ncat > "+out+"\necho \"$1 $2\" >> "+out+"\n")
	h := NewPrePushHook(dir, "https://relay.example.com")

	sum := testutils.RandomSum()
	u := &push.Update{Src: "heads/main", Sum: sum, Dst: "heads/main"}
	require.NoError(t, h.Run("origin", []*push.Update{u}))

	b, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, string(push.HookInput([]*push.Update{u}))+"origin https://relay.example.com\n", string(b))
}

func TestPrePushHookVeto(t *testing.T) {
	dir, cleanup := testutils.TempDir(t, "hooks")
	defer cleanup()
	writeHook(t, dir, "#!/bin/sh\necho 'do not push to main' >&2\nexit 1\n")
	h := NewPrePushHook(dir, "https://relay.example.com")

	err := h.Run("origin", nil)
	require.Error(t, err)
	abort := &push.HookAbortError{}
	require.ErrorAs(t, err, &abort)
	assert.Equal(t, PrePush, abort.Hook)
	assert.Equal(t, "do not push to main", abort.Stderr)
}

func TestPrePushHookNotExecutable(t *testing.T) {
	dir, cleanup := testutils.TempDir(t, "hooks")
	defer cleanup()
	require.NoError(t, os.WriteFile(filepath.Join(dir, PrePush), []byte("exit 1\n"), 0644))
	h := NewPrePushHook(dir, "https://relay.example.com")
	assert.NoError(t, h.Run("origin", nil))
}
