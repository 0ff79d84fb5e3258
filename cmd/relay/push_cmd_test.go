// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Relay Authors

package relay

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/relay-vc/relay/pkg/api/apitest"
	"github.com/relay-vc/relay/pkg/conf"
	"github.com/relay-vc/relay/pkg/conf/conffs"
	"github.com/relay-vc/relay/pkg/factory"
	"github.com/relay-vc/relay/pkg/local"
	"github.com/relay-vc/relay/pkg/objects"
	"github.com/relay-vc/relay/pkg/ref"
	"github.com/relay-vc/relay/pkg/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initRepoDir(t *testing.T) (string, *local.RepoDir, func()) {
	t.Helper()
	dir, cleanup := testutils.TempDir(t, "relay-cli-*")
	relayDir := filepath.Join(dir, ".relay")
	rd := local.NewRepoDir(relayDir, "")
	require.NoError(t, rd.Init())
	return relayDir, rd, cleanup
}

func execute(t *testing.T, args ...string) string {
	t.Helper()
	cmd := RootCmd()
	buf := bytes.NewBuffer(nil)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return buf.String()
}

func TestPushCmd(t *testing.T) {
	relayDir, rd, cleanup := initRepoDir(t)
	defer cleanup()
	db, err := rd.OpenObjectsStore()
	require.NoError(t, err)
	rs, err := rd.OpenRefStore()
	require.NoError(t, err)
	sum, _ := factory.CommitHead(t, db, rs, "main")
	require.NoError(t, db.Close())
	require.NoError(t, rd.Close())

	srv := apitest.NewServer(t, nil)
	cs := conffs.NewStore(relayDir, conffs.LocalSource, "")
	c, err := cs.Open()
	require.NoError(t, err)
	c.User = &conf.User{Name: "John Doe", Email: "john@doe.com"}
	c.Remote = map[string]*conf.Remote{
		"origin": {URL: srv.URL()},
	}
	require.NoError(t, cs.Save(c))

	out := execute(t, "push", "origin", "refs/heads/main", "--relay-dir", relayDir, "--no-progress")
	assert.Contains(t, out, "To "+srv.URL())
	assert.Contains(t, out, "[new branch]")

	b, err := ref.GetHead(srv.RS, "main")
	require.NoError(t, err)
	assert.Equal(t, sum, b)
	assert.True(t, objects.CommitExist(srv.DB, sum))

	rd2 := local.NewRepoDir(relayDir, "")
	rs2, err := rd2.OpenRefStore()
	require.NoError(t, err)
	defer rd2.Close()
	b, err = ref.GetRemoteRef(rs2, "origin", "main")
	require.NoError(t, err)
	assert.Equal(t, sum, b)

	// pushing again does nothing
	out = execute(t, "push", "origin", "refs/heads/main", "--relay-dir", relayDir, "--no-progress")
	assert.Contains(t, out, "[up to date]")
}

func TestPushCmdDryRun(t *testing.T) {
	relayDir, rd, cleanup := initRepoDir(t)
	defer cleanup()
	db, err := rd.OpenObjectsStore()
	require.NoError(t, err)
	rs, err := rd.OpenRefStore()
	require.NoError(t, err)
	sum, _ := factory.CommitHead(t, db, rs, "main")
	require.NoError(t, db.Close())
	require.NoError(t, rd.Close())

	srv := apitest.NewServer(t, nil)
	cs := conffs.NewStore(relayDir, conffs.LocalSource, "")
	c, err := cs.Open()
	require.NoError(t, err)
	c.Remote = map[string]*conf.Remote{
		"origin": {URL: srv.URL()},
	}
	require.NoError(t, cs.Save(c))

	out := execute(t, "push", "origin", "refs/heads/main", "--relay-dir", relayDir, "--dry-run")
	assert.Contains(t, out, "[would push]")

	_, err = ref.GetHead(srv.RS, "main")
	assert.Error(t, err)
	assert.False(t, objects.CommitExist(srv.DB, sum))
}

func TestRemoteAddAndList(t *testing.T) {
	relayDir, rd, cleanup := initRepoDir(t)
	defer cleanup()
	require.NoError(t, rd.Close())

	execute(t, "remote", "add", "origin", "https://relay.example.com", "--relay-dir", relayDir)
	out := execute(t, "remote", "ls", "--verbose", "--relay-dir", relayDir)
	assert.Contains(t, out, "origin https://relay.example.com")

	cs := conffs.NewStore(relayDir, conffs.LocalSource, "")
	c, err := cs.Open()
	require.NoError(t, err)
	require.Contains(t, c.Remote, "origin")
	assert.Equal(t, "+refs/heads/*:refs/remotes/origin/*", c.Remote["origin"].Fetch[0].String())
}
