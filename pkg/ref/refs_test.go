// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Relay Authors

package ref_test

import (
	"io"
	"testing"

	"github.com/relay-vc/relay/pkg/ref"
	"github.com/relay-vc/relay/pkg/ref/refmock"
	"github.com/relay-vc/relay/pkg/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertLatestReflogEqual(t *testing.T, s ref.Store, name string, rl *ref.Reflog) {
	t.Helper()
	r, err := s.LogReader(name)
	require.NoError(t, err)
	defer r.Close()
	got, err := r.Read()
	require.NoError(t, err)
	assert.Equal(t, rl.OldOID, got.OldOID)
	assert.Equal(t, rl.NewOID, got.NewOID)
	assert.Equal(t, rl.AuthorName, got.AuthorName)
	assert.Equal(t, rl.AuthorEmail, got.AuthorEmail)
	assert.Equal(t, rl.Action, got.Action)
	assert.Equal(t, rl.Message, got.Message)
	assert.False(t, got.Time.IsZero())
}

func TestSaveRef(t *testing.T) {
	s, cleanup := refmock.NewStore(t)
	defer cleanup()
	sum := testutils.SecureRandomBytes(16)
	require.NoError(t, ref.SaveRef(s, "remotes/origin/main", sum, "John Doe", "john@doe.com", "fetch", "storing head", nil))
	b, err := ref.GetRemoteRef(s, "origin", "main")
	require.NoError(t, err)
	assert.Equal(t, sum, b)
	b, err = ref.GetRef(s, "remotes/origin/main")
	require.NoError(t, err)
	assert.Equal(t, sum, b)
	assertLatestReflogEqual(t, s, "remotes/origin/main", &ref.Reflog{
		NewOID:      sum,
		AuthorName:  "John Doe",
		AuthorEmail: "john@doe.com",
		Action:      "fetch",
		Message:     "storing head",
	})

	sum2 := testutils.SecureRandomBytes(16)
	require.NoError(t, ref.SaveRef(s, "remotes/origin/main", sum2, "John Doe", "john@doe.com", "fetch", "storing head", nil))
	assertLatestReflogEqual(t, s, "remotes/origin/main", &ref.Reflog{
		OldOID:      sum,
		NewOID:      sum2,
		AuthorName:  "John Doe",
		AuthorEmail: "john@doe.com",
		Action:      "fetch",
		Message:     "storing head",
	})
}

func TestRenameAndCopyRef(t *testing.T) {
	s, cleanup := refmock.NewStore(t)
	defer cleanup()
	sum := testutils.SecureRandomBytes(16)
	require.NoError(t, ref.SaveRef(s, "heads/alpha", sum, "John Doe", "john@doe.com", "commit", "initial commit", nil))

	require.NoError(t, s.Rename("heads/alpha", "heads/beta"))
	_, err := ref.GetRef(s, "heads/alpha")
	assert.Error(t, err)
	b, err := ref.GetRef(s, "heads/beta")
	require.NoError(t, err)
	assert.Equal(t, sum, b)
	assertLatestReflogEqual(t, s, "heads/beta", &ref.Reflog{
		NewOID:      sum,
		AuthorName:  "John Doe",
		AuthorEmail: "john@doe.com",
		Action:      "commit",
		Message:     "initial commit",
	})

	require.NoError(t, s.Copy("heads/beta", "heads/gamma"))
	b, err = ref.GetRef(s, "heads/gamma")
	require.NoError(t, err)
	assert.Equal(t, sum, b)
	b, err = ref.GetRef(s, "heads/beta")
	require.NoError(t, err)
	assert.Equal(t, sum, b)
	assertLatestReflogEqual(t, s, "heads/gamma", &ref.Reflog{
		NewOID:      sum,
		AuthorName:  "John Doe",
		AuthorEmail: "john@doe.com",
		Action:      "commit",
		Message:     "initial commit",
	})
}

func TestListRefs(t *testing.T) {
	s, cleanup := refmock.NewStore(t)
	defer cleanup()
	sum1 := testutils.SecureRandomBytes(16)
	sum2 := testutils.SecureRandomBytes(16)
	sum3 := testutils.SecureRandomBytes(16)
	sum4 := testutils.SecureRandomBytes(16)
	require.NoError(t, ref.SaveRef(s, "heads/main", sum1, "a", "a@b.com", "commit", "msg", nil))
	require.NoError(t, ref.SaveRef(s, "tags/v1", sum2, "a", "a@b.com", "tag", "msg", nil))
	require.NoError(t, ref.SaveRef(s, "remotes/origin/main", sum3, "a", "a@b.com", "fetch", "msg", nil))
	require.NoError(t, ref.SaveRef(s, "remotes/other/main", sum4, "a", "a@b.com", "fetch", "msg", nil))

	m, err := ref.ListHeads(s)
	require.NoError(t, err)
	assert.Equal(t, map[string][]byte{"main": sum1}, m)

	m, err = ref.ListRemoteRefs(s, "origin")
	require.NoError(t, err)
	assert.Equal(t, map[string][]byte{"main": sum3}, m)

	m, err = ref.ListAllRefs(s)
	require.NoError(t, err)
	assert.Len(t, m, 4)

	m, err = ref.ListLocalRefs(s, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, map[string][]byte{
		"heads/main": sum1,
		"tags/v1":    sum2,
	}, m)

	m, err = ref.ListLocalRefs(s, []string{"tags/"}, nil)
	require.NoError(t, err)
	assert.Equal(t, map[string][]byte{"tags/v1": sum2}, m)

	m, err = ref.ListLocalRefs(s, nil, []string{"tags/"})
	require.NoError(t, err)
	assert.Equal(t, map[string][]byte{"heads/main": sum1}, m)
}

func TestDeleteRef(t *testing.T) {
	s, cleanup := refmock.NewStore(t)
	defer cleanup()
	sum := testutils.SecureRandomBytes(16)
	require.NoError(t, ref.SaveRef(s, "heads/main", sum, "a", "a@b.com", "commit", "msg", nil))
	require.NoError(t, ref.DeleteRef(s, "heads/main"))
	_, err := ref.GetHead(s, "main")
	assert.Error(t, err)

	require.NoError(t, ref.SaveRef(s, "remotes/origin/main", sum, "a", "a@b.com", "fetch", "msg", nil))
	require.NoError(t, ref.DeleteRemoteRef(s, "origin", "main"))
	_, err = ref.GetRemoteRef(s, "origin", "main")
	assert.Error(t, err)
}

func TestReflogOrder(t *testing.T) {
	s, cleanup := refmock.NewStore(t)
	defer cleanup()
	sums := make([][]byte, 3)
	for i := range sums {
		sums[i] = testutils.SecureRandomBytes(16)
		require.NoError(t, ref.SaveRef(s, "heads/main", sums[i], "a", "a@b.com", "commit", "msg", nil))
	}
	r, err := s.LogReader("heads/main")
	require.NoError(t, err)
	defer r.Close()
	for i := len(sums) - 1; i >= 0; i-- {
		rl, err := r.Read()
		require.NoError(t, err)
		assert.Equal(t, sums[i], rl.NewOID)
	}
	_, err = r.Read()
	assert.Equal(t, io.EOF, err)
}

func TestFirstLine(t *testing.T) {
	assert.Equal(t, "abc", ref.FirstLine("abc"))
	assert.Equal(t, "abc", ref.FirstLine("abc\ndef"))
}
