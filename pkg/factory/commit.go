// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Relay Authors

package factory

import (
	"testing"

	"github.com/relay-vc/relay/pkg/objects"
	"github.com/relay-vc/relay/pkg/ref"
	"github.com/relay-vc/relay/pkg/testutils"
	"github.com/stretchr/testify/require"
)

var tg = testutils.CreateTimeGen()

// SaveCommit creates a random commit with the given parents and saves it to
// db. Commit times are strictly increasing so ancestry walks pop children
// before parents.
func SaveCommit(t *testing.T, db objects.Store, parents [][]byte) ([]byte, *objects.Commit) {
	t.Helper()
	dataSum, err := objects.SaveData(db, testutils.SecureRandomBytes(256))
	require.NoError(t, err)
	com := &objects.Commit{
		Data:        dataSum,
		Parents:     parents,
		Time:        tg(),
		AuthorName:  testutils.RandomLowerAlphaString(10),
		AuthorEmail: testutils.RandomEmail(),
		Message:     testutils.RandomAlphaNumericString(20),
	}
	b, err := com.Encode()
	require.NoError(t, err)
	sum, err := objects.SaveCommit(db, b)
	require.NoError(t, err)
	com.Sum = sum
	return sum, com
}

// CommitHead creates a commit on top of branch's current head (if any) and
// points the branch at it.
func CommitHead(t *testing.T, db objects.Store, rs ref.Store, branch string) ([]byte, *objects.Commit) {
	t.Helper()
	var parents [][]byte
	if sum, err := ref.GetHead(rs, branch); err == nil {
		parents = append(parents, sum)
	}
	sum, com := SaveCommit(t, db, parents)
	require.NoError(t, ref.SaveRef(rs, ref.HeadRef(branch), sum, com.AuthorName, com.AuthorEmail, "commit", ref.FirstLine(com.Message), nil))
	return sum, com
}

// CopyCommits copies every commit reachable from sums from src into dst.
func CopyCommits(t *testing.T, src, dst objects.Store, sums ...[]byte) {
	t.Helper()
	q, err := ref.NewCommitsQueue(src, sums)
	require.NoError(t, err)
	for {
		sum, _, err := q.PopInsertParents()
		if err != nil {
			break
		}
		b, err := objects.GetCommitBytes(src, sum)
		require.NoError(t, err)
		_, err = objects.SaveCommit(dst, b)
		require.NoError(t, err)
	}
}
