// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Relay Authors

package ref_test

import (
	"testing"

	"github.com/relay-vc/relay/pkg/factory"
	objmock "github.com/relay-vc/relay/pkg/objects/mock"
	"github.com/relay-vc/relay/pkg/ref"
	"github.com/relay-vc/relay/pkg/ref/refmock"
	"github.com/relay-vc/relay/pkg/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveRefNew(t *testing.T) {
	db := objmock.NewStore()
	rs, cleanup := refmock.NewStore(t)
	defer cleanup()
	sum, _ := factory.SaveCommit(t, db, nil)

	res, err := ref.MoveRef(db, rs, "heads/main", sum, nil, false, "a", "a@b.com", "branch", "create branch")
	require.NoError(t, err)
	assert.Equal(t, ref.MoveNew, res)
	b, err := ref.GetHead(rs, "main")
	require.NoError(t, err)
	assert.Equal(t, sum, b)
}

func TestMoveRefFastForward(t *testing.T) {
	db := objmock.NewStore()
	rs, cleanup := refmock.NewStore(t)
	defer cleanup()
	sum1, _ := factory.CommitHead(t, db, rs, "main")
	sum2, _ := factory.SaveCommit(t, db, [][]byte{sum1})

	res, err := ref.MoveRef(db, rs, "heads/main", sum2, nil, false, "a", "a@b.com", "merge", "fast-forward")
	require.NoError(t, err)
	assert.Equal(t, ref.MoveFastForward, res)
	b, err := ref.GetHead(rs, "main")
	require.NoError(t, err)
	assert.Equal(t, sum2, b)
}

func TestMoveRefNonFastForward(t *testing.T) {
	db := objmock.NewStore()
	rs, cleanup := refmock.NewStore(t)
	defer cleanup()
	sum1, _ := factory.CommitHead(t, db, rs, "main")
	other, _ := factory.SaveCommit(t, db, nil)

	res, err := ref.MoveRef(db, rs, "heads/main", other, nil, false, "a", "a@b.com", "fetch", "diverged")
	require.NoError(t, err)
	assert.Equal(t, ref.MoveRejected, res)
	b, err := ref.GetHead(rs, "main")
	require.NoError(t, err)
	assert.Equal(t, sum1, b)

	res, err = ref.MoveRef(db, rs, "heads/main", other, nil, true, "a", "a@b.com", "fetch", "diverged")
	require.NoError(t, err)
	assert.Equal(t, ref.MoveForced, res)
	b, err = ref.GetHead(rs, "main")
	require.NoError(t, err)
	assert.Equal(t, other, b)
	assertLatestReflogEqual(t, rs, "heads/main", &ref.Reflog{
		OldOID:      sum1,
		NewOID:      other,
		AuthorName:  "a",
		AuthorEmail: "a@b.com",
		Action:      "fetch",
		Message:     "forced-update: diverged",
	})
}

func TestMoveRefExpectedOld(t *testing.T) {
	db := objmock.NewStore()
	rs, cleanup := refmock.NewStore(t)
	defer cleanup()
	sum1, _ := factory.CommitHead(t, db, rs, "main")
	sum2, _ := factory.SaveCommit(t, db, [][]byte{sum1})

	res, err := ref.MoveRef(db, rs, "heads/main", sum2, testutils.RandomSum(), false, "a", "a@b.com", "merge", "msg")
	require.NoError(t, err)
	assert.Equal(t, ref.MoveRejected, res)

	res, err = ref.MoveRef(db, rs, "heads/main", sum2, sum1, false, "a", "a@b.com", "merge", "msg")
	require.NoError(t, err)
	assert.Equal(t, ref.MoveFastForward, res)
}

func TestMoveRefDelete(t *testing.T) {
	db := objmock.NewStore()
	rs, cleanup := refmock.NewStore(t)
	defer cleanup()
	factory.CommitHead(t, db, rs, "main")

	res, err := ref.MoveRef(db, rs, "heads/main", nil, nil, false, "a", "a@b.com", "branch", "delete branch")
	require.NoError(t, err)
	assert.Equal(t, ref.MoveDeleted, res)
	_, err = ref.GetHead(rs, "main")
	assert.Error(t, err)

	res, err = ref.MoveRef(db, rs, "heads/main", nil, nil, false, "a", "a@b.com", "branch", "delete branch")
	require.NoError(t, err)
	assert.Equal(t, ref.MoveNoChange, res)
}

func TestMoveRefNoChange(t *testing.T) {
	db := objmock.NewStore()
	rs, cleanup := refmock.NewStore(t)
	defer cleanup()
	sum, _ := factory.CommitHead(t, db, rs, "main")

	res, err := ref.MoveRef(db, rs, "heads/main", sum, nil, false, "a", "a@b.com", "merge", "msg")
	require.NoError(t, err)
	assert.Equal(t, ref.MoveNoChange, res)
}
