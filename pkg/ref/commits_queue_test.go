// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Relay Authors

package ref_test

import (
	"io"
	"testing"

	"github.com/relay-vc/relay/pkg/factory"
	objmock "github.com/relay-vc/relay/pkg/objects/mock"
	"github.com/relay-vc/relay/pkg/ref"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommitsQueuePopInsertParents(t *testing.T) {
	db := objmock.NewStore()
	sum1, _ := factory.SaveCommit(t, db, nil)
	sum2, _ := factory.SaveCommit(t, db, [][]byte{sum1})
	sum3, _ := factory.SaveCommit(t, db, [][]byte{sum2})

	q, err := ref.NewCommitsQueue(db, [][]byte{sum3})
	require.NoError(t, err)
	sums := [][]byte{}
	for {
		sum, _, err := q.PopInsertParents()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		sums = append(sums, sum)
	}
	assert.Equal(t, [][]byte{sum3, sum2, sum1}, sums)
}

func TestCommitsQueueMergeBranches(t *testing.T) {
	db := objmock.NewStore()
	base, _ := factory.SaveCommit(t, db, nil)
	left, _ := factory.SaveCommit(t, db, [][]byte{base})
	right, _ := factory.SaveCommit(t, db, [][]byte{base})
	merge, _ := factory.SaveCommit(t, db, [][]byte{left, right})

	q, err := ref.NewCommitsQueue(db, [][]byte{merge})
	require.NoError(t, err)
	sums := [][]byte{}
	for {
		sum, _, err := q.PopInsertParents()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		sums = append(sums, sum)
	}
	// commit times increase so children pop before parents, and base is
	// visited only once
	assert.Equal(t, [][]byte{merge, right, left, base}, sums)
	assert.True(t, q.Seen(base))
}

func TestCommitsQueueSeen(t *testing.T) {
	db := objmock.NewStore()
	sum1, _ := factory.SaveCommit(t, db, nil)
	sum2, com2 := factory.SaveCommit(t, db, [][]byte{sum1})

	q, err := ref.NewCommitsQueue(db, [][]byte{sum2})
	require.NoError(t, err)
	assert.True(t, q.Seen(sum2))
	assert.False(t, q.Seen(sum1))
	require.NoError(t, q.InsertParents(com2))
	assert.True(t, q.Seen(sum1))

	sum, _, err := q.Pop()
	require.NoError(t, err)
	assert.Equal(t, sum2, sum)
	sum, _, err = q.Pop()
	require.NoError(t, err)
	assert.Equal(t, sum1, sum)
	_, _, err = q.Pop()
	assert.Equal(t, io.EOF, err)
}

func TestIsAncestorOf(t *testing.T) {
	db := objmock.NewStore()
	sum1, _ := factory.SaveCommit(t, db, nil)
	sum2, _ := factory.SaveCommit(t, db, [][]byte{sum1})
	other, _ := factory.SaveCommit(t, db, nil)

	ok, err := ref.IsAncestorOf(db, sum1, sum2)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = ref.IsAncestorOf(db, sum2, sum1)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = ref.IsAncestorOf(db, other, sum2)
	require.NoError(t, err)
	assert.False(t, ok)
}
