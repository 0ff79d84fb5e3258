// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Relay Authors

package objects_test

import (
	"testing"
	"time"

	"github.com/relay-vc/relay/pkg/objects"
	objmock "github.com/relay-vc/relay/pkg/objects/mock"
	"github.com/relay-vc/relay/pkg/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveCommit(t *testing.T) {
	db := objmock.NewStore()
	com := &objects.Commit{
		Data:        testutils.RandomSum(),
		AuthorName:  "John Doe",
		AuthorEmail: "john@doe.com",
		Time:        time.Now().Truncate(time.Second),
		Message:     "initial commit",
		Parents:     [][]byte{testutils.RandomSum()},
	}
	b, err := com.Encode()
	require.NoError(t, err)
	sum, err := objects.SaveCommit(db, b)
	require.NoError(t, err)
	assert.Len(t, sum, 16)
	assert.True(t, objects.CommitExist(db, sum))

	com2, err := objects.GetCommit(db, sum)
	require.NoError(t, err)
	assert.Equal(t, sum, com2.Sum)
	assert.Equal(t, com.Data, com2.Data)
	assert.Equal(t, com.AuthorName, com2.AuthorName)
	assert.Equal(t, com.AuthorEmail, com2.AuthorEmail)
	assert.Equal(t, com.Message, com2.Message)
	assert.Equal(t, com.Parents, com2.Parents)
	testutils.AssertTimeEqual(t, com.Time, com2.Time)

	b2, err := objects.GetCommitBytes(db, sum)
	require.NoError(t, err)
	assert.Equal(t, b, b2)

	// identical content yields the same sum
	sum2, err := objects.SaveCommit(db, b)
	require.NoError(t, err)
	assert.Equal(t, sum, sum2)

	require.NoError(t, objects.DeleteCommit(db, sum))
	assert.False(t, objects.CommitExist(db, sum))
	_, err = objects.GetCommit(db, sum)
	assert.Error(t, err)
}

func TestSaveData(t *testing.T) {
	db := objmock.NewStore()
	content := testutils.SecureRandomBytes(512)
	sum, err := objects.SaveData(db, content)
	require.NoError(t, err)
	assert.True(t, objects.DataExist(db, sum))
	b, err := objects.GetData(db, sum)
	require.NoError(t, err)
	assert.Equal(t, content, b)
	assert.False(t, objects.DataExist(db, testutils.RandomSum()))
}

func TestGetAllCommitKeys(t *testing.T) {
	db := objmock.NewStore()
	sums := map[string]struct{}{}
	for i := 0; i < 3; i++ {
		com := &objects.Commit{
			Data:    testutils.RandomSum(),
			Time:    time.Now(),
			Message: testutils.RandomAlphaNumericString(10),
		}
		b, err := com.Encode()
		require.NoError(t, err)
		sum, err := objects.SaveCommit(db, b)
		require.NoError(t, err)
		sums[string(sum)] = struct{}{}
	}
	_, err := objects.SaveData(db, testutils.SecureRandomBytes(64))
	require.NoError(t, err)

	keys, err := objects.GetAllCommitKeys(db)
	require.NoError(t, err)
	assert.Len(t, keys, 3)
	for _, k := range keys {
		_, ok := sums[string(k)]
		assert.True(t, ok)
	}
}
