// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Relay Authors

package apiutils_test

import (
	"bytes"
	"testing"

	"github.com/relay-vc/relay/pkg/api/apiutils"
	"github.com/relay-vc/relay/pkg/factory"
	"github.com/relay-vc/relay/pkg/objects"
	objmock "github.com/relay-vc/relay/pkg/objects/mock"
	"github.com/relay-vc/relay/pkg/pack"
	"github.com/relay-vc/relay/pkg/pbar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommitsToSend(t *testing.T) {
	db := objmock.NewStore()
	sum1, _ := factory.SaveCommit(t, db, nil)
	sum2, _ := factory.SaveCommit(t, db, [][]byte{sum1})
	sum3, _ := factory.SaveCommit(t, db, [][]byte{sum2})

	commits, err := apiutils.CommitsToSend(db, [][]byte{sum3}, nil)
	require.NoError(t, err)
	assert.Equal(t, [][]byte{sum1, sum2, sum3}, commits)

	commits, err = apiutils.CommitsToSend(db, [][]byte{sum3}, [][]byte{sum1})
	require.NoError(t, err)
	assert.Equal(t, [][]byte{sum2, sum3}, commits)
}

func TestSendAndReceiveObjects(t *testing.T) {
	src := objmock.NewStore()
	dst := objmock.NewStore()
	sum1, _ := factory.SaveCommit(t, src, nil)
	sum2, _ := factory.SaveCommit(t, src, [][]byte{sum1})

	commits, err := apiutils.CommitsToSend(src, [][]byte{sum2}, nil)
	require.NoError(t, err)
	sender := apiutils.NewObjectSender(src, commits, 0)
	receiver := apiutils.NewObjectReceiver(dst, [][]byte{sum2})

	buf := bytes.NewBuffer(nil)
	done, err := sender.WriteObjects(buf, pbar.NewNoopBar())
	require.NoError(t, err)
	assert.True(t, done)

	pr, err := pack.NewReader(buf)
	require.NoError(t, err)
	done, err = receiver.Receive(pr)
	require.NoError(t, err)
	assert.True(t, done)

	for _, sum := range [][]byte{sum1, sum2} {
		assert.True(t, objects.CommitExist(dst, sum))
		com, err := objects.GetCommit(dst, sum)
		require.NoError(t, err)
		assert.True(t, objects.DataExist(dst, com.Data))
	}
}

func TestSendObjectsSplitPayload(t *testing.T) {
	src := objmock.NewStore()
	dst := objmock.NewStore()
	sum1, _ := factory.SaveCommit(t, src, nil)
	sum2, _ := factory.SaveCommit(t, src, [][]byte{sum1})
	sum3, _ := factory.SaveCommit(t, src, [][]byte{sum2})

	commits, err := apiutils.CommitsToSend(src, [][]byte{sum3}, nil)
	require.NoError(t, err)
	// small payload size so each packfile carries a single commit
	sender := apiutils.NewObjectSender(src, commits, 1)
	receiver := apiutils.NewObjectReceiver(dst, [][]byte{sum3})

	payloads := 0
	for {
		buf := bytes.NewBuffer(nil)
		senderDone, err := sender.WriteObjects(buf, pbar.NewNoopBar())
		require.NoError(t, err)
		payloads++
		pr, err := pack.NewReader(buf)
		require.NoError(t, err)
		receiverDone, err := receiver.Receive(pr)
		require.NoError(t, err)
		if senderDone {
			assert.True(t, receiverDone)
			break
		}
	}
	assert.Equal(t, 3, payloads)
	for _, sum := range [][]byte{sum1, sum2, sum3} {
		assert.True(t, objects.CommitExist(dst, sum))
	}
}
