// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Relay Authors

package apiutils

import (
	"io"

	"github.com/relay-vc/relay/pkg/errors"
	"github.com/relay-vc/relay/pkg/objects"
	"github.com/relay-vc/relay/pkg/pack"
	"github.com/relay-vc/relay/pkg/pbar"
	"github.com/relay-vc/relay/pkg/ref"
)

const defaultMaxPayloadSize uint64 = 1024 * 1024 * 256

// CommitsToSend walks the commit graph from wants, skipping anything
// reachable from a commit the receiving side already has, and returns the
// sums to transmit with parents ordered before children. Commits missing
// from db terminate their branch of the walk.
func CommitsToSend(db objects.Store, wants, haves [][]byte) ([][]byte, error) {
	havesSet := map[string]struct{}{}
	for _, h := range haves {
		havesSet[string(h)] = struct{}{}
	}
	q, err := ref.NewCommitsQueue(db, wants)
	if err != nil {
		return nil, err
	}
	toSend := [][]byte{}
	for {
		sum, com, err := q.Pop()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if _, ok := havesSet[string(sum)]; ok {
			continue
		}
		toSend = append(toSend, sum)
		if err := q.InsertParents(com); err != nil {
			if errors.Contains(err, objects.ErrKeyNotFound) {
				continue
			}
			return nil, err
		}
	}
	for i, j := 0, len(toSend)-1; i < j; i, j = i+1, j-1 {
		toSend[i], toSend[j] = toSend[j], toSend[i]
	}
	return toSend, nil
}

// ObjectSender streams commits and their data objects as packfiles,
// splitting the stream whenever a single payload would exceed
// maxPayloadSize.
type ObjectSender struct {
	db             objects.Store
	commits        [][]byte
	sentData       map[string]struct{}
	maxPayloadSize uint64
}

func NewObjectSender(db objects.Store, commits [][]byte, maxPayloadSize uint64) *ObjectSender {
	if maxPayloadSize == 0 {
		maxPayloadSize = defaultMaxPayloadSize
	}
	return &ObjectSender{
		db:             db,
		commits:        commits,
		sentData:       map[string]struct{}{},
		maxPayloadSize: maxPayloadSize,
	}
}

// WriteObjects writes the next packfile to w. It returns true once every
// pending object has been written.
func (s *ObjectSender) WriteObjects(w io.Writer, bar pbar.Bar) (done bool, err error) {
	pw, err := pack.NewWriter(w)
	if err != nil {
		return false, err
	}
	var total uint64
	for len(s.commits) > 0 {
		sum := s.commits[0]
		b, err := objects.GetCommitBytes(s.db, sum)
		if err != nil {
			return false, err
		}
		com, err := objects.GetCommit(s.db, sum)
		if err != nil {
			return false, err
		}
		if _, ok := s.sentData[string(com.Data)]; !ok && objects.DataExist(s.db, com.Data) {
			data, err := objects.GetData(s.db, com.Data)
			if err != nil {
				return false, err
			}
			if err = pw.WriteObject(pack.ObjectData, data); err != nil {
				return false, err
			}
			s.sentData[string(com.Data)] = struct{}{}
			total += uint64(len(data))
		}
		if err = pw.WriteObject(pack.ObjectCommit, b); err != nil {
			return false, err
		}
		s.commits = s.commits[1:]
		bar.Incr()
		total += uint64(len(b))
		if total >= s.maxPayloadSize {
			break
		}
	}
	return len(s.commits) == 0, nil
}
