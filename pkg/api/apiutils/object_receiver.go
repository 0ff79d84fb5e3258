// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Relay Authors

package apiutils

import (
	"fmt"
	"io"

	"github.com/relay-vc/relay/pkg/objects"
	"github.com/relay-vc/relay/pkg/pack"
)

// ObjectReceiver persists packfile objects and keeps track of which
// expected commits have arrived.
type ObjectReceiver struct {
	db    objects.Store
	wants map[string]struct{}
}

func NewObjectReceiver(db objects.Store, expectedCommits [][]byte) *ObjectReceiver {
	wants := map[string]struct{}{}
	for _, sum := range expectedCommits {
		if !objects.CommitExist(db, sum) {
			wants[string(sum)] = struct{}{}
		}
	}
	return &ObjectReceiver{
		db:    db,
		wants: wants,
	}
}

// Receive saves every object in pr. It returns true once all expected
// commits have been received.
func (r *ObjectReceiver) Receive(pr *pack.Reader) (done bool, err error) {
	for {
		typ, b, err := pr.ReadObject()
		if err == io.EOF {
			break
		}
		if err != nil {
			return false, err
		}
		switch typ {
		case pack.ObjectCommit:
			sum, err := objects.SaveCommit(r.db, b)
			if err != nil {
				return false, err
			}
			delete(r.wants, string(sum))
		case pack.ObjectData:
			if _, err := objects.SaveData(r.db, b); err != nil {
				return false, err
			}
		default:
			return false, fmt.Errorf("unrecognized object type %d", typ)
		}
	}
	return len(r.wants) == 0, nil
}
