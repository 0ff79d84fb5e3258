// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Relay Authors

package ref

import (
	"bytes"
	"errors"

	"github.com/relay-vc/relay/pkg/objects"
)

// MoveResult classifies the outcome of a local reference move.
type MoveResult int

const (
	MoveRejected MoveResult = iota
	MoveNew
	MoveFastForward
	MoveForced
	MoveDeleted
	MoveNoChange
)

func (r MoveResult) String() string {
	switch r {
	case MoveNew:
		return "new"
	case MoveFastForward:
		return "fast-forward"
	case MoveForced:
		return "forced"
	case MoveDeleted:
		return "deleted"
	case MoveNoChange:
		return "no change"
	}
	return "rejected"
}

// MoveRef moves the reference name to newSum, or deletes it when newSum is
// nil. When expectedOld is set the move is rejected unless the reference
// currently holds that value. A non-fast-forward move is rejected unless
// force is set. Every write appends a reflog entry.
func MoveRef(db objects.Store, rs Store, name string, newSum, expectedOld []byte, force bool, authorName, authorEmail, action, message string) (MoveResult, error) {
	cur, err := rs.Get(name)
	if err != nil {
		if !errors.Is(err, ErrKeyNotFound) {
			return MoveRejected, err
		}
		cur = nil
	}
	if expectedOld != nil && !bytes.Equal(cur, expectedOld) {
		return MoveRejected, nil
	}
	if newSum == nil {
		if cur == nil {
			return MoveNoChange, nil
		}
		if err := rs.Delete(name); err != nil {
			return MoveRejected, err
		}
		return MoveDeleted, nil
	}
	if cur == nil {
		if err := SaveRef(rs, name, newSum, authorName, authorEmail, action, message, nil); err != nil {
			return MoveRejected, err
		}
		return MoveNew, nil
	}
	if bytes.Equal(cur, newSum) {
		return MoveNoChange, nil
	}
	ff, err := IsAncestorOf(db, cur, newSum)
	if err != nil && !errors.Is(err, objects.ErrKeyNotFound) {
		return MoveRejected, err
	}
	if ff {
		if err := SaveRef(rs, name, newSum, authorName, authorEmail, action, message, nil); err != nil {
			return MoveRejected, err
		}
		return MoveFastForward, nil
	}
	if force {
		if err := SaveRef(rs, name, newSum, authorName, authorEmail, action, "forced-update: "+message, nil); err != nil {
			return MoveRejected, err
		}
		return MoveForced, nil
	}
	return MoveRejected, nil
}
