// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Relay Authors

package ref

import (
	"io"
	"sort"

	"github.com/relay-vc/relay/pkg/objects"
)

// CommitsQueue pops commits in reverse chronological order, inserting each
// popped commit's parents back into the queue. It drives every ancestry walk
// in this package.
type CommitsQueue struct {
	db      objects.Store
	commits []*objects.Commit
	sums    [][]byte
	seen    map[string]struct{}
}

func NewCommitsQueue(db objects.Store, initialSums [][]byte) (*CommitsQueue, error) {
	sums := [][]byte{}
	commits := []*objects.Commit{}
	seen := map[string]struct{}{}
	for _, v := range initialSums {
		if _, ok := seen[string(v)]; ok {
			continue
		}
		commit, err := objects.GetCommit(db, v)
		if err != nil {
			return nil, err
		}
		sums = append(sums, v)
		commits = append(commits, commit)
		seen[string(v)] = struct{}{}
	}
	q := &CommitsQueue{
		db:      db,
		sums:    sums,
		commits: commits,
		seen:    seen,
	}
	sort.Sort(q)
	return q, nil
}

func (q *CommitsQueue) Len() int {
	return len(q.sums)
}

func (q *CommitsQueue) Less(i, j int) bool {
	return q.commits[i].Time.After(q.commits[j].Time)
}

func (q *CommitsQueue) Swap(i, j int) {
	q.commits[i], q.commits[j] = q.commits[j], q.commits[i]
	q.sums[i], q.sums[j] = q.sums[j], q.sums[i]
}

func (q *CommitsQueue) Insert(sum []byte) error {
	if q.Seen(sum) {
		return nil
	}
	commit, err := objects.GetCommit(q.db, sum)
	if err != nil {
		return err
	}
	i := sort.Search(q.Len(), func(i int) bool {
		return !q.commits[i].Time.After(commit.Time)
	})
	q.sums = append(q.sums, nil)
	q.commits = append(q.commits, nil)
	copy(q.sums[i+1:], q.sums[i:])
	copy(q.commits[i+1:], q.commits[i:])
	q.sums[i] = sum
	q.commits[i] = commit
	q.seen[string(sum)] = struct{}{}
	return nil
}

func (q *CommitsQueue) Pop() (sum []byte, commit *objects.Commit, err error) {
	if q.Len() == 0 {
		return nil, nil, io.EOF
	}
	sum = q.sums[0]
	commit = q.commits[0]
	q.sums = q.sums[1:]
	q.commits = q.commits[1:]
	return
}

func (q *CommitsQueue) InsertParents(c *objects.Commit) error {
	for _, p := range c.Parents {
		if err := q.Insert(p); err != nil {
			return err
		}
	}
	return nil
}

func (q *CommitsQueue) PopInsertParents() (sum []byte, commit *objects.Commit, err error) {
	sum, commit, err = q.Pop()
	if err != nil {
		return
	}
	err = q.InsertParents(commit)
	return
}

func (q *CommitsQueue) Seen(b []byte) bool {
	_, ok := q.seen[string(b)]
	return ok
}

// IsAncestorOf returns true if commit1 is an ancestor of commit2. It returns
// objects.ErrKeyNotFound when a commit on the walk is not present locally.
func IsAncestorOf(db objects.Store, commit1, commit2 []byte) (ok bool, err error) {
	q, err := NewCommitsQueue(db, [][]byte{commit2})
	if err != nil {
		return
	}
	for {
		sum, _, err := q.PopInsertParents()
		if err == io.EOF {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		if string(sum) == string(commit1) {
			return true, nil
		}
	}
}
