// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Relay Authors

package push

import (
	"errors"

	"github.com/relay-vc/relay/pkg/objects"
	"github.com/relay-vc/relay/pkg/ref"
)

// Ancestry is the answer to "is A an ancestor of (or equal to) B".
type Ancestry int

const (
	AncestorNo Ancestry = iota
	AncestorYes

	// AncestorUnknown means the question cannot be answered because part of
	// the graph is not available locally. Callers deciding fast-forward-ness
	// must treat it as AncestorNo.
	AncestorUnknown
)

type AncestryChecker interface {
	AncestorOf(ancestor, descendant []byte) (Ancestry, error)
}

type storeChecker struct {
	db objects.Store
}

// NewAncestryChecker answers ancestry questions by walking the commit graph
// in db. Commits missing from db yield AncestorUnknown.
func NewAncestryChecker(db objects.Store) AncestryChecker {
	return &storeChecker{db: db}
}

func (c *storeChecker) AncestorOf(ancestor, descendant []byte) (Ancestry, error) {
	if !objects.CommitExist(c.db, ancestor) || !objects.CommitExist(c.db, descendant) {
		return AncestorUnknown, nil
	}
	ok, err := ref.IsAncestorOf(c.db, ancestor, descendant)
	if err != nil {
		if errors.Is(err, objects.ErrKeyNotFound) {
			return AncestorUnknown, nil
		}
		return AncestorNo, err
	}
	if ok {
		return AncestorYes, nil
	}
	return AncestorNo, nil
}
