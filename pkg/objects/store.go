// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Relay Authors

package objects

import "fmt"

type Store interface {
	Get([]byte) ([]byte, error)
	Set([]byte, []byte) error
	Delete([]byte) error
	Exist([]byte) bool
	Filter([]byte) (map[string][]byte, error)
	FilterKey([]byte) ([][]byte, error)
	Clear([]byte) error
	Close() error
}

var ErrKeyNotFound = fmt.Errorf("key not found")

// ZeroSum is the all-zero object sum. It stands in for an absent object id
// on the wire and in pre-push hook payloads.
var ZeroSum = make([]byte, 16)
