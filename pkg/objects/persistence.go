// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Relay Authors

package objects

import (
	"bytes"

	"github.com/pckhoi/meow"
)

var (
	comPrefix  = []byte("com/")
	dataPrefix = []byte("dat/")
)

func commitKey(sum []byte) []byte {
	return append(comPrefix, sum...)
}

func dataKey(sum []byte) []byte {
	return append(dataPrefix, sum...)
}

func saveObj(s Store, k, v []byte) error {
	b := make([]byte, len(v))
	copy(b, v)
	return s.Set(k, b)
}

// SaveCommit persists an encoded commit and returns its checksum, which is
// also the commit's sum.
func SaveCommit(s Store, content []byte) (sum []byte, err error) {
	arr := meow.Checksum(0, content)
	err = saveObj(s, commitKey(arr[:]), content)
	if err != nil {
		return
	}
	return arr[:], nil
}

func GetCommit(s Store, sum []byte) (*Commit, error) {
	b, err := s.Get(commitKey(sum))
	if err != nil {
		return nil, err
	}
	_, com, err := ReadCommitFrom(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	com.Sum = sum
	return com, nil
}

func GetCommitBytes(s Store, sum []byte) ([]byte, error) {
	return s.Get(commitKey(sum))
}

func CommitExist(s Store, sum []byte) bool {
	return s.Exist(commitKey(sum))
}

func DeleteCommit(s Store, sum []byte) error {
	return s.Delete(commitKey(sum))
}

func SaveData(s Store, content []byte) (sum []byte, err error) {
	arr := meow.Checksum(0, content)
	err = saveObj(s, dataKey(arr[:]), content)
	if err != nil {
		return
	}
	return arr[:], nil
}

func GetData(s Store, sum []byte) ([]byte, error) {
	return s.Get(dataKey(sum))
}

func DataExist(s Store, sum []byte) bool {
	return s.Exist(dataKey(sum))
}

func GetAllCommitKeys(s Store) ([][]byte, error) {
	sl, err := s.FilterKey(comPrefix)
	if err != nil {
		return nil, err
	}
	l := len(comPrefix)
	result := make([][]byte, len(sl))
	for i, h := range sl {
		result[i] = h[l:]
	}
	return result, nil
}
