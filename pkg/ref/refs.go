// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Relay Authors

package ref

import (
	"bytes"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	HeadPrefix      = "heads/"
	TagPrefix       = "tags/"
	RemoteRefPrefix = "remotes/"
)

func HeadRef(name string) string {
	return HeadPrefix + name
}

func TagRef(name string) string {
	return TagPrefix + name
}

func RemoteRef(remote, name string) string {
	return fmt.Sprintf("%s%s/%s", RemoteRefPrefix, remote, name)
}

func SaveRef(s Store, name string, commit []byte, authorName, authorEmail, action, message string, txid *uuid.UUID) error {
	reflog := &Reflog{
		AuthorName:  authorName,
		AuthorEmail: authorEmail,
		Action:      action,
		Message:     message,
		Time:        time.Now(),
		NewOID:      commit,
		Txid:        txid,
	}
	if b, err := s.Get(name); err == nil {
		reflog.OldOID = b
	}
	return s.SetWithLog(name, commit, reflog)
}

func SaveFetchRef(s Store, name string, commit []byte, authorName, authorEmail, remote, message string) error {
	return SaveRef(s, name, commit, authorName, authorEmail, "fetch", fmt.Sprintf("[from %s] %s", remote, message), nil)
}

func FirstLine(s string) string {
	i := bytes.IndexByte([]byte(s), '\n')
	if i == -1 {
		return s
	}
	return s[:i]
}

func GetRef(s Store, name string) ([]byte, error) {
	return s.Get(name)
}

func GetHead(s Store, name string) ([]byte, error) {
	return s.Get(HeadRef(name))
}

func GetRemoteRef(s Store, remote, name string) ([]byte, error) {
	return s.Get(RemoteRef(remote, name))
}

func listRefs(s Store, prefix string) (map[string][]byte, error) {
	result := map[string][]byte{}
	m, err := s.Filter([]string{prefix}, nil)
	if err != nil {
		return nil, err
	}
	l := len(prefix)
	for k, v := range m {
		result[k[l:]] = v
	}
	return result, nil
}

func ListHeads(s Store) (map[string][]byte, error) {
	return listRefs(s, HeadPrefix)
}

func ListRemoteRefs(s Store, remote string) (map[string][]byte, error) {
	return listRefs(s, RemoteRef(remote, ""))
}

func ListAllRefs(s Store) (map[string][]byte, error) {
	return s.Filter(nil, nil)
}

func ListLocalRefs(s Store, prefixes, notPrefixes []string) (map[string][]byte, error) {
	notPrefixes = append(notPrefixes, RemoteRefPrefix)
	return s.Filter(prefixes, notPrefixes)
}

func DeleteRef(s Store, name string) error {
	return s.Delete(name)
}

func DeleteRemoteRef(s Store, remote, name string) error {
	return s.Delete(RemoteRef(remote, name))
}
