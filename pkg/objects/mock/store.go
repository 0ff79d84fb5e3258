// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Relay Authors

package objmock

import (
	"strings"
	"sync"

	"github.com/relay-vc/relay/pkg/objects"
)

// Store is an in-memory implementation of objects.Store for tests.
type Store struct {
	mu sync.Mutex
	m  map[string][]byte
}

func NewStore() *Store {
	return &Store{
		m: map[string][]byte{},
	}
}

func (s *Store) Get(k []byte) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.m[string(k)]
	if !ok {
		return nil, objects.ErrKeyNotFound
	}
	b := make([]byte, len(v))
	copy(b, v)
	return b, nil
}

func (s *Store) Set(k, v []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	b := make([]byte, len(v))
	copy(b, v)
	s.m[string(k)] = b
	return nil
}

func (s *Store) Delete(k []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, string(k))
	return nil
}

func (s *Store) Exist(k []byte) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.m[string(k)]
	return ok
}

func (s *Store) Filter(prefix []byte) (map[string][]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := map[string][]byte{}
	for k, v := range s.m {
		if strings.HasPrefix(k, string(prefix)) {
			result[k] = v
		}
	}
	return result, nil
}

func (s *Store) FilterKey(prefix []byte) (keys [][]byte, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k := range s.m {
		if strings.HasPrefix(k, string(prefix)) {
			keys = append(keys, []byte(k))
		}
	}
	return keys, nil
}

func (s *Store) Clear(prefix []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k := range s.m {
		if strings.HasPrefix(k, string(prefix)) {
			delete(s.m, k)
		}
	}
	return nil
}

func (s *Store) Close() error {
	return nil
}
