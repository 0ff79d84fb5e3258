// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Relay Authors

package conffs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/relay-vc/relay/pkg/conf"
	"gopkg.in/yaml.v3"
)

type Source int

const (
	UnspecifiedSource Source = iota
	FileSource
	LocalSource
	GlobalSource
	AggregateSource
)

// Store reads and writes yaml config files. An AggregateSource store merges
// the global config under the local one and cannot save.
type Store struct {
	rootDir string
	source  Source
	fp      string
}

func NewStore(rootDir string, source Source, fp string) *Store {
	if fp != "" {
		source = FileSource
	}
	return &Store{
		rootDir: rootDir,
		source:  source,
		fp:      fp,
	}
}

func (s *Store) readConfig(fp string) (*conf.Config, error) {
	c := &conf.Config{}
	b, err := os.ReadFile(fp)
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return nil, err
	}
	if err = yaml.Unmarshal(b, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Store) Open() (*conf.Config, error) {
	if s.source == AggregateSource {
		return s.aggregateConfig()
	}
	fp, err := s.path()
	if err != nil {
		return nil, err
	}
	return s.readConfig(fp)
}

func (s *Store) Save(c *conf.Config) error {
	if s.source == AggregateSource {
		return fmt.Errorf("attempt to save aggregated config")
	}
	fp, err := s.path()
	if err != nil {
		return err
	}
	if fp == "" {
		return fmt.Errorf("empty config path")
	}
	if err = os.MkdirAll(filepath.Dir(fp), 0755); err != nil {
		return err
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(fp, b, 0644)
}
