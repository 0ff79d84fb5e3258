// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Relay Authors

package conffs

import (
	"fmt"
	"os"
	"path/filepath"
)

func localPath(rootDir string) string {
	return filepath.Join(rootDir, "config.yaml")
}

func globalConfigPath() (string, error) {
	if s := os.Getenv("XDG_CONFIG_HOME"); s != "" {
		return filepath.Join(s, "relay", "config.yaml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "relay", "config.yaml"), nil
}

func (s *Store) path() (string, error) {
	switch s.source {
	case GlobalSource:
		return globalConfigPath()
	case LocalSource:
		return localPath(s.rootDir), nil
	case FileSource:
		return s.fp, nil
	default:
		return "", fmt.Errorf("unrecognized source: %v", s.source)
	}
}
