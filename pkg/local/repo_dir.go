// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Relay Authors

package local

import (
	"database/sql"
	"os"
	"path/filepath"
	"strings"

	"github.com/dgraph-io/badger/v3"
	_ "github.com/mattn/go-sqlite3"

	"github.com/relay-vc/relay/pkg/objects"
	"github.com/relay-vc/relay/pkg/objects/objbadger"
	"github.com/relay-vc/relay/pkg/ref"
	"github.com/relay-vc/relay/pkg/ref/refsql"
	"github.com/relay-vc/relay/pkg/sqlutil"
)

// RepoDir is a repository's .relay directory: a badger store for objects
// under kv/, a SQLite database for refs and reflogs, and a hooks directory.
type RepoDir struct {
	FullPath  string
	badgerLog string
	refsDB    *sql.DB
}

func NewRepoDir(relayDir string, badgerLog string) *RepoDir {
	return &RepoDir{
		FullPath:  relayDir,
		badgerLog: strings.ToLower(badgerLog),
	}
}

func (d *RepoDir) KVPath() string {
	return filepath.Join(d.FullPath, "kv")
}

func (d *RepoDir) RefsPath() string {
	return filepath.Join(d.FullPath, "refs.db")
}

func (d *RepoDir) HooksPath() string {
	return filepath.Join(d.FullPath, "hooks")
}

func (d *RepoDir) openBadger() (*badger.DB, error) {
	opts := badger.DefaultOptions(d.KVPath()).
		WithLoggingLevel(badger.ERROR)
	switch d.badgerLog {
	case "debug":
		opts = opts.WithLoggingLevel(badger.DEBUG)
	case "info":
		opts = opts.WithLoggingLevel(badger.INFO)
	case "warning":
		opts = opts.WithLoggingLevel(badger.WARNING)
	}
	return badger.Open(opts)
}

func (d *RepoDir) OpenObjectsStore() (objects.Store, error) {
	badgerDB, err := d.openBadger()
	if err != nil {
		return nil, err
	}
	return objbadger.NewStore(badgerDB), nil
}

func (d *RepoDir) OpenRefStore() (ref.Store, error) {
	if d.refsDB == nil {
		db, err := sql.Open("sqlite3", d.RefsPath())
		if err != nil {
			return nil, err
		}
		if err = sqlutil.RunInTx(db, func(tx *sql.Tx) error {
			for _, stmt := range refsql.CreateTableStmts {
				if _, err := tx.Exec(stmt); err != nil {
					return err
				}
			}
			return nil
		}); err != nil {
			db.Close()
			return nil, err
		}
		d.refsDB = db
	}
	return refsql.NewStore(d.refsDB), nil
}

func (d *RepoDir) Init() error {
	if _, err := os.Stat(d.FullPath); os.IsNotExist(err) {
		if err := os.Mkdir(d.FullPath, 0755); err != nil {
			return err
		}
	}
	if err := os.Mkdir(d.KVPath(), 0755); err != nil {
		return err
	}
	return os.Mkdir(d.HooksPath(), 0755)
}

func (d *RepoDir) Exist() bool {
	for _, s := range []string{d.FullPath, d.KVPath()} {
		if _, err := os.Stat(s); err != nil {
			return false
		}
	}
	return true
}

func (d *RepoDir) Close() error {
	if d.refsDB != nil {
		err := d.refsDB.Close()
		d.refsDB = nil
		return err
	}
	return nil
}

// FindRelayDir looks for a .relay directory in the working directory and
// its parents, stopping at the user's home directory.
func FindRelayDir() (string, error) {
	d, err := filepath.Abs(".")
	if err != nil {
		return "", err
	}
	home, _ := os.UserHomeDir()
	if home != "" {
		home, err = filepath.EvalSymlinks(home)
		if err != nil {
			return "", err
		}
		if !strings.HasPrefix(d, home) {
			home = ""
		}
	}
	for {
		rd := filepath.Join(d, ".relay")
		_, err := os.Stat(rd)
		if err == nil {
			return rd, nil
		}
		if !os.IsNotExist(err) {
			return "", err
		}
		if home != "" {
			if d == home {
				break
			}
		} else if filepath.Dir(d) == d {
			break
		}
		d = filepath.Dir(d)
	}
	return "", nil
}
