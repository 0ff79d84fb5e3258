// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Relay Authors

package refsql

import (
	"database/sql"
	"strings"

	"github.com/relay-vc/relay/pkg/ref"
	"github.com/relay-vc/relay/pkg/sqlutil"
)

// Store keeps references and their logs in a SQLite database.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Set(key string, sum []byte) error {
	_, err := s.db.Exec(
		`INSERT INTO refs (name, sum) VALUES (?, ?) ON CONFLICT (name) DO UPDATE SET sum=excluded.sum`,
		key, sum,
	)
	return err
}

func (s *Store) Get(key string) ([]byte, error) {
	row := s.db.QueryRow(`SELECT sum FROM refs WHERE name = ?`, key)
	var sum []byte
	if err := row.Scan(&sum); err != nil {
		return nil, ref.ErrKeyNotFound
	}
	return sum, nil
}

func (s *Store) SetWithLog(key string, sum []byte, rl *ref.Reflog) error {
	return sqlutil.RunInTx(s.db, func(tx *sql.Tx) error {
		row := tx.QueryRow(`SELECT sum FROM refs WHERE name = ?`, key)
		var oldSum []byte
		if err := row.Scan(&oldSum); err != nil {
			oldSum = nil
		}
		if _, err := tx.Exec(
			`INSERT INTO refs (name, sum) VALUES (?, ?) ON CONFLICT (name) DO UPDATE SET sum=excluded.sum`,
			key, sum,
		); err != nil {
			return err
		}
		var txid *string
		if rl.Txid != nil {
			s := rl.Txid.String()
			txid = &s
		}
		_, err := tx.Exec(
			`INSERT INTO reflogs (
				ref, ordinal, oldoid, newoid, authorname, authoremail, time, action, message, txid
			) VALUES (
				?, (
					SELECT COUNT(*)+1 FROM reflogs WHERE ref = ?
				), ?, ?, ?, ?, ?, ?, ?, ?
			)`,
			key, key, oldSum, sum, rl.AuthorName, rl.AuthorEmail, rl.Time, rl.Action, rl.Message, txid,
		)
		return err
	})
}

func (s *Store) Delete(key string) error {
	return sqlutil.RunInTx(s.db, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`DELETE FROM reflogs WHERE ref = ?`, key); err != nil {
			return err
		}
		_, err := tx.Exec(`DELETE FROM refs WHERE name = ?`, key)
		return err
	})
}

func matchPrefixes(name string, prefixes, notPrefixes []string) bool {
	for _, p := range notPrefixes {
		if strings.HasPrefix(name, p) {
			return false
		}
	}
	if len(prefixes) == 0 {
		return true
	}
	for _, p := range prefixes {
		if strings.HasPrefix(name, p) {
			return true
		}
	}
	return false
}

func (s *Store) Filter(prefixes, notPrefixes []string) (m map[string][]byte, err error) {
	rows, err := s.db.Query(`SELECT name, sum FROM refs ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	m = map[string][]byte{}
	for rows.Next() {
		var name string
		var sum []byte
		if err = rows.Scan(&name, &sum); err != nil {
			return nil, err
		}
		if matchPrefixes(name, prefixes, notPrefixes) {
			m[name] = sum
		}
	}
	return m, rows.Err()
}

func (s *Store) FilterKey(prefixes, notPrefixes []string) (keys []string, err error) {
	rows, err := s.db.Query(`SELECT name FROM refs ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var name string
		if err = rows.Scan(&name); err != nil {
			return nil, err
		}
		if matchPrefixes(name, prefixes, notPrefixes) {
			keys = append(keys, name)
		}
	}
	return keys, rows.Err()
}

func (s *Store) Rename(oldKey, newKey string) error {
	return sqlutil.RunInTx(s.db, func(tx *sql.Tx) error {
		row := tx.QueryRow(`SELECT sum FROM refs WHERE name = ?`, oldKey)
		var sum []byte
		if err := row.Scan(&sum); err != nil {
			return err
		}
		if _, err := tx.Exec(`INSERT INTO refs (name, sum) VALUES (?, ?)`, newKey, sum); err != nil {
			return err
		}
		if _, err := tx.Exec(`UPDATE reflogs SET ref = ? WHERE ref = ?`, newKey, oldKey); err != nil {
			return err
		}
		_, err := tx.Exec(`DELETE FROM refs WHERE name = ?`, oldKey)
		return err
	})
}

func (s *Store) Copy(srcKey, dstKey string) error {
	return sqlutil.RunInTx(s.db, func(tx *sql.Tx) error {
		if _, err := tx.Exec(
			`INSERT INTO refs (name, sum) VALUES (?, (SELECT sum FROM refs WHERE name = ?))`,
			dstKey, srcKey,
		); err != nil {
			return err
		}
		_, err := tx.Exec(
			`INSERT INTO reflogs
			SELECT ? AS ref, ordinal, oldoid, newoid, authorname, authoremail, time, action, message, txid
			FROM reflogs WHERE ref = ?`,
			dstKey, srcKey,
		)
		return err
	})
}

func (s *Store) LogReader(key string) (ref.ReflogReader, error) {
	row := s.db.QueryRow(`SELECT COUNT(*) FROM reflogs WHERE ref = ?`, key)
	var c int
	if err := row.Scan(&c); err != nil {
		return &ReflogReader{}, nil
	}
	return &ReflogReader{db: s.db, ref: key, ordinal: c}, nil
}
