// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Relay Authors

package refsql

var CreateTableStmts = []string{
	`CREATE TABLE IF NOT EXISTS refs (
		name TEXT NOT NULL PRIMARY KEY,
		sum  BLOB NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS reflogs (
		ref         TEXT NOT NULL,
		ordinal     INTEGER NOT NULL,
		oldoid      BLOB,
		newoid      BLOB NOT NULL,
		authorname  TEXT NOT NULL DEFAULT '',
		authoremail TEXT NOT NULL DEFAULT '',
		time        DATETIME NOT NULL,
		action      TEXT NOT NULL DEFAULT '',
		message     TEXT NOT NULL DEFAULT '',
		txid        TEXT,
		PRIMARY KEY (ref, ordinal)
	)`,
}
