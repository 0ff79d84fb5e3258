// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Relay Authors

package ref

import (
	"time"

	"github.com/google/uuid"
)

// Reflog is a single entry in a reference's history log.
type Reflog struct {
	OldOID      []byte
	NewOID      []byte
	AuthorName  string
	AuthorEmail string
	Time        time.Time
	Action      string
	Message     string
	Txid        *uuid.UUID
}
