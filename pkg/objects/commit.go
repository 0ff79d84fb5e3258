// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Relay Authors

package objects

import (
	"bytes"
	"encoding/json"
	"io"
	"time"
)

// Commit is a single version of a dataset. Data is the sum of the dataset
// snapshot this commit captures, Parents are the sums of the commits this
// commit descends from.
type Commit struct {
	Sum         []byte    `json:"-"`
	Data        []byte    `json:"data"`
	AuthorName  string    `json:"authorName"`
	AuthorEmail string    `json:"authorEmail"`
	Time        time.Time `json:"time"`
	Message     string    `json:"message"`
	Parents     [][]byte  `json:"parents,omitempty"`
}

func (c *Commit) WriteTo(w io.Writer) (int64, error) {
	b, err := json.Marshal(c)
	if err != nil {
		return 0, err
	}
	n, err := w.Write(b)
	return int64(n), err
}

func (c *Commit) ReadFrom(r io.Reader) (int64, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return 0, err
	}
	return int64(len(b)), json.Unmarshal(b, c)
}

func ReadCommitFrom(r io.Reader) (int64, *Commit, error) {
	c := &Commit{}
	n, err := c.ReadFrom(r)
	return n, c, err
}

func (c *Commit) Encode() ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if _, err := c.WriteTo(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
