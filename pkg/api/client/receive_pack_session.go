// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Relay Authors

package apiclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/relay-vc/relay/pkg/api"
	"github.com/relay-vc/relay/pkg/api/apiutils"
	"github.com/relay-vc/relay/pkg/api/payload"
	"github.com/relay-vc/relay/pkg/objects"
	"github.com/relay-vc/relay/pkg/pbar"
)

type stateFn func() (stateFn, error)

// ReceivePackSession drives one push exchange from the client side: send
// the requested updates, stream missing commits as gzipped packfiles until
// the server has everything, then collect the per-ref report.
type ReceivePackSession struct {
	sender  *apiutils.ObjectSender
	c       *Client
	updates map[string]*payload.Update
	bar     pbar.Bar
	state   stateFn
}

func NewReceivePackSession(db objects.Store, c *Client, updates map[string]*payload.Update, remoteRefs map[string][]byte, maxPayloadSize uint64, bar pbar.Bar) (*ReceivePackSession, error) {
	wants := [][]byte{}
	for _, u := range updates {
		if u.Sum != nil {
			wants = append(wants, (*u.Sum)[:])
		}
	}
	haves := make([][]byte, 0, len(remoteRefs))
	for _, sum := range remoteRefs {
		haves = append(haves, sum)
	}
	toSend, err := apiutils.CommitsToSend(db, wants, haves)
	if err != nil {
		return nil, err
	}
	bar.SetTotal(int64(len(toSend)))
	s := &ReceivePackSession{
		sender:  apiutils.NewObjectSender(db, toSend, maxPayloadSize),
		c:       c,
		updates: updates,
		bar:     bar,
	}
	s.state = s.initialize
	return s, nil
}

func (s *ReceivePackSession) initialize() (stateFn, error) {
	var nextState stateFn
	for _, u := range s.updates {
		if u.Sum != nil {
			nextState = s.sendObjects
		}
	}
	resp, err := s.c.PostUpdatesToReceivePack(s.updates)
	if err != nil {
		return nil, err
	}
	if ct := resp.Header.Get("Content-Type"); strings.Contains(ct, api.CTJSON) {
		return s.readReport(resp)
	}
	resp.Body.Close()
	if nextState != nil {
		return nextState, nil
	}
	return nil, fmt.Errorf("remote did not report status")
}

func (s *ReceivePackSession) sendObjects() (stateFn, error) {
	reqBody := bytes.NewBuffer(nil)
	gzw := gzip.NewWriter(reqBody)
	done, err := s.sender.WriteObjects(gzw, s.bar)
	if err != nil {
		return nil, err
	}
	if err = gzw.Close(); err != nil {
		return nil, err
	}
	resp, err := s.c.Request(http.MethodPost, api.PathReceivePack, reqBody, map[string]string{
		"Content-Type":     api.CTPackfile,
		"Content-Encoding": "gzip",
	})
	if err != nil {
		return nil, err
	}
	if !done {
		resp.Body.Close()
		return s.sendObjects, nil
	}
	return s.readReport(resp)
}

func (s *ReceivePackSession) readReport(resp *http.Response) (stateFn, error) {
	defer resp.Body.Close()
	if ct := resp.Header.Get("Content-Type"); !strings.Contains(ct, api.CTJSON) {
		return nil, fmt.Errorf("unexpected content type %q", ct)
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	r := &payload.ReceivePackResponse{}
	if err = json.Unmarshal(b, r); err != nil {
		return nil, err
	}
	s.updates = r.Updates
	return nil, nil
}

// Start runs the exchange to completion and returns the server's report.
func (s *ReceivePackSession) Start() (updates map[string]*payload.Update, err error) {
	for s.state != nil {
		s.state, err = s.state()
		if err != nil {
			return nil, err
		}
	}
	return s.updates, nil
}
