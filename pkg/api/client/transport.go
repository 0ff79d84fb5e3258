// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Relay Authors

package apiclient

import (
	"errors"
	"net/http"

	"github.com/relay-vc/relay/pkg/api/payload"
	"github.com/relay-vc/relay/pkg/objects"
	"github.com/relay-vc/relay/pkg/pbar"
	"github.com/relay-vc/relay/pkg/push"
)

// Transport opens push connections against an HTTP remote.
type Transport struct {
	db objects.Store
	c  *Client
}

func NewTransport(db objects.Store, c *Client) *Transport {
	return &Transport{
		db: db,
		c:  c,
	}
}

func (t *Transport) OpenPush() (push.Connection, error) {
	info, err := t.c.GetRepoInfo()
	if err != nil {
		httpErr := &HTTPError{}
		if errors.As(err, &httpErr) && (httpErr.Code == http.StatusNotFound || httpErr.Code == http.StatusForbidden) {
			return nil, push.ErrPushUnsupported
		}
		return nil, err
	}
	if !info.ReceivePack {
		return nil, push.ErrPushUnsupported
	}
	return &pushConn{
		db: t.db,
		c:  t.c,
	}, nil
}

type pushConn struct {
	db         objects.Store
	c          *Client
	advertised map[string][]byte
}

func (c *pushConn) AdvertisedRefs() (map[string][]byte, error) {
	if c.advertised == nil {
		m, err := c.c.GetRefs(nil, nil)
		if err != nil {
			return nil, err
		}
		c.advertised = m
	}
	return c.advertised, nil
}

func (c *pushConn) Push(bar pbar.Bar, updates map[string]*push.Update) (map[string]*push.Report, error) {
	if _, err := c.AdvertisedRefs(); err != nil {
		return nil, err
	}
	pus := map[string]*payload.Update{}
	for name, u := range updates {
		pus[name] = &payload.Update{
			Sum:    payload.BytesToHex(u.Sum),
			OldSum: payload.BytesToHex(u.OldSum()),
		}
	}
	ses, err := NewReceivePackSession(c.db, c.c, pus, c.advertised, 0, bar)
	if err != nil {
		return nil, err
	}
	result, err := ses.Start()
	if err != nil {
		return nil, err
	}
	reports := map[string]*push.Report{}
	for name, u := range result {
		if u.ErrMsg == "" {
			reports[name] = &push.Report{Status: push.StatusOK}
		} else {
			reports[name] = &push.Report{
				Status:  push.StatusRejectedOther,
				Message: u.ErrMsg,
			}
		}
	}
	return reports, nil
}

func (c *pushConn) Close() error {
	return nil
}
