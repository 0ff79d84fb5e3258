// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Relay Authors

package api

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/relay-vc/relay/pkg/conf"
	"github.com/relay-vc/relay/pkg/objects"
	"github.com/relay-vc/relay/pkg/ref"
)

type ReceivePackHandler struct {
	db       objects.Store
	rs       ref.Store
	c        *conf.Config
	sessions map[string]*ReceivePackSession
}

func NewReceivePackHandler(db objects.Store, rs ref.Store, c *conf.Config) *ReceivePackHandler {
	return &ReceivePackHandler{
		db:       db,
		rs:       rs,
		c:        c,
		sessions: map[string]*ReceivePackSession{},
	}
}

func (h *ReceivePackHandler) getSession(r *http.Request) (ses *ReceivePackSession, sid string, err error) {
	if c, err := r.Cookie(CookieReceivePackSession); err == nil {
		if ses, ok := h.sessions[c.Value]; ok {
			return ses, c.Value, nil
		}
	}
	id, err := uuid.NewRandom()
	if err != nil {
		return nil, "", err
	}
	sid = id.String()
	ses = NewReceivePackSession(h.db, h.rs, h.c, id)
	h.sessions[sid] = ses
	return ses, sid, nil
}

func (h *ReceivePackHandler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(rw, "forbidden", http.StatusForbidden)
		return
	}
	ses, sid, err := h.getSession(r)
	if err != nil {
		panic(err)
	}
	defer func() {
		if s := recover(); s != nil {
			delete(h.sessions, sid)
			panic(s)
		}
	}()
	if done := ses.ServeHTTP(rw, r); done {
		delete(h.sessions, sid)
	}
}
