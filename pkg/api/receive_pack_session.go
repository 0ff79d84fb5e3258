// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Relay Authors

package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/klauspost/compress/gzip"

	"github.com/relay-vc/relay/pkg/api/apiutils"
	"github.com/relay-vc/relay/pkg/api/payload"
	"github.com/relay-vc/relay/pkg/conf"
	"github.com/relay-vc/relay/pkg/objects"
	"github.com/relay-vc/relay/pkg/pack"
	"github.com/relay-vc/relay/pkg/ref"
)

type stateFn func(rw http.ResponseWriter, r *http.Request) stateFn

// ReceivePackSession is one push seen from the server side. The exchange
// spans one or more requests carrying the same session cookie: first the
// requested updates as JSON, then zero or more packfiles, then the final
// status report.
type ReceivePackSession struct {
	db       objects.Store
	rs       ref.Store
	c        *conf.Config
	updates  map[string]*payload.Update
	state    stateFn
	receiver *apiutils.ObjectReceiver
	id       uuid.UUID
}

func NewReceivePackSession(db objects.Store, rs ref.Store, c *conf.Config, id uuid.UUID) *ReceivePackSession {
	s := &ReceivePackSession{
		db: db,
		rs: rs,
		c:  c,
		id: id,
	}
	s.state = s.greet
	return s
}

func refName(dst string) string {
	return strings.TrimPrefix(dst, "refs/")
}

func (s *ReceivePackSession) saveRefs() error {
	for dst, u := range s.updates {
		if u.ErrMsg != "" {
			continue
		}
		name := refName(dst)
		oldSum, _ := ref.GetRef(s.rs, name)
		if (u.OldSum == nil && oldSum != nil) || (u.OldSum != nil && !bytes.Equal(oldSum, payload.HexToBytes(u.OldSum))) {
			u.ErrMsg = "remote ref updated since checkout"
			continue
		}
		if u.Sum == nil {
			if s.c.DenyDeletes() {
				u.ErrMsg = "remote does not support deleting refs"
			} else if err := ref.DeleteRef(s.rs, name); err != nil {
				return err
			}
			continue
		}
		sum := payload.HexToBytes(u.Sum)
		if !objects.CommitExist(s.db, sum) {
			u.ErrMsg = "remote did not receive commit"
			continue
		}
		var msg string
		if oldSum != nil {
			if s.c.DenyNonFastForwards() {
				fastForward, err := ref.IsAncestorOf(s.db, oldSum, sum)
				if err != nil {
					return err
				} else if !fastForward {
					u.ErrMsg = "remote does not support non-fast-forwards"
					continue
				}
			}
			msg = "update ref"
		} else {
			msg = "create ref"
		}
		var name2, email string
		if s.c.User != nil {
			name2, email = s.c.User.Name, s.c.User.Email
		}
		if err := ref.SaveRef(s.rs, name, sum, name2, email, "receive-pack", msg, nil); err != nil {
			return err
		}
	}
	return nil
}

func (s *ReceivePackSession) greet(rw http.ResponseWriter, r *http.Request) stateFn {
	if v := r.Header.Get("Content-Type"); !strings.Contains(v, CTJSON) {
		http.Error(rw, "updates expected", http.StatusBadRequest)
		return nil
	}
	b, err := io.ReadAll(r.Body)
	if err != nil {
		panic(err)
	}
	req := &payload.ReceivePackRequest{}
	if err = json.Unmarshal(b, req); err != nil {
		http.Error(rw, "invalid updates payload", http.StatusBadRequest)
		return nil
	}
	s.updates = req.Updates
	commits := [][]byte{}
	outdated := false
	for dst, u := range s.updates {
		oldSum, err := ref.GetRef(s.rs, refName(dst))
		if err != nil {
			oldSum = nil
		}
		if (u.OldSum == nil && oldSum != nil) || (u.OldSum != nil && !bytes.Equal(oldSum, payload.HexToBytes(u.OldSum))) {
			outdated = true
			u.ErrMsg = "remote ref updated since checkout"
		}
		if u.Sum != nil {
			commits = append(commits, payload.HexToBytes(u.Sum))
		}
	}
	if outdated {
		return s.reportStatus(rw)
	}
	if len(commits) > 0 {
		s.receiver = apiutils.NewObjectReceiver(s.db, commits)
		return s.askForMore(rw)
	}
	if err = s.saveRefs(); err != nil {
		panic(err)
	}
	return s.reportStatus(rw)
}

func (s *ReceivePackSession) receiveObjects(rw http.ResponseWriter, r *http.Request) stateFn {
	if v := r.Header.Get("Content-Type"); v != CTPackfile {
		http.Error(rw, "packfile expected", http.StatusBadRequest)
		return nil
	}
	body := r.Body
	if r.Header.Get("Content-Encoding") == "gzip" {
		gzr, err := gzip.NewReader(body)
		if err != nil {
			http.Error(rw, "invalid gzip payload", http.StatusBadRequest)
			return nil
		}
		defer gzr.Close()
		body = gzr
	}
	pr, err := pack.NewReader(body)
	if err != nil {
		http.Error(rw, "invalid packfile", http.StatusBadRequest)
		return nil
	}
	done, err := s.receiver.Receive(pr)
	if err != nil {
		panic(err)
	}
	if !done {
		return s.askForMore(rw)
	}
	if err = s.saveRefs(); err != nil {
		panic(err)
	}
	return s.reportStatus(rw)
}

func (s *ReceivePackSession) askForMore(rw http.ResponseWriter) stateFn {
	http.SetCookie(rw, &http.Cookie{
		Name:     CookieReceivePackSession,
		Value:    s.id.String(),
		Path:     PathReceivePack,
		HttpOnly: true,
		MaxAge:   3600 * 3,
	})
	rw.WriteHeader(http.StatusOK)
	return s.receiveObjects
}

func (s *ReceivePackSession) reportStatus(rw http.ResponseWriter) stateFn {
	http.SetCookie(rw, &http.Cookie{
		Name:     CookieReceivePackSession,
		Value:    s.id.String(),
		Path:     PathReceivePack,
		HttpOnly: true,
		Expires:  time.Now().Add(time.Hour * -24),
	})
	writeJSON(rw, &payload.ReceivePackResponse{
		Updates: s.updates,
	})
	return nil
}

// ServeHTTP handles one request in the session. It returns true once the
// session has run to completion.
func (s *ReceivePackSession) ServeHTTP(rw http.ResponseWriter, r *http.Request) bool {
	s.state = s.state(rw, r)
	return s.state == nil
}
