// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Relay Authors

package apitest

import (
	"net/http/httptest"
	"testing"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/require"

	"github.com/relay-vc/relay/pkg/api"
	apiclient "github.com/relay-vc/relay/pkg/api/client"
	"github.com/relay-vc/relay/pkg/conf"
	"github.com/relay-vc/relay/pkg/objects"
	objmock "github.com/relay-vc/relay/pkg/objects/mock"
	"github.com/relay-vc/relay/pkg/ref"
	"github.com/relay-vc/relay/pkg/ref/refmock"
)

// Server hosts a repository over the HTTP protocol for tests.
type Server struct {
	DB objects.Store
	RS ref.Store
	C  *conf.Config
	s  *httptest.Server
}

func NewServer(t *testing.T, c *conf.Config) *Server {
	t.Helper()
	if c == nil {
		c = &conf.Config{
			User: &conf.User{
				Name:  "test server",
				Email: "test@server.com",
			},
		}
	}
	db := objmock.NewStore()
	rs, cleanup := refmock.NewStore(t)
	s := &Server{
		DB: db,
		RS: rs,
		C:  c,
		s:  httptest.NewServer(api.NewServer(db, rs, c)),
	}
	t.Cleanup(func() {
		s.s.Close()
		cleanup()
	})
	return s
}

func (s *Server) URL() string {
	return s.s.URL
}

func (s *Server) Client(t *testing.T, opts ...apiclient.ClientOption) *apiclient.Client {
	t.Helper()
	c, err := apiclient.NewClient(s.s.URL, logr.Discard(), opts...)
	require.NoError(t, err)
	return c
}
