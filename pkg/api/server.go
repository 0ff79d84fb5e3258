// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Relay Authors

package api

import (
	"net/http"

	"github.com/relay-vc/relay/pkg/conf"
	"github.com/relay-vc/relay/pkg/objects"
	"github.com/relay-vc/relay/pkg/ref"
)

// NewServer returns an HTTP handler serving the repository protocol for a
// single repository.
func NewServer(db objects.Store, rs ref.Store, c *conf.Config) http.Handler {
	mux := http.NewServeMux()
	mux.Handle(PathInfo, NewInfoHandler(true))
	mux.Handle(PathRefs, NewGetRefsHandler(rs))
	mux.Handle(PathReceivePack, NewReceivePackHandler(db, rs, c))
	return mux
}
