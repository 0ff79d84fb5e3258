// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Relay Authors

package api

import (
	"net/http"

	"github.com/relay-vc/relay/pkg/api/payload"
	"github.com/relay-vc/relay/pkg/ref"
)

type GetRefsHandler struct {
	rs ref.Store
}

func NewGetRefsHandler(rs ref.Store) *GetRefsHandler {
	return &GetRefsHandler{rs: rs}
}

func (h *GetRefsHandler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(rw, "forbidden", http.StatusForbidden)
		return
	}
	values := r.URL.Query()
	refs, err := ref.ListLocalRefs(h.rs, values["prefix"], values["notprefix"])
	if err != nil {
		panic(err)
	}
	resp := &payload.GetRefsResponse{
		Refs: map[string]*payload.Hex{},
	}
	for k, v := range refs {
		resp.Refs[k] = payload.BytesToHex(v)
	}
	writeJSON(rw, resp)
}
