// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Relay Authors

package api

import (
	"net/http"

	"github.com/relay-vc/relay/pkg/api/payload"
)

type InfoHandler struct {
	receivePack bool
}

func NewInfoHandler(receivePack bool) *InfoHandler {
	return &InfoHandler{receivePack: receivePack}
}

func (h *InfoHandler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(rw, "forbidden", http.StatusForbidden)
		return
	}
	writeJSON(rw, &payload.RepoInfo{
		ReceivePack: h.receivePack,
	})
}
