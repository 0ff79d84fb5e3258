// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Relay Authors

package payload

// Update is one requested ref change in a receive-pack exchange. OldSum is
// the value the client saw advertised; the server rejects the update when
// the ref moved since. In a response, a non-empty ErrMsg means the update
// was rejected.
type Update struct {
	Sum    *Hex   `json:"sum,omitempty"`
	OldSum *Hex   `json:"oldSum,omitempty"`
	ErrMsg string `json:"errMsg,omitempty"`
}

type ReceivePackRequest struct {
	Updates map[string]*Update `json:"updates"`
}

type ReceivePackResponse struct {
	Updates map[string]*Update `json:"updates"`
}
