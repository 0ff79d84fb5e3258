// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Relay Authors

package push

import (
	"github.com/relay-vc/relay/pkg/ref"
)

// TrackingUpdate records one local tracking reference move performed after
// the remote accepted the corresponding update.
type TrackingUpdate struct {
	LocalName  string
	RemoteName string
	OldSum     []byte
	NewSum     []byte
	Result     ref.MoveResult
}

// Result aggregates everything an operation did: the advertised snapshot it
// ran against, every requested update with its terminal outcome, and every
// local tracking move. It is built once and never mutated afterwards.
type Result struct {
	advertised map[string][]byte
	updates    map[string]*Update
	tracking   map[string]*TrackingUpdate
}

// AdvertisedRefs returns the remote's reference snapshot taken at the start
// of the operation.
func (r *Result) AdvertisedRefs() map[string][]byte {
	return r.advertised
}

// AdvertisedRef returns the advertised value of name, or nil if the remote
// did not advertise it.
func (r *Result) AdvertisedRef(name string) []byte {
	return r.advertised[name]
}

// RemoteUpdates returns every requested update keyed by remote ref name.
func (r *Result) RemoteUpdates() map[string]*Update {
	return r.updates
}

// RemoteUpdate returns the update targeting the named remote ref, or nil.
func (r *Result) RemoteUpdate(name string) *Update {
	return r.updates[name]
}

// TrackingUpdates returns every local tracking move keyed by local ref name.
func (r *Result) TrackingUpdates() map[string]*TrackingUpdate {
	return r.tracking
}

// TrackingUpdate returns the tracking move for the named local ref, or nil.
func (r *Result) TrackingUpdate(localName string) *TrackingUpdate {
	return r.tracking[localName]
}
