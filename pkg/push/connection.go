// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Relay Authors

package push

import (
	"fmt"

	"github.com/relay-vc/relay/pkg/pbar"
)

// ErrPushUnsupported is returned by Transport.OpenPush when the remote
// cannot receive updates at all.
var ErrPushUnsupported = fmt.Errorf("remote does not support push")

// Report is a connection-assigned terminal outcome for one update. Status is
// StatusOK or one of the rejection statuses; Message carries the remote's
// reason when rejected.
type Report struct {
	Status  Status
	Message string
}

// Connection is a single push exchange with a remote. AdvertisedRefs and
// Push are each called at most once per operation; Close is always called.
type Connection interface {
	// AdvertisedRefs returns the remote's current reference set.
	AdvertisedRefs() (map[string][]byte, error)

	// Push transmits the given updates, keyed by remote ref name, and
	// returns a terminal report for each. An update missing from the
	// returned map is left awaiting report.
	Push(bar pbar.Bar, updates map[string]*Update) (map[string]*Report, error)

	Close() error
}

// Transport produces push connections to one remote.
type Transport interface {
	OpenPush() (Connection, error)
}
