// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Relay Authors

package push

import (
	"bytes"
)

// outcome is one update's classification against the advertised snapshot.
// A NotAttempted status marks the update as a transmission candidate.
type outcome struct {
	status      Status
	fastForward bool
	oldSum      []byte
}

// classify decides how a single update fares against the remote's advertised
// refs without transmitting anything. The checks run in a fixed order and
// the first match wins; in particular an ExpectedOldSum mismatch rejects the
// update before the fast-forward/force logic gets a say.
func classify(u *Update, remoteRefs map[string][]byte, checker AncestryChecker) (outcome, error) {
	current, exists := remoteRefs[u.Dst]
	if u.IsDelete() && !exists {
		return outcome{status: StatusNonExisting}, nil
	}
	if u.ExpectedOldSum != nil {
		if !exists || !bytes.Equal(current, u.ExpectedOldSum) {
			return outcome{status: StatusRejectedRemoteChanged, oldSum: current}, nil
		}
	}
	if exists && bytes.Equal(current, u.Sum) {
		return outcome{status: StatusUpToDate, oldSum: current}, nil
	}
	if u.IsDelete() {
		return outcome{status: StatusNotAttempted, fastForward: true, oldSum: current}, nil
	}
	if !exists {
		return outcome{status: StatusNotAttempted, fastForward: true}, nil
	}
	a, err := checker.AncestorOf(current, u.Sum)
	if err != nil {
		return outcome{}, err
	}
	if a == AncestorYes {
		return outcome{status: StatusNotAttempted, fastForward: true, oldSum: current}, nil
	}
	if u.Force {
		return outcome{status: StatusNotAttempted, fastForward: false, oldSum: current}, nil
	}
	return outcome{status: StatusRejectedNonFastForward, oldSum: current}, nil
}
