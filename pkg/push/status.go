// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Relay Authors

package push

// Status is the terminal outcome of a single remote ref update. A request
// starts out NotAttempted and receives exactly one terminal status over the
// course of an operation.
type Status int

const (
	StatusNotAttempted Status = iota
	StatusUpToDate
	StatusNonExisting
	StatusRejectedNonFastForward
	StatusRejectedRemoteChanged
	StatusRejectedOther
	StatusAwaitingReport
	StatusOK
)

func (s Status) String() string {
	switch s {
	case StatusNotAttempted:
		return "not attempted"
	case StatusUpToDate:
		return "up to date"
	case StatusNonExisting:
		return "non existing"
	case StatusRejectedNonFastForward:
		return "rejected: non-fast-forward"
	case StatusRejectedRemoteChanged:
		return "rejected: remote ref changed"
	case StatusRejectedOther:
		return "rejected"
	case StatusAwaitingReport:
		return "awaiting report"
	case StatusOK:
		return "ok"
	}
	return "unknown"
}

// Terminal returns true if s is a final outcome that can no longer change.
func (s Status) Terminal() bool {
	switch s {
	case StatusNotAttempted, StatusAwaitingReport:
		return false
	}
	return true
}
