// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Relay Authors

package push

// Update is one requested change to a remote reference: create it, move it,
// or delete it (nil Sum). The caller fills in the exported fields; the
// orchestrator owns the rest and the caller reads them back through the
// accessors once Execute returns.
type Update struct {
	// Src designates the local source of the pushed value. It is empty for
	// deletions and is only used for display and hook payloads.
	Src string

	// Sum is the value Dst should point to after the push. nil means delete
	// Dst.
	Sum []byte

	// Dst is the name of the reference on the remote.
	Dst string

	// Force permits a non-fast-forward update.
	Force bool

	// Local is an optional local tracking reference to move once the remote
	// acknowledges the update.
	Local string

	// ExpectedOldSum, when set, is the value the caller believes Dst
	// currently holds. The update is rejected without transmission when the
	// advertised value differs, force or not.
	ExpectedOldSum []byte

	status      Status
	oldSum      []byte
	fastForward bool
	message     string
}

// IsDelete returns true when this update removes Dst from the remote.
func (u *Update) IsDelete() bool {
	return u.Sum == nil
}

// Status returns the update's outcome. Read it only after the operation
// returns.
func (u *Update) Status() Status {
	return u.status
}

// OldSum is the value the remote advertised for Dst when the operation
// validated this update.
func (u *Update) OldSum() []byte {
	return u.oldSum
}

// FastForward reports whether the accepted update was a fast-forward. It is
// only meaningful when Status is StatusOK.
func (u *Update) FastForward() bool {
	return u.fastForward
}

// Message carries the remote's rejection reason, if any.
func (u *Update) Message() string {
	return u.message
}
