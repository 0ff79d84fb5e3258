// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Relay Authors

package push

import (
	"bytes"
	"fmt"

	"github.com/relay-vc/relay/pkg/objects"
)

// Hook inspects the candidate updates right before transmission and may
// abort the whole operation by returning a HookAbortError. It is invoked
// even when the candidate list is empty.
type Hook interface {
	Run(remote string, candidates []*Update) error
}

// HookAbortError signals that a hook vetoed the operation. Nothing was
// transmitted.
type HookAbortError struct {
	Hook   string
	Stderr string
	Err    error
}

func (e *HookAbortError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("%s hook aborted the operation: %s", e.Hook, e.Stderr)
	}
	return fmt.Sprintf("%s hook aborted the operation: %v", e.Hook, e.Err)
}

func (e *HookAbortError) Unwrap() error {
	return e.Err
}

// HookInput renders candidate updates in the form consumed by pre-push
// hooks, one line per candidate:
//
//	<src-or-"null"> <new-sum-or-zero> <remote-name> <old-sum-or-zero>
func HookInput(candidates []*Update) []byte {
	buf := bytes.NewBuffer(nil)
	for _, u := range candidates {
		src := u.Src
		if src == "" {
			src = "null"
		}
		fmt.Fprintf(buf, "%s %x %s %x\n", src, sumOrZero(u.Sum), u.Dst, sumOrZero(u.oldSum))
	}
	return buf.Bytes()
}

func sumOrZero(sum []byte) []byte {
	if sum == nil {
		return objects.ZeroSum
	}
	return sum
}
