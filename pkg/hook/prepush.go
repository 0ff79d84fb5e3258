// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Relay Authors

package hook

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/relay-vc/relay/pkg/push"
)

const PrePush = "pre-push"

// PrePushHook runs the repository's pre-push script, if one exists, before
// any update is transmitted. The script receives the remote's name and URL
// as arguments and one line per candidate update on standard input. A
// non-zero exit vetoes the push.
type PrePushHook struct {
	dir       string
	remoteURL string
}

// NewPrePushHook looks for hooks under hookDir. remoteURL is handed to the
// script as its second argument.
func NewPrePushHook(hookDir, remoteURL string) *PrePushHook {
	return &PrePushHook{
		dir:       hookDir,
		remoteURL: remoteURL,
	}
}

func (h *PrePushHook) path() string {
	return filepath.Join(h.dir, PrePush)
}

func (h *PrePushHook) Run(remote string, candidates []*push.Update) error {
	fp := h.path()
	st, err := os.Stat(fp)
	if err != nil || st.IsDir() || st.Mode()&0111 == 0 {
		return nil
	}
	cmd := exec.Command(fp, remote, h.remoteURL)
	cmd.Stdin = bytes.NewReader(push.HookInput(candidates))
	stderr := bytes.NewBuffer(nil)
	cmd.Stderr = stderr
	if err := cmd.Run(); err != nil {
		return &push.HookAbortError{
			Hook:   PrePush,
			Stderr: strings.TrimSpace(stderr.String()),
			Err:    err,
		}
	}
	return nil
}
