// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Relay Authors

package payload

// RepoInfo describes a remote repository's capabilities.
type RepoInfo struct {
	// ReceivePack is true when the repository accepts pushes.
	ReceivePack bool `json:"receivePack"`
}
