// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Relay Authors

package conf

type Remote struct {
	// URL is the URL of a remote.
	URL string `yaml:"url,omitempty" json:"url,omitempty"`

	// Fetch is the list of refspecs to fetch from this remote when the user
	// runs `relay fetch <remote>` without refspecs.
	Fetch RefspecSlice `yaml:"fetch,omitempty" json:"fetch,omitempty"`

	// Push is the list of refspecs to push to this remote when the user runs
	// `relay push <remote>` without refspecs.
	Push RefspecSlice `yaml:"push,omitempty" json:"push,omitempty"`

	// Mirror, when set to true, makes `relay push <remote>` behave as if the
	// --mirror flag is set.
	Mirror bool `yaml:"mirror,omitempty" json:"mirror,omitempty"`
}
