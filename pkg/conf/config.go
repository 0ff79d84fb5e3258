// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Relay Authors

package conf

type User struct {
	// Email is the current user's email. Most operations that alter data
	// record the user's email, so it is always required.
	Email string `yaml:"email,omitempty" json:"email,omitempty"`

	// Name is the current user's name.
	Name string `yaml:"name,omitempty" json:"name,omitempty"`
}

type Branch struct {
	// Remote is the upstream remote of this branch.
	Remote string `yaml:"remote,omitempty" json:"remote,omitempty"`

	// Merge is the upstream destination of this branch.
	Merge string `yaml:"merge,omitempty" json:"merge,omitempty"`
}

type Receive struct {
	// DenyNonFastForwards rejects pushed updates that are not
	// fast-forwards.
	DenyNonFastForwards *bool `yaml:"denyNonFastForwards,omitempty" json:"denyNonFastForwards,omitempty"`

	// DenyDeletes rejects pushed ref deletions.
	DenyDeletes *bool `yaml:"denyDeletes,omitempty" json:"denyDeletes,omitempty"`
}

type Config struct {
	User    *User              `yaml:"user,omitempty" json:"user,omitempty"`
	Remote  map[string]*Remote `yaml:"remote,omitempty" json:"remote,omitempty"`
	Branch  map[string]*Branch `yaml:"branch,omitempty" json:"branch,omitempty"`
	Receive *Receive           `yaml:"receive,omitempty" json:"receive,omitempty"`
}

// DenyNonFastForwards returns the effective receive.denyNonFastForwards
// setting.
func (c *Config) DenyNonFastForwards() bool {
	return c.Receive != nil && c.Receive.DenyNonFastForwards != nil && *c.Receive.DenyNonFastForwards
}

// DenyDeletes returns the effective receive.denyDeletes setting.
func (c *Config) DenyDeletes() bool {
	return c.Receive != nil && c.Receive.DenyDeletes != nil && *c.Receive.DenyDeletes
}
