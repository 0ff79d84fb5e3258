// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Relay Authors

package conf_test

import (
	"testing"

	"github.com/relay-vc/relay/pkg/conf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRefspec(t *testing.T) {
	for _, c := range []struct {
		text  string
		force bool
		src   string
		dst   string
	}{
		{"refs/heads/main:refs/heads/main", false, "refs/heads/main", "refs/heads/main"},
		{"+refs/heads/main:refs/heads/other", true, "refs/heads/main", "refs/heads/other"},
		{"refs/heads/main", false, "refs/heads/main", ""},
		{":refs/heads/gone", false, "", "refs/heads/gone"},
		{"+:refs/heads/gone", true, "", "refs/heads/gone"},
	} {
		rs, err := conf.ParseRefspec(c.text)
		require.NoError(t, err, "text %q", c.text)
		assert.Equal(t, c.force, rs.Force, "text %q", c.text)
		assert.Equal(t, c.src, rs.Src(), "text %q", c.text)
		assert.Equal(t, c.dst, rs.Dst(), "text %q", c.text)
		assert.Equal(t, c.text, rs.String(), "text %q", c.text)

		b, err := rs.MarshalText()
		require.NoError(t, err)
		assert.Equal(t, c.text, string(b))
	}

	for _, text := range []string{"", "+", ":"} {
		_, err := conf.ParseRefspec(text)
		assert.Error(t, err, "text %q", text)
	}
}

func TestNewRefspec(t *testing.T) {
	rs, err := conf.NewRefspec("refs/heads/main", "refs/remotes/origin/main", true)
	require.NoError(t, err)
	assert.Equal(t, "+refs/heads/main:refs/remotes/origin/main", rs.String())

	_, err = conf.NewRefspec("", "", false)
	assert.Error(t, err)
}

func TestMustParseRefspec(t *testing.T) {
	rs := conf.MustParseRefspec("+refs/heads/*:refs/remotes/origin/*")
	assert.True(t, rs.Force)
	assert.Panics(t, func() {
		conf.MustParseRefspec("")
	})
}
