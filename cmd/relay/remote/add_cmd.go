// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Relay Authors

package remote

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/cobra"

	"github.com/relay-vc/relay/cmd/relay/utils"
	"github.com/relay-vc/relay/pkg/conf"
	"github.com/relay-vc/relay/pkg/conf/conffs"
)

func addCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add NAME URL",
		Short: "Add a remote named NAME for the repository at URL.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			u := strings.TrimSuffix(args[1], "/")
			if _, err := url.ParseRequestURI(u); err != nil {
				return err
			}
			relayDir := utils.MustRelayDir(cmd)
			s := conffs.NewStore(relayDir, conffs.LocalSource, "")
			c, err := s.Open()
			if err != nil {
				return err
			}
			track, err := cmd.Flags().GetStringSlice("track")
			if err != nil {
				return err
			}
			mirror, err := cmd.Flags().GetString("mirror")
			if err != nil {
				return err
			}
			if c.Remote == nil {
				c.Remote = map[string]*conf.Remote{}
			}
			remote := &conf.Remote{
				URL: u,
			}
			c.Remote[name] = remote
			if mirror == "fetch" {
				remote.Fetch = append(remote.Fetch, conf.MustParseRefspec("+refs/*:refs/*"))
			} else if len(track) != 0 {
				for _, t := range track {
					remote.Fetch = append(remote.Fetch, conf.MustParseRefspec(
						fmt.Sprintf("+refs/heads/%s:refs/remotes/%s/%s", t, name, t),
					))
				}
			} else {
				remote.Fetch = append(remote.Fetch, conf.MustParseRefspec(
					fmt.Sprintf("+refs/heads/*:refs/remotes/%s/*", name),
				))
			}
			if mirror == "push" {
				remote.Mirror = true
			}
			return s.Save(c)
		},
	}
	cmd.Flags().StringSliceP("track", "t", nil, "only track specified branches instead of all branches")
	cmd.Flags().String("mirror", "", `either "fetch" or "push". With --mirror=fetch, fetched refs replace local refs. With --mirror=push, pushes behave as if --mirror is set.`)
	return cmd
}
