// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Relay Authors

package remote

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/relay-vc/relay/cmd/relay/utils"
	"github.com/relay-vc/relay/pkg/conf/conffs"
	"github.com/relay-vc/relay/pkg/ref"
)

func removeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove NAME",
		Short: "Remove the remote named NAME.",
		Long:  "Remove the remote named NAME. All remote-tracking branches and configuration settings for the remote are removed.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			relayDir := utils.MustRelayDir(cmd)
			s := conffs.NewStore(relayDir, conffs.LocalSource, "")
			c, err := s.Open()
			if err != nil {
				return err
			}
			if _, ok := c.Remote[name]; !ok {
				return fmt.Errorf("remote not found: %q", name)
			}
			delete(c.Remote, name)
			if err = s.Save(c); err != nil {
				return err
			}
			rd := utils.GetRepoDir(cmd)
			defer rd.Close()
			rs, err := rd.OpenRefStore()
			if err != nil {
				return err
			}
			refs, err := ref.ListRemoteRefs(rs, name)
			if err != nil {
				return err
			}
			for r := range refs {
				if err = ref.DeleteRemoteRef(rs, name, r); err != nil {
					return err
				}
			}
			return nil
		},
	}
	return cmd
}
