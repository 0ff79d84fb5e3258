// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Relay Authors

package remote

import (
	"sort"

	"github.com/spf13/cobra"

	"github.com/relay-vc/relay/cmd/relay/utils"
	"github.com/relay-vc/relay/pkg/conf/conffs"
)

func listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ls",
		Short: "List remote names and URLs.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			relayDir := utils.MustRelayDir(cmd)
			s := conffs.NewStore(relayDir, conffs.LocalSource, "")
			c, err := s.Open()
			if err != nil {
				return err
			}
			verbose, err := cmd.Flags().GetBool("verbose")
			if err != nil {
				return err
			}
			names := make([]string, 0, len(c.Remote))
			for name := range c.Remote {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				if verbose {
					cmd.Printf("%s %s\n", name, c.Remote[name].URL)
				} else {
					cmd.Println(name)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolP("verbose", "v", false, "show remote URL after name")
	return cmd
}
