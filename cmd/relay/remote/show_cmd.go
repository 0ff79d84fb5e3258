// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Relay Authors

package remote

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/relay-vc/relay/cmd/relay/utils"
	"github.com/relay-vc/relay/pkg/conf/conffs"
	"github.com/relay-vc/relay/pkg/ref"
)

func showCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show NAME",
		Short: "Prints some information about a remote.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			relayDir := utils.MustRelayDir(cmd)
			s := conffs.NewStore(relayDir, conffs.LocalSource, "")
			c, err := s.Open()
			if err != nil {
				return err
			}
			rem, ok := c.Remote[name]
			if !ok {
				return fmt.Errorf("remote not found: %q", name)
			}
			rd := utils.GetRepoDir(cmd)
			defer rd.Close()
			rs, err := rd.OpenRefStore()
			if err != nil {
				return err
			}
			cmd.Printf("* %s\n", name)
			cmd.Printf("  URL: %s\n", rem.URL)
			if len(rem.Fetch) > 0 {
				cmd.Println("  Fetch:")
				for _, spec := range rem.Fetch {
					cmd.Printf("    %s\n", spec)
				}
			}
			if len(rem.Push) > 0 {
				cmd.Println("  Push:")
				for _, spec := range rem.Push {
					cmd.Printf("    %s\n", spec)
				}
			}
			refs, err := ref.ListRemoteRefs(rs, name)
			if err != nil {
				return err
			}
			if len(refs) > 0 {
				cmd.Println("  Remote branches:")
				names := make([]string, 0, len(refs))
				for k := range refs {
					names = append(names, k)
				}
				sort.Strings(names)
				for _, k := range names {
					cmd.Printf("    %s\n", k)
				}
			}
			return nil
		},
	}
	return cmd
}
