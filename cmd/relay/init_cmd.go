// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Relay Authors

package relay

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/relay-vc/relay/pkg/local"
)

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a repository in current directory",
		Long:  "Initialize a repository in current directory. The repository will live under <current directory>/.relay.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			wd, err := os.Getwd()
			if err != nil {
				return err
			}
			dir := viper.GetString("relay_dir")
			create := false
			if dir == "" {
				dir = filepath.Join(wd, ".relay")
				create = true
			}
			if _, err = os.Stat(dir); err == nil {
				cmd.Printf("Repository already initialized at %s\n", dir)
				return nil
			}
			badgerLog, err := cmd.Flags().GetString("badger-log")
			if err != nil {
				return err
			}
			rd := local.NewRepoDir(dir, badgerLog)
			if err = rd.Init(); err != nil {
				return err
			}
			if create {
				cmd.Println("Repository initialized at .relay")
			}
			return nil
		},
	}
	return cmd
}
