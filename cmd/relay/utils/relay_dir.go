// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Relay Authors

package utils

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/relay-vc/relay/pkg/local"
)

func GetRelayDir() (string, error) {
	rd := viper.GetString("relay_dir")
	if rd != "" {
		return rd, nil
	}
	return local.FindRelayDir()
}

func MustRelayDir(cmd *cobra.Command) string {
	d, err := GetRelayDir()
	if err != nil {
		cmd.PrintErrln(err.Error())
		os.Exit(1)
	}
	if d == "" {
		cmd.PrintErrln("Repository not initialized in current directory. Initialize with command:")
		cmd.PrintErrln("  relay init")
		os.Exit(1)
	}
	return d
}

func GetRepoDir(cmd *cobra.Command) *local.RepoDir {
	relayDir := MustRelayDir(cmd)
	badgerLog, err := cmd.Flags().GetString("badger-log")
	if err != nil {
		cmd.PrintErrln(err)
		os.Exit(1)
	}
	return local.NewRepoDir(relayDir, badgerLog)
}
