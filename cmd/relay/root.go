// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Relay Authors

package relay

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/relay-vc/relay/cmd/relay/remote"
	"github.com/relay-vc/relay/cmd/relay/utils"
)

func RootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "relay",
		Short:         "Git-like dataset versioning",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Usage()
		},
	}
	viper.SetEnvPrefix("")
	rootCmd.PersistentFlags().String("relay-dir", "", "parent directory of repo, default to current working directory.")
	viper.BindEnv("relay_dir")
	viper.BindPFlag("relay_dir", rootCmd.PersistentFlags().Lookup("relay-dir"))
	rootCmd.PersistentFlags().String("badger-log", "", `set Badger log level, valid options are "error", "warning", "debug", and "info" (defaults to "error")`)
	utils.AddLoggerFlags(rootCmd.PersistentFlags())
	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newPushCmd())
	rootCmd.AddCommand(remote.RootCmd())
	return rootCmd
}
