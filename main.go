// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Relay Authors

package main

import (
	"os"

	relay "github.com/relay-vc/relay/cmd/relay"
)

func main() {
	rootCmd := relay.RootCmd()
	if err := rootCmd.Execute(); err != nil {
		rootCmd.PrintErrln("Error:", err.Error())
		os.Exit(1)
	}
}
