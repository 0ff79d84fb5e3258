// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Relay Authors

package relay

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func trimRefPrefix(r string) string {
	for _, prefix := range []string{
		"refs/heads/", "refs/tags/", "refs/remotes/", "heads/", "tags/", "remotes/",
	} {
		r = strings.TrimPrefix(r, prefix)
	}
	return r
}

func displayRefUpdate(cmd *cobra.Command, code byte, summary, errStr, from, to string) {
	if errStr != "" {
		errStr = fmt.Sprintf(" (%s)", errStr)
	}
	from = trimRefPrefix(from)
	to = trimRefPrefix(to)
	cmd.Printf(" %c %-17s %-11s -> %s%s\n", code, summary, from, to, errStr)
}

func quickref(oldSum, sum []byte, fastForward bool) string {
	a := hex.EncodeToString(oldSum)[:7]
	b := hex.EncodeToString(sum)[:7]
	if fastForward {
		return fmt.Sprintf("%s..%s", a, b)
	}
	return fmt.Sprintf("%s...%s", a, b)
}
