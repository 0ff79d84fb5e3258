// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Relay Authors

package relay

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/relay-vc/relay/cmd/relay/utils"
	apiclient "github.com/relay-vc/relay/pkg/api/client"
	"github.com/relay-vc/relay/pkg/conf"
	"github.com/relay-vc/relay/pkg/conf/conffs"
	"github.com/relay-vc/relay/pkg/hook"
	"github.com/relay-vc/relay/pkg/pbar"
	"github.com/relay-vc/relay/pkg/push"
	"github.com/relay-vc/relay/pkg/ref"
)

func newPushCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "push [REPOSITORY [REFSPEC...]]",
		Short: "Updates remote refs using local refs, sending commits necessary to complete the given refs.",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cleanup, err := utils.SetupLogger(cmd)
			if err != nil {
				return err
			}
			if cleanup != nil {
				defer cleanup()
			}
			logger := utils.GetLogger(cmd)
			relayDir := utils.MustRelayDir(cmd)
			s := conffs.NewStore(relayDir, conffs.AggregateSource, "")
			c, err := s.Open()
			if err != nil {
				return err
			}
			rd := utils.GetRepoDir(cmd)
			defer rd.Close()
			db, err := rd.OpenObjectsStore()
			if err != nil {
				return err
			}
			defer db.Close()
			rs, err := rd.OpenRefStore()
			if err != nil {
				return err
			}
			force, err := cmd.Flags().GetBool("force")
			if err != nil {
				return err
			}
			setUpstream, err := cmd.Flags().GetBool("set-upstream")
			if err != nil {
				return err
			}
			mirror, err := cmd.Flags().GetBool("mirror")
			if err != nil {
				return err
			}
			noProgress, err := cmd.Flags().GetBool("no-progress")
			if err != nil {
				return err
			}
			dryRun, err := cmd.Flags().GetBool("dry-run")
			if err != nil {
				return err
			}

			remote, cr, args, err := getRepoToPush(c, args)
			if err != nil {
				return err
			}
			if cr.Mirror {
				mirror = true
			}
			client, err := apiclient.NewClient(cr.URL, *logger)
			if err != nil {
				return err
			}
			remoteRefs, err := client.GetRefs(nil, nil)
			if err != nil {
				return err
			}
			var updates []*push.Update
			if mirror {
				updates, err = mirrorUpdates(rs, remoteRefs, remote)
			} else {
				updates, err = refspecUpdates(rs, cr, args, remoteRefs, remote, force)
			}
			if err != nil {
				return err
			}

			if dryRun {
				cmd.Printf("To %s\n", cr.URL)
				for _, u := range updates {
					if u.IsDelete() {
						displayRefUpdate(cmd, '-', "[would delete]", "", "", u.Dst)
					} else {
						displayRefUpdate(cmd, '*', "[would push]", "", u.Src, u.Dst)
					}
				}
				return nil
			}

			var authorName, authorEmail string
			if c.User != nil {
				authorName, authorEmail = c.User.Name, c.User.Email
			}
			p := push.NewProcess(db, rs, apiclient.NewTransport(db, client), remote,
				push.WithHook(hook.NewPrePushHook(rd.HooksPath(), cr.URL)),
				push.WithAuthor(authorName, authorEmail),
				push.WithLogger(*logger),
			)
			cmd.Printf("To %s\n", cr.URL)
			container := pbar.NewContainer(cmd.OutOrStdout(), noProgress)
			defer container.Wait()
			res, err := p.Execute(container, updates)
			if err != nil {
				return err
			}
			reportUpdateStatus(cmd, updates)
			if setUpstream {
				return setBranchUpstream(cmd, relayDir, remote, res.RemoteUpdates())
			}
			return nil
		},
	}
	cmd.Flags().BoolP("force", "f", false, "force update remote branch in certain conditions.")
	cmd.Flags().BoolP("set-upstream", "u", false, "for every branch that is up to date or successfully pushed, add upstream (tracking) reference.")
	cmd.Flags().Bool("mirror", false, strings.Join([]string{
		"instead of naming each ref to push, specifies that all refs be mirrored to",
		"the remote repository. Newly created local refs will be pushed to the remote",
		"end, locally updated refs will be force updated on the remote end, and",
		"deleted refs will be removed from the remote end. This is the default if the",
		"configuration option remote.<remote>.mirror is set.",
	}, " "))
	cmd.Flags().Bool("no-progress", false, "don't display progress bars")
	cmd.Flags().Bool("dry-run", false, "show what would be pushed without updating the remote")
	return cmd
}

func getRepoToPush(c *conf.Config, args []string) (remote string, cr *conf.Remote, rem []string, err error) {
	if len(args) > 0 {
		if v, ok := c.Remote[args[0]]; ok {
			return args[0], v, args[1:], nil
		} else if v, ok := c.Remote["origin"]; ok {
			return "origin", v, args, nil
		}
		return "", nil, nil, fmt.Errorf("unrecognized repository name %q", args[0])
	} else if v, ok := c.Remote["origin"]; ok {
		return "origin", v, args, nil
	}
	return "", nil, nil, fmt.Errorf("repository name not specified")
}

// interpretDestination resolves a possibly abbreviated destination against
// the remote's refs.
func interpretDestination(remoteRefs map[string][]byte, src, dst string) (string, error) {
	if strings.HasPrefix(dst, "refs/") {
		return strings.TrimPrefix(dst, "refs/"), nil
	}
	matchedRefs := []string{}
	for r := range remoteRefs {
		if strings.HasSuffix(r, "/"+dst) {
			matchedRefs = append(matchedRefs, r)
		}
	}
	if len(matchedRefs) == 1 {
		return matchedRefs[0], nil
	} else if strings.HasPrefix(src, "refs/heads/") {
		if strings.HasPrefix(dst, "heads/") {
			return dst, nil
		}
		return "heads/" + dst, nil
	} else if strings.HasPrefix(src, "refs/tags/") {
		if strings.HasPrefix(dst, "tags/") {
			return dst, nil
		}
		return "tags/" + dst, nil
	}
	return "", fmt.Errorf("ambiguous push destination %q", dst)
}

func newUpdate(rs ref.Store, remote, src, dst string, force bool, remoteRefs map[string][]byte) (*push.Update, error) {
	var sum []byte
	srcName := strings.TrimPrefix(src, "refs/")
	if src != "" {
		var err error
		sum, err = ref.GetRef(rs, srcName)
		if err != nil {
			return nil, fmt.Errorf("unrecognized ref %q", src)
		}
	}
	dst, err := interpretDestination(remoteRefs, src, dst)
	if err != nil {
		return nil, err
	}
	var local string
	if src != "" && strings.HasPrefix(dst, ref.HeadPrefix) {
		local = ref.RemoteRef(remote, strings.TrimPrefix(dst, ref.HeadPrefix))
	}
	return &push.Update{
		Src:   srcName,
		Sum:   sum,
		Dst:   dst,
		Force: force,
		Local: local,
	}, nil
}

func refspecUpdates(rs ref.Store, cr *conf.Remote, args []string, remoteRefs map[string][]byte, remote string, force bool) ([]*push.Update, error) {
	refspecs := conf.RefspecSlice{}
	if len(args) > 0 {
		for _, s := range args {
			spec, err := conf.ParseRefspec(s)
			if err != nil {
				return nil, err
			}
			if spec.Dst() == "" {
				found := false
				for _, obj := range cr.Push {
					if obj.Src() == spec.Src() {
						spec = obj
						found = true
						break
					}
				}
				if !found {
					spec, err = conf.NewRefspec(spec.Src(), spec.Src(), spec.Force)
					if err != nil {
						return nil, err
					}
				}
			}
			refspecs = append(refspecs, spec)
		}
	} else {
		refspecs = cr.Push
	}
	if len(refspecs) == 0 {
		return nil, fmt.Errorf("no refspec specified")
	}
	updates := make([]*push.Update, 0, len(refspecs))
	for _, spec := range refspecs {
		u, err := newUpdate(rs, remote, spec.Src(), spec.Dst(), force || spec.Force, remoteRefs)
		if err != nil {
			return nil, err
		}
		updates = append(updates, u)
	}
	return updates, nil
}

// mirrorUpdates makes the remote's refs match the local refs exactly:
// missing refs are created, diverged refs are force updated and refs that
// no longer exist locally are deleted.
func mirrorUpdates(rs ref.Store, remoteRefs map[string][]byte, remote string) ([]*push.Update, error) {
	localRefs, err := ref.ListAllRefs(rs)
	if err != nil {
		return nil, err
	}
	updates := []*push.Update{}
	for name, sum := range localRefs {
		if strings.HasPrefix(name, ref.RemoteRefPrefix) {
			continue
		}
		if v, ok := remoteRefs[name]; !ok || !bytes.Equal(v, sum) {
			updates = append(updates, &push.Update{
				Src:   name,
				Sum:   sum,
				Dst:   name,
				Force: true,
			})
		}
	}
	for name := range remoteRefs {
		if _, ok := localRefs[name]; !ok {
			updates = append(updates, &push.Update{
				Dst:   name,
				Force: true,
			})
		}
	}
	sort.Slice(updates, func(i, j int) bool {
		return updates[i].Dst < updates[j].Dst
	})
	return updates, nil
}

func reportUpdateStatus(cmd *cobra.Command, updates []*push.Update) {
	for _, u := range updates {
		switch u.Status() {
		case push.StatusUpToDate:
			displayRefUpdate(cmd, '=', "[up to date]", "", u.Src, u.Dst)
		case push.StatusOK:
			if u.IsDelete() {
				displayRefUpdate(cmd, '-', "[deleted]", "", "", u.Dst)
			} else if u.OldSum() == nil {
				var summary string
				if strings.HasPrefix(u.Dst, ref.HeadPrefix) {
					summary = "[new branch]"
				} else if strings.HasPrefix(u.Dst, ref.TagPrefix) {
					summary = "[new tag]"
				} else {
					summary = "[new reference]"
				}
				displayRefUpdate(cmd, '*', summary, "", u.Src, u.Dst)
			} else if !u.FastForward() {
				displayRefUpdate(cmd, '+', quickref(u.OldSum(), u.Sum, false), "forced update", u.Src, u.Dst)
			} else {
				displayRefUpdate(cmd, ' ', quickref(u.OldSum(), u.Sum, true), "", u.Src, u.Dst)
			}
		case push.StatusNonExisting:
			displayRefUpdate(cmd, '!', "[rejected]", "remote ref does not exist", "", u.Dst)
		case push.StatusRejectedNonFastForward:
			displayRefUpdate(cmd, '!', "[rejected]", "non-fast-forward", u.Src, u.Dst)
		case push.StatusRejectedRemoteChanged:
			displayRefUpdate(cmd, '!', "[rejected]", "remote ref changed", u.Src, u.Dst)
		case push.StatusRejectedOther:
			displayRefUpdate(cmd, '!', "[remote rejected]", u.Message(), u.Src, u.Dst)
		case push.StatusAwaitingReport:
			displayRefUpdate(cmd, '!', "[remote rejected]", "remote failed to report status", u.Src, u.Dst)
		}
	}
}

func setBranchUpstream(cmd *cobra.Command, relayDir, remote string, updates map[string]*push.Update) error {
	s := conffs.NewStore(relayDir, conffs.LocalSource, "")
	c, err := s.Open()
	if err != nil {
		return err
	}
	if c.Branch == nil {
		c.Branch = map[string]*conf.Branch{}
	}
	for _, u := range updates {
		if u.Status() != push.StatusOK && u.Status() != push.StatusUpToDate {
			continue
		}
		if strings.HasPrefix(u.Src, ref.HeadPrefix) && strings.HasPrefix(u.Dst, ref.HeadPrefix) {
			branch := strings.TrimPrefix(u.Src, ref.HeadPrefix)
			c.Branch[branch] = &conf.Branch{
				Remote: remote,
				Merge:  "refs/" + u.Dst,
			}
			cmd.Printf("branch %q setup to track remote branch %q from %q\n", branch, strings.TrimPrefix(u.Dst, ref.HeadPrefix), remote)
		}
	}
	return s.Save(c)
}
