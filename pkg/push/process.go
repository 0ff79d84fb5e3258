// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Relay Authors

package push

import (
	"fmt"

	"github.com/go-logr/logr"
	"github.com/relay-vc/relay/pkg/errors"
	"github.com/relay-vc/relay/pkg/objects"
	"github.com/relay-vc/relay/pkg/pbar"
	"github.com/relay-vc/relay/pkg/ref"
)

type ProcessOption func(p *Process)

// WithHook installs a pre-push hook that can veto the whole batch.
func WithHook(h Hook) ProcessOption {
	return func(p *Process) {
		p.hook = h
	}
}

// WithAncestryChecker overrides the default commit-graph checker.
func WithAncestryChecker(c AncestryChecker) ProcessOption {
	return func(p *Process) {
		p.checker = c
	}
}

// WithAuthor sets the author recorded in tracking reflog entries.
func WithAuthor(name, email string) ProcessOption {
	return func(p *Process) {
		p.authorName = name
		p.authorEmail = email
	}
}

func WithLogger(logger logr.Logger) ProcessOption {
	return func(p *Process) {
		p.logger = logger
	}
}

// Process pushes a batch of reference updates to a single remote. One
// Process performs one operation: it opens a push connection, validates
// every update against the advertised refs, offers the surviving candidates
// to the pre-push hook, transmits them, then records local tracking moves
// for the accepted ones. It is not safe for concurrent use.
type Process struct {
	db          objects.Store
	rs          ref.Store
	transport   Transport
	remote      string
	checker     AncestryChecker
	hook        Hook
	authorName  string
	authorEmail string
	logger      logr.Logger
}

func NewProcess(db objects.Store, rs ref.Store, transport Transport, remote string, opts ...ProcessOption) *Process {
	p := &Process{
		db:        db,
		rs:        rs,
		transport: transport,
		remote:    remote,
		logger:    logr.Discard(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.checker == nil {
		p.checker = NewAncestryChecker(db)
	}
	p.logger = p.logger.WithName("PushProcess")
	return p
}

// Execute runs the whole operation. Updates that fail validation or are
// rejected by the remote keep their rejection status on the individual
// Update; Execute itself only returns an error when the operation as a
// whole cannot proceed: the remote does not accept pushes, the transport
// fails, or the pre-push hook aborts. Callers must inspect every update's
// status even when Execute returns nil.
func (p *Process) Execute(pb *pbar.Container, updates []*Update) (*Result, error) {
	byDst := map[string]*Update{}
	for _, u := range updates {
		if _, ok := byDst[u.Dst]; ok {
			return nil, fmt.Errorf("duplicate update for remote ref %q", u.Dst)
		}
		byDst[u.Dst] = u
	}

	bar := pb.NewBar(-1, "connecting", pbar.UnitNone)
	conn, err := p.transport.OpenPush()
	if err != nil {
		bar.Abort()
		return nil, err
	}
	defer conn.Close()
	bar.Done()

	bar = pb.NewBar(int64(len(updates)), "checking advertised refs", pbar.UnitNone)
	remoteRefs, err := conn.AdvertisedRefs()
	if err != nil {
		bar.Abort()
		return nil, errors.Wrap("error fetching advertised refs", err)
	}
	candidates := []*Update{}
	for _, u := range updates {
		out, err := classify(u, remoteRefs, p.checker)
		if err != nil {
			bar.Abort()
			return nil, err
		}
		u.oldSum = out.oldSum
		if out.status == StatusNotAttempted {
			u.fastForward = out.fastForward
			candidates = append(candidates, u)
		} else {
			u.status = out.status
		}
		bar.Incr()
	}
	bar.Done()
	p.logger.Info("validated updates", "total", len(updates), "candidates", len(candidates))

	if p.hook != nil {
		if err := p.hook.Run(p.remote, candidates); err != nil {
			return nil, err
		}
	}

	if len(candidates) > 0 {
		batch := map[string]*Update{}
		for _, u := range candidates {
			u.status = StatusAwaitingReport
			batch[u.Dst] = u
		}
		bar = pb.NewBar(int64(len(candidates)), "writing updates", pbar.UnitNone)
		reports, pushErr := conn.Push(bar, batch)
		p.fold(candidates, reports)
		if pushErr != nil {
			bar.Abort()
			return nil, errors.Wrap("push error", pushErr)
		}
		bar.Done()
	}

	tracking := map[string]*TrackingUpdate{}
	for _, u := range updates {
		if u.status != StatusOK || u.Local == "" {
			continue
		}
		tracking[u.Local] = p.moveTracking(u)
	}
	return &Result{
		advertised: remoteRefs,
		updates:    byDst,
		tracking:   tracking,
	}, nil
}

// fold applies connection-assigned reports. The connection is the sole
// authority over a transmitted update's outcome: a candidate with no report
// stays AwaitingReport and a non-terminal report is ignored.
func (p *Process) fold(candidates []*Update, reports map[string]*Report) {
	for _, u := range candidates {
		r, ok := reports[u.Dst]
		if !ok || r == nil {
			p.logger.Info("remote did not report status", "ref", u.Dst)
			continue
		}
		if !r.Status.Terminal() {
			continue
		}
		u.status = r.Status
		u.message = r.Message
	}
}

func (p *Process) moveTracking(u *Update) *TrackingUpdate {
	tu := &TrackingUpdate{
		LocalName:  u.Local,
		RemoteName: u.Dst,
		NewSum:     u.Sum,
	}
	if cur, err := p.rs.Get(u.Local); err == nil {
		tu.OldSum = cur
	}
	res, err := ref.MoveRef(
		p.db, p.rs, u.Local, u.Sum, nil, true,
		p.authorName, p.authorEmail, "push", fmt.Sprintf("update by push to %s", p.remote),
	)
	if err != nil {
		p.logger.Error(err, "tracking ref update failed", "ref", u.Local)
		res = ref.MoveRejected
	}
	tu.Result = res
	return tu
}
