// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Relay Authors

package pbar

import (
	"io"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

const (
	UnitNone int = 0
	UnitKiB  int = decor.UnitKiB
)

// Container renders one progress bar per operation phase. A quiet container
// hands out noop bars.
type Container struct {
	p     *mpb.Progress
	out   io.Writer
	quiet bool
}

func NewContainer(out io.Writer, quiet bool) *Container {
	return &Container{
		out:   out,
		quiet: quiet,
	}
}

func (c *Container) NewBar(total int64, name string, unit int) Bar {
	if c == nil || c.quiet {
		return &noopBar{}
	}
	if c.p == nil {
		c.p = mpb.New(mpb.WithOutput(c.out))
	}
	pairFmt := "%d / %d"
	if unit != UnitNone {
		pairFmt = "% .2f / % .2f"
	}
	options := []mpb.BarOption{
		mpb.PrependDecorators(
			decor.Name(name, decor.WC{W: len(name) + 1, C: decor.DidentRight}),
			decor.Counters(unit, pairFmt),
		),
		mpb.BarRemoveOnComplete(),
	}
	if total > 0 {
		options = append(options,
			mpb.AppendDecorators(decor.Percentage(decor.WC{W: 5, C: decor.DidentRight}), decor.Elapsed(decor.ET_STYLE_GO)),
		)
	} else {
		options = append(options,
			mpb.AppendDecorators(decor.Elapsed(decor.ET_STYLE_GO)),
		)
	}
	b := c.p.New(total,
		mpb.BarStyle().Lbound("[").Filler("=").Tip(">").Padding(" ").Rbound("]"),
		options...,
	)
	b.EnableTriggerComplete()
	return &bar{b: b}
}

func (c *Container) Wait() {
	if c == nil || c.p == nil {
		return
	}
	c.p.Wait()
	c.p = nil
}
