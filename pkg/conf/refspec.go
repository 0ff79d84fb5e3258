// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Relay Authors

package conf

import (
	"fmt"
	"strings"
)

// Refspec maps a local (source) reference to a remote (destination)
// reference. A leading "+" permits non-fast-forward updates. An empty source
// (":dst") means delete the destination.
type Refspec struct {
	Force bool
	src   string
	dst   string
}

func NewRefspec(src, dst string, force bool) (*Refspec, error) {
	if src == "" && dst == "" {
		return nil, fmt.Errorf("empty refspec")
	}
	return &Refspec{src: src, dst: dst, Force: force}, nil
}

func (s *Refspec) Src() string {
	return s.src
}

func (s *Refspec) Dst() string {
	return s.dst
}

func (s *Refspec) String() string {
	sl := []string{}
	if s.Force {
		sl = append(sl, "+")
	}
	sl = append(sl, s.src)
	if s.dst != "" {
		sl = append(sl, ":", s.dst)
	}
	return strings.Join(sl, "")
}

func (s *Refspec) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Refspec) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		return fmt.Errorf("empty refspec")
	}
	off := 0
	if text[0] == '+' {
		s.Force = true
		off = 1
	}
	rem := string(text[off:])
	if i := strings.IndexByte(rem, ':'); i != -1 {
		s.src = rem[:i]
		s.dst = rem[i+1:]
	} else {
		s.src = rem
	}
	if s.src == "" && s.dst == "" {
		return fmt.Errorf("empty refspec")
	}
	return nil
}

func ParseRefspec(text string) (*Refspec, error) {
	rs := &Refspec{}
	if err := rs.UnmarshalText([]byte(text)); err != nil {
		return nil, err
	}
	return rs, nil
}

func MustParseRefspec(text string) *Refspec {
	rs, err := ParseRefspec(text)
	if err != nil {
		panic(err.Error())
	}
	return rs
}

type RefspecSlice []*Refspec

func (sl RefspecSlice) Len() int {
	return len(sl)
}

func (sl RefspecSlice) Less(i, j int) bool {
	return sl[i].String() < sl[j].String()
}

func (sl RefspecSlice) Swap(i, j int) {
	sl[i], sl[j] = sl[j], sl[i]
}
