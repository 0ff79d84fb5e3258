// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Relay Authors

package errors

import (
	"errors"
	"fmt"
)

type Error struct {
	msg string
	err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.msg, e.err)
}

func (e *Error) Unwrap() error {
	return e.err
}

func Wrap(msg string, err error) *Error {
	return &Error{msg, err}
}

func Unwrap(err error) error {
	return errors.Unwrap(err)
}

// Contains returns true if err or any error wrapped within it has a message
// equal to v. v can be either a string or an error.
func Contains(err error, v interface{}) bool {
	var s string
	if v == nil {
		return err == nil
	}
	if err == nil {
		return false
	}
	switch t := v.(type) {
	case string:
		s = t
	case error:
		s = t.Error()
	default:
		return false
	}
	for {
		if err.Error() == s {
			return true
		}
		err = Unwrap(err)
		if err == nil {
			return false
		}
	}
}
