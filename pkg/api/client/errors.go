// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Relay Authors

package apiclient

import (
	"fmt"
	"io"
	"net/http"
	"strings"
)

type HTTPError struct {
	Code    int
	Message string
}

func NewHTTPError(resp *http.Response) *HTTPError {
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		b = nil
	}
	return &HTTPError{
		Code:    resp.StatusCode,
		Message: strings.TrimSpace(string(b)),
	}
}

func (err *HTTPError) Error() string {
	return fmt.Sprintf("status %d: %s", err.Code, err.Message)
}
