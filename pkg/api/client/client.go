// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Relay Authors

package apiclient

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"

	"github.com/go-logr/logr"
	"golang.org/x/net/publicsuffix"

	"github.com/relay-vc/relay/pkg/api"
	"github.com/relay-vc/relay/pkg/api/payload"
)

type ClientOption func(c *Client)

func WithHeader(header http.Header) ClientOption {
	return func(c *Client) {
		c.requestOptions = append(c.requestOptions, WithRequestHeader(header))
	}
}

func WithAuthorization(token string) ClientOption {
	return func(c *Client) {
		c.requestOptions = append(c.requestOptions, WithRequestAuthorization(token))
	}
}

func WithTransport(transport http.RoundTripper) ClientOption {
	return func(c *Client) {
		c.client.Transport = transport
	}
}

type RequestOption func(r *http.Request)

func WithRequestHeader(header http.Header) RequestOption {
	return func(r *http.Request) {
		for k, sl := range header {
			for _, v := range sl {
				r.Header.Add(k, v)
			}
		}
	}
}

func WithRequestAuthorization(token string) RequestOption {
	return func(r *http.Request) {
		if token != "" {
			r.Header.Set("Authorization", "Bearer "+token)
		}
	}
}

// Client talks to a single remote repository over HTTP. The cookie jar
// keeps receive-pack exchanges pinned to their server-side session.
type Client struct {
	client *http.Client
	// origin is the scheme + host name of the remote
	origin         string
	requestOptions []RequestOption
	logger         logr.Logger
}

func NewClient(origin string, logger logr.Logger, opts ...ClientOption) (*Client, error) {
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, err
	}
	c := &Client{
		client: &http.Client{
			Jar: jar,
		},
		origin: origin,
		logger: logger.WithName("Client"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *Client) Origin() string {
	return c.origin
}

func parseJSONPayload(resp *http.Response, obj interface{}) error {
	defer resp.Body.Close()
	if ct := resp.Header.Get("Content-Type"); !strings.Contains(ct, api.CTJSON) {
		return fmt.Errorf("unrecognized content type: %q", ct)
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, obj)
}

func (c *Client) Request(method, path string, body io.Reader, headers map[string]string, opts ...RequestOption) (*http.Response, error) {
	req, err := http.NewRequest(method, c.origin+path, body)
	if err != nil {
		return nil, err
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	for _, opt := range c.requestOptions {
		opt(req)
	}
	for _, opt := range opts {
		opt(req)
	}
	c.logger.V(1).Info("request", "method", method, "url", req.URL)
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		return nil, NewHTTPError(resp)
	}
	return resp, nil
}

// GetRepoInfo fetches the remote's capability document.
func (c *Client) GetRepoInfo(opts ...RequestOption) (*payload.RepoInfo, error) {
	resp, err := c.Request(http.MethodGet, api.PathInfo, nil, nil, opts...)
	if err != nil {
		return nil, err
	}
	info := &payload.RepoInfo{}
	if err = parseJSONPayload(resp, info); err != nil {
		return nil, err
	}
	return info, nil
}

// GetRefs fetches the remote's refs, optionally restricted by prefixes.
func (c *Client) GetRefs(prefixes, notPrefixes []string, opts ...RequestOption) (map[string][]byte, error) {
	path := api.PathRefs
	v := url.Values{}
	for _, s := range prefixes {
		v.Add("prefix", s)
	}
	for _, s := range notPrefixes {
		v.Add("notprefix", s)
	}
	if len(v) > 0 {
		path = fmt.Sprintf("%s?%s", path, v.Encode())
	}
	resp, err := c.Request(http.MethodGet, path, nil, nil, opts...)
	if err != nil {
		return nil, err
	}
	rr := &payload.GetRefsResponse{}
	if err = parseJSONPayload(resp, rr); err != nil {
		return nil, err
	}
	m := map[string][]byte{}
	for k, v := range rr.Refs {
		m[k] = (*v)[:]
	}
	return m, nil
}

// PostUpdatesToReceivePack opens a receive-pack exchange by sending the
// requested ref updates.
func (c *Client) PostUpdatesToReceivePack(updates map[string]*payload.Update, opts ...RequestOption) (*http.Response, error) {
	b, err := json.Marshal(&payload.ReceivePackRequest{
		Updates: updates,
	})
	if err != nil {
		return nil, err
	}
	return c.Request(http.MethodPost, api.PathReceivePack, strings.NewReader(string(b)), map[string]string{
		"Content-Type": api.CTJSON,
	}, opts...)
}
