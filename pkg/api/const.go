// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Relay Authors

package api

const (
	// CTJSON is content type for JSON payload
	CTJSON = "application/json"
	// CTPackfile is content type for packfile payload
	CTPackfile = "application/x-relay-packfile"

	// CookieReceivePackSession identifies an ongoing receive-pack session
	CookieReceivePackSession = "receive-pack-session-id"

	PathInfo        = "/info/"
	PathRefs        = "/refs/"
	PathReceivePack = "/receive-pack/"
)
