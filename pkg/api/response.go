// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Relay Authors

package api

import (
	"encoding/json"
	"net/http"
)

func writeJSON(rw http.ResponseWriter, v interface{}) {
	rw.Header().Set("Content-Type", CTJSON)
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	if _, err = rw.Write(b); err != nil {
		panic(err)
	}
}
