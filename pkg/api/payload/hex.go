// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Relay Authors

package payload

import (
	"encoding/hex"
	"fmt"
)

// Hex is a 16-byte object sum that marshals as a hex string in JSON.
type Hex [16]byte

func (x *Hex) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf(`"%x"`, *x)), nil
}

func (x *Hex) UnmarshalJSON(b []byte) error {
	if len(b) != 34 {
		return fmt.Errorf("invalid hex payload %q", b)
	}
	_, err := hex.Decode((*x)[:], b[1:len(b)-1])
	return err
}

func BytesToHex(b []byte) *Hex {
	if b == nil {
		return nil
	}
	h := &Hex{}
	copy((*h)[:], b)
	return h
}

func HexToBytes(h *Hex) []byte {
	if h == nil {
		return nil
	}
	return (*h)[:]
}
