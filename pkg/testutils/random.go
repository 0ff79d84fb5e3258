// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Relay Authors

package testutils

import (
	"fmt"
	"math/rand"
)

const (
	lowerAlphaBytes = "abcdefghijklmnopqrstuvwxyz"
	letterBytes     = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	letterIdxBits   = 6
	letterIdxMask   = 1<<letterIdxBits - 1
)

func SecureRandomBytes(length int) []byte {
	var randomBytes = make([]byte, length)
	_, err := rand.Read(randomBytes)
	if err != nil {
		panic(err)
	}
	return randomBytes
}

// RandomSum returns a random 16-byte object sum.
func RandomSum() []byte {
	return SecureRandomBytes(16)
}

func randomString(length int, charSet string) string {
	result := make([]byte, length)
	for i := 0; i < length; {
		b := SecureRandomBytes(1)[0]
		if idx := int(b & letterIdxMask); idx < len(charSet) {
			result[i] = charSet[idx]
			i++
		}
	}
	return string(result)
}

func RandomAlphaNumericString(length int) string {
	return randomString(length, letterBytes)
}

func RandomLowerAlphaString(length int) string {
	return randomString(length, lowerAlphaBytes)
}

func RandomEmail() string {
	return fmt.Sprintf("%s@%s.com",
		RandomLowerAlphaString(8),
		RandomLowerAlphaString(8),
	)
}
