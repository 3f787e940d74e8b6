/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package urlutil

import (
	"strings"
)

var schemes = []string{"grpcs://", "grpc://"}

// ToAddress trims the GRPC protocol prefix as it is not needed by the GRPC client.
// If no known prefix is found, the url is returned unchanged
func ToAddress(url string) string {
	lower := strings.ToLower(url)
	for _, scheme := range schemes {
		if strings.HasPrefix(lower, scheme) {
			return url[len(scheme):]
		}
	}
	return url
}

//AttemptSecured reports whether a secured connection must be established:
//true for grpcs:// and https:// URLs and for URLs without a protocol
func AttemptSecured(url string) bool {
	lower := strings.ToLower(url)
	if strings.HasPrefix(lower, "grpcs://") || strings.HasPrefix(lower, "https://") {
		return true
	}
	return !HasProtocol(url)
}

//HasProtocol is a utility function which verifies if protocol is provided in URL
func HasProtocol(url string) bool {
	return strings.Contains(url, "://")
}
