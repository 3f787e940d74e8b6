/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package status

import (
	"regexp"
	"strings"
)

var chaincodeEnvelope = regexp.MustCompile(`chaincode response \d{3}, (.*)`)

// ChaincodeMessage returns the message produced by chaincode, stripped of the
// "chaincode response <code>, " envelope added by the peer. If msg does not
// contain the envelope it is returned unchanged.
func ChaincodeMessage(msg string) string {
	m := chaincodeEnvelope.FindStringSubmatch(msg)
	if m == nil {
		return msg
	}
	return strings.TrimSpace(m[1])
}
