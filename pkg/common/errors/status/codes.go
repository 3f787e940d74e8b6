/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package status

import "strconv"

// Kind identifies the class of a failure
type Kind int32

const (
	// CredentialNotFound is returned at startup when a credential path is
	// missing or is not of the expected kind
	CredentialNotFound Kind = iota

	// CredentialParseError is returned at startup when a credential directory
	// is empty or ambiguous, or a credential cannot be parsed
	CredentialParseError

	// EndorsementRejected is returned when endorsing peers declined the
	// transaction, typically because the chaincode returned an error
	EndorsementRejected

	// GatewayFailure is returned for transport and protocol failures, including
	// expired deadlines and calls made while the gateway is not ready
	GatewayFailure

	// GenericFailure is returned for any other failure
	GenericFailure
)

// KindName maps the kinds in this package to human-readable strings
var KindName = map[int32]string{
	0: "CREDENTIAL_NOT_FOUND",
	1: "CREDENTIAL_PARSE_ERROR",
	2: "ENDORSEMENT_REJECTED",
	3: "GATEWAY_FAILURE",
	4: "GENERIC_FAILURE",
}

// ToInt32 cast to int32
func (k Kind) ToInt32() int32 {
	return int32(k)
}

// String representation of the kind
func (k Kind) String() string {
	if s, ok := KindName[k.ToInt32()]; ok {
		return s
	}
	return strconv.Itoa(int(k))
}

// Startup reports whether the kind is raised only while initializing
func (k Kind) Startup() bool {
	return k == CredentialNotFound || k == CredentialParseError
}
