/*
Copyright 2020 IBM All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package gateway

import (
	"github.com/hyperledger/fabric-gateway/pkg/client"
	"github.com/pkg/errors"
	"github.com/trustregistry/fabric-trust-registry/pkg/common/errors/status"
)

// classify maps an invocation error onto the status taxonomy. The typed
// errors of the Fabric Gateway client identify the failed phase and are
// checked before the gRPC code, except that an endorsement failure without
// error details is a transport failure when its code says so.
func classify(err error) *status.Status {
	if err == nil {
		return nil
	}
	if s, ok := status.FromError(err); ok {
		return s
	}

	var endorseErr *client.EndorseError
	if errors.As(err, &endorseErr) {
		details := status.ErrorDetails(err)
		if len(details) == 0 {
			// endorse deadline or lost connection, not a chaincode response
			if s := status.NewFromGRPCError(err); s.Kind == status.GatewayFailure {
				return s
			}
		}
		return status.NewEndorsementRejected(err, details)
	}

	var submitErr *client.SubmitError
	var commitStatusErr *client.CommitStatusError
	if errors.As(err, &submitErr) || errors.As(err, &commitStatusErr) {
		return status.Wrap(status.GatewayFailure, err)
	}

	var commitErr *client.CommitError
	if errors.As(err, &commitErr) {
		return status.Wrap(status.GenericFailure, err)
	}

	return status.NewFromGRPCError(err)
}
