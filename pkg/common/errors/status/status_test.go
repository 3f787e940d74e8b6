/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package status

import (
	"context"
	"fmt"
	"testing"

	"github.com/hyperledger/fabric-protos-go-apiv2/gateway"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	grpccodes "google.golang.org/grpc/codes"
	grpcstatus "google.golang.org/grpc/status"
)

func endorsementError(t *testing.T, msg string, details ...string) error {
	st := grpcstatus.New(grpccodes.Aborted, msg)
	for i, d := range details {
		var err error
		st, err = st.WithDetails(&gateway.ErrorDetail{
			Address: fmt.Sprintf("peer%d.org1.example.com:7051", i),
			MspId:   "Org1MSP",
			Message: d,
		})
		require.NoError(t, err)
	}
	return st.Err()
}

func TestStatusConstructors(t *testing.T) {
	s := New(GatewayFailure, "test", nil)
	assert.NotNil(t, s, "Expected status to be constructed")
	assert.Equal(t, GatewayFailure, s.Kind)
	assert.Equal(t, grpccodes.OK, s.Code)
	assert.Equal(t, "test", s.Message, "Expected test message")

	s = Newf(CredentialNotFound, "missing %s", "/tmp/x")
	assert.Equal(t, "missing /tmp/x", s.Message)

	assert.Nil(t, Wrap(GenericFailure, nil))
	cause := fmt.Errorf("chaincode response 500, asset already exists")
	s = Wrap(GenericFailure, cause)
	assert.Equal(t, "asset already exists", s.Message)
	assert.Equal(t, cause, errors.Cause(s.Unwrap()))
}

func TestFromError(t *testing.T) {
	s := New(EndorsementRejected, "test", nil)
	derivedStatus, ok := FromError(s)
	assert.True(t, ok)
	assert.Equal(t, s, derivedStatus)

	// Test unwrap
	s1 := errors.Wrap(s, "test")
	derivedStatus, ok = FromError(s1)
	assert.True(t, ok)
	assert.Equal(t, s, derivedStatus)
	assert.True(t, IsKind(s1, EndorsementRejected))
	assert.False(t, IsKind(s1, GatewayFailure))

	_, ok = FromError(nil)
	assert.False(t, ok)

	_, ok = FromError(fmt.Errorf("Test"))
	assert.False(t, ok)
}

func TestStatusToError(t *testing.T) {
	s := New(GenericFailure, "test", nil)
	assert.Equal(t, "GENERIC_FAILURE: test", s.Error())
	assert.Equal(t, "ENDORSEMENT_REJECTED", EndorsementRejected.String())
	assert.Equal(t, "42", Kind(42).String())
	assert.True(t, CredentialParseError.Startup())
	assert.False(t, GenericFailure.Startup())
}

func TestChaincodeMessage(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"chaincode response 500, asset already exists", "asset already exists"},
		{"evaluate call to endorser returned error: chaincode response 500, the governance record gov-1 does not exist", "the governance record gov-1 does not exist"},
		{"chaincode response 404,   padded  ", "padded"},
		{"asset already exists", "asset already exists"},
		{"chaincode response 5000 no comma", "chaincode response 5000 no comma"},
		{"", ""},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, ChaincodeMessage(tc.in), "input %q", tc.in)
	}
}

func TestNewFromGRPCErrorEndorsement(t *testing.T) {
	err := endorsementError(t, "failed to endorse transaction",
		"chaincode response 500, governance record not found",
		"chaincode response 500, something else")

	s := NewFromGRPCError(err)
	require.NotNil(t, s)
	assert.Equal(t, EndorsementRejected, s.Kind)
	assert.Equal(t, grpccodes.Aborted, s.Code)
	assert.Equal(t, "governance record not found", s.Message)
	require.Len(t, s.Details, 2)
	assert.Equal(t, "Org1MSP", s.Details[0].(*gateway.ErrorDetail).GetMspId())
	assert.Len(t, ErrorDetails(err), 2)
}

func TestNewEndorsementRejectedFallback(t *testing.T) {
	err := fmt.Errorf("chaincode response 500, the asset gov-1 does not exist")
	s := NewEndorsementRejected(err, nil)
	assert.Equal(t, EndorsementRejected, s.Kind)
	assert.Equal(t, "the asset gov-1 does not exist", s.Message)
	assert.Empty(t, s.Details)
}

func TestNewFromGRPCErrorTransport(t *testing.T) {
	for _, code := range []grpccodes.Code{grpccodes.DeadlineExceeded, grpccodes.Unavailable, grpccodes.Canceled} {
		s := NewFromGRPCError(grpcstatus.Error(code, "connection lost"))
		require.NotNil(t, s)
		assert.Equal(t, GatewayFailure, s.Kind, "code %s", code)
		assert.Equal(t, code, s.Code)
		assert.Equal(t, "connection lost", s.Message)
	}

	s := NewFromGRPCError(grpcstatus.Error(grpccodes.DeadlineExceeded, "timeout"))
	assert.True(t, s.Timeout())

	s = NewFromGRPCError(errors.Wrap(context.DeadlineExceeded, "waiting for commit status"))
	assert.Equal(t, GatewayFailure, s.Kind)
	assert.True(t, s.Timeout())
}

func TestNewFromGRPCErrorGeneric(t *testing.T) {
	assert.Nil(t, NewFromGRPCError(nil))

	s := NewFromGRPCError(fmt.Errorf("chaincode response 500, asset already exists"))
	assert.Equal(t, GenericFailure, s.Kind)
	assert.Equal(t, "asset already exists", s.Message)

	s = NewFromGRPCError(fmt.Errorf("unexpected payload"))
	assert.Equal(t, GenericFailure, s.Kind)
	assert.Equal(t, "unexpected payload", s.Message)

	s = NewFromGRPCError(grpcstatus.Error(grpccodes.Internal, "chaincode response 500, the trust record tr-9 does not exist"))
	assert.Equal(t, GenericFailure, s.Kind)
	assert.Equal(t, "the trust record tr-9 does not exist", s.Message)
	assert.False(t, s.Timeout())
}
