/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package status defines the classified errors returned by the trust registry
// gateway. Callers use the Kind to decide how to react to a failure and the
// Message, which preserves the ledger's wording, to match business conditions.
package status

import (
	"context"
	"fmt"

	"github.com/hyperledger/fabric-protos-go-apiv2/gateway"
	"github.com/pkg/errors"
	grpccodes "google.golang.org/grpc/codes"
	grpcstatus "google.golang.org/grpc/status"
)

// Status describes an unsuccessful operation performed by the gateway.
type Status struct {
	// Kind is the taxonomy entry of the failure
	Kind Kind
	// Code is the gRPC code of the underlying failure, OK if there was none
	Code grpccodes.Code
	// Message is the detail message with the chaincode envelope removed
	Message string
	// Details holds any structured details reported by the gateway
	Details []interface{}

	cause error
}

// New returns a Status with the given parameters
func New(kind Kind, msg string, details []interface{}) *Status {
	return &Status{Kind: kind, Code: grpccodes.OK, Message: msg, Details: details}
}

// Newf returns a Status with a formatted message
func Newf(kind Kind, format string, args ...interface{}) *Status {
	return New(kind, fmt.Sprintf(format, args...), nil)
}

// Wrap returns a Status of the given kind whose message is taken from err.
// The original error remains reachable through Unwrap.
func Wrap(kind Kind, err error) *Status {
	if err == nil {
		return nil
	}
	code := grpccodes.OK
	if st, ok := grpcstatus.FromError(err); ok {
		code = st.Code()
	}
	return &Status{Kind: kind, Code: code, Message: ChaincodeMessage(err.Error()), cause: err}
}

// FromError returns the Status carried by err if available,
// otherwise it returns nil, false.
func FromError(err error) (s *Status, ok bool) {
	if err == nil {
		return nil, false
	}
	if errors.As(err, &s) {
		return s, true
	}
	return nil, false
}

// IsKind reports whether err carries a Status of the given kind.
func IsKind(err error, kind Kind) bool {
	s, ok := FromError(err)
	return ok && s.Kind == kind
}

// NewFromGRPCError classifies an error returned by a gRPC call.
//
// A status that carries gateway error details is an endorsement rejection and
// takes its message from the first detail. Transport level codes and context
// expiry map to GatewayFailure. Anything else is a GenericFailure whose
// message is the error text.
func NewFromGRPCError(err error) *Status {
	if err == nil {
		return nil
	}

	st, isStatus := grpcstatus.FromError(err)
	if !isStatus {
		switch {
		case errors.Is(err, context.DeadlineExceeded):
			return &Status{Kind: GatewayFailure, Code: grpccodes.DeadlineExceeded, Message: err.Error(), cause: err}
		case errors.Is(err, context.Canceled):
			return &Status{Kind: GatewayFailure, Code: grpccodes.Canceled, Message: err.Error(), cause: err}
		}
		return Wrap(GenericFailure, err)
	}

	if details := errorDetails(st); len(details) > 0 {
		return NewEndorsementRejected(err, details)
	}

	if isTransportCode(st.Code()) {
		return &Status{Kind: GatewayFailure, Code: st.Code(), Message: ChaincodeMessage(st.Message()), cause: err}
	}

	return Wrap(GenericFailure, err)
}

// NewEndorsementRejected returns an EndorsementRejected status. The message is
// taken from the first detail when details are present, falling back to the
// error text.
func NewEndorsementRejected(err error, details []*gateway.ErrorDetail) *Status {
	msg := err.Error()
	if len(details) > 0 && details[0] != nil {
		msg = details[0].GetMessage()
	}

	s := &Status{Kind: EndorsementRejected, Code: grpcstatus.Code(err), Message: ChaincodeMessage(msg), cause: err}
	for _, d := range details {
		s.Details = append(s.Details, d)
	}
	return s
}

// ErrorDetails returns the gateway error details carried by err, if any.
func ErrorDetails(err error) []*gateway.ErrorDetail {
	st, ok := grpcstatus.FromError(err)
	if !ok {
		return nil
	}
	return errorDetails(st)
}

func errorDetails(st *grpcstatus.Status) []*gateway.ErrorDetail {
	var details []*gateway.ErrorDetail
	for _, d := range st.Details() {
		if detail, ok := d.(*gateway.ErrorDetail); ok {
			details = append(details, detail)
		}
	}
	return details
}

func isTransportCode(code grpccodes.Code) bool {
	switch code {
	case grpccodes.DeadlineExceeded, grpccodes.Unavailable, grpccodes.Canceled:
		return true
	default:
		return false
	}
}

// Timeout reports whether the status was produced by an expired deadline.
func (s *Status) Timeout() bool {
	return s.Kind == GatewayFailure && s.Code == grpccodes.DeadlineExceeded
}

func (s *Status) Error() string {
	return fmt.Sprintf("%s: %s", s.Kind, s.Message)
}

// Unwrap returns the error that was classified, if any
func (s *Status) Unwrap() error {
	return s.cause
}
