/*
Copyright 2020 IBM All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package gateway

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trustregistry/fabric-trust-registry/pkg/common/errors/status"
	"github.com/trustregistry/fabric-trust-registry/pkg/common/metrics/prometheus"
	"google.golang.org/grpc/codes"
	grpcstatus "google.golang.org/grpc/status"
)

// counterValue sums the samples of a counter family whose labels include want
func counterValue(t *testing.T, reg *prom.Registry, name string, want map[string]string) float64 {
	families, err := reg.Gather()
	require.NoError(t, err)

	var total float64
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
	metric:
		for _, m := range mf.GetMetric() {
			labels := map[string]string{}
			for _, lp := range m.GetLabel() {
				labels[lp.GetName()] = lp.GetValue()
			}
			for k, v := range want {
				if labels[k] != v {
					continue metric
				}
			}
			total += m.GetCounter().GetValue()
		}
	}
	return total
}

func TestEvaluateTransaction(t *testing.T) {
	s := &fakeSession{
		evaluate: func(name string, args ...string) ([]byte, error) {
			assert.Equal(t, "ReadGovernanceRecord", name)
			assert.Equal(t, []string{"did:example:123"}, args)
			return []byte(`{"identifier":"did:example:123"}`), nil
		},
	}
	reg := prom.NewRegistry()
	gw := newFakeGateway(t, s, WithMetricsProvider(prometheus.NewProvider(reg)))
	require.NoError(t, gw.Connect())
	defer gw.Close()

	result, err := gw.EvaluateTransaction("ReadGovernanceRecord", "did:example:123")
	require.NoError(t, err)
	assert.JSONEq(t, `{"identifier":"did:example:123"}`, string(result))

	labels := map[string]string{"chaincode": testChaincode, "Fcn": "ReadGovernanceRecord"}
	assert.Equal(t, 1.0, counterValue(t, reg, "gateway_evaluations_received", labels))
	assert.Equal(t, 0.0, counterValue(t, reg, "gateway_evaluations_failed", labels))
	assert.Equal(t, 0.0, counterValue(t, reg, "gateway_submissions_received", nil))
}

func TestSubmitTransaction(t *testing.T) {
	s := &fakeSession{
		submit: func(name string, args ...string) ([]byte, error) {
			return []byte("gov-1"), nil
		},
	}
	reg := prom.NewRegistry()
	gw := newFakeGateway(t, s, WithMetricsProvider(prometheus.NewProvider(reg)))
	require.NoError(t, gw.Connect())
	defer gw.Close()

	result, err := gw.SubmitTransaction("CreateGovernanceRecord", `{"identifier":"did:example:123"}`)
	require.NoError(t, err)
	assert.Equal(t, "gov-1", string(result))
	assert.Equal(t, 1.0, counterValue(t, reg, "gateway_submissions_received", map[string]string{"Fcn": "CreateGovernanceRecord"}))
}

func TestInvocationFailures(t *testing.T) {
	rejected, err := grpcstatus.New(codes.Aborted, "failed to endorse transaction").WithDetails(
		testErrorDetail("chaincode response 500, the governance record did:example:1 already exists"))
	require.NoError(t, err)

	tests := []struct {
		name    string
		err     error
		kind    status.Kind
		message string
		timeout bool
	}{
		{
			name:    "endorsement detail",
			err:     rejected.Err(),
			kind:    status.EndorsementRejected,
			message: "the governance record did:example:1 already exists",
		},
		{
			name:    "deadline",
			err:     grpcstatus.Error(codes.DeadlineExceeded, "context deadline exceeded"),
			kind:    status.GatewayFailure,
			message: "context deadline exceeded",
			timeout: true,
		},
		{
			name:    "context deadline",
			err:     errors.Wrap(context.DeadlineExceeded, "evaluate"),
			kind:    status.GatewayFailure,
			message: "evaluate: context deadline exceeded",
			timeout: true,
		},
		{
			name:    "unavailable",
			err:     grpcstatus.Error(codes.Unavailable, "connection refused"),
			kind:    status.GatewayFailure,
			message: "connection refused",
		},
		{
			name:    "other",
			err:     errors.New("chaincode response 500, trust record 7 does not exist"),
			kind:    status.GenericFailure,
			message: "trust record 7 does not exist",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := &fakeSession{
				evaluate: func(name string, args ...string) ([]byte, error) {
					return nil, tc.err
				},
			}
			reg := prom.NewRegistry()
			gw := newFakeGateway(t, s, WithMetricsProvider(prometheus.NewProvider(reg)))
			require.NoError(t, gw.Connect())
			defer gw.Close()

			result, err := gw.EvaluateTransaction("ReadTrustRecord", "7")
			assert.Nil(t, result)

			st, ok := status.FromError(err)
			require.True(t, ok, "expected a classified error, got %T", err)
			assert.Equal(t, tc.kind, st.Kind)
			assert.Equal(t, tc.message, st.Message)
			assert.Equal(t, tc.timeout, st.Timeout())

			labels := map[string]string{"Fcn": "ReadTrustRecord", "fail": tc.kind.String()}
			if tc.timeout {
				assert.Equal(t, 1.0, counterValue(t, reg, "gateway_evaluation_timeouts", labels))
				assert.Equal(t, 0.0, counterValue(t, reg, "gateway_evaluations_failed", nil))
			} else {
				assert.Equal(t, 1.0, counterValue(t, reg, "gateway_evaluations_failed", labels))
				assert.Equal(t, 0.0, counterValue(t, reg, "gateway_evaluation_timeouts", nil))
			}
		})
	}
}

func TestInvocationRejectedWhenNotReady(t *testing.T) {
	reg := prom.NewRegistry()
	gw := newFakeGateway(t, &fakeSession{}, WithMetricsProvider(prometheus.NewProvider(reg)))

	_, err := gw.SubmitTransaction("InitLedger")
	assert.True(t, errors.Is(err, ErrNotReady))
	assert.Equal(t, 1.0, counterValue(t, reg, "gateway_submissions_failed",
		map[string]string{"Fcn": "InitLedger", "fail": status.GatewayFailure.String()}))
}
