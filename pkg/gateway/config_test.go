/*
Copyright 2020 IBM All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package gateway

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trustregistry/fabric-trust-registry/pkg/common/providers/core"
	"github.com/trustregistry/fabric-trust-registry/pkg/core/mocks"
)

func networkBackend() *mocks.MockConfigBackend {
	return mocks.NewMockConfigBackend(map[string]interface{}{
		"fabric.network.channel-name":       "mychannel",
		"fabric.network.chaincode-name":     "trustregistry",
		"fabric.network.msp-id":             "Org1MSP",
		"fabric.network.crypto-base-path":   "/etc/hyperledger/org1",
		"fabric.network.peer-endpoint":      "localhost:7051",
		"fabric.network.override-authority": "peer0.org1.example.com",
		"fabric.network.grpc-options": map[string]interface{}{
			"keep-alive-time": "30s",
			"fail-fast":       false,
		},
	})
}

func TestNetworkConfigFromBackend(t *testing.T) {
	cfg, err := NetworkConfigFromBackend(networkBackend())
	require.NoError(t, err)

	assert.Equal(t, "mychannel", cfg.ChannelName)
	assert.Equal(t, "trustregistry", cfg.ChaincodeName)
	assert.Equal(t, "Org1MSP", cfg.MSPID)
	assert.Equal(t, "/etc/hyperledger/org1", cfg.CryptoBasePath)
	assert.Equal(t, "localhost:7051", cfg.PeerEndpoint)
	assert.Equal(t, "peer0.org1.example.com", cfg.OverrideAuthority)
	assert.Equal(t, "30s", cfg.GRPCOptions["keep-alive-time"])
	assert.Equal(t, false, cfg.GRPCOptions["fail-fast"])
}

func TestNetworkConfigMissingKey(t *testing.T) {
	backend := networkBackend()
	delete(backend.KeyValueMap, "fabric.network.msp-id")

	_, err := NetworkConfigFromBackend(backend)
	assert.EqualError(t, err, "network config: msp-id is required")

	// override-authority is optional
	backend = networkBackend()
	delete(backend.KeyValueMap, "fabric.network.override-authority")
	_, err = NetworkConfigFromBackend(backend)
	assert.NoError(t, err)
}

func TestDeadlinesFromBackend(t *testing.T) {
	assert.Equal(t, DefaultDeadlines, DeadlinesFromBackend(networkBackend()))

	backend := mocks.NewMockConfigBackend(map[string]interface{}{
		"fabric.deadlines.evaluate":      "2s",
		"fabric.deadlines.commit-status": 90 * time.Second,
		"fabric.deadlines.submit":        "-1s",
	})
	d := DeadlinesFromBackend(backend)
	assert.Equal(t, 2*time.Second, d.Evaluate)
	assert.Equal(t, DefaultDeadlines.Endorse, d.Endorse)
	assert.Equal(t, DefaultDeadlines.Submit, d.Submit, "non-positive deadlines keep the default")
	assert.Equal(t, 90*time.Second, d.CommitStatus)
}

func TestWithConfig(t *testing.T) {
	deadlines := mocks.NewMockConfigBackend(map[string]interface{}{
		"fabric.deadlines.endorse": "20s",
	})

	gw, err := New(WithConfig(mocks.NewMockConfigProvider(networkBackend(), deadlines)))
	require.NoError(t, err)
	assert.Equal(t, "mychannel", gw.options.Network.ChannelName)
	assert.Equal(t, 20*time.Second, gw.options.Deadlines.Endorse)
	assert.Equal(t, DefaultDeadlines.Evaluate, gw.options.Deadlines.Evaluate)

	failing := func() ([]core.ConfigBackend, error) {
		return nil, errors.New("no file")
	}
	_, err = New(WithConfig(failing))
	assert.EqualError(t, err, "failed to apply config option: unable to load config: no file")
}
