/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package configcmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trustregistry/fabric-trust-registry/pkg/core/config"
	"gopkg.in/yaml.v2"
)

const sampleConfig = `
client:
  logging:
    level: info
fabric:
  network:
    channel-name: mychannel
    chaincode-name: trustregistry
    msp-id: Org1MSP
    crypto-base-path: /etc/hyperledger/org1
    peer-endpoint: localhost:7051
    override-authority: peer0.org1.example.com
  deadlines:
    evaluate: 3s
`

func TestPrint(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Print(&out, config.FromRaw([]byte(sampleConfig), "yaml")))

	var printed map[string]interface{}
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &printed))

	network, ok := printed["network"].(map[interface{}]interface{})
	require.True(t, ok, "output: %s", out.String())
	assert.Equal(t, "mychannel", network["channel-name"])
	assert.Equal(t, "localhost:7051", network["peer-endpoint"])

	assert.Contains(t, out.String(), "evaluate: 3s")
	assert.Contains(t, out.String(), "commit-status: 1m0s")
	assert.Contains(t, printed, "settings")
}

func TestPrintInvalid(t *testing.T) {
	var out bytes.Buffer
	err := Print(&out, config.FromRaw([]byte("fabric:\n  network:\n    channel-name: mychannel\n"), "yaml"))
	assert.Error(t, err)
	assert.Empty(t, out.String())
}
