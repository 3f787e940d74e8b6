/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package lookup

import (
	"os"
	"reflect"
	"testing"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trustregistry/fabric-trust-registry/pkg/common/providers/core"
	"github.com/trustregistry/fabric-trust-registry/pkg/core/mocks"
)

var backend *mocks.MockConfigBackend

type deadlines struct {
	Evaluate     time.Duration
	Endorse      time.Duration
	Submit       time.Duration
	CommitStatus time.Duration `mapstructure:"commit-status"`
}

type networkConfig struct {
	ChannelName   string `mapstructure:"channel-name"`
	ChaincodeName string `mapstructure:"chaincode-name"`
	MSPID         string `mapstructure:"msp-id"`
	PeerEndpoint  string `mapstructure:"peer-endpoint"`
	Deadlines     deadlines
}

func TestMain(m *testing.M) {
	backend = setupCustomBackend("key")
	r := m.Run()
	os.Exit(r)
}

func TestGetBool(t *testing.T) {
	//Test single backend lookup
	testLookup := New(backend)
	assert.True(t, testLookup.GetBool("key.bool.true"), "expected lookup to return true")
	assert.False(t, testLookup.GetBool("key.bool.false"), "expected lookup to return false")
	assert.False(t, testLookup.GetBool("key.bool.invalid"), "expected lookup to return false for invalid value")
	assert.False(t, testLookup.GetBool("key.bool.notexisting"), "expected lookup to return false for not existing value")

	//Test With multiple backend
	keyPrefixes := []string{"key1", "key2", "key3", "key4"}
	testLookup = New(getMultipleCustomBackends(keyPrefixes)...)

	for _, prefix := range keyPrefixes {
		assert.True(t, testLookup.GetBool(prefix+".bool.true"), "expected lookup to return true")
		assert.False(t, testLookup.GetBool(prefix+".bool.notexisting"), "expected lookup to return false for not existing value")
	}
}

func TestGetInt(t *testing.T) {
	testLookup := New(backend)
	assert.Equal(t, 5, testLookup.GetInt("key.int.positive"))
	assert.Equal(t, -5, testLookup.GetInt("key.int.negative"))
	assert.Equal(t, 0, testLookup.GetInt("key.int.invalid"))
	assert.Equal(t, 0, testLookup.GetInt("key.int.not.existing"))
}

func TestGetString(t *testing.T) {
	testLookup := New(backend)
	assert.Equal(t, "valid-string", testLookup.GetString("key.string.valid"))
	assert.Equal(t, "VaLiD-StRiNg", testLookup.GetString("key.string.valid.mixed.case"))
	assert.Equal(t, "", testLookup.GetString("key.string.empty"))
	assert.Equal(t, "", testLookup.GetString("key.string.nil"))
	assert.Equal(t, "1234", testLookup.GetString("key.string.number"))
	assert.Equal(t, "", testLookup.GetString("key.string.not existing"))

	assert.Equal(t, "valid-string", testLookup.GetStringOr("key.string.valid", "def"))
	assert.Equal(t, "def", testLookup.GetStringOr("key.string.empty", "def"))
	assert.Equal(t, "def", testLookup.GetStringOr("key.string.not existing", "def"))
}

func TestGetLowerString(t *testing.T) {
	testLookup := New(backend)
	assert.Equal(t, "valid-string", testLookup.GetLowerString("key.string.valid.upper.case"))
	assert.Equal(t, "valid-string", testLookup.GetLowerString("key.string.valid.mixed.case"))
	assert.Equal(t, "", testLookup.GetLowerString("key.string.not existing"))
}

func TestGetDuration(t *testing.T) {
	testLookup := New(backend)
	assert.Equal(t, 24*time.Hour, testLookup.GetDuration("key.duration.valid.hour"))
	assert.Equal(t, 24*time.Minute, testLookup.GetDuration("key.duration.valid.minute"))
	assert.Equal(t, 24*time.Second, testLookup.GetDuration("key.duration.valid.second"))
	assert.Equal(t, 24*time.Millisecond, testLookup.GetDuration("key.duration.valid.millisecond"))
	//default value tests
	assert.Equal(t, time.Duration(0), testLookup.GetDuration("key.duration.valid.not.existing"))
	assert.Equal(t, time.Duration(0), testLookup.GetDuration("key.duration.invalid"))
	assert.Equal(t, time.Duration(0), testLookup.GetDuration("key.duration.nil"))
	assert.Equal(t, time.Duration(0), testLookup.GetDuration("key.duration.empty"))
	//default when no time unit provided
	assert.Equal(t, 12*time.Nanosecond, testLookup.GetDuration("key.duration.valid.no.unit"))

	assert.Equal(t, 24*time.Second, testLookup.GetDurationOr("key.duration.valid.second", time.Minute))
	assert.Equal(t, time.Minute, testLookup.GetDurationOr("key.duration.invalid", time.Minute))
	assert.Equal(t, time.Minute, testLookup.GetDurationOr("key.duration.valid.not.existing", time.Minute))
}

func TestIsSet(t *testing.T) {
	testLookup := New(nil, backend)
	assert.True(t, testLookup.IsSet("key.bool.false"))
	assert.False(t, testLookup.IsSet("key.bool.notexisting"))
}

func TestUnmarshal(t *testing.T) {
	testLookup := New(backend)

	cfg := networkConfig{}
	require.NoError(t, testLookup.UnmarshalKey("fabric.network", &cfg))

	assert.Equal(t, "mychannel", cfg.ChannelName)
	assert.Equal(t, "trustregistry", cfg.ChaincodeName)
	assert.Equal(t, "Org1MSP", cfg.MSPID)
	assert.Equal(t, "localhost:7051", cfg.PeerEndpoint)
	assert.Equal(t, 7*time.Second, cfg.Deadlines.Evaluate)
	assert.Equal(t, 2*time.Minute, cfg.Deadlines.CommitStatus)

	//missing key leaves the target untouched
	untouched := networkConfig{ChannelName: "keep"}
	require.NoError(t, testLookup.UnmarshalKey("fabric.missing", &untouched))
	assert.Equal(t, "keep", untouched.ChannelName)
}

func TestUnmarshalWithMultipleBackend(t *testing.T) {
	first := mocks.NewMockConfigBackend(map[string]interface{}{"fabric.other": "x"})
	second := setupCustomBackend("key")

	testLookup := New(first, second)
	cfg := networkConfig{}
	require.NoError(t, testLookup.UnmarshalKey("fabric.network", &cfg))
	assert.Equal(t, "mychannel", cfg.ChannelName)
}

func TestUnmarshalWithHookFunc(t *testing.T) {
	testLookup := New(backend)

	//Test if custom hook func is working
	cfg := networkConfig{}
	err := testLookup.UnmarshalKey("fabric.network", &cfg, WithUnmarshalHookFunction(defaultChannel("defaultchannel")))
	require.NoError(t, err)
	assert.Equal(t, "mychannel", cfg.ChannelName)

	empty := mocks.NewMockConfigBackend(map[string]interface{}{
		"fabric.network": map[string]interface{}{"msp-id": "Org2MSP"},
	})
	cfg = networkConfig{}
	err = New(empty).UnmarshalKey("fabric.network", &cfg, WithUnmarshalHookFunction(defaultChannel("defaultchannel")))
	require.NoError(t, err)
	assert.Equal(t, "defaultchannel", cfg.ChannelName)
	assert.Equal(t, "Org2MSP", cfg.MSPID)
}

func defaultChannel(name string) mapstructure.DecodeHookFunc {
	return func(from reflect.Type, to reflect.Type, v interface{}) (interface{}, error) {
		if to != reflect.TypeOf(networkConfig{}) {
			return v, nil
		}
		data, ok := v.(map[string]interface{})
		if !ok {
			return v, nil
		}
		if _, ok := data["channel-name"]; !ok {
			data["channel-name"] = name
		}
		return data, nil
	}
}

func setupCustomBackend(keyPrefix string) *mocks.MockConfigBackend {

	backendMap := make(map[string]interface{})

	backendMap[keyPrefix+".bool.true"] = true
	backendMap[keyPrefix+".bool.false"] = false
	backendMap[keyPrefix+".bool.invalid"] = "INVALID"

	backendMap[keyPrefix+".int.positive"] = 5
	backendMap[keyPrefix+".int.negative"] = -5
	backendMap[keyPrefix+".int.invalid"] = "INVALID"

	backendMap[keyPrefix+".string.valid"] = "valid-string"
	backendMap[keyPrefix+".string.valid.mixed.case"] = "VaLiD-StRiNg"
	backendMap[keyPrefix+".string.valid.lower.case"] = "valid-string"
	backendMap[keyPrefix+".string.valid.upper.case"] = "VALID-STRING"
	backendMap[keyPrefix+".string.empty"] = ""
	backendMap[keyPrefix+".string.nil"] = nil
	backendMap[keyPrefix+".string.number"] = 1234

	backendMap[keyPrefix+".duration.valid.hour"] = "24h"
	backendMap[keyPrefix+".duration.valid.minute"] = "24m"
	backendMap[keyPrefix+".duration.valid.second"] = "24s"
	backendMap[keyPrefix+".duration.valid.millisecond"] = "24ms"
	backendMap[keyPrefix+".duration.valid.no.unit"] = "12"
	backendMap[keyPrefix+".duration.invalid"] = "24XYZ"
	backendMap[keyPrefix+".duration.nil"] = nil
	backendMap[keyPrefix+".duration.empty"] = ""

	backendMap["fabric.network"] = map[string]interface{}{
		"channel-name":   "mychannel",
		"chaincode-name": "trustregistry",
		"msp-id":         "Org1MSP",
		"peer-endpoint":  "localhost:7051",
		"deadlines": map[string]interface{}{
			"evaluate":      "7s",
			"commit-status": "2m",
		},
	}

	return mocks.NewMockConfigBackend(backendMap)
}

func getMultipleCustomBackends(keyPrefixes []string) []core.ConfigBackend {
	var backends []core.ConfigBackend
	for _, prefix := range keyPrefixes {
		backends = append(backends, setupCustomBackend(prefix))
	}
	return backends
}
