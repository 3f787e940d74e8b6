/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package mocks

import "github.com/trustregistry/fabric-trust-registry/pkg/common/providers/core"

//MockConfigBackend mocks config backend for unit tests
type MockConfigBackend struct {
	//KeyValueMap map to override CustomBackend key-values.
	KeyValueMap map[string]interface{}
}

//NewMockConfigBackend returns a backend serving the given keys
func NewMockConfigBackend(kv map[string]interface{}) *MockConfigBackend {
	return &MockConfigBackend{KeyValueMap: kv}
}

//Lookup returns value for given key; lookup options are ignored
func (b *MockConfigBackend) Lookup(key string, opts ...core.LookupOption) (interface{}, bool) {
	v, ok := b.KeyValueMap[key]
	return v, ok
}

//NewMockConfigProvider wraps the given backends in a config provider
func NewMockConfigProvider(backends ...core.ConfigBackend) core.ConfigProvider {
	return func() ([]core.ConfigBackend, error) {
		return backends, nil
	}
}
