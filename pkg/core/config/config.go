/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package config

import (
	"bytes"
	"io"
	"strings"

	"github.com/spf13/viper"

	"github.com/pkg/errors"
	"github.com/trustregistry/fabric-trust-registry/pkg/common/logging"

	"github.com/trustregistry/fabric-trust-registry/pkg/common/providers/core"
)

var logger = logging.NewLogger("trustregistry/config")

const (
	cmdRoot = "TRUSTREGISTRY"

	// LogLevelKey is the config key holding the default log level
	LogLevelKey = "client.logging.level"
	// LogFormatKey is the config key holding the log encoding (json or console)
	LogFormatKey = "client.logging.format"
)

type options struct {
	envPrefix    string
	templatePath string
}

// Option configures the package.
type Option func(opts *options) error

// FromReader loads configuration from in.
// configType can be "json" or "yaml".
func FromReader(in io.Reader, configType string, opts ...Option) core.ConfigProvider {
	return func() ([]core.ConfigBackend, error) {
		return initFromReader(in, configType, opts...)
	}
}

// FromFile reads from named config file
func FromFile(name string, opts ...Option) core.ConfigProvider {
	return func() ([]core.ConfigBackend, error) {
		backend, err := newBackend(opts...)
		if err != nil {
			return nil, err
		}

		if name == "" {
			return nil, errors.New("filename is required")
		}

		backend.configViper.SetConfigFile(name)

		// If a config file is found, read it in.
		err = backend.configViper.MergeInConfig()
		if err != nil {
			return nil, errors.Wrapf(err, "loading config file failed: %s", name)
		}

		if err := setLogLevel(backend); err != nil {
			return nil, err
		}

		return []core.ConfigBackend{backend}, nil
	}
}

// FromRaw will initialize the configs from a byte array
func FromRaw(configBytes []byte, configType string, opts ...Option) core.ConfigProvider {
	return func() ([]core.ConfigBackend, error) {
		buf := bytes.NewBuffer(configBytes)
		return initFromReader(buf, configType, opts...)
	}
}

// FromEnv builds a backend from environment variables only
func FromEnv(opts ...Option) core.ConfigProvider {
	return func() ([]core.ConfigBackend, error) {
		backend, err := newBackend(opts...)
		if err != nil {
			return nil, err
		}
		if err := setLogLevel(backend); err != nil {
			return nil, err
		}
		return []core.ConfigBackend{backend}, nil
	}
}

func initFromReader(in io.Reader, configType string, opts ...Option) ([]core.ConfigBackend, error) {
	backend, err := newBackend(opts...)
	if err != nil {
		return nil, err
	}

	if configType == "" {
		return nil, errors.New("empty config type")
	}

	// read config from bytes array, but must set ConfigType
	// for viper to properly unmarshal the bytes array
	backend.configViper.SetConfigType(configType)
	err = backend.configViper.MergeConfig(in)
	if err != nil {
		return nil, errors.Wrap(err, "reading config failed")
	}
	if err := setLogLevel(backend); err != nil {
		return nil, err
	}

	return []core.ConfigBackend{backend}, nil
}

// WithEnvPrefix defines the prefix for environment variable overrides.
// See viper SetEnvPrefix for more information.
func WithEnvPrefix(prefix string) Option {
	return func(opts *options) error {
		if prefix == "" {
			return errors.New("env prefix must not be empty")
		}
		opts.envPrefix = prefix
		return nil
	}
}

// WithTemplatePath sets a directory holding a default config.yaml that is
// read before the primary source. ${VAR} references are expanded.
func WithTemplatePath(path string) Option {
	return func(opts *options) error {
		opts.templatePath = path
		return nil
	}
}

func newBackend(opts ...Option) (*defConfigBackend, error) {
	o := options{
		envPrefix: cmdRoot,
	}

	for _, option := range opts {
		err := option(&o)
		if err != nil {
			return nil, errors.WithMessage(err, "Error in options passed to create new config backend")
		}
	}

	v := newViper(o.envPrefix)

	//default backend for config
	backend := &defConfigBackend{
		configViper: v,
		opts:        o,
	}

	err := backend.loadTemplateConfig()
	if err != nil {
		return nil, err
	}

	return backend, nil
}

func newViper(cmdRootPrefix string) *viper.Viper {
	myViper := viper.New()
	myViper.SetEnvPrefix(cmdRootPrefix)
	myViper.AutomaticEnv()
	// fabric.network.peer-endpoint -> TRUSTREGISTRY_FABRIC_NETWORK_PEER_ENDPOINT
	replacer := strings.NewReplacer(".", "_", "-", "_")
	myViper.SetEnvKeyReplacer(replacer)
	return myViper
}

// setLogLevel sets the default log level from client.logging.level
func setLogLevel(backend core.ConfigBackend) error {
	loggingLevelString, _ := backend.Lookup(LogLevelKey)
	logLevel := logging.INFO
	if loggingLevelString != nil {
		var err error
		logLevel, err = logging.LogLevel(loggingLevelString.(string))
		if err != nil {
			return errors.WithMessage(err, "invalid "+LogLevelKey)
		}
	}

	logging.SetLevel("", logLevel)
	return nil
}
