/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package configcmd prints the effective configuration of the server.
package configcmd

import (
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/trustregistry/fabric-trust-registry/pkg/common/providers/core"
	"github.com/trustregistry/fabric-trust-registry/pkg/core/config"
	"github.com/trustregistry/fabric-trust-registry/pkg/gateway"
	"gopkg.in/yaml.v2"
)

var configFile string

// Cmd returns the Cobra Command for config
func Cmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration.",
		Long:  `Loads the configuration file, applies environment overrides, validates the network section and prints the result as YAML.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 {
				return errors.New("trailing args detected")
			}
			// Parsing of the command line is done so silence cmd usage
			cmd.SilenceUsage = true
			return Print(cmd.OutOrStdout(), config.FromFile(configFile))
		},
	}
	cmd.Flags().StringVarP(&configFile, "config", "c", "config/trustregistry.yaml", "Path to the configuration file")

	return cmd
}

type effectiveConfig struct {
	Network   *gateway.NetworkConfig `yaml:"network"`
	Deadlines gateway.Deadlines      `yaml:"deadlines"`
	Settings  map[string]interface{} `yaml:"settings,omitempty"`
}

// Print writes the network section, the resolved deadlines and all other
// settings known to the configuration backends
func Print(out io.Writer, configProvider core.ConfigProvider) error {
	backends, err := configProvider()
	if err != nil {
		return errors.WithMessage(err, "failed to load configuration")
	}

	network, err := gateway.NetworkConfigFromBackend(backends...)
	if err != nil {
		return err
	}

	cfg := effectiveConfig{
		Network:   network,
		Deadlines: gateway.DeadlinesFromBackend(backends...),
	}
	for _, b := range backends {
		sp, ok := b.(core.SettingsProvider)
		if !ok {
			continue
		}
		if cfg.Settings == nil {
			cfg.Settings = map[string]interface{}{}
		}
		for k, v := range sp.AllSettings() {
			if _, exists := cfg.Settings[k]; !exists {
				cfg.Settings[k] = v
			}
		}
	}

	raw, err := yaml.Marshal(&cfg)
	if err != nil {
		return errors.Wrap(err, "failed to marshal configuration")
	}
	_, err = out.Write(raw)
	return err
}
