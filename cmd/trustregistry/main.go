/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/trustregistry/fabric-trust-registry/cmd/trustregistry/cobra/configcmd"
	"github.com/trustregistry/fabric-trust-registry/cmd/trustregistry/cobra/serve"
	"github.com/trustregistry/fabric-trust-registry/cmd/trustregistry/cobra/version"
)

// The main command describes the service and defaults to printing the help message.
var mainCmd = &cobra.Command{
	Use:   "trustregistry",
	Short: "Trust registry backed by a Hyperledger Fabric ledger.",
	Long:  `Serves governance and trust records stored on a Hyperledger Fabric ledger over HTTP.`,
}

func main() {
	mainCmd.AddCommand(serve.Cmd())
	mainCmd.AddCommand(configcmd.Cmd())
	mainCmd.AddCommand(version.Cmd())

	// On failure Cobra prints the usage message and error string, so we only
	// need to exit with a non-0 status
	if mainCmd.Execute() != nil {
		os.Exit(1)
	}
}
