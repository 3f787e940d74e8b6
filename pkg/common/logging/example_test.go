/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/
package logging

import (
	"fmt"

	"github.com/trustregistry/fabric-trust-registry/pkg/core/logging/modlog"
	"go.uber.org/zap"
)

var modName = "module-xyz-example"

func Example() {

	Initialize(modlog.NewProvider(zap.NewNop()))
	//Create new logger
	logger := NewLogger(modName)

	logger.Info("log test data")

	fmt.Println("log info is completed")

	// Output: log info is completed

}

func ExampleNewLogger() {

	Initialize(modlog.NewProvider(zap.NewNop()))
	//Create new logger
	NewLogger(modName)

	fmt.Println("log is completed")

	// Output: log is completed

}

func ExampleInitialize() {

	Initialize(modlog.NewProvider(zap.NewNop()))

	fmt.Println("log is completed")

	// Output: log is completed

}

func ExampleSetLevel() {

	Initialize(modlog.NewProvider(zap.NewNop()))

	SetLevel(modName, INFO)

	fmt.Println("log is completed")

	// Output: log is completed

}

func ExampleGetLevel() {

	Initialize(modlog.NewProvider(zap.NewNop()))

	SetLevel(modName, DEBUG)

	l := GetLevel(modName)
	if l != DEBUG {
		fmt.Println("log level is not debug")
		return
	}

	fmt.Println("log is completed")

	// Output: log is completed

}

func ExampleIsEnabledFor() {

	Initialize(modlog.NewProvider(zap.NewNop()))

	isEnabled := IsEnabledFor(modName, DEBUG)

	if !isEnabled {
		fmt.Println("log level debug is not enabled")
		return
	}

	fmt.Println("log is completed")

	// Output: log is completed

}

func ExampleLogLevel() {

	Initialize(modlog.NewProvider(zap.NewNop()))

	level, err := LogLevel("debug")
	if err != nil {
		fmt.Printf("failed LogLevel: %s\n", err)
		return
	}

	if level != DEBUG {
		fmt.Println("log level is not debug")
		return
	}
	fmt.Println("log is completed")

	// Output: log is completed

}
