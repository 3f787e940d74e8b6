/*
Copyright 2020 IBM All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package gateway

import (
	"github.com/hyperledger/fabric-gateway/pkg/client"
	"github.com/hyperledger/fabric-gateway/pkg/hash"
	"github.com/pkg/errors"
	"github.com/trustregistry/fabric-trust-registry/pkg/msp"
	"google.golang.org/grpc"
)

// contract invokes named transactions of one chaincode
type contract interface {
	SubmitTransaction(name string, args ...string) ([]byte, error)
	EvaluateTransaction(name string, args ...string) ([]byte, error)
}

// session is a Fabric Gateway client bound to a network and contract
type session interface {
	contract
	Close() error
}

// connector binds an identity and a network to an established connection
type connector func(conn grpc.ClientConnInterface, id *msp.SigningIdentity, cfg *NetworkConfig, deadlines Deadlines) (session, error)

type fabricSession struct {
	*client.Contract
	gateway *client.Gateway
}

func (s *fabricSession) Close() error {
	return s.gateway.Close()
}

// connectFabric creates a Fabric Gateway client over conn. The client does not
// own conn; closing the session leaves the connection open.
func connectFabric(conn grpc.ClientConnInterface, id *msp.SigningIdentity, cfg *NetworkConfig, deadlines Deadlines) (session, error) {
	gw, err := client.Connect(
		id.Identity(),
		client.WithSign(id.Sign()),
		client.WithHash(hash.SHA256),
		client.WithClientConnection(conn),
		client.WithEvaluateTimeout(deadlines.Evaluate),
		client.WithEndorseTimeout(deadlines.Endorse),
		client.WithSubmitTimeout(deadlines.Submit),
		client.WithCommitStatusTimeout(deadlines.CommitStatus),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Fabric Gateway client")
	}

	network := gw.GetNetwork(cfg.ChannelName)
	return &fabricSession{Contract: network.GetContract(cfg.ChaincodeName), gateway: gw}, nil
}
