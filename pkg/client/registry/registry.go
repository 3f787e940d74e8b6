/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package registry maps trust registry operations onto chaincode transactions.
//
// Create operations serialize the record to JSON and submit it as the single
// argument of the transaction; the ledger replies with the record ID. Queries
// are evaluated and return the chaincode's JSON document unchanged.
package registry

import (
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/trustregistry/fabric-trust-registry/pkg/common/logging"
)

var logger = logging.NewLogger("trustregistry/client")

// Transaction names implemented by the trust registry chaincode
const (
	TxCreateGovernanceRecord          = "CreateGovernanceRecord"
	TxInitLedger                      = "InitLedger"
	TxReadGovernanceRecord            = "ReadGovernanceRecord"
	TxGetAllGovernanceRecords         = "GetAllGovernanceRecords"
	TxCreateTrustRecord               = "CreateTrustRecord"
	TxReadTrustRecord                 = "ReadTrustRecord"
	TxGetAllTrustRecords              = "GetAllTrustRecords"
	TxGetTrustRecordsByCredentialType = "GetTrustRecordsByCredentialType"
)

// Invoker submits and evaluates chaincode transactions
type Invoker interface {
	SubmitTransaction(name string, args ...string) ([]byte, error)
	EvaluateTransaction(name string, args ...string) ([]byte, error)
}

// Client invokes the trust registry chaincode. It holds no state of its own
// and is safe for concurrent use when the Invoker is.
type Client struct {
	invoker Invoker
}

// New returns a Client that invokes transactions through invoker
func New(invoker Invoker) (*Client, error) {
	if invoker == nil {
		return nil, errors.New("invoker is required")
	}
	return &Client{invoker: invoker}, nil
}

// CreateGovernanceRecord stores a new governance record and returns its ID
func (c *Client) CreateGovernanceRecord(record *GovernanceRecord) (string, error) {
	return c.submitRecord(TxCreateGovernanceRecord, record)
}

// InitLedger seeds the ledger with an initial governance record
func (c *Client) InitLedger(record *GovernanceRecord) (string, error) {
	return c.submitRecord(TxInitLedger, record)
}

// ReadGovernanceRecord returns the governance record with the given identifier
func (c *Client) ReadGovernanceRecord(identifier string) (json.RawMessage, error) {
	return c.evaluate(TxReadGovernanceRecord, identifier)
}

// GetAllGovernanceRecords returns every governance record
func (c *Client) GetAllGovernanceRecords() (json.RawMessage, error) {
	return c.evaluate(TxGetAllGovernanceRecords)
}

// CreateTrustRecord stores a new trust record and returns its ID. The
// chaincode rejects records whose governance record does not exist.
func (c *Client) CreateTrustRecord(record *TrustRecord) (string, error) {
	return c.submitRecord(TxCreateTrustRecord, record)
}

// ReadTrustRecord returns the trust record with the given ID
func (c *Client) ReadTrustRecord(id string) (json.RawMessage, error) {
	return c.evaluate(TxReadTrustRecord, id)
}

// GetAllTrustRecords returns every trust record
func (c *Client) GetAllTrustRecords() (json.RawMessage, error) {
	return c.evaluate(TxGetAllTrustRecords)
}

// GetTrustRecordsByCredentialType returns the trust records for a credential type
func (c *Client) GetTrustRecordsByCredentialType(credentialType string) (json.RawMessage, error) {
	return c.evaluate(TxGetTrustRecordsByCredentialType, credentialType)
}

func (c *Client) submitRecord(txName string, record interface{}) (string, error) {
	payload, err := json.Marshal(record)
	if err != nil {
		return "", errors.Wrapf(err, "failed to marshal %s payload", txName)
	}

	result, err := c.invoker.SubmitTransaction(txName, string(payload))
	if err != nil {
		return "", err
	}

	logger.Debugf("%s returned [%s]", txName, result)
	return string(result), nil
}

func (c *Client) evaluate(txName string, args ...string) (json.RawMessage, error) {
	result, err := c.invoker.EvaluateTransaction(txName, args...)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(result), nil
}
