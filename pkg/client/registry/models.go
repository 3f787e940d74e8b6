/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package registry

// GovernanceRecord describes a governance framework registered on the ledger
type GovernanceRecord struct {
	ID         string `json:"id"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
	DeletedAt  string `json:"deleted_at"`
	Identifier string `json:"identifier"`
	Name       string `json:"name"`
	Status     string `json:"status"`
}

// TrustRecord describes an entity trusted to issue a credential type under a
// governance framework
type TrustRecord struct {
	ID                     string `json:"id"`
	CreatedAt              string `json:"created_at"`
	UpdatedAt              string `json:"updated_at"`
	DeletedAt              string `json:"deleted_at"`
	Identifier             string `json:"identifier"`
	EntityType             string `json:"entity_type"`
	CredentialType         string `json:"credential_type"`
	GovernanceFrameworkURI string `json:"governance_framework_uri"`
	DIDDocument            string `json:"did_document"`
	ValidFromDT            string `json:"valid_from_dt"`
	ValidUntilDT           string `json:"valid_until_dt"`
	Status                 string `json:"status"`
	StatusDetail           string `json:"status_detail"`
}
