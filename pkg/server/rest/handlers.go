/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package rest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/trustregistry/fabric-trust-registry/pkg/client/registry"
	"github.com/trustregistry/fabric-trust-registry/pkg/common/errors/status"
	"google.golang.org/grpc/codes"
)

const maxBodyBytes = 1 << 20

func (s *Server) createGovernanceRecord(w http.ResponseWriter, r *http.Request) {
	record := &registry.GovernanceRecord{}
	if !decodeBody(w, r, record) {
		return
	}
	s.submit(w, r, registry.TxCreateGovernanceRecord, func() (string, error) {
		return s.registry.CreateGovernanceRecord(record)
	})
}

func (s *Server) initLedger(w http.ResponseWriter, r *http.Request) {
	record := &registry.GovernanceRecord{}
	if !decodeBody(w, r, record) {
		return
	}
	s.submit(w, r, registry.TxInitLedger, func() (string, error) {
		return s.registry.InitLedger(record)
	})
}

func (s *Server) createTrustRecord(w http.ResponseWriter, r *http.Request) {
	record := &registry.TrustRecord{}
	if !decodeBody(w, r, record) {
		return
	}
	s.submit(w, r, registry.TxCreateTrustRecord, func() (string, error) {
		return s.registry.CreateTrustRecord(record)
	})
}

func (s *Server) readGovernanceRecord(w http.ResponseWriter, r *http.Request) {
	identifier := chi.URLParam(r, "identifier")
	s.evaluate(w, r, registry.TxReadGovernanceRecord, func() (json.RawMessage, error) {
		return s.registry.ReadGovernanceRecord(identifier)
	})
}

func (s *Server) getAllGovernanceRecords(w http.ResponseWriter, r *http.Request) {
	s.evaluate(w, r, registry.TxGetAllGovernanceRecords, s.registry.GetAllGovernanceRecords)
}

func (s *Server) readTrustRecord(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s.evaluate(w, r, registry.TxReadTrustRecord, func() (json.RawMessage, error) {
		return s.registry.ReadTrustRecord(id)
	})
}

func (s *Server) getAllTrustRecords(w http.ResponseWriter, r *http.Request) {
	s.evaluate(w, r, registry.TxGetAllTrustRecords, s.registry.GetAllTrustRecords)
}

func (s *Server) getTrustRecordsByCredentialType(w http.ResponseWriter, r *http.Request) {
	credentialType := chi.URLParam(r, "credentialType")
	s.evaluate(w, r, registry.TxGetTrustRecordsByCredentialType, func() (json.RawMessage, error) {
		return s.registry.GetTrustRecordsByCredentialType(credentialType)
	})
}

func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(v); err != nil {
		writeError(w, r, http.StatusBadRequest, "Malformed request body", err.Error())
		return false
	}
	return true
}

func (s *Server) submit(w http.ResponseWriter, r *http.Request, txName string, fn func() (string, error)) {
	result, err := fn()
	if err != nil {
		code, message := submitFailure(txName, err)
		writeError(w, r, code, message, errorDetail(err))
		return
	}

	logger.Infow("transaction completed", "txName", txName, "correlationID", CorrelationID(r.Context()))

	msg := fmt.Sprintf("%s completed successfully with ID: %s", txName, result)
	if txName == registry.TxCreateGovernanceRecord || txName == registry.TxCreateTrustRecord {
		msg = fmt.Sprintf("%s created successfully for ID: %s", txName, result)
	}
	writeJSON(w, r, http.StatusOK, &SuccessResponse{Result: "Success", Message: msg})
}

func (s *Server) evaluate(w http.ResponseWriter, r *http.Request, txName string, fn func() (json.RawMessage, error)) {
	result, err := fn()
	if err != nil {
		code, message := evaluateFailure(txName, err)
		writeError(w, r, code, message, errorDetail(err))
		return
	}

	logger.Infow("transaction completed", "txName", txName, "correlationID", CorrelationID(r.Context()))
	writeRaw(w, r, http.StatusOK, result)
}

// submitFailure maps a failed submit to a response status and message
func submitFailure(txName string, err error) (int, string) {
	detail := errorDetail(err)
	switch {
	case status.IsKind(err, status.GatewayFailure):
		if interrupted(err) {
			return http.StatusInternalServerError, fmt.Sprintf("Error processing transaction '%s' due to timeout or interruption", txName)
		}
		return http.StatusInternalServerError, fmt.Sprintf("Error processing transaction '%s' due to a gateway failure", txName)
	case txName == registry.TxCreateGovernanceRecord && strings.Contains(detail, "already exists"):
		return http.StatusConflict, "Governance record already exists"
	case txName == registry.TxCreateTrustRecord && strings.Contains(detail, "governance record not found"):
		return http.StatusBadRequest, "Trust record validation failed: Associated governance record not found"
	default:
		return http.StatusBadRequest, fmt.Sprintf("Invalid data or chaincode error for transaction '%s'", txName)
	}
}

// evaluateFailure maps a failed query to a response status and message
func evaluateFailure(txName string, err error) (int, string) {
	isRead := txName == registry.TxReadGovernanceRecord || txName == registry.TxReadTrustRecord
	if isRead && strings.Contains(errorDetail(err), "does not exist") {
		return http.StatusNotFound, "Record not found"
	}
	return http.StatusInternalServerError, fmt.Sprintf("Error processing transaction '%s'", txName)
}

func interrupted(err error) bool {
	s, ok := status.FromError(err)
	return ok && (s.Timeout() || s.Code == codes.Canceled)
}

func errorDetail(err error) string {
	if s, ok := status.FromError(err); ok {
		return s.Message
	}
	return status.ChaincodeMessage(err.Error())
}
