/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package rest exposes the trust registry over HTTP.
package rest

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/pkg/errors"
	"github.com/trustregistry/fabric-trust-registry/pkg/client/registry"
	"github.com/trustregistry/fabric-trust-registry/pkg/common/logging"
	"github.com/trustregistry/fabric-trust-registry/pkg/common/metrics"
	"github.com/trustregistry/fabric-trust-registry/pkg/common/metrics/disabled"
)

var logger = logging.NewLogger("trustregistry/rest")

// BasePath prefixes every registry route
const BasePath = "/api/trustregistry"

// Registry performs the trust registry operations
type Registry interface {
	CreateGovernanceRecord(record *registry.GovernanceRecord) (string, error)
	InitLedger(record *registry.GovernanceRecord) (string, error)
	ReadGovernanceRecord(identifier string) (json.RawMessage, error)
	GetAllGovernanceRecords() (json.RawMessage, error)
	CreateTrustRecord(record *registry.TrustRecord) (string, error)
	ReadTrustRecord(id string) (json.RawMessage, error)
	GetAllTrustRecords() (json.RawMessage, error)
	GetTrustRecordsByCredentialType(credentialType string) (json.RawMessage, error)
}

// HealthChecker reports whether the ledger connection accepts requests
type HealthChecker interface {
	Ready() bool
}

// Server routes HTTP requests to the registry
type Server struct {
	registry       Registry
	health         HealthChecker
	metricsHandler http.Handler
	provider       metrics.Provider
	metrics        *httpMetrics
	router         chi.Router
}

// Option configures the Server
type Option func(*Server)

// WithHealthChecker serves /healthz from h. Without it /healthz always
// reports healthy.
func WithHealthChecker(h HealthChecker) Option {
	return func(s *Server) {
		s.health = h
	}
}

// WithMetrics records request metrics through p and serves handler on /metrics
func WithMetrics(p metrics.Provider, handler http.Handler) Option {
	return func(s *Server) {
		s.provider = p
		s.metricsHandler = handler
	}
}

// New returns a Server backed by reg
func New(reg Registry, opts ...Option) (*Server, error) {
	if reg == nil {
		return nil, errors.New("registry is required")
	}

	s := &Server{registry: reg, provider: &disabled.Provider{}}
	for _, opt := range opts {
		opt(s)
	}
	s.metrics = newHTTPMetrics(s.provider)
	s.router = s.routes()

	return s, nil
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(correlationID)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Get("/healthz", s.healthz)
	if s.metricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", s.metricsHandler)
	}

	r.Route(BasePath, func(api chi.Router) {
		api.Post("/governance", s.createGovernanceRecord)
		api.Post("/initledger", s.initLedger)
		api.Get("/governance/{identifier}", s.readGovernanceRecord)
		api.Get("/governance", s.getAllGovernanceRecords)
		api.Post("/trust", s.createTrustRecord)
		api.Get("/trust/{id}", s.readTrustRecord)
		api.Get("/trust", s.getAllTrustRecords)
		api.Get("/trust/credential_type/{credentialType}", s.getTrustRecordsByCredentialType)
	})

	return r
}

func (s *Server) healthz(w http.ResponseWriter, r *http.Request) {
	if s.health != nil && !s.health.Ready() {
		writeJSON(w, r, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}
