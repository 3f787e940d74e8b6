/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package rest

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/trustregistry/fabric-trust-registry/pkg/common/metrics"
)

// CorrelationIDHeader carries the id that ties a response to its log entries
const CorrelationIDHeader = "X-Correlation-ID"

type correlationIDKey struct{}

// correlationID reuses the caller's correlation id or assigns a new one, and
// echoes it on the response
func correlationID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(CorrelationIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(CorrelationIDHeader, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), correlationIDKey{}, id)))
	})
}

// CorrelationID returns the correlation id of the request
func CorrelationID(ctx context.Context) string {
	id, _ := ctx.Value(correlationIDKey{}).(string)
	return id
}

type httpMetrics struct {
	requests metrics.Counter
	duration metrics.Histogram
}

func newHTTPMetrics(p metrics.Provider) *httpMetrics {
	return &httpMetrics{
		requests: p.NewCounter(metrics.CounterOpts{
			Namespace:  "http",
			Name:       "requests_total",
			Help:       "The number of HTTP requests served.",
			LabelNames: []string{"method", "route", "code"},
		}),
		duration: p.NewHistogram(metrics.HistogramOpts{
			Namespace:  "http",
			Name:       "request_duration_seconds",
			Help:       "The time to serve an HTTP request.",
			LabelNames: []string{"method", "route"},
		}),
	}
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		logger.Infow("request received", "method", r.Method, "path", r.URL.Path,
			"remoteAddr", r.RemoteAddr, "correlationID", CorrelationID(r.Context()))

		next.ServeHTTP(ww, r)

		route := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		code := ww.Status()
		if code == 0 {
			code = http.StatusOK
		}
		duration := time.Since(start)

		s.metrics.requests.With("method", r.Method, "route", route, "code", strconv.Itoa(code)).Add(1)
		s.metrics.duration.With("method", r.Method, "route", route).Observe(duration.Seconds())

		logger.Infow("request completed", "method", r.Method, "route", route, "status", code,
			"duration", duration, "correlationID", CorrelationID(r.Context()))
	})
}
