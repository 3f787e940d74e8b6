/*
Copyright 2020 IBM All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package gateway

import (
	"time"

	"github.com/trustregistry/fabric-trust-registry/pkg/common/errors/status"
)

type invocationKind string

const (
	evaluate invocationKind = "evaluate"
	submit   invocationKind = "submit"
)

// SubmitTransaction endorses the named transaction, submits it for ordering
// and waits for it to be committed. Each phase is bounded by its deadline.
// Errors are returned as *status.Status.
func (g *Gateway) SubmitTransaction(name string, args ...string) ([]byte, error) {
	return g.invoke(submit, name, args)
}

// EvaluateTransaction runs the named transaction on a peer and returns its
// result without updating the ledger. Errors are returned as *status.Status.
func (g *Gateway) EvaluateTransaction(name string, args ...string) ([]byte, error) {
	return g.invoke(evaluate, name, args)
}

func (g *Gateway) invoke(kind invocationKind, name string, args []string) ([]byte, error) {
	m := g.metrics.forEvaluate()
	if kind == submit {
		m = g.metrics.forSubmit()
	}
	labels := []string{"chaincode", g.options.Network.ChaincodeName, "Fcn", name}
	m.received.With(labels...).Add(1)

	logger.Debugw("invoking transaction", "kind", kind, "txName", name, "args", args)

	sess, err := g.acquire()
	if err != nil {
		s := classify(err)
		g.recordFailure(m, labels, s)
		logger.Warnw("transaction rejected", "kind", kind, "txName", name, "argCount", len(args), "errorKind", s.Kind, "detail", s.Message)
		return nil, s
	}
	defer g.inflight.Done()

	g.metrics.Inflight.Add(1)
	defer g.metrics.Inflight.Add(-1)

	start := time.Now()
	var result []byte
	if kind == submit {
		result, err = sess.SubmitTransaction(name, args...)
	} else {
		result, err = sess.EvaluateTransaction(name, args...)
	}
	duration := time.Since(start)
	m.duration.With(labels...).Observe(duration.Seconds())

	if err != nil {
		s := classify(err)
		g.recordFailure(m, labels, s)
		logger.Warnw("transaction failed", "kind", kind, "txName", name, "argCount", len(args), "duration", duration, "errorKind", s.Kind, "detail", s.Message)
		return nil, s
	}

	logger.Infow("transaction completed", "kind", kind, "txName", name, "argCount", len(args), "duration", duration)
	return result, nil
}

func (g *Gateway) recordFailure(m invocationMetrics, labels []string, s *status.Status) {
	failLabels := append(append([]string{}, labels...), "fail", s.Kind.String())
	if s.Timeout() {
		m.timeouts.With(failLabels...).Add(1)
		return
	}
	m.failed.With(failLabels...).Add(1)
}
