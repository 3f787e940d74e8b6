/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package serve

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"github.com/trustregistry/fabric-trust-registry/pkg/client/registry"
	"github.com/trustregistry/fabric-trust-registry/pkg/common/errors/status"
	"github.com/trustregistry/fabric-trust-registry/pkg/common/logging"
	"github.com/trustregistry/fabric-trust-registry/pkg/common/providers/core"
	"github.com/trustregistry/fabric-trust-registry/pkg/core/config"
	"github.com/trustregistry/fabric-trust-registry/pkg/core/logging/modlog"
	"github.com/trustregistry/fabric-trust-registry/pkg/gateway"
	"github.com/trustregistry/fabric-trust-registry/pkg/server/rest"
	"golang.org/x/sync/errgroup"
)

var logger = logging.NewLogger("trustregistry/serve")

var configFile string

// Cmd returns the Cobra Command for serve
func Cmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the trust registry server.",
		Long:  `Connects to the Fabric peer and serves the trust registry REST API until interrupted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 {
				return errors.New("trailing args detected")
			}
			// Parsing of the command line is done so silence cmd usage
			cmd.SilenceUsage = true

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return Run(ctx, config.FromFile(configFile))
		},
	}
	cmd.Flags().StringVarP(&configFile, "config", "c", "config/trustregistry.yaml", "Path to the configuration file")

	return cmd
}

// Run connects the gateway and serves HTTP until ctx is done. On shutdown the
// HTTP server drains before the gateway is closed.
func Run(ctx context.Context, configProvider core.ConfigProvider) error {
	backends, err := configProvider()
	if err != nil {
		return errors.WithMessage(err, "failed to load configuration")
	}

	settings, err := SettingsFromBackend(backends...)
	if err != nil {
		return err
	}

	zl, err := modlog.NewZapLogger(settings.LogFormat)
	if err != nil {
		return err
	}
	logging.Initialize(modlog.NewProvider(zl))
	defer zl.Sync() //nolint:errcheck

	reg := prom.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metricsProvider, metricsHandler := newMetricsProvider(settings.MetricsProvider, reg)

	loaded := func() ([]core.ConfigBackend, error) { return backends, nil }
	gw, err := gateway.New(gateway.WithConfig(loaded), gateway.WithMetricsProvider(metricsProvider))
	if err != nil {
		return err
	}
	if err := gw.Connect(); err != nil {
		if s, ok := status.FromError(err); ok && s.Kind.Startup() {
			return errors.WithMessage(err, "failed to load client credentials")
		}
		return errors.WithMessage(err, "failed to connect to the Fabric gateway")
	}

	client, err := registry.New(gw)
	if err != nil {
		gw.Close()
		return err
	}

	handler, err := rest.New(client, rest.WithHealthChecker(gw), rest.WithMetrics(metricsProvider, metricsHandler))
	if err != nil {
		gw.Close()
		return err
	}

	srv := &http.Server{
		Addr:              settings.Address,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Infow("HTTP server listening", "address", settings.Address)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrap(err, "HTTP server failed")
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), settings.ShutdownTimeout)
		defer cancel()
		err := srv.Shutdown(shutdownCtx)
		gw.Close()
		return err
	})

	return g.Wait()
}
