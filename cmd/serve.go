package cmd

import (
	"context"
	"errors"
	"fmt"
	"golang-wifid/internal/adapter/infrastructure/ctrl"
	"golang-wifid/internal/adapter/infrastructure/file"
	"golang-wifid/internal/adapter/infrastructure/hostapd"
	"golang-wifid/internal/adapter/infrastructure/linkctl"
	"golang-wifid/internal/adapter/infrastructure/network"
	"golang-wifid/internal/adapter/infrastructure/process"
	"golang-wifid/internal/adapter/infrastructure/supplicant"
	"golang-wifid/internal/adapter/infrastructure/vendor"
	"golang-wifid/internal/adapter/lifecycle"
	"golang-wifid/internal/adapter/requester"
	"golang-wifid/internal/pkg/config"
	"golang-wifid/internal/pkg/logging"
	"golang-wifid/internal/pkg/metrics"
	"golang-wifid/internal/pkg/version"
	"golang-wifid/internal/types"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var (
	configFlag string
)

const (
	requestRetryDelay      = 10 * time.Second
	metricsShutdownTimeout = 5 * time.Second
)

// createInterfaceManager wires the infrastructure adapters into the lifecycle manager
func createInterfaceManager(cfg *config.Config, collector *metrics.Collector) (*lifecycle.Manager, *network.ObserverAdapter, error) {
	logger := logging.GetLogger()

	// Create shared infrastructure adapters
	networkMgr := network.NewManagerAdapter()
	fileMgr := file.NewManagerAdapter()
	runner := process.NewRunnerAdapter()

	for _, dir := range []string{cfg.Lifecycle.RuntimeDir, cfg.Hostapd.ConfigDir} {
		if dir == "" {
			continue
		}
		if err := fileMgr.EnsureDir(dir, 0755); err != nil {
			return nil, nil, err
		}
	}
	dialer := ctrl.NewDialerAdapter(cfg.Lifecycle.RuntimeDir, cfg.Lifecycle.ControlTimeout)

	prefixes, err := cfg.Hardware.Prefixes()
	if err != nil {
		return nil, nil, err
	}
	hal := vendor.NewHalAdapter(vendor.Options{
		Phy:            cfg.Hardware.Phy,
		IwBinary:       cfg.Hardware.IwBinary,
		NamePrefixes:   prefixes,
		CommandTimeout: cfg.Lifecycle.ControlTimeout,
	}, runner, networkMgr, fileMgr)

	linkCtl := linkctl.NewControlAdapter(cfg.Hardware.Phy, networkMgr, fileMgr)

	observer := network.NewObserverAdapter(networkMgr)
	observer.SetSubscriptionLostHandler(linkCtl.Fail)

	client := supplicant.NewClientAdapter(supplicant.Options{
		Binary:     cfg.Supplicant.Binary,
		GlobalCtrl: cfg.Supplicant.GlobalCtrl,
		CtrlDir:    cfg.Supplicant.CtrlDir,
		Driver:     cfg.Supplicant.Driver,
		ExtraArgs:  cfg.Supplicant.ExtraArgs,
	}, runner, dialer, fileMgr)

	accessPoint := hostapd.NewAPAdapter(hostapd.Options{
		Binary:      cfg.Hostapd.Binary,
		GlobalCtrl:  cfg.Hostapd.GlobalCtrl,
		CtrlDir:     cfg.Hostapd.CtrlDir,
		ConfigDir:   cfg.Hostapd.ConfigDir,
		Driver:      cfg.Hostapd.Driver,
		ExtraConfig: cfg.Hostapd.ExtraConfig,
		ExtraArgs:   cfg.Hostapd.ExtraArgs,
	}, runner, dialer, fileMgr)

	table, err := buildTable(cfg.Hardware)
	if err != nil {
		return nil, nil, err
	}

	manager, err := lifecycle.NewManager(lifecycle.Config{
		DaemonConnectRetries:  cfg.Lifecycle.DaemonConnectRetries,
		DaemonConnectInterval: cfg.Lifecycle.DaemonConnectInterval,
		DestroyTimeout:        cfg.Lifecycle.DestroyTimeout,
		CallbackTimeout:       cfg.Lifecycle.CallbackTimeout,
		SelfRecoveryInterface: cfg.Lifecycle.SelfRecoveryInterface,
	}, lifecycle.Peers{
		Vendor:      hal,
		LinkControl: linkCtl,
		Client:      client,
		AccessPoint: accessPoint,
		Observer:    observer,
	}, table, collector)
	if err != nil {
		return nil, nil, err
	}

	logger.WithField("phy", cfg.Hardware.Phy).Info("Created interface lifecycle manager")
	return manager, observer, nil
}

// createRequests converts the configured interfaces into requester requests
func createRequests(cfg *config.Config) ([]requester.Request, error) {
	requests := make([]requester.Request, 0, len(cfg.Interfaces))
	for i, ifaceConfig := range cfg.Interfaces {
		kind, err := ifaceConfig.Kind()
		if err != nil {
			return nil, fmt.Errorf("interfaces[%d]: %w", i, err)
		}
		band, err := types.ParseBand(ifaceConfig.Band)
		if err != nil {
			return nil, fmt.Errorf("interfaces[%d]: %w", i, err)
		}
		requests = append(requests, requester.Request{
			Kind:      kind,
			Band:      band,
			Bridged:   ifaceConfig.Bridged,
			Requestor: ifaceConfig.Requestor,
		})
	}
	return requests, nil
}

// serveMetrics serves the Prometheus endpoint until ctx is cancelled
func serveMetrics(ctx context.Context, cfg config.MetricsConfig, collector *metrics.Collector) error {
	mux := http.NewServeMux()
	mux.Handle(cfg.Path, collector.Handler())
	server := &http.Server{Addr: cfg.Listen, Handler: mux}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), metricsShutdownTimeout)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	logging.WithComponent("metrics").WithField("listen", cfg.Listen).Info("Serving metrics")
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("metrics server: %w", err)
	}
	return nil
}

type eventLogger struct{}

func (eventLogger) OnInterfaceLinkStateChanged(name string, isLinkUp bool) {
	logging.WithComponentAndInterface("events", name).WithField("up", isLinkUp).Info("Link state changed")
}

func (eventLogger) OnInterfaceAdded(name string) {
	logging.WithComponentAndInterface("events", name).Info("Interface added")
}

func (eventLogger) OnRadioModeChanged(mode types.RadioMode, band types.Band) {
	logging.WithComponent("events").WithFields(map[string]interface{}{
		"mode": mode.String(),
		"band": band.String(),
	}).Info("Radio mode changed")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the interface lifecycle manager and keep the configured interfaces up",
	Run: func(cmd *cobra.Command, args []string) {
		// Load and validate configuration
		cfg, err := config.Load(configFlag)
		if err != nil {
			fmt.Printf("Config error: %v\n", err)
			return
		}

		if err := cfg.Validate(); err != nil {
			fmt.Printf("Config validation error: %v\n", err)
			return
		}

		// Initialize logging
		logging.InitLogger(cfg.Logging)

		logger := logging.GetLogger()
		logger.WithFields(map[string]interface{}{
			"config_file": configFlag,
			"version":     version.GetGitInfo().String(),
		}).Info("Starting daemon")

		requests, err := createRequests(cfg)
		if err != nil {
			logger.WithError(err).Error("Failed to create interface requests")
			return
		}

		collector := metrics.NewCollector()
		manager, observer, err := createInterfaceManager(cfg, collector)
		if err != nil {
			logger.WithError(err).Error("Failed to create interface lifecycle manager")
			return
		}

		if err := observer.Start(); err != nil {
			logger.WithError(err).Error("Failed to start link observer")
			return
		}
		defer observer.Stop()

		manager.RegisterRadioModeListener(eventLogger{})
		if cfg.Lifecycle.SelfRecoveryInterface != "" {
			manager.SetInterfaceEventCallback(eventLogger{})
		}

		// Create context for graceful shutdown
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		g, gctx := errgroup.WithContext(ctx)

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(sigChan)
		g.Go(func() error {
			select {
			case sig := <-sigChan:
				logger.WithField("signal", sig.String()).Info("Received shutdown signal")
				manager.TeardownAllInterfaces()
				cancel()
			case <-gctx.Done():
			}
			return nil
		})

		g.Go(func() error {
			return manager.Run(gctx)
		})

		if cfg.Metrics.Listen != "" {
			g.Go(func() error {
				return serveMetrics(gctx, cfg.Metrics, collector)
			})
		}

		logger.WithField("interface_count", len(requests)).Info("Requesting configured interfaces")
		g.Go(func() error {
			return requester.New(manager, requests, requestRetryDelay).Run(gctx)
		})

		if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
			logger.WithError(err).Error("Daemon stopped with error")
			return
		}
		logger.Info("Daemon stopped")
	},
}

func init() {
	serveCmd.Flags().StringVarP(&configFlag, "config", "f", "", "Path to config file (YAML)")
	if err := serveCmd.MarkFlagRequired("config"); err != nil {
		panic(err) // This should never happen during initialization
	}
	rootCmd.AddCommand(serveCmd)
}
