package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/katalvlaran/sharesheet/internal/logging"
	"github.com/katalvlaran/sharesheet/internal/simulator"
	"github.com/katalvlaran/sharesheet/metrics"
	"github.com/katalvlaran/sharesheet/sheet"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

type runFlags struct {
	configPath  string
	metricsAddr string
	logLevel    string
	logFormat   string
	cfg         simulator.Config
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "simulator",
		Short:         "Concurrent load generator for a shared sheet",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRunCmd())

	return root
}

func newRunCmd() *cobra.Command {
	f := &runFlags{cfg: simulator.DefaultConfig()}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a simulation and print a report",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSimulation(cmd, f)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.configPath, "config", "", "YAML config file; flags set explicitly override it")
	fl.StringVar(&f.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address during the run")
	fl.StringVar(&f.logLevel, "log-level", "info", "debug, info, warn or error")
	fl.StringVar(&f.logFormat, "log-format", "text", "text or json")
	fl.IntVar(&f.cfg.Rows, "rows", f.cfg.Rows, "initial rows")
	fl.IntVar(&f.cfg.Cols, "cols", f.cfg.Cols, "initial columns")
	fl.IntVar(&f.cfg.Users, "users", f.cfg.Users, "concurrent users")
	fl.IntVar(&f.cfg.Operations, "ops", f.cfg.Operations, "operations per user")
	fl.DurationVar(&f.cfg.Sleep, "sleep", f.cfg.Sleep, "pause between a user's operations")
	fl.IntVar(&f.cfg.UserLimit, "user-limit", f.cfg.UserLimit, "sheet sizing hint, <= 0 for unlimited")
	fl.Int64Var(&f.cfg.Seed, "seed", f.cfg.Seed, "random seed")
	fl.IntVar(&f.cfg.MaxRows, "max-rows", f.cfg.MaxRows, "stop adding rows at this size, 0 for no cap")
	fl.IntVar(&f.cfg.MaxCols, "max-cols", f.cfg.MaxCols, "stop adding columns at this size, 0 for no cap")
	fl.StringVar(&f.cfg.SavePath, "save", f.cfg.SavePath, "save the final sheet to this file")

	return cmd
}

// resolveConfig layers explicitly set flags over the YAML file, if any.
func resolveConfig(cmd *cobra.Command, f *runFlags) (simulator.Config, error) {
	if f.configPath == "" {
		return f.cfg, nil
	}
	cfg, err := simulator.LoadConfig(f.configPath)
	if err != nil {
		return cfg, err
	}

	fl := cmd.Flags()
	overrides := map[string]func(){
		"rows":       func() { cfg.Rows = f.cfg.Rows },
		"cols":       func() { cfg.Cols = f.cfg.Cols },
		"users":      func() { cfg.Users = f.cfg.Users },
		"ops":        func() { cfg.Operations = f.cfg.Operations },
		"sleep":      func() { cfg.Sleep = f.cfg.Sleep },
		"user-limit": func() { cfg.UserLimit = f.cfg.UserLimit },
		"seed":       func() { cfg.Seed = f.cfg.Seed },
		"max-rows":   func() { cfg.MaxRows = f.cfg.MaxRows },
		"max-cols":   func() { cfg.MaxCols = f.cfg.MaxCols },
		"save":       func() { cfg.SavePath = f.cfg.SavePath },
	}
	for name, apply := range overrides {
		if fl.Changed(name) {
			apply()
		}
	}

	return cfg, nil
}

func runSimulation(cmd *cobra.Command, f *runFlags) error {
	level, err := logging.ParseLevel(f.logLevel)
	if err != nil {
		return err
	}
	if err := logging.Init(logging.Config{Level: level, Format: f.logFormat, Writer: cmd.ErrOrStderr()}); err != nil {
		return err
	}
	defer logging.Close()

	cfg, err := resolveConfig(cmd, f)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	rec := metrics.NewRecorder(reg)
	s, err := sheet.New(cfg.Rows, cfg.Cols,
		sheet.WithUserLimit(cfg.UserLimit),
		sheet.WithObserver(rec),
		sheet.WithLogger(logging.WithComponent("sheet")))
	if err != nil {
		return err
	}

	if f.metricsAddr != "" {
		srv := serveMetrics(f.metricsAddr, reg)
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			_ = srv.Shutdown(ctx)
		}()
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	rep, runErr := simulator.Run(ctx, cfg, s, logging.WithComponent("simulator"))
	if runErr != nil {
		logging.WithError(runErr).Error("simulation failed", "run_id", rep.RunID)
	}
	if _, err := rep.WriteTo(cmd.OutOrStdout()); err != nil {
		return err
	}

	return runErr
}

func serveMetrics(addr string, reg *prometheus.Registry) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	log := logging.WithComponent("metrics")
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("metrics server stopped", "error", err)
		}
	}()
	log.Info("serving metrics", "addr", addr)

	return srv
}
