package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/ngss-tools/ngss-mcp/internal/config"
	"github.com/ngss-tools/ngss-mcp/internal/corpus"
	"github.com/ngss-tools/ngss-mcp/internal/engine"
	"github.com/ngss-tools/ngss-mcp/internal/index"
	"github.com/ngss-tools/ngss-mcp/internal/mcp"
	"github.com/ngss-tools/ngss-mcp/internal/metrics"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("NGSS MCP Server\n")
		fmt.Printf("Version: %s\n", version)
		fmt.Printf("Build Time: %s\n", buildTime)
		fmt.Printf("Build Mode: %s\n", corpus.BuildMode)
		fmt.Printf("SQLite Driver: %s\n", corpus.DriverName)
		os.Exit(0)
	}

	// Log to stderr; stdout is reserved for the MCP protocol.
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.Logging.SlogLevel(),
	}))
	slog.SetDefault(log)

	log.Info("ngss-mcp starting",
		"version", version,
		"build_mode", corpus.BuildMode,
		"driver", corpus.DriverName,
		"corpus", cfg.Corpus.Path)

	if err := run(cfg, log); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

func run(cfg config.Config, log *slog.Logger) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	loader, err := corpus.Open(cfg.Corpus.Path)
	if err != nil {
		return fmt.Errorf("open corpus: %w", err)
	}
	records, err := loader.Load(ctx)
	if err != nil {
		return fmt.Errorf("load corpus: %w", err)
	}
	idx, err := index.Build(records)
	if err != nil {
		return fmt.Errorf("build index: %w", err)
	}
	log.Info("corpus indexed", "records", idx.Len(), "terms", idx.TermCount())

	promReg := prometheus.NewRegistry()
	promReg.MustRegister(collectors.NewGoCollector())
	reg := metrics.New(promReg)

	eng := engine.New(idx, engine.Options{
		CacheCapacity: cfg.Cache.Capacity,
		CacheTTL:      cfg.Cache.TTL,
		Logger:        log,
		Metrics:       reg,
	})

	// The metrics endpoint is optional; stdio serving does not depend on it.
	if cfg.Metrics.Addr != "" {
		go serveMetrics(ctx, cfg.Metrics.Addr, promReg, log)
	}

	srv := mcp.NewServer(eng, mcp.Options{
		DefaultLimit: cfg.Search.DefaultLimit,
		Logger:       log,
	})

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		log.Info("mcp server ready, listening on stdio")
		errChan <- srv.Serve(ctx)
	}()

	select {
	case sig := <-sigChan:
		log.Info("shutting down", "signal", sig.String())
		cancel()
		return nil
	case err := <-errChan:
		return err
	}
}

func serveMetrics(ctx context.Context, addr string, g prometheus.Gatherer, log *slog.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler(g))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Info("metrics endpoint listening", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("metrics endpoint failed", "error", err)
	}
}
