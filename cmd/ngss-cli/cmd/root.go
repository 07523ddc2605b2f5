package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ngss-tools/ngss-mcp/internal/config"
	"github.com/ngss-tools/ngss-mcp/internal/corpus"
	"github.com/ngss-tools/ngss-mcp/internal/engine"
	"github.com/ngss-tools/ngss-mcp/internal/index"
)

var (
	configPath string
	corpusPath string
	eng        *engine.Engine
)

var rootCmd = &cobra.Command{
	Use:   "ngss-cli",
	Short: "Query NGSS performance expectations from the command line",
	Long: `ngss-cli loads an NGSS corpus and answers lookup, search, fuzzy match,
and compatibility queries against it.

The same retrieval engine backs the ngss-mcp stdio server; this tool is
for inspecting a corpus and trying queries without an MCP client.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		return initEngine()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to YAML config file")
	rootCmd.PersistentFlags().StringVar(&corpusPath, "corpus", "", "path to corpus file (overrides config)")
}

func initEngine() error {
	cfg, err := config.Load(configPath)
	if corpusPath != "" {
		if err != nil {
			cfg = config.Default()
		}
		cfg.Corpus.Path = corpusPath
	} else if err != nil {
		return err
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	loader, err := corpus.Open(cfg.Corpus.Path)
	if err != nil {
		return fmt.Errorf("open corpus: %w", err)
	}
	records, err := loader.Load(context.Background())
	if err != nil {
		return fmt.Errorf("load corpus: %w", err)
	}
	idx, err := index.Build(records)
	if err != nil {
		return fmt.Errorf("build index: %w", err)
	}

	eng = engine.New(idx, engine.Options{
		CacheCapacity: cfg.Cache.Capacity,
		CacheTTL:      cfg.Cache.TTL,
		Logger:        log,
	})
	return nil
}
