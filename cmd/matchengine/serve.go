package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ananya/intern-match/internal/config"
	"github.com/ananya/intern-match/internal/engine"
	"github.com/ananya/intern-match/internal/logger"
	"github.com/ananya/intern-match/internal/retrieval"
	"github.com/ananya/intern-match/internal/scorer"
	"github.com/ananya/intern-match/internal/server"
	"github.com/ananya/intern-match/internal/store"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the matching API server",
	Long:  `Start an HTTP server exposing the match, health and readiness endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}

	log, err := logger.New(cfg.LogJSON, cfg.Debug)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	st, err := store.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer st.Close()

	eng, err := engine.New(engine.Deps{
		Store:       st,
		Embedder:    retrieval.NewEmbedClient(cfg.EmbeddingURL, cfg.CallTimeout),
		Searcher:    retrieval.NewSearchClient(cfg.RetrievalURL, cfg.CallTimeout),
		Scorer:      scorer.NewClient(cfg.ScorerURL, cfg.CallTimeout),
		Policy:      cfg.Policy(),
		Search:      cfg.SearchOptions(),
		ResultLimit: cfg.ResultLimit,
		Logger:      log,
	})
	if err != nil {
		return fmt.Errorf("failed to create engine: %w", err)
	}

	srv := server.New(server.Config{Port: cfg.Port}, eng, log)
	return srv.Start()
}
