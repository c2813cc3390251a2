package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xaenox/tweetfiler/internal/category"
	"github.com/xaenox/tweetfiler/internal/classifier"
	"github.com/xaenox/tweetfiler/internal/loader"
	"github.com/xaenox/tweetfiler/internal/pipeline"
	"github.com/xaenox/tweetfiler/internal/storage"
	"github.com/xaenox/tweetfiler/pkg/config"
)

var (
	flagInput   string
	flagConfig  string
	flagOutput  string
	flagNoAI    bool
	flagVerbose bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tweetfiler",
		Short: "File saved social-media posts into a markdown knowledge store",
	}

	processCmd := &cobra.Command{
		Use:   "process",
		Short: "Classify and file a bookmark export",
		RunE:  runProcess,
	}
	processCmd.Flags().StringVarP(&flagInput, "input", "i", "", "bookmark export file (JSON)")
	processCmd.Flags().StringVarP(&flagConfig, "config", "c", "", "config file path")
	processCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "output directory (overrides config)")
	processCmd.Flags().BoolVar(&flagNoAI, "no-ai", false, "skip the reasoning provider, use local heuristics only")
	processCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "verbose logging")
	_ = processCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(processCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runProcess(cmd *cobra.Command, _ []string) error {
	// Initialize logger
	logger, err := newLogger()
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer logger.Sync()

	// Load configuration
	cfg, err := config.LoadConfig(flagConfig)
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err), zap.String("path", flagConfig))
	}
	if flagOutput != "" {
		cfg.Output.Dir = flagOutput
	}
	if flagNoAI {
		cfg.Processing.Disabled = true
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal("Invalid configuration", zap.Error(err))
	}

	bookmarks, err := loader.LoadBookmarks(flagInput)
	if err != nil {
		logger.Fatal("Failed to load bookmarks", zap.Error(err), zap.String("path", flagInput))
	}

	var remote classifier.Classifier
	if !cfg.Processing.Disabled {
		remote = classifier.NewGPTClassifier(
			cfg.OpenAI.APIKey,
			cfg.OpenAI.Model,
			cfg.OpenAI.MaxTokens,
			cfg.OpenAI.Temperature,
			cfg.Processing.MaxPromptChars,
			time.Duration(cfg.Processing.TimeoutSeconds)*time.Second,
			logger,
		)
	}

	registry := category.NewRegistry(cfg.CategoryRules())
	resolver := category.NewResolver(registry)
	writer := storage.NewFileWriter(cfg.Output.Dir, logger)
	archive := storage.NewArchive(filepath.Join(cfg.Output.Dir, cfg.Output.ArchiveFile), logger)

	if err := os.MkdirAll(cfg.Output.Dir, 0o755); err != nil {
		logger.Fatal("Failed to create output directory", zap.Error(err), zap.String("dir", cfg.Output.Dir))
	}

	processor := pipeline.New(remote, resolver, writer, archive, logger)
	summary, err := processor.Run(cmd.Context(), bookmarks)
	if err != nil {
		logger.Fatal("Run failed", zap.Error(err))
	}

	printSummary(summary)
	return nil
}

func newLogger() (*zap.Logger, error) {
	if flagVerbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func printSummary(summary *pipeline.Summary) {
	for _, result := range summary.Results {
		if result.FilePath != "" {
			fmt.Printf("  %s  %-10s  %s\n", result.ID, result.Category, result.FilePath)
		} else {
			fmt.Printf("  %s  %-10s  (archive only)\n", result.ID, result.Category)
		}
	}
	fmt.Printf("Processed %d of %d bookmarks (%d skipped, %d failed)\n",
		summary.Processed, summary.Total, summary.Skipped, summary.Failed)
}
