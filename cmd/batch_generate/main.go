package main

import (
	"context"
	"fmt"
	"os"

	"mathdrill/internal/adapter/quizgen"
	"mathdrill/internal/config"
	"mathdrill/internal/database"
	"mathdrill/internal/logger"
	"mathdrill/internal/repository"
	"mathdrill/internal/service"

	"github.com/spf13/cobra"
)

var (
	perTopic    int
	provider    string
	concurrency int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "batch_generate",
	Short: "Generate practice questions for every topic",
	Long: `batch_generate asks the configured AI provider for new practice questions
on each stored topic and saves the ones not already stored for that topic.

Examples:
  batch_generate --per-topic 3
  batch_generate --provider gemini --concurrency 2`,
	SilenceUsage: true,
	RunE:         runBatch,
}

func init() {
	rootCmd.Flags().IntVarP(&perTopic, "per-topic", "n", 2, "Generation attempts per topic")
	rootCmd.Flags().StringVarP(&provider, "provider", "p", "", "AI provider (deepseek or gemini); defaults to ai.provider")
	rootCmd.Flags().IntVarP(&concurrency, "concurrency", "c", 1, "Topics processed in parallel")
}

func runBatch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := logger.Initialize(cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()
	log := logger.Get()

	log.Info("Batch process starting up...")
	db, err := database.NewSQLXDB(cfg.DB.Driver, cfg.GetDSN())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	generator, err := quizgen.NewRouterFromConfig(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to initialize question generator: %w", err)
	}

	batchSvc := service.NewBatchService(
		repository.NewTopicDatabaseAdapter(db),
		repository.NewQuestionDatabaseAdapter(db),
		generator,
		log,
	)

	result, err := batchSvc.GenerateForAllTopics(ctx, service.BatchOptions{
		PerTopic:    perTopic,
		Provider:    provider,
		Concurrency: concurrency,
	})
	if err != nil {
		return fmt.Errorf("batch process failed: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "topics: %d, generated: %d, duplicates: %d, failed: %d\n",
		result.Topics, result.Generated, result.Duplicates, result.Failed)
	return nil
}
