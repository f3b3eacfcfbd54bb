package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"mathdrill/cmd/seed/internal/seedmodels"
	"mathdrill/internal/config"
	"mathdrill/internal/database"
	"mathdrill/internal/domain"
	"mathdrill/internal/logger"
	"mathdrill/internal/repository"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	seedFilePath string
	migrateFirst bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "seed",
	Short:        "Insert the sample topics into an empty database",
	SilenceUsage: true,
	RunE:         runSeed,
}

func init() {
	rootCmd.Flags().StringVarP(&seedFilePath, "file", "f", "configs/seed_data/initial_topics.json", "Seed data file")
	rootCmd.Flags().BoolVar(&migrateFirst, "migrate", false, "Apply pending migrations before seeding")
}

func runSeed(cmd *cobra.Command, args []string) error {
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

	log.Info("Starting initial data seeding process...")
	db, err := database.NewSQLXDB(cfg.DB.Driver, cfg.GetDSN())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if migrateFirst {
		m, err := database.NewMigrator(cfg.DB.Driver, db.DB)
		if err != nil {
			return err
		}
		if err := m.Up(); err != nil {
			return err
		}
	}

	seedTopics, err := loadSeedFile(seedFilePath)
	if err != nil {
		return err
	}
	log.Info("Loaded seed data", zap.String("path", seedFilePath), zap.Int("topics_loaded", len(seedTopics)))

	created, err := seed(ctx,
		repository.NewTopicDatabaseAdapter(db),
		repository.NewTransactionManagerAdapter(db),
		seedTopics,
	)
	if err != nil {
		return err
	}
	log.Info("Initial data seeding process completed.", zap.Int("topics_created", created))
	return nil
}

func loadSeedFile(path string) ([]seedmodels.SeedTopic, error) {
	byteValue, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file %s: %w", path, err)
	}
	var topics []seedmodels.SeedTopic
	if err := json.Unmarshal(byteValue, &topics); err != nil {
		return nil, fmt.Errorf("failed to unmarshal seed data: %w", err)
	}
	return topics, nil
}

// seed inserts all topics in one transaction, and only when no topic exists yet
func seed(ctx context.Context, repo domain.TopicRepository, tm domain.TransactionManager, seedTopics []seedmodels.SeedTopic) (int, error) {
	log := logger.Get()

	existing, err := repo.ListTopics(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count topics: %w", err)
	}
	if len(existing) > 0 {
		log.Info("Topics already present, skipping seed", zap.Int("count", len(existing)))
		return 0, nil
	}

	err = tm.WithTransaction(ctx, func(txCtx context.Context) error {
		for _, st := range seedTopics {
			topic := domain.NewTopic(st.Title, st.Content, st.Order)
			if err := topic.Validate(); err != nil {
				return fmt.Errorf("invalid seed topic %q: %w", st.Title, err)
			}
			if err := repo.CreateTopic(txCtx, topic); err != nil {
				return fmt.Errorf("failed to save topic %q: %w", st.Title, err)
			}
			log.Info("Created topic", zap.String("id", topic.ID), zap.String("title", topic.Title))
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(seedTopics), nil
}
