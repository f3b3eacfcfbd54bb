package service

import (
	"context"
	"strings"
	"sync/atomic"
	"time"

	"mathdrill/internal/domain"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// BatchOptions controls a batch generation run
type BatchOptions struct {
	// PerTopic is the number of generation attempts per topic
	PerTopic int
	// Provider overrides the default provider when set
	Provider string
	// Concurrency bounds how many topics are processed at once
	Concurrency int
}

// BatchResult summarizes a batch generation run
type BatchResult struct {
	Topics     int
	Generated  int
	Duplicates int
	Failed     int
}

// BatchService generates practice questions for every topic
type BatchService interface {
	GenerateForAllTopics(ctx context.Context, opts BatchOptions) (*BatchResult, error)
}

type batchService struct {
	topicRepo    domain.TopicRepository
	questionRepo domain.QuestionRepository
	generator    domain.QuestionGenerator
	logger       *zap.Logger
}

// NewBatchService creates a new instance of batchService.
func NewBatchService(
	topicRepo domain.TopicRepository,
	questionRepo domain.QuestionRepository,
	generator domain.QuestionGenerator,
	logger *zap.Logger,
) BatchService {
	return &batchService{
		topicRepo:    topicRepo,
		questionRepo: questionRepo,
		generator:    generator,
		logger:       logger,
	}
}

type batchCounters struct {
	generated  atomic.Int64
	duplicates atomic.Int64
	failed     atomic.Int64
}

// GenerateForAllTopics asks the generator for new questions on each topic and
// stores the ones whose text is not already stored for that topic. Provider
// failures are counted and skipped; a missing credential aborts the run.
func (s *batchService) GenerateForAllTopics(ctx context.Context, opts BatchOptions) (*BatchResult, error) {
	provider, err := domain.ParseProviderID(opts.Provider)
	if err != nil {
		return nil, domain.NewInvalidInputError(err.Error())
	}
	if opts.PerTopic <= 0 {
		opts.PerTopic = 1
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = 1
	}

	start := time.Now()
	s.logger.Info("Starting batch question generation",
		zap.Int("per_topic", opts.PerTopic),
		zap.String("provider", string(provider)),
		zap.Int("concurrency", opts.Concurrency),
	)

	topics, err := s.topicRepo.ListTopics(ctx)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list topics", err)
	}
	if len(topics) == 0 {
		s.logger.Info("No topics found. Batch process finishing early.")
		return &BatchResult{}, nil
	}

	var counters batchCounters
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Concurrency)
	for _, topic := range topics {
		topic := topic
		g.Go(func() error {
			return s.processTopic(gctx, topic, provider, opts.PerTopic, &counters)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &BatchResult{
		Topics:     len(topics),
		Generated:  int(counters.generated.Load()),
		Duplicates: int(counters.duplicates.Load()),
		Failed:     int(counters.failed.Load()),
	}
	s.logger.Info("Batch question generation completed",
		zap.Int("topics", result.Topics),
		zap.Int("generated", result.Generated),
		zap.Int("duplicates", result.Duplicates),
		zap.Int("failed", result.Failed),
		zap.Duration("elapsed", time.Since(start)),
	)
	return result, nil
}

func (s *batchService) processTopic(ctx context.Context, topic *domain.Topic, provider domain.ProviderID, perTopic int, counters *batchCounters) error {
	log := s.logger.With(zap.String("topic_id", topic.ID), zap.String("topic_title", topic.Title))

	existing, err := s.questionRepo.ListQuestions(ctx, topic.ID)
	if err != nil {
		log.Error("Failed to fetch existing questions for topic", zap.Error(err))
		counters.failed.Add(int64(perTopic))
		return nil
	}
	seen := make(map[string]struct{}, len(existing)+perTopic)
	for _, q := range existing {
		seen[normalizeQuestion(q.Question)] = struct{}{}
	}

	for i := 0; i < perTopic; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		qa, err := s.generator.Generate(ctx, domain.GenerationRequest{
			TopicContent: topic.Content,
			Provider:     provider,
		})
		if err != nil {
			if domain.HasCode(err, domain.CodeAIConfiguration) || domain.HasCode(err, domain.CodeInvalidInput) {
				return err
			}
			log.Warn("Question generation failed, skipping", zap.Int("attempt", i+1), zap.Error(err))
			counters.failed.Add(1)
			continue
		}

		key := normalizeQuestion(qa.Question)
		if _, dup := seen[key]; dup {
			log.Info("Skipped duplicate question", zap.Int("attempt", i+1))
			counters.duplicates.Add(1)
			continue
		}

		question := domain.NewQuestion(topic.ID, *qa)
		if err := s.questionRepo.SaveQuestion(ctx, question); err != nil {
			log.Error("Failed to save generated question", zap.Error(err))
			counters.failed.Add(1)
			continue
		}
		seen[key] = struct{}{}
		counters.generated.Add(1)
		log.Info("Saved generated question", zap.String("question_id", question.ID))
	}
	return nil
}

// normalizeQuestion collapses whitespace so reformatted repeats compare equal
func normalizeQuestion(q string) string {
	return strings.Join(strings.Fields(q), " ")
}
