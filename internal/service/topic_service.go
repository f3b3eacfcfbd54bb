package service

import (
	"context"
	"strings"
	"time"

	"mathdrill/internal/cache"
	"mathdrill/internal/domain"
	"mathdrill/internal/dto"
	"mathdrill/internal/logger"

	"go.uber.org/zap"
)

// TopicService defines the interface for topic operations
type TopicService interface {
	CreateTopic(ctx context.Context, req *dto.CreateTopicRequest) (*dto.TopicResponse, error)
	GetTopic(ctx context.Context, id string) (*dto.TopicResponse, error)
	ListTopics(ctx context.Context) ([]*dto.TopicResponse, error)
	UpdateTopic(ctx context.Context, id string, req *dto.UpdateTopicRequest) (*dto.TopicResponse, error)
	// DeleteTopic removes the topic and its questions
	DeleteTopic(ctx context.Context, id string) error
}

type topicService struct {
	repo         domain.TopicRepository
	questionRepo domain.QuestionRepository
	txManager    domain.TransactionManager
	cache        *topicCache
}

// NewTopicService creates a topic service. cache may be nil.
func NewTopicService(
	repo domain.TopicRepository,
	questionRepo domain.QuestionRepository,
	txManager domain.TransactionManager,
	c domain.Cache,
	cacheTTL time.Duration,
) TopicService {
	return &topicService{
		repo:         repo,
		questionRepo: questionRepo,
		txManager:    txManager,
		cache:        newTopicCache(c, cacheTTL),
	}
}

func (s *topicService) CreateTopic(ctx context.Context, req *dto.CreateTopicRequest) (*dto.TopicResponse, error) {
	order := 0
	if req.Order != nil {
		order = *req.Order
	}
	topic := domain.NewTopic(strings.TrimSpace(req.Title), req.Content, order)
	if err := topic.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.CreateTopic(ctx, topic); err != nil {
		return nil, domain.NewInternalError("Failed to create topic", err)
	}
	s.cache.invalidate(ctx)

	logger.Get().Info("Topic created", zap.String("topic_id", topic.ID))
	return dto.NewTopicResponse(topic), nil
}

func (s *topicService) GetTopic(ctx context.Context, id string) (*dto.TopicResponse, error) {
	return getOrLoad(ctx, s.cache, cache.TopicKey(id), func(ctx context.Context) (*dto.TopicResponse, error) {
		topic, err := s.repo.GetTopicByID(ctx, id)
		if err != nil {
			return nil, domain.NewInternalError("Failed to get topic", err)
		}
		if topic == nil {
			return nil, domain.NewTopicNotFoundError(id)
		}
		return dto.NewTopicResponse(topic), nil
	})
}

func (s *topicService) ListTopics(ctx context.Context) ([]*dto.TopicResponse, error) {
	return getOrLoad(ctx, s.cache, cache.TopicListKey(), func(ctx context.Context) ([]*dto.TopicResponse, error) {
		topics, err := s.repo.ListTopics(ctx)
		if err != nil {
			return nil, domain.NewInternalError("Failed to list topics", err)
		}
		resp := make([]*dto.TopicResponse, 0, len(topics))
		for _, t := range topics {
			resp = append(resp, dto.NewTopicResponse(t))
		}
		return resp, nil
	})
}

func (s *topicService) UpdateTopic(ctx context.Context, id string, req *dto.UpdateTopicRequest) (*dto.TopicResponse, error) {
	topic, err := s.repo.GetTopicByID(ctx, id)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get topic", err)
	}
	if topic == nil {
		return nil, domain.NewTopicNotFoundError(id)
	}

	patch := domain.TopicPatch{Content: req.Content, Order: req.Order}
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		patch.Title = &title
	}
	patch.Apply(topic)
	if err := topic.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateTopic(ctx, topic); err != nil {
		if domain.HasCode(err, domain.CodeTopicNotFound) {
			return nil, err
		}
		return nil, domain.NewInternalError("Failed to update topic", err)
	}
	s.cache.invalidate(ctx, id)

	return dto.NewTopicResponse(topic), nil
}

func (s *topicService) DeleteTopic(ctx context.Context, id string) error {
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.questionRepo.DeleteQuestionsByTopic(txCtx, id); err != nil {
			return err
		}
		return s.repo.DeleteTopic(txCtx, id)
	})
	if err != nil {
		if domain.HasCode(err, domain.CodeTopicNotFound) {
			return err
		}
		return domain.NewInternalError("Failed to delete topic", err)
	}
	s.cache.invalidate(ctx, id)

	logger.Get().Info("Topic deleted", zap.String("topic_id", id))
	return nil
}
