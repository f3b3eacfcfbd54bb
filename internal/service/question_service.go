package service

import (
	"context"

	"mathdrill/internal/domain"
	"mathdrill/internal/dto"
	"mathdrill/internal/logger"

	"go.uber.org/zap"
)

// QuestionService defines the interface for practice question operations
type QuestionService interface {
	ListQuestions(ctx context.Context, topicID string) ([]*dto.QuestionResponse, error)
	GenerateQuestion(ctx context.Context, req *dto.GenerateQuestionRequest) (*dto.QuestionResponse, error)
	Providers() *dto.ProvidersResponse
}

type questionService struct {
	repo      domain.QuestionRepository
	topics    TopicService
	generator domain.QuestionGenerator
}

func NewQuestionService(repo domain.QuestionRepository, topics TopicService, generator domain.QuestionGenerator) QuestionService {
	return &questionService{
		repo:      repo,
		topics:    topics,
		generator: generator,
	}
}

func (s *questionService) ListQuestions(ctx context.Context, topicID string) ([]*dto.QuestionResponse, error) {
	questions, err := s.repo.ListQuestions(ctx, topicID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list questions", err)
	}
	resp := make([]*dto.QuestionResponse, 0, len(questions))
	for _, q := range questions {
		resp = append(resp, dto.NewQuestionResponse(q))
	}
	return resp, nil
}

// GenerateQuestion checks the topic exists, asks the generator for one
// question and stores it. Generation and save are detached from request
// cancellation and bounded only by the provider timeout.
func (s *questionService) GenerateQuestion(ctx context.Context, req *dto.GenerateQuestionRequest) (*dto.QuestionResponse, error) {
	provider, err := domain.ParseProviderID(req.AIProvider)
	if err != nil {
		return nil, domain.NewInvalidInputError(err.Error())
	}

	topic, err := s.topics.GetTopic(ctx, req.TopicID)
	if err != nil {
		return nil, err
	}

	log := logger.Get().With(
		zap.String("topic_id", topic.ID),
		zap.String("provider", string(provider)),
	)
	log.Info("Generating question for topic", zap.String("topic_title", topic.Title))

	genCtx := context.WithoutCancel(ctx)
	qa, err := s.generator.Generate(genCtx, domain.GenerationRequest{
		TopicContent:   req.TopicContent,
		ExampleContent: req.ExampleContent,
		Provider:       provider,
	})
	if err != nil {
		return nil, err
	}

	question := domain.NewQuestion(topic.ID, *qa)
	if err := s.repo.SaveQuestion(genCtx, question); err != nil {
		return nil, domain.NewInternalError("Failed to save question", err)
	}

	log.Info("Question saved", zap.String("question_id", question.ID))
	return dto.NewQuestionResponse(question), nil
}

func (s *questionService) Providers() *dto.ProvidersResponse {
	statuses := s.generator.Providers()
	resp := &dto.ProvidersResponse{
		Default:   string(s.generator.DefaultProvider()),
		Providers: make([]dto.ProviderInfo, 0, len(statuses)),
	}
	for _, st := range statuses {
		resp.Providers = append(resp.Providers, dto.ProviderInfo{
			ID:         string(st.ID),
			Model:      st.Model,
			Configured: st.Configured,
		})
	}
	return resp
}
