package handler_test

import (
	"context"

	"mathdrill/internal/dto"
)

// --- Manual Mocks ---

// MockTopicService
type MockTopicService struct {
	CreateTopicFunc func(ctx context.Context, req *dto.CreateTopicRequest) (*dto.TopicResponse, error)
	GetTopicFunc    func(ctx context.Context, id string) (*dto.TopicResponse, error)
	ListTopicsFunc  func(ctx context.Context) ([]*dto.TopicResponse, error)
	UpdateTopicFunc func(ctx context.Context, id string, req *dto.UpdateTopicRequest) (*dto.TopicResponse, error)
	DeleteTopicFunc func(ctx context.Context, id string) error
}

func (m *MockTopicService) CreateTopic(ctx context.Context, req *dto.CreateTopicRequest) (*dto.TopicResponse, error) {
	if m.CreateTopicFunc != nil {
		return m.CreateTopicFunc(ctx, req)
	}
	panic("MockTopicService.CreateTopicFunc not implemented")
}
func (m *MockTopicService) GetTopic(ctx context.Context, id string) (*dto.TopicResponse, error) {
	if m.GetTopicFunc != nil {
		return m.GetTopicFunc(ctx, id)
	}
	panic("MockTopicService.GetTopicFunc not implemented")
}
func (m *MockTopicService) ListTopics(ctx context.Context) ([]*dto.TopicResponse, error) {
	if m.ListTopicsFunc != nil {
		return m.ListTopicsFunc(ctx)
	}
	panic("MockTopicService.ListTopicsFunc not implemented")
}
func (m *MockTopicService) UpdateTopic(ctx context.Context, id string, req *dto.UpdateTopicRequest) (*dto.TopicResponse, error) {
	if m.UpdateTopicFunc != nil {
		return m.UpdateTopicFunc(ctx, id, req)
	}
	panic("MockTopicService.UpdateTopicFunc not implemented")
}
func (m *MockTopicService) DeleteTopic(ctx context.Context, id string) error {
	if m.DeleteTopicFunc != nil {
		return m.DeleteTopicFunc(ctx, id)
	}
	panic("MockTopicService.DeleteTopicFunc not implemented")
}

// MockQuestionService
type MockQuestionService struct {
	ListQuestionsFunc    func(ctx context.Context, topicID string) ([]*dto.QuestionResponse, error)
	GenerateQuestionFunc func(ctx context.Context, req *dto.GenerateQuestionRequest) (*dto.QuestionResponse, error)
	ProvidersFunc        func() *dto.ProvidersResponse
}

func (m *MockQuestionService) ListQuestions(ctx context.Context, topicID string) ([]*dto.QuestionResponse, error) {
	if m.ListQuestionsFunc != nil {
		return m.ListQuestionsFunc(ctx, topicID)
	}
	panic("MockQuestionService.ListQuestionsFunc not implemented")
}
func (m *MockQuestionService) GenerateQuestion(ctx context.Context, req *dto.GenerateQuestionRequest) (*dto.QuestionResponse, error) {
	if m.GenerateQuestionFunc != nil {
		return m.GenerateQuestionFunc(ctx, req)
	}
	panic("MockQuestionService.GenerateQuestionFunc not implemented")
}
func (m *MockQuestionService) Providers() *dto.ProvidersResponse {
	if m.ProvidersFunc != nil {
		return m.ProvidersFunc()
	}
	panic("MockQuestionService.ProvidersFunc not implemented")
}
