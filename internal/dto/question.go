package dto

import (
	"time"

	"mathdrill/internal/domain"
)

// GenerateQuestionRequest is the body of POST /api/questions/generate
// @Description Request body for generating a practice question
type GenerateQuestionRequest struct {
	TopicID        string `json:"topicId" validate:"required"`
	TopicContent   string `json:"topicContent" validate:"required"`
	ExampleContent string `json:"exampleContent,omitempty"`
	AIProvider     string `json:"aiProvider,omitempty" validate:"omitempty,oneof=deepseek gemini"`
}

// QuestionResponse represents a stored question in the API response
// @Description Generated question information
type QuestionResponse struct {
	ID        string    `json:"id"`
	TopicID   string    `json:"topicId"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewQuestionResponse converts a domain question
func NewQuestionResponse(q *domain.Question) *QuestionResponse {
	return &QuestionResponse{
		ID:        q.ID,
		TopicID:   q.TopicID,
		Question:  q.Question,
		Answer:    q.Answer,
		CreatedAt: q.CreatedAt,
	}
}

// ProviderInfo describes one AI provider
type ProviderInfo struct {
	ID         string `json:"id"`
	Model      string `json:"model"`
	Configured bool   `json:"configured"`
}

// ProvidersResponse lists the AI providers a request may select
// @Description Available AI providers
type ProvidersResponse struct {
	Default   string         `json:"default"`
	Providers []ProviderInfo `json:"providers"`
}
