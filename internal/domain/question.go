package domain

import (
	"context"
	"time"
)

// Question is a generated practice question stored against a topic
type Question struct {
	ID        string
	TopicID   string
	Question  string
	Answer    string
	CreatedAt time.Time
}

// NewQuestion creates a Question from a generation result
func NewQuestion(topicID string, qa GeneratedQA) *Question {
	return &Question{
		TopicID:   topicID,
		Question:  qa.Question,
		Answer:    qa.Answer,
		CreatedAt: time.Now(),
	}
}

// QuestionRepository defines the interface for question persistence
type QuestionRepository interface {
	// SaveQuestion assigns an ID and persists the question
	SaveQuestion(ctx context.Context, question *Question) error
	// ListQuestions returns questions newest first; an empty topicID lists all
	ListQuestions(ctx context.Context, topicID string) ([]*Question, error)
	DeleteQuestionsByTopic(ctx context.Context, topicID string) error
}
