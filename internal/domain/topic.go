package domain

import (
	"context"
	"strings"
	"time"
)

// Topic is a unit of study material written in markdown with LaTeX math
type Topic struct {
	ID        string
	Title     string
	Content   string
	Order     int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewTopic creates a new Topic instance
func NewTopic(title, content string, order int) *Topic {
	now := time.Now()
	return &Topic{
		Title:     title,
		Content:   content,
		Order:     order,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Validate validates the topic
func (t *Topic) Validate() error {
	var errs ValidationErrors
	if strings.TrimSpace(t.Title) == "" {
		errs = append(errs, NewMissingFieldError("title"))
	}
	if strings.TrimSpace(t.Content) == "" {
		errs = append(errs, NewMissingFieldError("content"))
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// TopicPatch holds the fields of a partial topic update; nil means unchanged
type TopicPatch struct {
	Title   *string
	Content *string
	Order   *int
}

// Apply copies the set fields of the patch onto the topic
func (p TopicPatch) Apply(t *Topic) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Content != nil {
		t.Content = *p.Content
	}
	if p.Order != nil {
		t.Order = *p.Order
	}
	t.UpdatedAt = time.Now()
}

// TopicRepository defines the interface for topic persistence.
// Lookups return (nil, nil) when the topic does not exist.
type TopicRepository interface {
	CreateTopic(ctx context.Context, topic *Topic) error
	GetTopicByID(ctx context.Context, id string) (*Topic, error)
	// ListTopics returns topics ordered by Order, then ID
	ListTopics(ctx context.Context) ([]*Topic, error)
	UpdateTopic(ctx context.Context, topic *Topic) error
	DeleteTopic(ctx context.Context, id string) error
}
