package dto

import (
	"time"

	"mathdrill/internal/domain"
)

// CreateTopicRequest is the body of POST /api/topics
// @Description Request body for creating a topic
type CreateTopicRequest struct {
	Title   string `json:"title" validate:"required,max=500"`
	Content string `json:"content" validate:"required"`
	Order   *int   `json:"order,omitempty" validate:"omitempty,min=0"`
}

// UpdateTopicRequest is the body of PATCH /api/topics/{id}; omitted fields are unchanged
// @Description Request body for updating a topic
type UpdateTopicRequest struct {
	Title   *string `json:"title,omitempty" validate:"omitempty,min=1,max=500"`
	Content *string `json:"content,omitempty" validate:"omitempty,min=1"`
	Order   *int    `json:"order,omitempty" validate:"omitempty,min=0"`
}

// TopicResponse represents a topic in the API response
// @Description Topic information
type TopicResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Order     int       `json:"order"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewTopicResponse converts a domain topic
func NewTopicResponse(t *domain.Topic) *TopicResponse {
	return &TopicResponse{
		ID:        t.ID,
		Title:     t.Title,
		Content:   t.Content,
		Order:     t.Order,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}
