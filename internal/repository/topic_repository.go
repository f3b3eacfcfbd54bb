package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"mathdrill/internal/domain"
	"mathdrill/internal/repository/models"
	"mathdrill/internal/util"

	"github.com/jmoiron/sqlx"
)

const topicColumns = `
		id "id",
		title "title",
		content "content",
		sort_order "sort_order",
		created_at "created_at",
		updated_at "updated_at"`

// TopicDatabaseAdapter implements domain.TopicRepository using sqlx
type TopicDatabaseAdapter struct {
	db DBTX
}

var _ domain.TopicRepository = (*TopicDatabaseAdapter)(nil)

// NewTopicDatabaseAdapter creates a new instance of TopicDatabaseAdapter
func NewTopicDatabaseAdapter(db *sqlx.DB) domain.TopicRepository {
	return &TopicDatabaseAdapter{db: db}
}

// CreateTopic assigns an ID and timestamps and inserts the topic
func (a *TopicDatabaseAdapter) CreateTopic(ctx context.Context, topic *domain.Topic) error {
	if topic.ID == "" {
		topic.ID = util.NewULID()
	}
	now := time.Now()
	if topic.CreatedAt.IsZero() {
		topic.CreatedAt = now
	}
	topic.UpdatedAt = now

	query := `INSERT INTO topics (id, title, content, sort_order, created_at, updated_at)
		VALUES (:id, :title, :content, :sort_order, :created_at, :updated_at)`

	if _, err := GetExecutor(ctx, a.db).NamedExecContext(ctx, query, toModelTopic(topic)); err != nil {
		return fmt.Errorf("failed to create topic: %w", err)
	}
	return nil
}

// GetTopicByID returns nil, nil when the topic does not exist
func (a *TopicDatabaseAdapter) GetTopicByID(ctx context.Context, id string) (*domain.Topic, error) {
	var model models.Topic
	query := `SELECT` + topicColumns + `
	FROM topics
	WHERE id = :id`

	err := namedGet(ctx, GetExecutor(ctx, a.db), &model, query, map[string]interface{}{"id": id})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get topic by id: %w", err)
	}
	return toDomainTopic(&model), nil
}

// ListTopics returns every topic ordered by sort_order, then id
func (a *TopicDatabaseAdapter) ListTopics(ctx context.Context) ([]*domain.Topic, error) {
	var rows []models.Topic
	query := `SELECT` + topicColumns + `
	FROM topics
	ORDER BY sort_order ASC, id ASC`

	if err := GetExecutor(ctx, a.db).SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to list topics: %w", err)
	}

	topics := make([]*domain.Topic, 0, len(rows))
	for i := range rows {
		topics = append(topics, toDomainTopic(&rows[i]))
	}
	return topics, nil
}

// UpdateTopic overwrites title, content and order of an existing topic
func (a *TopicDatabaseAdapter) UpdateTopic(ctx context.Context, topic *domain.Topic) error {
	topic.UpdatedAt = time.Now()
	query := `UPDATE topics SET
		title = :title,
		content = :content,
		sort_order = :sort_order,
		updated_at = :updated_at
	WHERE id = :id`

	result, err := GetExecutor(ctx, a.db).NamedExecContext(ctx, query, toModelTopic(topic))
	if err != nil {
		return fmt.Errorf("failed to update topic: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return domain.NewTopicNotFoundError(topic.ID)
	}
	return nil
}

// DeleteTopic removes the topic row
func (a *TopicDatabaseAdapter) DeleteTopic(ctx context.Context, id string) error {
	exec := GetExecutor(ctx, a.db)
	result, err := exec.ExecContext(ctx, exec.Rebind(`DELETE FROM topics WHERE id = ?`), id)
	if err != nil {
		return fmt.Errorf("failed to delete topic: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return domain.NewTopicNotFoundError(id)
	}
	return nil
}

func toDomainTopic(m *models.Topic) *domain.Topic {
	if m == nil {
		return nil
	}
	return &domain.Topic{
		ID:        m.ID,
		Title:     m.Title,
		Content:   m.Content,
		Order:     m.SortOrder,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toModelTopic(t *domain.Topic) *models.Topic {
	if t == nil {
		return nil
	}
	return &models.Topic{
		ID:        t.ID,
		Title:     t.Title,
		Content:   t.Content,
		SortOrder: t.Order,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}
