package repository

import (
	"context"
	"fmt"
	"time"

	"mathdrill/internal/domain"
	"mathdrill/internal/repository/models"
	"mathdrill/internal/util"

	"github.com/jmoiron/sqlx"
)

const questionColumns = `
		id "id",
		topic_id "topic_id",
		question "question",
		answer "answer",
		created_at "created_at"`

// QuestionDatabaseAdapter implements domain.QuestionRepository using sqlx
type QuestionDatabaseAdapter struct {
	db DBTX
}

var _ domain.QuestionRepository = (*QuestionDatabaseAdapter)(nil)

func NewQuestionDatabaseAdapter(db *sqlx.DB) domain.QuestionRepository {
	return &QuestionDatabaseAdapter{db: db}
}

// SaveQuestion assigns an ID and inserts the question
func (a *QuestionDatabaseAdapter) SaveQuestion(ctx context.Context, question *domain.Question) error {
	if question.ID == "" {
		question.ID = util.NewULID()
	}
	if question.CreatedAt.IsZero() {
		question.CreatedAt = time.Now()
	}

	query := `INSERT INTO questions (id, topic_id, question, answer, created_at)
		VALUES (:id, :topic_id, :question, :answer, :created_at)`

	if _, err := GetExecutor(ctx, a.db).NamedExecContext(ctx, query, toModelQuestion(question)); err != nil {
		return fmt.Errorf("failed to save question: %w", err)
	}
	return nil
}

// ListQuestions returns questions newest first, optionally for a single topic
func (a *QuestionDatabaseAdapter) ListQuestions(ctx context.Context, topicID string) ([]*domain.Question, error) {
	var rows []models.Question
	exec := GetExecutor(ctx, a.db)

	var err error
	if topicID == "" {
		query := `SELECT` + questionColumns + `
		FROM questions
		ORDER BY created_at DESC, id DESC`
		err = exec.SelectContext(ctx, &rows, query)
	} else {
		query := `SELECT` + questionColumns + `
		FROM questions
		WHERE topic_id = :topic_id
		ORDER BY created_at DESC, id DESC`
		err = namedSelect(ctx, exec, &rows, query, map[string]interface{}{"topic_id": topicID})
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}

	questions := make([]*domain.Question, 0, len(rows))
	for i := range rows {
		questions = append(questions, toDomainQuestion(&rows[i]))
	}
	return questions, nil
}

// DeleteQuestionsByTopic removes every question generated for a topic
func (a *QuestionDatabaseAdapter) DeleteQuestionsByTopic(ctx context.Context, topicID string) error {
	exec := GetExecutor(ctx, a.db)
	if _, err := exec.ExecContext(ctx, exec.Rebind(`DELETE FROM questions WHERE topic_id = ?`), topicID); err != nil {
		return fmt.Errorf("failed to delete questions for topic: %w", err)
	}
	return nil
}

func toDomainQuestion(m *models.Question) *domain.Question {
	if m == nil {
		return nil
	}
	return &domain.Question{
		ID:        m.ID,
		TopicID:   m.TopicID,
		Question:  m.Question,
		Answer:    m.Answer,
		CreatedAt: m.CreatedAt,
	}
}

func toModelQuestion(q *domain.Question) *models.Question {
	if q == nil {
		return nil
	}
	return &models.Question{
		ID:        q.ID,
		TopicID:   q.TopicID,
		Question:  q.Question,
		Answer:    q.Answer,
		CreatedAt: q.CreatedAt,
	}
}
