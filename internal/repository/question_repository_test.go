package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"mathdrill/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var questionRowColumns = []string{"id", "topic_id", "question", "answer", "created_at"}

func TestQuestionDatabaseAdapter_SaveQuestion(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuestionDatabaseAdapter(db)

	q := domain.NewQuestion("t1", domain.GeneratedQA{Question: "求x", Answer: "x=1"})
	mock.ExpectExec(`INSERT INTO questions \(id, topic_id, question, answer, created_at\)`).
		WithArgs(sqlmock.AnyArg(), "t1", "求x", "x=1", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.SaveQuestion(context.Background(), q))
	assert.NotEmpty(t, q.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuestionDatabaseAdapter_SaveQuestion_Error(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuestionDatabaseAdapter(db)

	mock.ExpectExec(`INSERT INTO questions`).WillReturnError(errors.New("constraint failed"))

	err := repo.SaveQuestion(context.Background(), &domain.Question{TopicID: "t1", Question: "q", Answer: "a"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to save question")
}

func TestQuestionDatabaseAdapter_ListQuestions_All(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuestionDatabaseAdapter(db)
	now := time.Now()

	rows := sqlmock.NewRows(questionRowColumns).
		AddRow("q2", "t1", "Q2", "A2", now).
		AddRow("q1", "t2", "Q1", "A1", now.Add(-time.Minute))
	mock.ExpectQuery(`SELECT .* FROM questions\s+ORDER BY created_at DESC`).WillReturnRows(rows)

	questions, err := repo.ListQuestions(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, questions, 2)
	assert.Equal(t, "q2", questions[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuestionDatabaseAdapter_ListQuestions_ByTopic(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuestionDatabaseAdapter(db)

	rows := sqlmock.NewRows(questionRowColumns).AddRow("q1", "t1", "Q", "A", time.Now())
	mock.ExpectQuery(`SELECT .* FROM questions\s+WHERE topic_id = \?\s+ORDER BY created_at DESC`).
		WithArgs("t1").
		WillReturnRows(rows)

	questions, err := repo.ListQuestions(context.Background(), "t1")
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, "t1", questions[0].TopicID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuestionDatabaseAdapter_DeleteQuestionsByTopic(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuestionDatabaseAdapter(db)

	mock.ExpectExec(`DELETE FROM questions WHERE topic_id = \?`).
		WithArgs("t1").
		WillReturnResult(sqlmock.NewResult(0, 3))

	require.NoError(t, repo.DeleteQuestionsByTopic(context.Background(), "t1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionManager_CommitsAndUsesTx(t *testing.T) {
	db, mock := setupTestDB(t)
	tm := NewTransactionManagerAdapter(db)
	topics := NewTopicDatabaseAdapter(db)
	questions := NewQuestionDatabaseAdapter(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM questions WHERE topic_id = \?`).WithArgs("t1").WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM topics WHERE id = \?`).WithArgs("t1").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := tm.WithTransaction(context.Background(), func(ctx context.Context) error {
		if err := questions.DeleteQuestionsByTopic(ctx, "t1"); err != nil {
			return err
		}
		return topics.DeleteTopic(ctx, "t1")
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	db, mock := setupTestDB(t)
	tm := NewTransactionManagerAdapter(db)
	topics := NewTopicDatabaseAdapter(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM topics WHERE id = \?`).WithArgs("t1").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := tm.WithTransaction(context.Background(), func(ctx context.Context) error {
		return topics.DeleteTopic(ctx, "t1")
	})
	require.Error(t, err)
	assert.True(t, domain.HasCode(err, domain.CodeTopicNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionManager_NestedJoinsOuter(t *testing.T) {
	db, mock := setupTestDB(t)
	tm := NewTransactionManagerAdapter(db)

	mock.ExpectBegin()
	mock.ExpectCommit()

	err := tm.WithTransaction(context.Background(), func(ctx context.Context) error {
		return tm.WithTransaction(ctx, func(ctx context.Context) error { return nil })
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
