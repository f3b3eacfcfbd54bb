package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"mathdrill/internal/domain"
	"mathdrill/internal/repository/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates a new sqlx.DB instance backed by sqlmock
func setupTestDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("Failed to create sqlmock: %v", err)
	}
	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	t.Cleanup(func() { sqlxDB.Close() })
	return sqlxDB, mock
}

var topicRowColumns = []string{"id", "title", "content", "sort_order", "created_at", "updated_at"}

func TestTopicConverters(t *testing.T) {
	now := time.Now().Truncate(time.Second)
	model := &models.Topic{ID: "t1", Title: "配方法", Content: "$x^2$", SortOrder: 3, CreatedAt: now, UpdatedAt: now}

	topic := toDomainTopic(model)
	require.NotNil(t, topic)
	assert.Equal(t, 3, topic.Order)
	assert.Equal(t, "配方法", topic.Title)
	assert.Equal(t, model, toModelTopic(topic))

	assert.Nil(t, toDomainTopic(nil))
	assert.Nil(t, toModelTopic(nil))
}

func TestTopicDatabaseAdapter_CreateTopic(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewTopicDatabaseAdapter(db)

	topic := domain.NewTopic("一元二次方程", "求根公式", 1)
	mock.ExpectExec(`INSERT INTO topics \(id, title, content, sort_order, created_at, updated_at\)`).
		WithArgs(sqlmock.AnyArg(), "一元二次方程", "求根公式", 1, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.CreateTopic(context.Background(), topic)
	require.NoError(t, err)
	assert.Len(t, topic.ID, 26)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTopicDatabaseAdapter_CreateTopic_Error(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewTopicDatabaseAdapter(db)

	mock.ExpectExec(`INSERT INTO topics`).WillReturnError(errors.New("disk full"))

	err := repo.CreateTopic(context.Background(), domain.NewTopic("t", "c", 0))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create topic")
}

func TestTopicDatabaseAdapter_GetTopicByID(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewTopicDatabaseAdapter(db)
	now := time.Now()

	rows := sqlmock.NewRows(topicRowColumns).AddRow("t1", "Title", "Content", 2, now, now)
	mock.ExpectQuery(`SELECT .* FROM topics\s+WHERE id = \?`).
		WithArgs("t1").
		WillReturnRows(rows)

	topic, err := repo.GetTopicByID(context.Background(), "t1")
	require.NoError(t, err)
	require.NotNil(t, topic)
	assert.Equal(t, "t1", topic.ID)
	assert.Equal(t, 2, topic.Order)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTopicDatabaseAdapter_GetTopicByID_NotFound(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewTopicDatabaseAdapter(db)

	mock.ExpectQuery(`SELECT .* FROM topics\s+WHERE id = \?`).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	topic, err := repo.GetTopicByID(context.Background(), "missing")
	assert.NoError(t, err)
	assert.Nil(t, topic)
}

func TestTopicDatabaseAdapter_ListTopics(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewTopicDatabaseAdapter(db)
	now := time.Now()

	rows := sqlmock.NewRows(topicRowColumns).
		AddRow("a", "A", "ca", 0, now, now).
		AddRow("b", "B", "cb", 1, now, now)
	mock.ExpectQuery(`SELECT .* FROM topics\s+ORDER BY sort_order ASC, id ASC`).WillReturnRows(rows)

	topics, err := repo.ListTopics(context.Background())
	require.NoError(t, err)
	require.Len(t, topics, 2)
	assert.Equal(t, "a", topics[0].ID)
	assert.Equal(t, 1, topics[1].Order)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTopicDatabaseAdapter_ListTopics_Empty(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewTopicDatabaseAdapter(db)

	mock.ExpectQuery(`SELECT .* FROM topics`).WillReturnRows(sqlmock.NewRows(topicRowColumns))

	topics, err := repo.ListTopics(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, topics)
	assert.Empty(t, topics)
}

func TestTopicDatabaseAdapter_UpdateTopic(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewTopicDatabaseAdapter(db)

	topic := &domain.Topic{ID: "t1", Title: "New", Content: "Body", Order: 5}
	mock.ExpectExec(`UPDATE topics SET`).
		WithArgs("New", "Body", 5, sqlmock.AnyArg(), "t1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdateTopic(context.Background(), topic))
	assert.False(t, topic.UpdatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTopicDatabaseAdapter_UpdateTopic_NotFound(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewTopicDatabaseAdapter(db)

	mock.ExpectExec(`UPDATE topics SET`).WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateTopic(context.Background(), &domain.Topic{ID: "nope", Title: "x", Content: "y"})
	require.Error(t, err)
	assert.True(t, domain.HasCode(err, domain.CodeTopicNotFound))
}

func TestTopicDatabaseAdapter_DeleteTopic(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewTopicDatabaseAdapter(db)

	mock.ExpectExec(`DELETE FROM topics WHERE id = \?`).
		WithArgs("t1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.DeleteTopic(context.Background(), "t1"))

	mock.ExpectExec(`DELETE FROM topics WHERE id = \?`).
		WithArgs("t2").
		WillReturnResult(sqlmock.NewResult(0, 0))
	err := repo.DeleteTopic(context.Background(), "t2")
	assert.True(t, domain.HasCode(err, domain.CodeTopicNotFound))

	assert.NoError(t, mock.ExpectationsWereMet())
}
