package models

import "time"

// Topic is the row shape of the topics table.
// Order is stored as sort_order since ORDER is reserved.
type Topic struct {
	ID        string    `db:"id"`
	Title     string    `db:"title"`
	Content   string    `db:"content"`
	SortOrder int       `db:"sort_order"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (Topic) TableName() string {
	return "topics"
}

// Question is the row shape of the questions table
type Question struct {
	ID        string    `db:"id"`
	TopicID   string    `db:"topic_id"`
	Question  string    `db:"question"`
	Answer    string    `db:"answer"`
	CreatedAt time.Time `db:"created_at"`
}

func (Question) TableName() string {
	return "questions"
}
