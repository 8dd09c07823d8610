package domain

import (
	"context"
)

// QuestionRepository defines the Record Store operations on questions
type QuestionRepository interface {
	// ListQuestions returns every question ordered by ID ascending
	ListQuestions(ctx context.Context) ([]Question, error)

	// GetQuestion retrieves a question by its ID
	GetQuestion(ctx context.Context, id int) (*Question, error)

	// CreateQuestion inserts a question and assigns its ID
	CreateQuestion(ctx context.Context, question *Question) error

	// DeleteQuestion deletes a question
	DeleteQuestion(ctx context.Context, id int) error

	// BulkCreateQuestions creates multiple questions in a single transaction
	BulkCreateQuestions(ctx context.Context, questions []*Question) error
}

// Question represents a trivia question
type Question struct {
	ID         int    `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int    `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// QuestionEvent is broadcast to live subscribers when the question set changes
type QuestionEvent struct {
	Type     string    `json:"type"`
	Question *Question `json:"question,omitempty"`
	Deleted  int       `json:"deleted,omitempty"`
}

const (
	EventQuestionCreated = "question_created"
	EventQuestionDeleted = "question_deleted"
)
