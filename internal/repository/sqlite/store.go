// Package sqlite is the Record Store for single-node deployments, backed by
// the pure Go modernc.org/sqlite driver.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/zizouhuweidi/trivia/internal/domain"
)

var _ domain.Store = (*Store)(nil)

var questionColumns = []string{"id", "question", "answer", "category", "difficulty"}

// Store implements domain.Store over a database/sql handle
type Store struct {
	db *sql.DB
}

// NewStore creates a store over a migrated database
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// ListQuestions retrieves every question ordered by ID
func (s *Store) ListQuestions(ctx context.Context) ([]domain.Question, error) {
	query, args, err := sq.Select(questionColumns...).From("questions").OrderBy("id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build question query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	defer rows.Close()

	questions := make([]domain.Question, 0)
	for rows.Next() {
		var q domain.Question
		if err := rows.Scan(&q.ID, &q.Question, &q.Answer, &q.Category, &q.Difficulty); err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating questions: %w", err)
	}
	return questions, nil
}

// GetQuestion retrieves a question by its ID
func (s *Store) GetQuestion(ctx context.Context, id int) (*domain.Question, error) {
	query, args, err := sq.Select(questionColumns...).From("questions").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build question query: %w", err)
	}

	var q domain.Question
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&q.ID, &q.Question, &q.Answer, &q.Category, &q.Difficulty)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrQuestionNotFound
		}
		return nil, fmt.Errorf("failed to get question: %w", err)
	}
	return &q, nil
}

// CreateQuestion creates a new question
func (s *Store) CreateQuestion(ctx context.Context, question *domain.Question) error {
	return insertQuestion(ctx, s.db, question)
}

// DeleteQuestion deletes a question
func (s *Store) DeleteQuestion(ctx context.Context, id int) error {
	query, args, err := sq.Delete("questions").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete: %w", err)
	}

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete question: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete question: %w", err)
	}
	if n == 0 {
		return domain.ErrQuestionNotFound
	}
	return nil
}

// BulkCreateQuestions creates multiple questions in a single transaction
func (s *Store) BulkCreateQuestions(ctx context.Context, questions []*domain.Question) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, q := range questions {
		if err := insertQuestion(ctx, tx, q); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// ListCategories retrieves all categories ordered by ID
func (s *Store) ListCategories(ctx context.Context) ([]domain.Category, error) {
	query, args, err := sq.Select("id", "type").From("categories").OrderBy("id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build category query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}
	defer rows.Close()

	categories := make([]domain.Category, 0)
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Type); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}
	return categories, nil
}

// GetCategory retrieves a category by its ID
func (s *Store) GetCategory(ctx context.Context, id int) (*domain.Category, error) {
	query, args, err := sq.Select("id", "type").From("categories").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build category query: %w", err)
	}

	var c domain.Category
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&c.ID, &c.Type); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return &c, nil
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func insertQuestion(ctx context.Context, db execer, question *domain.Question) error {
	query, args, err := sq.Insert("questions").
		Columns("question", "answer", "category", "difficulty").
		Values(question.Question, question.Answer, question.Category, question.Difficulty).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert: %w", err)
	}

	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		var liteErr *sqlite.Error
		if errors.As(err, &liteErr) && liteErr.Code() == sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY {
			return fmt.Errorf("category %d: %w", question.Category, domain.ErrCategoryNotFound)
		}
		return fmt.Errorf("failed to create question: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read question id: %w", err)
	}
	question.ID = int(id)
	return nil
}
