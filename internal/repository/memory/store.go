// Package memory is an in-process Record Store used for local development and
// tests. It keeps the same contract as the SQL stores, including the
// category reference check on insert.
package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/zizouhuweidi/trivia/internal/domain"
)

var _ domain.Store = (*Store)(nil)

// Store is a mutex-guarded Record Store kept in maps
type Store struct {
	mu         sync.RWMutex
	questions  map[int]domain.Question
	categories map[int]domain.Category
	nextID     int
}

// NewStore creates a store holding the given categories
func NewStore(categories ...domain.Category) *Store {
	s := &Store{
		questions:  make(map[int]domain.Question),
		categories: make(map[int]domain.Category, len(categories)),
		nextID:     1,
	}
	for _, c := range categories {
		s.categories[c.ID] = c
	}
	return s
}

// DefaultCategories are the categories every fresh database is seeded with
func DefaultCategories() []domain.Category {
	return []domain.Category{
		{ID: 1, Type: "Science"},
		{ID: 2, Type: "Art"},
		{ID: 3, Type: "Geography"},
		{ID: 4, Type: "History"},
		{ID: 5, Type: "Entertainment"},
		{ID: 6, Type: "Sports"},
	}
}

// ListQuestions returns every question ordered by ID
func (s *Store) ListQuestions(_ context.Context) ([]domain.Question, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Question, 0, len(s.questions))
	for _, q := range s.questions {
		out = append(out, q)
	}
	slices.SortFunc(out, func(a, b domain.Question) int { return cmp.Compare(a.ID, b.ID) })
	return out, nil
}

// GetQuestion retrieves a question by its ID
func (s *Store) GetQuestion(_ context.Context, id int) (*domain.Question, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q, ok := s.questions[id]
	if !ok {
		return nil, domain.ErrQuestionNotFound
	}
	return &q, nil
}

// CreateQuestion assigns the next ID and stores question
func (s *Store) CreateQuestion(_ context.Context, question *domain.Question) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.insertLocked(question)
}

// DeleteQuestion deletes a question
func (s *Store) DeleteQuestion(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.questions[id]; !ok {
		return domain.ErrQuestionNotFound
	}
	delete(s.questions, id)
	return nil
}

// BulkCreateQuestions inserts all questions or none of them
func (s *Store) BulkCreateQuestions(_ context.Context, questions []*domain.Question) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, q := range questions {
		if _, ok := s.categories[q.Category]; !ok {
			return fmt.Errorf("failed to create question %q: %w", q.Question, domain.ErrCategoryNotFound)
		}
	}
	for _, q := range questions {
		if err := s.insertLocked(q); err != nil {
			return err
		}
	}
	return nil
}

// ListCategories returns every category ordered by ID
func (s *Store) ListCategories(_ context.Context) ([]domain.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Category, 0, len(s.categories))
	for _, c := range s.categories {
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, b domain.Category) int { return cmp.Compare(a.ID, b.ID) })
	return out, nil
}

// GetCategory retrieves a category by its ID
func (s *Store) GetCategory(_ context.Context, id int) (*domain.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.categories[id]
	if !ok {
		return nil, domain.ErrCategoryNotFound
	}
	return &c, nil
}

func (s *Store) insertLocked(question *domain.Question) error {
	if _, ok := s.categories[question.Category]; !ok {
		return domain.ErrCategoryNotFound
	}
	question.ID = s.nextID
	s.nextID++
	s.questions[question.ID] = *question
	return nil
}
