package postgres

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/zizouhuweidi/trivia/internal/domain"
)

var _ domain.Store = (*Store)(nil)

// Store combines the question and category repositories over one pool
type Store struct {
	*QuestionRepository
	*CategoryRepository
}

// NewStore creates a Record Store backed by pool
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{
		QuestionRepository: NewQuestionRepository(pool),
		CategoryRepository: NewCategoryRepository(pool),
	}
}
