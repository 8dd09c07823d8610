package domain

import "context"

// AllCategories is the quiz category selector that applies no category restriction
const AllCategories = 0

// Category groups questions under a display type such as "Science"
type Category struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
}

// CategoryRepository defines the read-only Record Store operations on categories
type CategoryRepository interface {
	// ListCategories returns every category ordered by ID ascending
	ListCategories(ctx context.Context) ([]Category, error)

	// GetCategory retrieves a category by its ID
	GetCategory(ctx context.Context, id int) (*Category, error)
}

// Store is the full Record Store consumed by the service
type Store interface {
	QuestionRepository
	CategoryRepository
}
