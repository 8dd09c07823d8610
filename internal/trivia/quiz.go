package trivia

import (
	"fmt"
	"math/rand/v2"

	"github.com/zizouhuweidi/trivia/internal/domain"
)

// Source picks an integer in [0, n). *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

// globalSource uses the concurrency-safe top-level generator of math/rand/v2
type globalSource struct{}

func (globalSource) IntN(n int) int {
	return rand.IntN(n)
}

// CategorySelector is the quiz category chosen by the player. An ID of
// domain.AllCategories means no restriction.
type CategorySelector struct {
	ID   *int   `json:"id"`
	Type string `json:"type"`
}

// QuizRequest carries the caller-held quiz state for one round
type QuizRequest struct {
	PreviousQuestions []int             `json:"previous_questions"`
	Category          *CategorySelector `json:"quiz_category"`
}

// Snapshot is a point-in-time read of the Record Store
type Snapshot struct {
	Questions  []domain.Question
	Categories []domain.Category
}

// Selector picks the next quiz question
type Selector struct {
	src Source
}

// NewSelector creates a selector drawing from src. A nil src uses the global
// math/rand/v2 generator.
func NewSelector(src Source) *Selector {
	if src == nil {
		src = globalSource{}
	}
	return &Selector{src: src}
}

// Next returns a uniformly random question from the requested category that
// is not in the seen set. A nil question with a nil error means the round is
// over.
func (s *Selector) Next(snapshot Snapshot, req QuizRequest) (*domain.Question, error) {
	if req.Category == nil || req.Category.ID == nil {
		return nil, fmt.Errorf("%w: quiz category is required", domain.ErrUnprocessable)
	}

	categoryID := *req.Category.ID
	if categoryID != domain.AllCategories && !hasCategory(snapshot.Categories, categoryID) {
		return nil, fmt.Errorf("%w: quiz category %d: %w", domain.ErrInvalidInput, categoryID, domain.ErrCategoryNotFound)
	}

	seen := make(map[int]struct{}, len(req.PreviousQuestions))
	for _, id := range req.PreviousQuestions {
		seen[id] = struct{}{}
	}

	candidates := make([]domain.Question, 0)
	for _, q := range ScopeByCategory(snapshot.Questions, categoryID) {
		if _, ok := seen[q.ID]; !ok {
			candidates = append(candidates, q)
		}
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	picked := candidates[s.src.IntN(len(candidates))]
	return &picked, nil
}

func hasCategory(categories []domain.Category, id int) bool {
	for _, c := range categories {
		if c.ID == id {
			return true
		}
	}
	return false
}
