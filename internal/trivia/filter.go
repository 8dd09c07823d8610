package trivia

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/cases"

	"github.com/zizouhuweidi/trivia/internal/domain"
)

// Search returns the questions whose text contains term, compared with full
// Unicode case folding. A blank term is rejected instead of matching
// everything.
func Search(questions []domain.Question, term string) ([]domain.Question, error) {
	if strings.TrimSpace(term) == "" {
		return nil, fmt.Errorf("%w: search term is required", domain.ErrUnprocessable)
	}

	fold := cases.Fold()
	needle := fold.String(term)

	matched := make([]domain.Question, 0)
	for _, q := range questions {
		if strings.Contains(fold.String(q.Question), needle) {
			matched = append(matched, q)
		}
	}
	sortByID(matched)
	return matched, nil
}

// ScopeByCategory keeps the questions filed under categoryID. The
// domain.AllCategories selector keeps every question.
func ScopeByCategory(questions []domain.Question, categoryID int) []domain.Question {
	scoped := make([]domain.Question, 0, len(questions))
	for _, q := range questions {
		if categoryID == domain.AllCategories || q.Category == categoryID {
			scoped = append(scoped, q)
		}
	}
	sortByID(scoped)
	return scoped
}

func sortByID(questions []domain.Question) {
	slices.SortStableFunc(questions, func(a, b domain.Question) int {
		return cmp.Compare(a.ID, b.ID)
	})
}
