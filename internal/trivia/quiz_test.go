package trivia

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zizouhuweidi/trivia/internal/domain"
)

func intPtr(v int) *int {
	return &v
}

func threeScience() Snapshot {
	return Snapshot{
		Questions: []domain.Question{
			{ID: 1, Question: "q1", Answer: "a1", Category: 1, Difficulty: 1},
			{ID: 2, Question: "q2", Answer: "a2", Category: 1, Difficulty: 2},
			{ID: 3, Question: "q3", Answer: "a3", Category: 1, Difficulty: 3},
		},
		Categories: []domain.Category{{ID: 1, Type: "Science"}, {ID: 2, Type: "Art"}},
	}
}

func seeded() *Selector {
	return NewSelector(rand.New(rand.NewPCG(1, 2)))
}

func TestNextReturnsOnlyRemainingCandidate(t *testing.T) {
	q, err := seeded().Next(threeScience(), QuizRequest{
		PreviousQuestions: []int{1, 2},
		Category:          &CategorySelector{ID: intPtr(1), Type: "Science"},
	})
	require.NoError(t, err)
	require.NotNil(t, q)
	assert.Equal(t, 3, q.ID)
}

func TestNextAllSeenEndsRound(t *testing.T) {
	q, err := seeded().Next(threeScience(), QuizRequest{
		PreviousQuestions: []int{1, 2, 3},
		Category:          &CategorySelector{ID: intPtr(1)},
	})
	require.NoError(t, err)
	assert.Nil(t, q)
}

func TestNextEmptyCategoryEndsRound(t *testing.T) {
	q, err := seeded().Next(threeScience(), QuizRequest{
		Category: &CategorySelector{ID: intPtr(2), Type: "Art"},
	})
	require.NoError(t, err)
	assert.Nil(t, q)
}

func TestNextNeverReturnsSeenQuestion(t *testing.T) {
	snap := threeScience()
	snap.Questions = append(snap.Questions,
		domain.Question{ID: 4, Category: 2},
		domain.Question{ID: 5, Category: 2},
	)
	sel := seeded()
	for i := 0; i < 200; i++ {
		q, err := sel.Next(snap, QuizRequest{
			PreviousQuestions: []int{1, 4, 4, 1},
			Category:          &CategorySelector{ID: intPtr(domain.AllCategories)},
		})
		require.NoError(t, err)
		require.NotNil(t, q)
		assert.NotContains(t, []int{1, 4}, q.ID)
	}
}

func TestNextIsUniform(t *testing.T) {
	sel := seeded()
	counts := map[int]int{}
	const draws = 30000
	for i := 0; i < draws; i++ {
		q, err := sel.Next(threeScience(), QuizRequest{Category: &CategorySelector{ID: intPtr(1)}})
		require.NoError(t, err)
		counts[q.ID]++
	}

	require.Len(t, counts, 3)
	for id, n := range counts {
		assert.InDelta(t, draws/3, n, draws*0.03, "question %d drawn %d times", id, n)
	}
}

func TestNextIsDeterministicForSeed(t *testing.T) {
	req := QuizRequest{Category: &CategorySelector{ID: intPtr(1)}}
	a, b := seeded(), seeded()
	for i := 0; i < 10; i++ {
		qa, err := a.Next(threeScience(), req)
		require.NoError(t, err)
		qb, err := b.Next(threeScience(), req)
		require.NoError(t, err)
		assert.Equal(t, qa.ID, qb.ID)
	}
}

func TestNextMissingSelectorIsUnprocessable(t *testing.T) {
	_, err := seeded().Next(threeScience(), QuizRequest{})
	assert.ErrorIs(t, err, domain.ErrUnprocessable)

	_, err = seeded().Next(threeScience(), QuizRequest{Category: &CategorySelector{Type: "Science"}})
	assert.ErrorIs(t, err, domain.ErrUnprocessable)
}

func TestNextUnknownCategoryIsInvalidInput(t *testing.T) {
	_, err := seeded().Next(threeScience(), QuizRequest{Category: &CategorySelector{ID: intPtr(42)}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
	assert.NotErrorIs(t, err, domain.ErrUnprocessable)
}

func TestNewSelectorDefaultsToGlobalSource(t *testing.T) {
	q, err := NewSelector(nil).Next(threeScience(), QuizRequest{Category: &CategorySelector{ID: intPtr(1)}})
	require.NoError(t, err)
	assert.Contains(t, []int{1, 2, 3}, q.ID)
}
