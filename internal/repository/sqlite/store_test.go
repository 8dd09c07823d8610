package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zizouhuweidi/trivia/internal/database"
	"github.com/zizouhuweidi/trivia/internal/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	ctx := context.Background()

	db, err := database.OpenSQLite(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.Migrate(ctx, db, database.DialectSQLite, "up"))
	return NewStore(db)
}

func TestStoreSeededCategories(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	categories, err := s.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 6)
	assert.Equal(t, domain.Category{ID: 1, Type: "Science"}, categories[0])

	c, err := s.GetCategory(ctx, 6)
	require.NoError(t, err)
	assert.Equal(t, "Sports", c.Type)

	_, err = s.GetCategory(ctx, 42)
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

func TestStoreQuestionLifecycle(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	q := &domain.Question{Question: "What is the heaviest organ?", Answer: "The Liver", Category: 1, Difficulty: 4}
	require.NoError(t, s.CreateQuestion(ctx, q))
	require.NotZero(t, q.ID)

	got, err := s.GetQuestion(ctx, q.ID)
	require.NoError(t, err)
	assert.Equal(t, *q, *got)

	list, err := s.ListQuestions(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Question{*q}, list)

	require.NoError(t, s.DeleteQuestion(ctx, q.ID))
	assert.ErrorIs(t, s.DeleteQuestion(ctx, q.ID), domain.ErrQuestionNotFound)

	_, err = s.GetQuestion(ctx, q.ID)
	assert.ErrorIs(t, err, domain.ErrQuestionNotFound)
}

func TestStoreRejectsUnknownCategory(t *testing.T) {
	s := newTestStore(t)
	err := s.CreateQuestion(context.Background(), &domain.Question{Question: "q", Answer: "a", Category: 99, Difficulty: 1})
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

func TestStoreBulkCreateRollsBack(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	err := s.BulkCreateQuestions(ctx, []*domain.Question{
		{Question: "ok", Answer: "a", Category: 2, Difficulty: 1},
		{Question: "bad", Answer: "a", Category: 99, Difficulty: 1},
	})
	require.ErrorIs(t, err, domain.ErrCategoryNotFound)

	list, err := s.ListQuestions(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	require.NoError(t, s.BulkCreateQuestions(ctx, []*domain.Question{
		{Question: "one", Answer: "a", Category: 2, Difficulty: 1},
		{Question: "two", Answer: "b", Category: 3, Difficulty: 2},
	}))
	list, err = s.ListQuestions(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Less(t, list[0].ID, list[1].ID)
}
