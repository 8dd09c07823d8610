package trivia

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestParsePage(t *testing.T) {
	cases := map[string]int{
		"":    1,
		"1":   1,
		"2":   2,
		" 7 ": 7,
		"0":   1,
		"-3":  1,
		"abc": 1,
		"1.5": 1,
	}
	for raw, want := range cases {
		assert.Equal(t, want, ParsePage(raw), "ParsePage(%q)", raw)
	}
}

func TestPaginateMatchesWindow(t *testing.T) {
	for _, n := range []int{0, 1, 9, 10, 11, 25, 40} {
		items := seq(n)
		for page := 1; page <= 6; page++ {
			got := Paginate(items, page)
			require.LessOrEqual(t, len(got), QuestionsPerPage)

			start, end := PageWindow(page)
			if start >= n {
				assert.Empty(t, got, "n=%d page=%d", n, page)
				continue
			}
			assert.Equal(t, items[start:min(end, n)], got, "n=%d page=%d", n, page)
		}
	}
}

func TestPaginateBeyondEndIsEmptyNotNil(t *testing.T) {
	got := Paginate(seq(19), 100)
	require.NotNil(t, got)
	assert.Len(t, got, 0)
}

func TestPaginateDoesNotAlias(t *testing.T) {
	items := seq(12)
	got := Paginate(items, 1)
	got[0] = 99
	assert.Equal(t, 0, items[0])
}

func TestPageWindowClampsNonPositive(t *testing.T) {
	start, end := PageWindow(0)
	assert.Equal(t, 0, start)
	assert.Equal(t, 10, end)

	start, end = PageWindow(3)
	assert.Equal(t, 20, start)
	assert.Equal(t, 30, end)
}

func TestPaginateHugePageIsEmpty(t *testing.T) {
	for _, page := range []int{ParsePage("922337203685477582"), math.MaxInt / QuestionsPerPage, math.MaxInt} {
		got := Paginate(seq(25), page)
		require.NotNil(t, got, "page=%d", page)
		assert.Empty(t, got, "page=%d", page)

		start, end := PageWindow(page)
		assert.GreaterOrEqual(t, start, 0, "page=%d", page)
		assert.GreaterOrEqual(t, end, start, "page=%d", page)
	}
}
