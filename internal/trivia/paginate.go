// Package trivia holds the pure selection rules of the trivia API: page
// windows, substring search, category scoping and quiz question selection.
// Every function works on a snapshot read from the Record Store and never
// mutates it.
package trivia

import (
	"math"
	"strconv"
	"strings"
)

// QuestionsPerPage is the fixed page size of every paginated listing
const QuestionsPerPage = 10

// ParsePage reads a 1-based page number from a query value. Absent, non-numeric
// and non-positive values all resolve to page 1.
func ParsePage(raw string) int {
	page, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// PageWindow returns the half-open index range [start, end) covered by page.
// Pages whose window does not fit in an int saturate at math.MaxInt.
func PageWindow(page int) (start, end int) {
	if page < 1 {
		page = 1
	}
	if page-1 > (math.MaxInt-QuestionsPerPage)/QuestionsPerPage {
		return math.MaxInt, math.MaxInt
	}
	start = (page - 1) * QuestionsPerPage
	return start, start + QuestionsPerPage
}

// Paginate returns the records of items that fall inside the window of page.
// A window past the end yields an empty, non-nil slice.
func Paginate[T any](items []T, page int) []T {
	start, end := PageWindow(page)
	if start >= len(items) {
		return []T{}
	}
	end = min(end, len(items))

	out := make([]T, end-start)
	copy(out, items[start:end])
	return out
}
