package validation

import (
	"strings"
	"unicode"
)

// maxTypoRatio is the share of edits, relative to the longer answer, still
// accepted as a typo of the right answer
const maxTypoRatio = 0.2

// NormalizeAnswer normalizes an answer for comparison
func NormalizeAnswer(answer string) string {
	// Convert to lowercase
	answer = strings.ToLower(strings.TrimSpace(answer))

	// Remove common prefixes
	prefixes := []string{"the ", "a ", "an "}
	for _, prefix := range prefixes {
		answer = strings.TrimPrefix(answer, prefix)
	}

	// Remove punctuation and extra spaces
	var result strings.Builder
	for _, r := range answer {
		if !unicode.IsPunct(r) {
			result.WriteRune(r)
		}
	}

	// Trim spaces and normalize internal spaces
	return strings.Join(strings.Fields(result.String()), " ")
}

// IsCorrectAnswer reports whether given matches expected after normalization,
// tolerating small typos. A blank answer is never correct.
func IsCorrectAnswer(expected, given string) bool {
	want := []rune(NormalizeAnswer(expected))
	got := []rune(NormalizeAnswer(given))

	if len(got) == 0 {
		return false
	}
	if string(want) == string(got) {
		return true
	}

	distance := levenshteinDistance(want, got)
	longest := max(len(want), len(got))
	return float64(distance)/float64(longest) <= maxTypoRatio
}

// levenshteinDistance calculates the Levenshtein distance between two rune slices
func levenshteinDistance(s1, s2 []rune) int {
	if len(s1) == 0 {
		return len(s2)
	}
	if len(s2) == 0 {
		return len(s1)
	}

	prev := make([]int, len(s2)+1)
	curr := make([]int, len(s2)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(s1); i++ {
		curr[0] = i
		for j := 1; j <= len(s2); j++ {
			if s1[i-1] == s2[j-1] {
				curr[j] = prev[j-1]
			} else {
				curr[j] = 1 + min(
					prev[j],   // deletion
					curr[j-1], // insertion
					prev[j-1], // substitution
				)
			}
		}
		prev, curr = curr, prev
	}

	return prev[len(s2)]
}
