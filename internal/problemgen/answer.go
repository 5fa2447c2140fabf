package problemgen

import (
	"strconv"
	"strings"
)

// ParseAnswer parses a player's typed answer.
//
// Normalization rules:
// - Whitespace is trimmed
// - Leading zeros are ignored (e.g., "007" matches 7)
// - An empty or non-numeric input is reported as not ok
func ParseAnswer(input string) (int, bool) {
	input = strings.TrimSpace(input)
	if input == "" {
		return 0, false
	}
	n, err := strconv.Atoi(input)
	if err != nil {
		return 0, false
	}
	return n, true
}

// CheckAnswer reports whether answer is the correct result for q.
func CheckAnswer(answer int, q *Question) bool {
	if q == nil {
		return false
	}
	return answer == q.Answer
}
