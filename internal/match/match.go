package match

import (
	"strings"
	"unicode"
)

// MinScore is the similarity Closest requires by default.
const MinScore = 0.5

// Normalize folds s to lower case and drops '_', '-' and spaces, so that
// "postal_code", "PostalCode" and "postal-code" compare equal.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for _, r := range s {
		switch r {
		case '_', '-', ' ':
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}

// Distance is the Levenshtein distance between a and b counted in runes.
func Distance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}

	if len(ra) == 0 {
		return len(rb)
	}

	prev := make([]int, len(ra)+1)
	curr := make([]int, len(ra)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(rb); j++ {
		curr[0] = j

		for i := 1; i <= len(ra); i++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}

			curr[i] = min(prev[i]+1, curr[i-1]+1, prev[i-1]+cost)
		}

		prev, curr = curr, prev
	}

	return prev[len(ra)]
}

// Score is the similarity of the normalized names: 1 for equal, 0 for
// nothing in common.
func Score(a, b string) float64 {
	na, nb := Normalize(a), Normalize(b)

	longest := max(len([]rune(na)), len([]rune(nb)))
	if longest == 0 {
		return 1
	}

	return 1 - float64(Distance(na, nb))/float64(longest)
}

// Closest returns the candidate most similar to name scoring at least
// MinScore. Ties keep the earlier candidate.
func Closest(name string, candidates []string) (string, bool) {
	best, bestScore := "", MinScore

	for _, c := range candidates {
		if c == name {
			continue
		}

		if s := Score(name, c); s >= bestScore && (best == "" || s > bestScore) {
			best, bestScore = c, s
		}
	}

	return best, best != ""
}

// Hint formats a " (did you mean %q?)" suffix, or "" when nothing is close.
func Hint(name string, candidates []string) string {
	if c, ok := Closest(name, candidates); ok {
		return ` (did you mean "` + c + `"?)`
	}

	return ""
}
