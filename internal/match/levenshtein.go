package match

import "strings"

// Levenshtein returns the number of single-character insertions, deletions
// or substitutions needed to turn a into b.
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	// keep the row as short as possible
	if len(a) > len(b) {
		a, b = b, a
	}

	row := make([]int, len(a)+1)
	for i := range row {
		row[i] = i
	}

	for j := 1; j <= len(b); j++ {
		diag := row[0]
		row[0] = j

		for i := 1; i <= len(a); i++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}

			next := min(row[i]+1, row[i-1]+1, diag+cost)
			diag = row[i]
			row[i] = next
		}
	}

	return row[len(a)]
}

// Suggest returns the candidate closest to input, ignoring case, when it is
// within maxDistance edits. Ties go to the earlier candidate.
func Suggest(input string, candidates []string, maxDistance int) (string, bool) {
	input = strings.ToLower(input)

	best, bestDist := "", maxDistance+1
	for _, c := range candidates {
		if d := Levenshtein(input, strings.ToLower(c)); d < bestDist {
			best, bestDist = c, d
		}
	}

	return best, best != ""
}
