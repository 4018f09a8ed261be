// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package spell

import (
	"strings"
)

// maxDistance is the largest edit distance still considered a typo.
const maxDistance = 3

// Nearest returns the candidate closest to word, or "" when none is close
// enough. Ties go to the earlier candidate.
func Nearest(word string, candidates []string) string {
	best := ""
	bestDistance := maxDistance + 1

	for _, candidate := range candidates {
		if candidate == word {
			return candidate
		}
		distance := Distance(strings.ToLower(word), strings.ToLower(candidate))
		if distance < bestDistance && distance < len(candidate) {
			bestDistance = distance
			best = candidate
		}
	}
	return best
}

// Distance is the Levenshtein distance between a and b, counted in runes.
func Distance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}

	previous := make([]int, len(ra)+1)
	for i := range previous {
		previous[i] = i
	}

	for j := 1; j <= len(rb); j++ {
		current := make([]int, len(ra)+1)
		current[0] = j

		for i := 1; i <= len(ra); i++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			current[i] = min(previous[i]+1, current[i-1]+1, previous[i-1]+cost)
		}
		previous = current
	}
	return previous[len(ra)]
}
