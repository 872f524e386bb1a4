package match

import (
	"slices"
	"strings"
)

// DefaultSuggestions is the number of patterns Closest returns by default.
const DefaultSuggestions = 3

type scored struct {
	pattern  string
	distance int
}

// Closest returns up to limit patterns that look like near misses for
// request, nearest first. Ties keep the order of patterns.
//
// A wildcard pattern is scored on its literal prefix against the
// best-fitting leading part of the request, so "@utils/*" is close to
// "@utl/helper". A pattern without a wildcard is compared whole.
// Patterns starting with the wildcard carry no prefix and are skipped.
func Closest(request string, patterns []string, limit int) []string {
	if limit <= 0 || request == "" {
		return nil
	}

	var ranked []scored

	for _, pattern := range patterns {
		stem, _, hasStar := strings.Cut(pattern, Wildcard)
		if stem == "" {
			continue
		}

		d := Levenshtein(request, stem)
		if hasStar {
			d = min(d, prefixDistance(request, stem))
		}

		if d > maxDistance(stem) {
			continue
		}

		ranked = append(ranked, scored{pattern: pattern, distance: d})
	}

	slices.SortStableFunc(ranked, func(a, b scored) int {
		return a.distance - b.distance
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	out := make([]string, 0, len(ranked))
	for _, s := range ranked {
		out = append(out, s.pattern)
	}

	return out
}

// prefixDistance is the smallest distance between stem and a leading
// part of request whose length is within maxDistance of the stem's.
func prefixDistance(request, stem string) int {
	slack := maxDistance(stem)
	lo := max(0, len(stem)-slack)
	hi := min(len(request), len(stem)+slack)

	best := Levenshtein(request, stem)
	for k := lo; k <= hi; k++ {
		best = min(best, Levenshtein(request[:k], stem))
	}

	return best
}

// maxDistance scales the accepted edit distance with the stem length.
func maxDistance(stem string) int {
	return max(1, len(stem)/3)
}
