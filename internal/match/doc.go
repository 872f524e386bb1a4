// Package match provides single-wildcard alias pattern matching and
// nearest-pattern ranking for module requests.
//
// Key functions:
//   - MatchStar: matches a request against a pattern with at most one '*'
//   - WildcardCount: counts wildcard markers in a pattern or template
//   - Levenshtein: computes edit distance between strings
//   - Closest: ranks alias patterns by distance to a request
package match
