package match

import "strings"

// Wildcard is the marker that captures part of a request.
const Wildcard = "*"

// MatchStar matches request against pattern.
//
// A pattern without a wildcard matches only itself and captures "".
// A pattern of the form prefix*suffix matches when request starts with
// prefix, ends with suffix and leaves at least one character between
// them; that middle segment is the capture. Only the first '*' is a
// wildcard, any later one is matched literally as part of suffix.
//
// ok is false when the request does not match, which is distinct from
// a match that captured "".
func MatchStar(pattern, request string) (capture string, ok bool) {
	prefix, suffix, hasStar := strings.Cut(pattern, Wildcard)
	if !hasStar {
		return "", pattern == request
	}

	if len(request) <= len(prefix)+len(suffix) {
		return "", false
	}

	if !strings.HasPrefix(request, prefix) || !strings.HasSuffix(request, suffix) {
		return "", false
	}

	return request[len(prefix) : len(request)-len(suffix)], true
}

// WildcardCount returns how many wildcard markers s contains.
func WildcardCount(s string) int {
	return strings.Count(s, Wildcard)
}

// Substitute replaces the first wildcard in template with capture.
// Templates without a wildcard are returned unchanged.
func Substitute(template, capture string) string {
	return strings.Replace(template, Wildcard, capture, 1)
}
