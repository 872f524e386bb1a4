// Package diagnostic provides structured warnings, errors, and
// "why this did not resolve" explanations for the path alias resolver.
//
// Key capabilities:
//   - Resolution outcome reasons (resolved, not applicable, no match, ...)
//   - Malformed alias pattern and template reports
//   - Per-template probe reports listing every candidate that was tried
//   - Nearest-pattern suggestions when no alias applies
package diagnostic
