// Package alias holds the ordered alias table a resolver matches module
// requests against: each pattern maps to an ordered list of substitution
// templates, and patterns are tried in insertion order.
package alias
