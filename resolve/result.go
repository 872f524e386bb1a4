package resolve

import "path-alias/internal/diagnostic"

// Reason classifies a resolution outcome.
type Reason = diagnostic.Reason

const (
	ReasonResolved            = diagnostic.ReasonResolved
	ReasonNotApplicable       = diagnostic.ReasonNotApplicable
	ReasonNoMatch             = diagnostic.ReasonNoMatch
	ReasonNoExistingCandidate = diagnostic.ReasonNoExistingCandidate
	ReasonMalformedTemplate   = diagnostic.ReasonMalformedTemplate
)

type Diagnostics = diagnostic.Diagnostics
type Diagnostic = diagnostic.Diagnostic

// Result is the tagged outcome of Resolve.
type Result struct {
	// Path is the explicitly-local relative path, set only when resolved.
	Path string
	// Reason says why the result was or was not found.
	Reason Reason
	// Pattern and Template are the alias entry that produced Path.
	Pattern  string
	Template string
	// Candidate is the absolute path that passed the existence probe,
	// including any extension that was appended to find it.
	Candidate string
	// Probed lists every path handed to the existence probe, in order.
	Probed []string
	// Diagnostics explains misses and rejected tables.
	Diagnostics Diagnostics
}

// Found reports whether a path was resolved.
func (r Result) Found() bool {
	return r.Reason.Found()
}
