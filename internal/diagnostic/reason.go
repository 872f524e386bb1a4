package diagnostic

//go:generate go tool stringer -type=Reason -trimprefix=Reason -output=reason_string.go

// Reason classifies the outcome of a single resolution call.
type Reason int

const (
	_ Reason = iota // zero value is never a valid outcome

	// ReasonResolved means an existing candidate was found.
	ReasonResolved

	// ReasonNotApplicable means the request was already relative or
	// absolute, or a required input was missing. The alias table was
	// not inspected.
	ReasonNotApplicable

	// ReasonNoMatch means no alias pattern matched the request.
	ReasonNoMatch

	// ReasonNoExistingCandidate means at least one pattern matched but
	// none of its candidates exist.
	ReasonNoExistingCandidate

	// ReasonMalformedTemplate means the alias table was rejected before
	// matching because a pattern or template has more than one wildcard.
	ReasonMalformedTemplate
)

// Found reports whether the reason carries a usable path.
func (r Reason) Found() bool {
	return r == ReasonResolved
}
