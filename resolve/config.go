package resolve

import (
	"log/slog"

	"path-alias/internal/match"
)

// Config controls a Resolver.
type Config struct {
	// Logger receives debug records for each matched pattern, probe and
	// acceptance. Nil discards them.
	Logger *slog.Logger
	// RejectMalformed validates the alias table before matching and
	// fails with ReasonMalformedTemplate when a pattern or template has
	// more than one wildcard. When false only the first wildcard of a
	// template is substituted and the rest stay literal.
	RejectMalformed bool
	// Suggestions is how many near-miss patterns a NoMatch result
	// carries; they are only computed when nothing matched. Zero
	// disables them.
	Suggestions int
}

// DefaultConfig returns the default resolver configuration.
func DefaultConfig() Config {
	return Config{
		Logger:          nil,
		RejectMalformed: false,
		Suggestions:     match.DefaultSuggestions,
	}
}
