package resolve

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"path-alias/internal/diagnostic"
	"path-alias/internal/match"
)

// extensions are appended, in order, to every candidate path before it
// is given up on. The empty extension probes the candidate itself.
var extensions = [...]string{"", ".ts", ".tsx"}

// Resolver resolves module requests. It holds only its configuration,
// so one Resolver may serve concurrent calls as long as the ExistsFunc
// in each Params is safe for concurrent use.
type Resolver struct {
	config Config
	logger *slog.Logger
}

// NewResolver creates a new Resolver.
func NewResolver(config Config) *Resolver {
	logger := config.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Resolver{
		config: config,
		logger: logger,
	}
}

var defaultResolver = NewResolver(DefaultConfig())

// FindPath resolves p with the default configuration. It returns the
// explicitly-local relative path and true, or "" and false when no
// alias applies.
func FindPath(p Params) (string, bool) {
	return defaultResolver.FindPath(p)
}

// Resolve resolves p with the default configuration and reports why it
// did or did not find a path.
func Resolve(p Params) Result {
	return defaultResolver.Resolve(p)
}

// FindPath is Resolve reduced to the path and whether it was found.
func (r *Resolver) FindPath(p Params) (string, bool) {
	res := r.Resolve(p)

	return res.Path, res.Found()
}

// Resolve runs the resolution pipeline:
//  1. Skip requests that are relative, absolute or missing inputs.
//  2. Walk the alias table in order, matching each pattern.
//  3. For a matching pattern, substitute the capture into each template
//     in order and resolve it against the base directory.
//  4. Probe the candidate bare, then with ".ts", then with ".tsx".
//  5. Return the first hit relative to the source file's directory.
func (r *Resolver) Resolve(p Params) Result {
	log := r.logger.With(slog.String("request", p.Request), slog.String("source", p.SourceFileName))

	if !p.applicable() {
		log.Debug("request not subject to alias remapping")

		var diags diagnostic.Diagnostics
		diags.AddInfo(diagnostic.CodeNotApplicable,
			"request is relative or absolute, or an input is missing", "", "")

		return Result{Reason: ReasonNotApplicable, Diagnostics: diags}
	}

	res := Result{Reason: ReasonNoMatch}

	if r.config.RejectMalformed {
		diags := p.Paths.Validate()
		if diags.HasErrors() {
			log.Debug("alias table rejected", slog.Int("errors", len(diags.Errors)))

			return Result{Reason: ReasonMalformedTemplate, Diagnostics: diags}
		}

		res.Diagnostics.Merge(diags)
	}

	exists := p.exists()
	sourceDir := filepath.Dir(p.SourceFileName)

	for pattern, templates := range p.Paths.All() {
		capture, ok := "", pattern == p.Request
		if !ok {
			capture, ok = match.MatchStar(pattern, p.Request)
		}

		if !ok {
			continue
		}

		log.Debug("alias matched", slog.String("pattern", pattern), slog.String("capture", capture))
		res.Reason = ReasonNoExistingCandidate

		for _, template := range templates {
			candidate := candidatePath(p.AbsoluteBaseURL, match.Substitute(template, capture))

			hit, found := probe(candidate, exists, &res.Probed)
			if !found {
				log.Debug("no candidate exists", slog.String("template", template), slog.String("candidate", candidate))
				res.Diagnostics.AddInfo(diagnostic.CodeNoCandidate,
					fmt.Sprintf("nothing exists at %s", candidate), pattern, template)

				continue
			}

			rel, err := filepath.Rel(sourceDir, candidate)
			if err != nil {
				log.Debug("candidate not relatable to source", slog.String("candidate", hit), slog.Any("error", err))
				res.Diagnostics.AddWarning(diagnostic.CodeUnrelatable,
					fmt.Sprintf("%s cannot be made relative to %s: %v", candidate, sourceDir, err), pattern, template)

				continue
			}

			res.Path = ConvertToLocal(rel)
			res.Reason = ReasonResolved
			res.Pattern = pattern
			res.Template = template
			res.Candidate = hit

			log.Debug("resolved", slog.String("path", res.Path), slog.String("candidate", hit))

			return res
		}
	}

	if res.Reason == ReasonNoMatch {
		r.suggest(&res, p)
	}

	log.Debug("not resolved", slog.String("reason", res.Reason.String()))

	return res
}

func (r *Resolver) suggest(res *Result, p Params) {
	if r.config.Suggestions <= 0 {
		return
	}

	near := match.Closest(p.Request, p.Paths.Patterns(), r.config.Suggestions)
	if len(near) == 0 {
		return
	}

	res.Diagnostics.AddSuggestion(diagnostic.CodeNoMatch,
		fmt.Sprintf("no alias pattern matches %q", p.Request), near)
}

// candidatePath resolves a substituted template against the base
// directory. Absolute templates ignore the base.
func candidatePath(base, fragment string) string {
	candidate := fragment
	if !filepath.IsAbs(candidate) {
		candidate = filepath.Join(base, candidate)
	}

	if abs, err := filepath.Abs(candidate); err == nil {
		candidate = abs
	}

	return candidate
}

// probe tries candidate with each of extensions, recording every name
// it asks about. It returns the first name that exists.
func probe(candidate string, exists ExistsFunc, probed *[]string) (string, bool) {
	for _, ext := range extensions {
		name := candidate + ext
		*probed = append(*probed, name)

		if exists(name) {
			return name, true
		}
	}

	return "", false
}
