package alias

import (
	"fmt"

	"path-alias/internal/diagnostic"
	"path-alias/internal/match"
)

// Validate reports patterns and templates with more than one wildcard
// as errors, and patterns with no templates as warnings. Resolution
// only ever substitutes the first wildcard of a template, so a second
// one would be left in the candidate path verbatim.
func (t *Table) Validate() diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	for pattern, templates := range t.All() {
		if n := match.WildcardCount(pattern); n > 1 {
			diags.AddError(diagnostic.CodeMalformedPattern,
				fmt.Sprintf("pattern has %d wildcards, at most one is allowed", n),
				pattern, "")
		}

		if len(templates) == 0 {
			diags.AddWarning(diagnostic.CodeEmptyTemplates,
				"pattern has no substitution templates and can never resolve",
				pattern, "")
		}

		for _, tpl := range templates {
			if n := match.WildcardCount(tpl); n > 1 {
				diags.AddError(diagnostic.CodeMalformedTemplate,
					fmt.Sprintf("template has %d wildcards, at most one is allowed", n),
					pattern, tpl)
			}
		}
	}

	return diags
}
