package main

import (
	"fmt"
	"strings"

	"path-alias/alias"
)

// Options are the findpath command line flags.
type Options struct {
	From    string   `short:"f" long:"from" description:"absolute path of the importing source file" required:"true"`
	Base    string   `short:"b" long:"base" description:"absolute base directory alias templates resolve against" required:"true"`
	Paths   []string `short:"p" long:"path" description:"alias as pattern=template[,template...]; repeatable, tried in the order given"`
	Strict  bool     `long:"strict" description:"reject patterns and templates with more than one wildcard"`
	Explain bool     `short:"e" long:"explain" description:"print the outcome reason and diagnostics to stderr"`
	Verbose bool     `short:"v" long:"verbose" description:"log each resolution step to stderr"`
	Args    struct {
		Request string `positional-arg-name:"request" description:"module specifier to resolve"`
	} `positional-args:"yes" required:"yes"`
}

// Table builds the alias table from the repeated --path flags.
func (o *Options) Table() (*alias.Table, error) {
	table := &alias.Table{}

	for _, spec := range o.Paths {
		pattern, rest, ok := strings.Cut(spec, "=")
		if !ok || pattern == "" {
			return nil, fmt.Errorf("invalid --path %q: want pattern=template[,template...]", spec)
		}

		var templates []string
		if rest != "" {
			templates = strings.Split(rest, ",")
		}

		if err := table.Add(pattern, templates...); err != nil {
			return nil, fmt.Errorf("invalid --path %q: %w", spec, err)
		}
	}

	return table, nil
}
