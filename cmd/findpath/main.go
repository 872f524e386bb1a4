// Package main provides findpath, a debugging front-end for the path
// alias resolver.
//
// findpath resolves one module request the way a compiler's "paths"
// mapping would and prints the explicitly-local relative path:
//
//	findpath --from /project/src/app.ts --base /project \
//	    --path '@utils/*=src/utils/*' @utils/helper
//
// Aliases come from flags only; no configuration file is read.
// Exit status is 0 when resolved, 1 when not, 2 on usage errors.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jessevdk/go-flags"

	"path-alias/resolve"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var opts Options

	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "findpath"

	if _, err := parser.ParseArgs(args); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			fmt.Fprintln(stdout, err)
			return 0
		}

		fmt.Fprintln(stderr, err)

		return 2
	}

	table, err := opts.Table()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	config := resolve.DefaultConfig()
	config.RejectMalformed = opts.Strict

	if opts.Verbose {
		config.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	res := resolve.NewResolver(config).Resolve(resolve.Params{
		SourceFileName:  opts.From,
		Request:         opts.Args.Request,
		AbsoluteBaseURL: opts.Base,
		Paths:           table,
	})

	if opts.Explain {
		explain(stderr, res)
	}

	if !res.Found() {
		return 1
	}

	fmt.Fprintln(stdout, res.Path)

	return 0
}

func explain(w io.Writer, res resolve.Result) {
	fmt.Fprintf(w, "reason: %s\n", res.Reason)

	if res.Found() {
		fmt.Fprintf(w, "alias: %s -> %s\n", res.Pattern, res.Template)
		fmt.Fprintf(w, "candidate: %s\n", res.Candidate)
	}

	for _, name := range res.Probed {
		fmt.Fprintf(w, "probed: %s\n", name)
	}

	for _, d := range res.Diagnostics.All() {
		fmt.Fprintf(w, "%s: %s\n", d.Severity, d)
	}
}
