package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"eventpdf/internal/external-adapters/yaml"
)

func runValidate(_ context.Context, args []string) {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: eventpdf validate <layout.yml> [...]

Validate one or more layout files: column and section definitions, widths
against the table width, and duplicate section titles.
`)
	}

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing flags: %v\n", err)
		os.Exit(1)
	}
	if fs.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Error: at least one layout file is required\n\n")
		fs.Usage()
		os.Exit(1)
	}

	parser := yaml.NewLayoutParser()
	failed := false
	for _, path := range fs.Args() {
		layout, err := parser.ParseFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "FAIL %s: %v\n", path, err)
			failed = true
			continue
		}
		fmt.Printf("OK   %s: %q, %d columns, %d sections\n",
			path, layout.Title, len(layout.Columns), len(layout.Sections))
	}
	if failed {
		os.Exit(1)
	}
}
