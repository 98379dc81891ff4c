package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"eventpdf/internal/domain/interfaces"
	"eventpdf/internal/domain/services"
	"eventpdf/internal/external-adapters/etree"
	"eventpdf/internal/external-adapters/yaml"
)

func runSections(_ context.Context, args []string) {
	fs := flag.NewFlagSet("sections", flag.ExitOnError)
	var (
		layoutPath = fs.String("layout", "layouts/default.yml", "Path to the layout file")
		input      = fs.String("input", "", "Local feed file")
	)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: eventpdf sections --input <feed> [options]

Show how the feed's events distribute over the layout's sections without
rendering a document.

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing flags: %v\n", err)
		os.Exit(1)
	}
	if *input == "" {
		fmt.Fprintf(os.Stderr, "Error: --input is required\n\n")
		fs.Usage()
		os.Exit(1)
	}

	layout, err := yaml.NewLayoutParser().ParseFile(*layoutPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	events, err := etree.NewFeedParser().ParseFile(*input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger := &interfaces.StderrLogger{}
	services.NewSorter().Sort(events)
	assembly := services.NewAssembler(logger).Assemble(layout, events)

	fmt.Printf("%s: %d events\n", layout.Title, len(events))
	for _, table := range assembly.Tables {
		full := 0
		for _, row := range table.Rows {
			if !row.Reference {
				full++
			}
		}
		fmt.Printf("  %-40s %3d rows (%d full, %d references)\n",
			table.Title, len(table.Rows), full, len(table.Rows)-full)
	}
	if assembly.Dropped > 0 {
		fmt.Printf("  %d events match no section\n", assembly.Dropped)
	}
}
