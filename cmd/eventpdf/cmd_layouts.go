package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"eventpdf/internal/external-adapters/yaml"
)

func runLayouts(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("layouts", flag.ExitOnError)
	dir := fs.String("dir", "layouts", "Directory containing layout files")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: eventpdf layouts [options]

List the layouts available in the layouts directory.

Examples:
  eventpdf layouts
  eventpdf layouts --dir /etc/eventpdf/layouts

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing flags: %v\n", err)
		os.Exit(1)
	}

	repo := yaml.NewLayoutRepository(*dir)
	layouts, err := repo.ListLayouts(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if len(layouts) == 0 {
		fmt.Println("No layouts found.")
		return
	}
	for _, layout := range layouts {
		fmt.Printf("%-30s %d columns, %d sections\n", layout.Title, len(layout.Columns), len(layout.Sections))
	}
}
