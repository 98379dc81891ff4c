package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx := context.Background()
	command := os.Args[1]

	// Dispatch to subcommand
	switch command {
	case "build":
		runBuild(ctx, os.Args[2:])
	case "fetch":
		runFetch(ctx, os.Args[2:])
	case "sections":
		runSections(ctx, os.Args[2:])
	case "layouts":
		runLayouts(ctx, os.Args[2:])
	case "validate":
		runValidate(ctx, os.Args[2:])
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`eventpdf - XML event feed to PDF table generator

Usage:
  eventpdf <command> [options]

Commands:
  build     Build a PDF document from an event feed
  fetch     Download (and verify) an event feed
  sections  Show how a feed distributes over a layout's sections
  layouts   List the available layouts
  validate  Validate a layout file

Use "eventpdf <command> --help" for more information about a command.`)
}
