// Package main provides the eventpdf CLI for turning XML event feeds into
// printable PDF tables.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"eventpdf/internal/domain-adapters/gateways"
	orchestrators "eventpdf/internal/domain-orchestrators"
	"eventpdf/internal/domain/interfaces"
	"eventpdf/internal/external-adapters/etree"
	"eventpdf/internal/external-adapters/fpdf"
	"eventpdf/internal/external-adapters/yaml"
)

func runBuild(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("build", flag.ExitOnError)
	opts := &feedOptions{}
	opts.register(fs)
	var (
		layoutPath = fs.String("layout", "layouts/default.yml", "Path to the layout file")
		input      = fs.String("input", "", "Local feed file (alternative to --url)")
		url        = fs.String("url", "", "Feed URL to download")
		output     = fs.String("output", "output/events.pdf", "Output PDF path")
		timeout    = fs.Int("timeout", 5, "Timeout for the whole build in minutes")
		quiet      = fs.Bool("quiet", false, "Quiet mode - minimal output")
		verbose    = fs.Bool("verbose", false, "Verbose output")
	)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: eventpdf build [options]

Build a PDF document of event tables from an XML feed.

Examples:
  eventpdf build --input input/kursdaten.xml --layout layouts/default.yml
  eventpdf build --url https://example.org/kursdaten.xml --output output/plan.pdf
  eventpdf build --url https://example.org/kursdaten.xml \
      --sig-url https://example.org/kursdaten.xml.asc --gpg-key-ids ABCD1234

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing flags: %v\n", err)
		os.Exit(1)
	}

	if *input == "" && *url == "" {
		fmt.Fprintf(os.Stderr, "Error: either --input or --url is required\n\n")
		fs.Usage()
		os.Exit(1)
	}
	if *input != "" && *url != "" {
		fmt.Fprintf(os.Stderr, "Error: --input and --url are mutually exclusive\n\n")
		fs.Usage()
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(ctx, time.Duration(*timeout)*time.Minute)
	defer cancel()

	var logger interfaces.Logger = &interfaces.StderrLogger{Verbose: *verbose}
	if *quiet {
		logger = &interfaces.NoOpLogger{}
	}

	req := orchestrators.BuildRequest{
		LayoutName: filepath.Base(*layoutPath),
		FeedPath:   *input,
		FeedURL:    *url,
		OutputPath: *output,
	}

	// Verification runs before the pipeline; a URL feed is downloaded first,
	// a local feed is checked in place
	if opts.wantsVerification() {
		if *url != "" {
			opts.url = *url
			feedPath, err := acquireFeed(ctx, logger, opts)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			req.FeedPath = feedPath
			req.FeedURL = ""
		} else if err := verifyFeed(ctx, logger, *input, opts.sigFile, opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	if err := os.MkdirAll(filepath.Dir(*output), 0750); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create output directory: %v\n", err)
		os.Exit(1)
	}

	orchestrator := orchestrators.NewBuildOrchestrator(
		yaml.NewLayoutRepository(filepath.Dir(*layoutPath)),
		gateways.NewFeedDownloader(logger),
		etree.NewFeedParser(),
		fpdf.NewRenderer(),
		orchestrators.BuildOrchestratorConfig{WorkDir: opts.destDir, Logger: logger},
	)

	result, err := orchestrator.BuildDocument(ctx, req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if !*quiet {
		fmt.Println(result.Summary())
	}
	fmt.Println(*output)
}
