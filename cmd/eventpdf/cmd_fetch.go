package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"eventpdf/internal/domain-adapters/gateways"
	"eventpdf/internal/domain/interfaces"
	"eventpdf/internal/external-adapters/gpg"
)

// feedOptions bundles the acquisition and verification flags shared by the
// fetch and build commands.
type feedOptions struct {
	url      string
	destDir  string
	checksum string
	sigURL   string
	sigFile  string
	gpgKeys  string
	keysURL  string
	keyFile  string
}

func (o *feedOptions) register(fs *flag.FlagSet) {
	fs.StringVar(&o.destDir, "dest-dir", "input", "Directory for downloaded feeds")
	fs.StringVar(&o.checksum, "checksum", "", "Expected SHA256 checksum of the feed (hex)")
	fs.StringVar(&o.sigURL, "sig-url", "", "URL of the feed's detached GPG signature")
	fs.StringVar(&o.sigFile, "sig-file", "", "Local detached GPG signature file")
	fs.StringVar(&o.gpgKeys, "gpg-key-ids", "", "Comma-separated GPG key IDs to import")
	fs.StringVar(&o.keysURL, "gpg-keys-url", "", "URL to KEYS file for GPG verification")
	fs.StringVar(&o.keyFile, "gpg-key-file", "", "Local GPG public key file")
}

func (o *feedOptions) wantsVerification() bool {
	return o.checksum != "" || o.sigURL != "" || o.sigFile != ""
}

// acquireFeed downloads the feed and runs the requested verifications,
// returning the local feed path.
func acquireFeed(ctx context.Context, logger interfaces.Logger, opts *feedOptions) (string, error) {
	downloader := gateways.NewFeedDownloader(logger)

	var feedPath, sigPath string
	var err error
	if opts.sigURL != "" {
		feedPath, sigPath, err = downloader.FetchFeedWithSignature(ctx, opts.url, opts.sigURL, opts.destDir)
	} else {
		feedPath, err = downloader.FetchFeed(ctx, opts.url, opts.destDir)
		sigPath = opts.sigFile
	}
	if err != nil {
		return "", err
	}

	if err := verifyFeed(ctx, logger, feedPath, sigPath, opts); err != nil {
		return "", err
	}
	return feedPath, nil
}

// verifyFeed runs the requested checksum and signature checks against a feed
// that is already on disk. When sigPath is empty but --sig-url is set, the
// detached signature is streamed from that URL instead.
func verifyFeed(ctx context.Context, logger interfaces.Logger, feedPath, sigPath string, opts *feedOptions) error {
	if opts.checksum != "" {
		downloader := gateways.NewFeedDownloader(logger)
		if err := downloader.VerifyChecksum(ctx, feedPath, opts.checksum); err != nil {
			return err
		}
		logger.Info("checksum verified", interfaces.F("feed", feedPath))
	}

	if sigPath == "" && opts.sigURL == "" {
		return nil
	}

	verifier := gpg.NewVerifier()
	if err := importKeys(ctx, verifier, opts); err != nil {
		return err
	}
	var err error
	if sigPath != "" {
		err = verifier.VerifySignature(ctx, feedPath, sigPath)
	} else {
		err = verifier.VerifySignatureURL(ctx, feedPath, opts.sigURL)
	}
	if err != nil {
		return err
	}
	logger.Info("signature verified", interfaces.F("feed", feedPath))
	return nil
}

func importKeys(ctx context.Context, verifier *gpg.Verifier, opts *feedOptions) error {
	imported := false
	if opts.keyFile != "" {
		if err := verifier.ImportKeyFromFile(opts.keyFile); err != nil {
			return err
		}
		imported = true
	}
	if opts.keysURL != "" {
		if err := verifier.ImportKeysFromURL(ctx, opts.keysURL); err != nil {
			return err
		}
		imported = true
	}
	if opts.gpgKeys != "" {
		if err := verifier.ImportKeys(ctx, strings.Split(opts.gpgKeys, ",")); err != nil {
			return err
		}
		imported = true
	}
	if !imported {
		return fmt.Errorf("signature verification requested but no GPG keys given (use --gpg-key-ids, --gpg-keys-url, or --gpg-key-file)")
	}
	return nil
}

func runFetch(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("fetch", flag.ExitOnError)
	opts := &feedOptions{}
	opts.register(fs)
	verbose := fs.Bool("verbose", false, "Verbose output")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: eventpdf fetch <url> [options]

Download an event feed and optionally verify its checksum and GPG signature.

Examples:
  eventpdf fetch https://example.org/kursdaten.xml
  eventpdf fetch https://example.org/kursdaten.xml --checksum 3a5b...
  eventpdf fetch https://example.org/kursdaten.xml \
      --sig-url https://example.org/kursdaten.xml.asc --gpg-key-ids ABCD1234

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing flags: %v\n", err)
		os.Exit(1)
	}
	if fs.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Error: feed URL is required\n\n")
		fs.Usage()
		os.Exit(1)
	}
	opts.url = fs.Arg(0)

	logger := &interfaces.StderrLogger{Verbose: *verbose}
	feedPath, err := acquireFeed(ctx, logger, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(feedPath)
}
