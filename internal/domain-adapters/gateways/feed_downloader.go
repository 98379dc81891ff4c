// Package gateways contains adapters for acquiring and checking feed data.
package gateways

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"eventpdf/internal/domain/interfaces"
)

// FeedDownloader downloads XML feed documents over HTTP
type FeedDownloader struct {
	httpClient *http.Client
	logger     interfaces.Logger
}

// NewFeedDownloader creates a new feed downloader
func NewFeedDownloader(logger interfaces.Logger) *FeedDownloader {
	if logger == nil {
		logger = &interfaces.NoOpLogger{}
	}
	return &FeedDownloader{
		httpClient: &http.Client{
			Timeout: 2 * time.Minute,
		},
		logger: logger,
	}
}

// FetchFeed downloads the feed from url into destDir and returns the local
// path of the downloaded document.
func (d *FeedDownloader) FetchFeed(ctx context.Context, url, destDir string) (string, error) {
	if err := os.MkdirAll(destDir, 0750); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	filename := filepath.Base(url)
	if filename == "." || filename == "/" || filename == "" {
		filename = "feed.xml"
	}
	outputPath := filepath.Join(destDir, filename)

	if err := d.downloadFile(ctx, url, outputPath); err != nil {
		return "", fmt.Errorf("feed download failed: %w", err)
	}

	return outputPath, nil
}

// FetchFeedWithSignature downloads the feed and its detached signature
// concurrently and returns both local paths.
func (d *FeedDownloader) FetchFeedWithSignature(ctx context.Context, feedURL, sigURL, destDir string) (string, string, error) {
	if err := os.MkdirAll(destDir, 0750); err != nil {
		return "", "", fmt.Errorf("failed to create output directory: %w", err)
	}

	feedPath := filepath.Join(destDir, filepath.Base(feedURL))
	sigPath := filepath.Join(destDir, filepath.Base(sigURL))

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return d.downloadFile(ctx, feedURL, feedPath)
	})
	g.Go(func() error {
		return d.downloadFile(ctx, sigURL, sigPath)
	})
	if err := g.Wait(); err != nil {
		return "", "", fmt.Errorf("feed download failed: %w", err)
	}

	return feedPath, sigPath, nil
}

// VerifyChecksum verifies the feed's SHA256 checksum against a hex-encoded
// expected sum.
func (d *FeedDownloader) VerifyChecksum(_ context.Context, feedPath, expectedSum string) error {
	actualSum, err := d.CalculateChecksum(feedPath)
	if err != nil {
		return err
	}
	if actualSum != expectedSum {
		return fmt.Errorf("checksum mismatch: expected %s, got %s", expectedSum, actualSum)
	}
	return nil
}

// CalculateChecksum calculates the SHA256 checksum of a file
func (d *FeedDownloader) CalculateChecksum(filePath string) (string, error) {
	//nolint:gosec // G304: File path is user-provided for checksum calculation
	f, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	//nolint:errcheck // Defer close on read-only file
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("failed to hash file: %w", err)
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

// downloadFile downloads a file from URL to destination
func (d *FeedDownloader) downloadFile(ctx context.Context, url, dest string) error {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "eventpdf/1.0")

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("HTTP request failed: %w", err)
	}
	//nolint:errcheck // Defer close on HTTP response body
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	//nolint:gosec // G304: File path dest is the download destination
	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	//nolint:errcheck // Defer close on file being written
	defer out.Close()

	written, err := io.Copy(out, resp.Body)
	if err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	d.logger.Info("downloaded",
		interfaces.F("file", filepath.Base(dest)),
		interfaces.F("bytes", written))

	return nil
}
