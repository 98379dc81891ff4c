// Package gateways defines interfaces for external data acquisition.
package gateways

import "context"

// FeedFetcher defines the interface for acquiring the event feed
type FeedFetcher interface {
	// FetchFeed downloads the feed from url into destDir and returns the
	// local path of the downloaded document
	FetchFeed(ctx context.Context, url, destDir string) (string, error)
}
