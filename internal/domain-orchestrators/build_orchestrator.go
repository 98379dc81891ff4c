// Package orchestrators coordinates complex workflows across multiple domain services.
package orchestrators

import (
	"context"
	"fmt"
	"time"

	"eventpdf/internal/domain/entities"
	"eventpdf/internal/domain/interfaces"
	"eventpdf/internal/domain/interfaces/gateways"
	"eventpdf/internal/domain/interfaces/repositories"
	"eventpdf/internal/domain/services"
)

// FeedParser interface for parsing feed documents into events
type FeedParser interface {
	ParseFile(filePath string) ([]*entities.Event, error)
}

// Renderer interface for writing the assembled tables to a document
type Renderer interface {
	Render(layout *entities.Layout, tables []*entities.Table, outputPath string) error
}

// BuildOrchestrator coordinates the complete feed-to-PDF workflow
type BuildOrchestrator struct {
	layoutRepo repositories.LayoutRepository
	fetcher    gateways.FeedFetcher
	parser     FeedParser
	sorter     *services.Sorter
	assembler  *services.Assembler
	renderer   Renderer
	logger     interfaces.Logger
	workDir    string
}

// BuildOrchestratorConfig holds configuration for the orchestrator
type BuildOrchestratorConfig struct {
	// WorkDir receives downloaded feeds, defaults to "input"
	WorkDir string
	Logger  interfaces.Logger
}

// NewBuildOrchestrator creates a new build orchestrator
func NewBuildOrchestrator(
	layoutRepo repositories.LayoutRepository,
	fetcher gateways.FeedFetcher,
	parser FeedParser,
	renderer Renderer,
	config BuildOrchestratorConfig,
) *BuildOrchestrator {
	workDir := config.WorkDir
	if workDir == "" {
		workDir = "input"
	}
	logger := config.Logger
	if logger == nil {
		logger = &interfaces.NoOpLogger{}
	}

	return &BuildOrchestrator{
		layoutRepo: layoutRepo,
		fetcher:    fetcher,
		parser:     parser,
		sorter:     services.NewSorter(),
		assembler:  services.NewAssembler(logger),
		renderer:   renderer,
		logger:     logger,
		workDir:    workDir,
	}
}

// BuildRequest describes one document build. Exactly one of FeedPath and
// FeedURL must be set.
type BuildRequest struct {
	LayoutName string
	FeedPath   string
	FeedURL    string
	OutputPath string
}

// BuildResult contains the result of a build operation
type BuildResult struct {
	Layout        *entities.Layout
	Events        int
	Matched       int
	Dropped       int
	Tables        []*entities.Table
	FetchDuration time.Duration
	TotalDuration time.Duration
	Success       bool
	Error         error
}

// BuildDocument executes the complete workflow: resolve the layout, acquire
// the feed, parse and sort the events, assemble the sections, and render the
// PDF.
func (o *BuildOrchestrator) BuildDocument(ctx context.Context, req BuildRequest) (*BuildResult, error) {
	startTime := time.Now()
	result := &BuildResult{}

	// Step 1: Resolve the layout
	layout, err := o.layoutRepo.GetLayout(ctx, req.LayoutName)
	if err != nil {
		result.Error = fmt.Errorf("failed to load layout: %w", err)
		return result, result.Error
	}
	result.Layout = layout

	// Step 2: Acquire the feed
	feedPath := req.FeedPath
	if feedPath == "" {
		if req.FeedURL == "" {
			result.Error = fmt.Errorf("either a feed path or a feed URL is required")
			return result, result.Error
		}
		fetchStart := time.Now()
		feedPath, err = o.fetcher.FetchFeed(ctx, req.FeedURL, o.workDir)
		if err != nil {
			result.Error = fmt.Errorf("failed to fetch feed: %w", err)
			return result, result.Error
		}
		result.FetchDuration = time.Since(fetchStart)
	}

	// Step 3: Parse the feed into events
	events, err := o.parser.ParseFile(feedPath)
	if err != nil {
		result.Error = fmt.Errorf("failed to parse feed: %w", err)
		return result, result.Error
	}
	result.Events = len(events)
	o.logger.Info("parsed feed",
		interfaces.F("feed", feedPath),
		interfaces.F("events", len(events)))

	// Step 4: Sort and distribute into sections
	o.sorter.Sort(events)
	assembly := o.assembler.Assemble(layout, events)
	result.Matched = assembly.Matched
	result.Dropped = assembly.Dropped
	result.Tables = assembly.Tables

	// Step 5: Render the document
	if err := o.renderer.Render(layout, assembly.Tables, req.OutputPath); err != nil {
		result.Error = fmt.Errorf("failed to render document: %w", err)
		return result, result.Error
	}

	result.Success = true
	result.TotalDuration = time.Since(startTime)
	return result, nil
}

// Summary returns a human-readable summary of the build
func (r *BuildResult) Summary() string {
	if !r.Success {
		return fmt.Sprintf("Build failed: %v", r.Error)
	}

	summary := fmt.Sprintf(`Build successful!
Layout: %s
Events: %d (%d placed, %d without section)
Sections:`,
		r.Layout.Title,
		r.Events,
		r.Matched,
		r.Dropped,
	)
	for _, table := range r.Tables {
		summary += fmt.Sprintf("\n  %s: %d rows", table.Title, len(table.Rows))
	}
	summary += fmt.Sprintf("\nTotal: %v", r.TotalDuration)
	return summary
}
