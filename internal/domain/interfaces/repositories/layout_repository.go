// Package repositories defines interfaces for data access layers.
package repositories

import (
	"context"

	"eventpdf/internal/domain/entities"
)

// LayoutRepository defines the interface for accessing table layouts
type LayoutRepository interface {
	// GetLayout retrieves a layout by name
	GetLayout(ctx context.Context, name string) (*entities.Layout, error)

	// ListLayouts returns all available layouts
	ListLayouts(ctx context.Context) ([]*entities.Layout, error)
}
