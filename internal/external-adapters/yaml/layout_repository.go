package yaml

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"eventpdf/internal/domain/entities"
)

// LayoutRepository implements repositories.LayoutRepository using YAML files
type LayoutRepository struct {
	layoutsDir string
	parser     *LayoutParser
}

// NewLayoutRepository creates a new YAML-based layout repository
func NewLayoutRepository(layoutsDir string) *LayoutRepository {
	return &LayoutRepository{
		layoutsDir: layoutsDir,
		parser:     NewLayoutParser(),
	}
}

// GetLayout retrieves a layout by name. A name carrying a .yml or .yaml
// suffix is treated as a path relative to the layouts directory.
func (r *LayoutRepository) GetLayout(_ context.Context, name string) (*entities.Layout, error) {
	filePath := filepath.Join(r.layoutsDir, name)
	if !strings.HasSuffix(name, ".yml") && !strings.HasSuffix(name, ".yaml") {
		filePath += ".yml"
	}

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("layout not found: %s", name)
	}

	return r.parser.ParseFile(filePath)
}

// ListLayouts returns all available layouts
func (r *LayoutRepository) ListLayouts(_ context.Context) ([]*entities.Layout, error) {
	entries, err := os.ReadDir(r.layoutsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read layouts directory: %w", err)
	}

	layouts := make([]*entities.Layout, 0)
	for _, entry := range entries {
		// Skip non-YAML files
		if entry.IsDir() || (!strings.HasSuffix(entry.Name(), ".yml") && !strings.HasSuffix(entry.Name(), ".yaml")) {
			continue
		}

		filePath := filepath.Join(r.layoutsDir, entry.Name())
		layout, err := r.parser.ParseFile(filePath)
		if err != nil {
			// Log warning but continue processing other files
			fmt.Fprintf(os.Stderr, "Warning: failed to parse %s: %v\n", entry.Name(), err)
			continue
		}

		layouts = append(layouts, layout)
	}

	return layouts, nil
}
