package yaml

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

const repoLayout = `title: Kursplan
columns:
  - title: Kurs
    tags: [Bezeichnung]
    width_mm: 30
sections:
  - title: Alles
`

func writeLayout(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write layout: %v", err)
	}
}

func TestLayoutRepository_GetLayout(t *testing.T) {
	dir := t.TempDir()
	writeLayout(t, dir, "default.yml", repoLayout)
	repo := NewLayoutRepository(dir)

	layout, err := repo.GetLayout(context.Background(), "default")
	if err != nil {
		t.Fatalf("GetLayout() error = %v", err)
	}
	if layout.Title != "Kursplan" {
		t.Errorf("Title = %q", layout.Title)
	}
}

func TestLayoutRepository_GetLayout_WithSuffix(t *testing.T) {
	dir := t.TempDir()
	writeLayout(t, dir, "plan.yaml", repoLayout)
	repo := NewLayoutRepository(dir)

	if _, err := repo.GetLayout(context.Background(), "plan.yaml"); err != nil {
		t.Errorf("GetLayout() error = %v", err)
	}
}

func TestLayoutRepository_GetLayout_NotFound(t *testing.T) {
	repo := NewLayoutRepository(t.TempDir())

	if _, err := repo.GetLayout(context.Background(), "missing"); err == nil {
		t.Error("GetLayout() should fail for a missing layout")
	}
}

func TestLayoutRepository_ListLayouts_SkipsBrokenFiles(t *testing.T) {
	dir := t.TempDir()
	writeLayout(t, dir, "good.yml", repoLayout)
	writeLayout(t, dir, "broken.yml", "title: [")
	writeLayout(t, dir, "notes.txt", "not a layout")
	repo := NewLayoutRepository(dir)

	layouts, err := repo.ListLayouts(context.Background())
	if err != nil {
		t.Fatalf("ListLayouts() error = %v", err)
	}
	if len(layouts) != 1 {
		t.Errorf("ListLayouts() returned %d layouts, want 1", len(layouts))
	}
}
