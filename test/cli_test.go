package test_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// buildCLI builds the eventpdf CLI binary for testing
func buildCLI(t *testing.T) string {
	t.Helper()

	buildDir := filepath.Join("..", "test-dist", "cli-bin")
	if err := os.MkdirAll(buildDir, 0750); err != nil {
		t.Fatalf("Failed to create build dir: %v", err)
	}

	cliPath := filepath.Join(buildDir, "eventpdf")

	// Check if already built
	if _, err := os.Stat(cliPath); err == nil {
		return cliPath
	}

	t.Log("Building eventpdf CLI...")
	cmd := exec.Command("go", "build", "-o", cliPath, "../cmd/eventpdf") // #nosec G204 -- test code with controlled input
	cmd.Dir = filepath.Join("..", "test")

	if output, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build CLI: %v\nOutput: %s", err, output)
	}

	return cliPath
}

// TestCLI_Help tests help output for all commands
func TestCLI_Help(t *testing.T) {
	cliPath := buildCLI(t)

	commands := []string{
		"",
		"build",
		"fetch",
		"sections",
		"layouts",
		"validate",
	}

	for _, command := range commands {
		args := []string{"--help"}
		if command != "" {
			args = []string{command, "--help"}
		}

		cmd := exec.Command(cliPath, args...) // #nosec G204 -- test code with controlled input
		output, _ := cmd.CombinedOutput()

		if !strings.Contains(string(output), "Usage") {
			t.Errorf("help for %q missing usage text:\n%s", command, output)
		}
	}
}

func TestCLI_UnknownCommand(t *testing.T) {
	cliPath := buildCLI(t)

	cmd := exec.Command(cliPath, "frobnicate") // #nosec G204 -- test code with controlled input
	output, err := cmd.CombinedOutput()

	if err == nil {
		t.Error("unknown command should exit non-zero")
	}
	if !strings.Contains(string(output), "Unknown command") {
		t.Errorf("output missing unknown-command message:\n%s", output)
	}
}

func TestCLI_Layouts(t *testing.T) {
	cliPath := buildCLI(t)

	layoutsDir, err := filepath.Abs(filepath.Join("..", "layouts"))
	if err != nil {
		t.Fatalf("Failed to resolve layouts dir: %v", err)
	}

	cmd := exec.Command(cliPath, "layouts", "--dir", layoutsDir) // #nosec G204 -- test code with controlled input
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("layouts failed: %v\n%s", err, output)
	}
	if !strings.Contains(string(output), "Kursplan") {
		t.Errorf("layouts output missing the default layout:\n%s", output)
	}
}

func TestCLI_Layouts_EmptyDir(t *testing.T) {
	cliPath := buildCLI(t)

	cmd := exec.Command(cliPath, "layouts", "--dir", t.TempDir()) // #nosec G204 -- test code with controlled input
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("layouts failed: %v\n%s", err, output)
	}
	if !strings.Contains(string(output), "No layouts found") {
		t.Errorf("layouts output:\n%s", output)
	}
}

func TestCLI_Validate(t *testing.T) {
	cliPath := buildCLI(t)

	layoutPath, err := filepath.Abs(filepath.Join("..", "layouts", "default.yml"))
	if err != nil {
		t.Fatalf("Failed to resolve layout path: %v", err)
	}

	cmd := exec.Command(cliPath, "validate", layoutPath) // #nosec G204 -- test code with controlled input
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("validate failed: %v\n%s", err, output)
	}
	if !strings.Contains(string(output), "OK") {
		t.Errorf("validate output:\n%s", output)
	}
}

func TestCLI_Validate_BrokenLayout(t *testing.T) {
	cliPath := buildCLI(t)

	layoutPath := filepath.Join(t.TempDir(), "broken.yml")
	if err := os.WriteFile(layoutPath, []byte("columns: []\n"), 0600); err != nil {
		t.Fatalf("Failed to write layout: %v", err)
	}

	cmd := exec.Command(cliPath, "validate", layoutPath) // #nosec G204 -- test code with controlled input
	output, err := cmd.CombinedOutput()
	if err == nil {
		t.Error("validate should exit non-zero for a broken layout")
	}
	if !strings.Contains(string(output), "FAIL") {
		t.Errorf("validate output:\n%s", output)
	}
}

func TestCLI_Build_RequiresSource(t *testing.T) {
	cliPath := buildCLI(t)

	cmd := exec.Command(cliPath, "build") // #nosec G204 -- test code with controlled input
	output, err := cmd.CombinedOutput()
	if err == nil {
		t.Error("build without --input/--url should exit non-zero")
	}
	if !strings.Contains(string(output), "--input or --url") {
		t.Errorf("build output:\n%s", output)
	}
}
