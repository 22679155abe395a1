package pipeline

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/saddle-tools/indexgen/internal/config"
	"github.com/saddle-tools/indexgen/internal/index"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func seedRepo(t *testing.T) string {
	dir := t.TempDir()
	writeFile(t, dir, "main.py", "import helpers\n\ndef main():\n    pass\n")
	writeFile(t, dir, "helpers.py", "def assist():\n    pass\n")
	writeFile(t, dir, "node_modules/x.js", "var x = 1\n")
	return dir
}

func TestRunFullWritesArtifacts(t *testing.T) {
	dir := seedRepo(t)
	out := t.TempDir()

	p, err := New(config.Default(), dir, out)
	if err != nil {
		t.Fatal(err)
	}
	result, err := p.Run(true)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if result.Mode != "full" {
		t.Errorf("Mode = %q, want full", result.Mode)
	}
	if result.Stats.TotalFiles != 2 {
		t.Errorf("TotalFiles = %d, want 2", result.Stats.TotalFiles)
	}

	for _, name := range []string{index.IndexFileName, GraphFileName, StaleFileName, ReportFileName} {
		if _, err := os.Stat(filepath.Join(out, name)); err != nil {
			t.Errorf("artifact %s missing: %v", name, err)
		}
	}

	report, err := os.ReadFile(filepath.Join(out, ReportFileName))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(report), "# Codebase Index") {
		t.Error("report header missing")
	}
}

func TestRunIncrementalReusesPrior(t *testing.T) {
	dir := seedRepo(t)
	out := t.TempDir()

	p, err := New(config.Default(), dir, out)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := p.Run(true); err != nil {
		t.Fatal(err)
	}

	result, err := p.Run(false)
	if err != nil {
		t.Fatalf("incremental Run: %v", err)
	}
	if result.Mode != "incremental" {
		t.Errorf("Mode = %q, want incremental", result.Mode)
	}
	if result.Stats.TotalFiles != 2 {
		t.Errorf("TotalFiles = %d, want 2", result.Stats.TotalFiles)
	}
}

func TestRunIncrementalMalformedPriorFallsBack(t *testing.T) {
	dir := seedRepo(t)
	out := t.TempDir()
	writeFile(t, out, index.IndexFileName, "{broken")

	p, err := New(config.Default(), dir, out)
	if err != nil {
		t.Fatal(err)
	}
	result, err := p.Run(false)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.Mode != "full" {
		t.Errorf("Mode = %q, want full fallback", result.Mode)
	}
	if result.Stats.TotalFiles != 2 {
		t.Errorf("TotalFiles = %d, want 2", result.Stats.TotalFiles)
	}
}
