package discover

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/saddle-tools/indexgen/internal/lang"
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

func newTestSelector(exclude []string, ignoreFile string) *Selector {
	return NewSelector(lang.NewRegistry(), exclude, ignoreFile)
}

func TestSelectBasic(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "main.py", "def main(): pass\n")
	writeFile(t, dir, "util.go", "package util\n")
	writeFile(t, dir, "README.md", "# readme\n")

	files := newTestSelector(nil, "").Select(dir)
	if len(files) != 2 {
		t.Fatalf("expected 2 files, got %d", len(files))
	}
	for _, f := range files {
		if f.Path == "" || f.RelPath == "" || f.Language == "" {
			t.Errorf("incomplete FileInfo: %+v", f)
		}
	}
}

func TestSelectSortedByPath(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "z.py", "x = 1\n")
	writeFile(t, dir, "a.py", "x = 1\n")
	writeFile(t, dir, "sub/m.py", "x = 1\n")

	files := newTestSelector(nil, "").Select(dir)
	rels := make([]string, len(files))
	for i, f := range files {
		rels[i] = f.RelPath
	}
	if !sort.StringsAreSorted(rels) {
		t.Errorf("result not sorted: %v", rels)
	}
}

func TestSelectExclusionSubstrings(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "app.py", "x = 1\n")
	writeFile(t, dir, "node_modules/lib/x.js", "var x = 1\n")
	writeFile(t, dir, "__pycache__/app.py", "x = 1\n")
	writeFile(t, dir, ".venv/lib/y.py", "x = 1\n")

	files := newTestSelector([]string{"node_modules", "__pycache__", ".venv"}, "").Select(dir)
	if len(files) != 1 || files[0].RelPath != "app.py" {
		t.Fatalf("expected only app.py, got %+v", files)
	}
}

func TestSelectIgnoreFileGlobs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "app.py", "x = 1\n")
	writeFile(t, dir, "gen/schema.py", "x = 1\n")
	writeFile(t, dir, "legacy_v1.py", "x = 1\n")
	writeFile(t, dir, ".indexignore", "# generated code\ngen/*\nlegacy_*.py\n\n")

	files := newTestSelector(nil, ".indexignore").Select(dir)
	if len(files) != 1 || files[0].RelPath != "app.py" {
		t.Fatalf("expected only app.py, got %+v", files)
	}
}

func TestSelectMissingRoot(t *testing.T) {
	files := newTestSelector(nil, "").Select(filepath.Join(t.TempDir(), "nope"))
	if len(files) != 0 {
		t.Fatalf("expected empty result for missing root, got %d files", len(files))
	}
}
