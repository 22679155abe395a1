package index

import (
	"os"
	"os/exec"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/saddle-tools/indexgen/internal/discover"
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

func newTestBuilder(root string) *Builder {
	registry := lang.NewRegistry()
	return NewBuilder(registry, discover.NewSelector(registry, nil, ""), root)
}

func TestBuildFull(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "app.py", "import os\nimport helpers\n\ndef main():\n    pass\n")
	writeFile(t, dir, "pkg/util.py", "def helper():\n    pass\n")

	idx := newTestBuilder(dir).BuildFull()
	if len(idx) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(idx))
	}

	fi := idx["app.py"]
	if fi == nil {
		t.Fatal("missing app.py entry")
	}
	if fi.Path != "app.py" || fi.Language != "python" {
		t.Errorf("entry = %+v", fi)
	}
	if want := []string{"main"}; !reflect.DeepEqual(fi.Functions, want) {
		t.Errorf("Functions = %v, want %v", fi.Functions, want)
	}
	if want := []string{"os", "helpers"}; !reflect.DeepEqual(fi.Imports, want) {
		t.Errorf("Imports = %v, want %v", fi.Imports, want)
	}
	if fi.LastModified == "" {
		t.Error("LastModified not set")
	}
	if fi.LinesOfCode != 4 {
		t.Errorf("LinesOfCode = %d, want 4", fi.LinesOfCode)
	}
	if fi.Classes == nil || fi.Decorators == nil {
		t.Error("empty lists must stay non-nil for stable JSON")
	}
}

func TestBuildFullDeterministic(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.py", "def one():\n    pass\n")
	writeFile(t, dir, "b.js", "function two() {}\n")

	b := newTestBuilder(dir)
	first := b.BuildFull()
	second := b.BuildFull()
	if !reflect.DeepEqual(first, second) {
		t.Error("repeated full builds over an unchanged tree differ")
	}
}

func TestBuildIncrementalNilPriorFallsBack(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "app.py", "def main():\n    pass\n")

	idx := newTestBuilder(dir).BuildIncremental(nil)
	if len(idx) != 1 {
		t.Fatalf("expected full rebuild, got %d entries", len(idx))
	}
}

func TestBuildIncrementalKeepsUntouchedEntries(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "app.py", "def main():\n    pass\n")

	// Outside a git repo no files report as changed; every prior entry
	// must survive verbatim, even ones whose backing file is gone.
	prior := CodebaseIndex{
		"stale.py": {Path: "stale.py", Language: "python", Functions: []string{"old"}},
	}
	idx := newTestBuilder(dir).BuildIncremental(prior)
	if got := idx["stale.py"]; got == nil || got.Functions[0] != "old" {
		t.Errorf("prior entry modified: %+v", got)
	}
}

func gitRun(t *testing.T, dir string, args ...string) {
	t.Helper()
	base := []string{
		"-c", "user.name=index test",
		"-c", "user.email=index@test.invalid",
	}
	cmd := exec.Command("git", append(base, args...)...)
	cmd.Dir = dir
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("git %v: %v\n%s", args, err, out)
	}
}

func TestBuildIncrementalMergesChangedFiles(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}
	dir := t.TempDir()
	writeFile(t, dir, "a.py", "def one():\n    pass\n")
	writeFile(t, dir, "b.py", "def two():\n    pass\n")
	gitRun(t, dir, "init", "-q")
	gitRun(t, dir, "add", ".")
	gitRun(t, dir, "commit", "-q", "-m", "first")

	writeFile(t, dir, "a.py", "def one():\n    pass\n\ndef extra():\n    pass\n")
	gitRun(t, dir, "add", ".")
	gitRun(t, dir, "commit", "-q", "-m", "second")

	// Sentinel entries prove which paths get re-parsed: only the file the
	// diff reports may be overwritten.
	prior := CodebaseIndex{
		"a.py": {Path: "a.py", Language: "python", Functions: []string{"sentinel_a"}},
		"b.py": {Path: "b.py", Language: "python", Functions: []string{"sentinel_b"}},
	}
	idx := newTestBuilder(dir).BuildIncremental(prior)

	a := idx["a.py"]
	if a == nil {
		t.Fatal("a.py missing")
	}
	if want := []string{"one", "extra"}; !reflect.DeepEqual(a.Functions, want) {
		t.Errorf("a.py Functions = %v, want %v", a.Functions, want)
	}
	b := idx["b.py"]
	if b == nil || len(b.Functions) != 1 || b.Functions[0] != "sentinel_b" {
		t.Errorf("b.py was re-parsed: %+v", b)
	}
	if len(idx) != 2 {
		t.Errorf("entry count = %d, want 2", len(idx))
	}
}

func TestPruneRemovesDeletedFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "keep.py", "x = 1\n")

	idx := CodebaseIndex{
		"keep.py": {Path: "keep.py"},
		"gone.py": {Path: "gone.py"},
	}
	Prune(idx, dir)
	if _, ok := idx["gone.py"]; ok {
		t.Error("gone.py not pruned")
	}
	if _, ok := idx["keep.py"]; !ok {
		t.Error("keep.py wrongly pruned")
	}
}

func TestParseTimeLayouts(t *testing.T) {
	for _, iso := range []string{
		"2024-03-01T10:20:30.123456",
		"2024-03-01T10:20:30Z",
		"2024-03-01T10:20:30",
	} {
		if _, ok := ParseTime(iso); !ok {
			t.Errorf("ParseTime(%q) failed", iso)
		}
	}
	if _, ok := ParseTime("not-a-date"); ok {
		t.Error("ParseTime accepted garbage")
	}
}
