package embed

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/saddle-tools/indexgen/internal/index"
)

func writeSource(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestChunkFilePerFunction(t *testing.T) {
	var b strings.Builder
	b.WriteString("def first():\n    pass\n\n")
	for i := 0; i < 60; i++ {
		b.WriteString("x = 1\n")
	}
	b.WriteString("def second():\n    pass\n")
	path := writeSource(t, "m.py", b.String())

	fi := &index.FileIndex{Path: "m.py", Functions: []string{"first", "second"}}
	chunks := ChunkFile(path, fi)
	if len(chunks) != 2 {
		t.Fatalf("expected 2 chunks, got %d", len(chunks))
	}

	first := chunks[0]
	if first.ChunkType != "function" || first.FunctionName != "first" {
		t.Errorf("chunk = %+v", first)
	}
	if first.StartLine != 1 {
		t.Errorf("StartLine = %d, want 1", first.StartLine)
	}
	if got := first.EndLine - first.StartLine + 1; got != functionWindowLines {
		t.Errorf("window = %d lines, want %d", got, functionWindowLines)
	}
	if !strings.HasPrefix(first.Text, "def first():") {
		t.Errorf("chunk text starts with %q", first.Text[:20])
	}
}

func TestChunkFileWholeFileFallback(t *testing.T) {
	content := strings.Repeat("configuration line\n", 20)
	path := writeSource(t, "notes.py", content)

	fi := &index.FileIndex{Path: "notes.py"}
	chunks := ChunkFile(path, fi)
	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
	c := chunks[0]
	if c.ChunkType != "file" {
		t.Errorf("ChunkType = %q, want file", c.ChunkType)
	}
	if !strings.HasSuffix(c.ID, "_file") {
		t.Errorf("ID = %q, want _file suffix", c.ID)
	}
	if c.StartLine != 1 {
		t.Errorf("StartLine = %d, want 1", c.StartLine)
	}
}

func TestChunkFileTruncatesLargeFallback(t *testing.T) {
	content := strings.Repeat("a", fileChunkMaxBytes+500)
	path := writeSource(t, "big.txt", content)

	chunks := ChunkFile(path, &index.FileIndex{Path: "big.txt"})
	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
	if len(chunks[0].Text) != fileChunkMaxBytes {
		t.Errorf("chunk size = %d, want %d", len(chunks[0].Text), fileChunkMaxBytes)
	}
}

func TestChunkIDsStable(t *testing.T) {
	path := writeSource(t, "m.py", "def f():\n    pass\n")
	fi := &index.FileIndex{Path: "m.py", Functions: []string{"f"}}

	a := ChunkFile(path, fi)
	b := ChunkFile(path, fi)
	if a[0].ID != b[0].ID {
		t.Errorf("IDs differ across runs: %q vs %q", a[0].ID, b[0].ID)
	}
	if len(a[0].ID) != 12 {
		t.Errorf("ID length = %d, want 12", len(a[0].ID))
	}
}

func TestChunkFileUnreadable(t *testing.T) {
	chunks := ChunkFile(filepath.Join(t.TempDir(), "missing.py"), &index.FileIndex{Path: "missing.py"})
	if chunks != nil {
		t.Errorf("expected nil for unreadable file, got %v", chunks)
	}
}
