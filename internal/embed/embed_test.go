package embed

import (
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/saddle-tools/indexgen/internal/config"
	"github.com/saddle-tools/indexgen/internal/index"
)

func unavailableConfig(t *testing.T) config.EmbedConfig {
	t.Helper()
	missing := filepath.Join(t.TempDir(), "nope")
	return config.EmbedConfig{ModelPath: missing, ORTLibraryPath: missing}
}

func TestPipelineUnavailableIsNoOp(t *testing.T) {
	p := NewPipeline(unavailableConfig(t))
	if p.Available() {
		t.Fatal("pipeline should be unavailable without a model")
	}

	idx := index.CodebaseIndex{"a.py": {Path: "a.py", Functions: []string{"f"}}}
	n, err := p.IndexCodebase(idx, t.TempDir())
	if err != nil {
		t.Fatalf("IndexCodebase: %v", err)
	}
	if n != 0 {
		t.Errorf("chunks = %d, want 0", n)
	}

	results, err := p.Query(t.TempDir(), "session handling", 5)
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("results = %v, want none", results)
	}
}

// flakyEmbedder fails its first Embed call and succeeds afterwards.
type flakyEmbedder struct {
	calls int
}

func (e *flakyEmbedder) Embed(texts []string) ([][]float32, error) {
	e.calls++
	if e.calls == 1 {
		return nil, errors.New("inference failed")
	}
	vectors := make([][]float32, len(texts))
	for i := range texts {
		vectors[i] = []float32{1, 0, 0}
	}
	return vectors, nil
}

func (e *flakyEmbedder) Close() error { return nil }

func TestIndexChunksCountsFailedBatches(t *testing.T) {
	store, err := OpenStore(filepath.Join(t.TempDir(), "vectors.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	chunks := make([]Chunk, upsertBatchSize+1)
	for i := range chunks {
		chunks[i] = Chunk{ID: fmt.Sprintf("c%03d", i), FilePath: "a.py", Text: "def f(): pass"}
	}

	// The first batch fails to embed; the total still reflects every chunk
	// produced, while only the surviving batch reaches the store.
	total := indexChunks(&flakyEmbedder{}, store, chunks)
	if total != len(chunks) {
		t.Errorf("total = %d, want %d", total, len(chunks))
	}
	stored, err := store.Count()
	if err != nil {
		t.Fatal(err)
	}
	if stored != 1 {
		t.Errorf("stored = %d, want 1", stored)
	}
}

func TestStoreUpsertAndSearch(t *testing.T) {
	store, err := OpenStore(filepath.Join(t.TempDir(), "vectors.db"))
	if err != nil {
		t.Fatalf("OpenStore: %v", err)
	}
	defer store.Close()

	chunks := []Chunk{
		{ID: "aaa", FilePath: "a.py", ChunkType: "function", FunctionName: "f", StartLine: 1, EndLine: 10, Text: "def f(): pass"},
		{ID: "bbb", FilePath: "b.py", ChunkType: "file", StartLine: 1, EndLine: 5, Text: "notes"},
	}
	vectors := [][]float32{
		{1, 0, 0},
		{0, 1, 0},
	}
	if err := store.UpsertBatch(chunks, vectors); err != nil {
		t.Fatalf("UpsertBatch: %v", err)
	}

	hits, err := store.Search([]float32{1, 0.1, 0}, 1)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(hits) != 1 {
		t.Fatalf("hits = %d, want 1", len(hits))
	}
	if hits[0].Chunk.ID != "aaa" {
		t.Errorf("nearest = %q, want aaa", hits[0].Chunk.ID)
	}
	if hits[0].Distance < 0 || hits[0].Distance > 1 {
		t.Errorf("distance out of range: %v", hits[0].Distance)
	}

	// Upserting the same IDs replaces rather than duplicates.
	if err := store.UpsertBatch(chunks, vectors); err != nil {
		t.Fatalf("UpsertBatch again: %v", err)
	}
	n, err := store.Count()
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Errorf("count = %d, want 2", n)
	}
}

func TestUpsertBatchLengthMismatch(t *testing.T) {
	store, err := OpenStore(filepath.Join(t.TempDir(), "vectors.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	err = store.UpsertBatch([]Chunk{{ID: "x"}}, nil)
	if err == nil {
		t.Fatal("expected mismatch error")
	}
}
