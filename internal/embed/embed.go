// Package embed provides optional semantic chunking and vector indexing of
// source files. The whole feature is gated on an ONNX runtime library and a
// local embedding model being present; when either is missing every
// operation degrades to a no-op.
package embed

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"

	"github.com/saddle-tools/indexgen/internal/config"
	"github.com/saddle-tools/indexgen/internal/index"
)

const upsertBatchSize = 100

// Pipeline drives chunking, embedding, and vector storage.
type Pipeline struct {
	cfg       config.EmbedConfig
	available bool
}

// NewPipeline probes the environment once and returns a pipeline that is
// either fully functional or a no-op.
func NewPipeline(cfg config.EmbedConfig) *Pipeline {
	p := &Pipeline{cfg: cfg, available: Available(cfg)}
	if !p.available {
		slog.Debug("embed.unavailable", "model_path", cfg.ModelPath)
	}
	return p
}

// Available reports whether semantic indexing can run.
func (p *Pipeline) Available() bool {
	return p.available
}

// IndexCodebase chunks every indexed file, embeds the chunks, and upserts
// them into the vector store in batches. It returns the number of chunks
// produced; a failed batch is logged and skipped without reducing the
// count. When the feature is unavailable it returns 0 with no error.
func (p *Pipeline) IndexCodebase(idx index.CodebaseIndex, root string) (int, error) {
	if !p.available {
		return 0, nil
	}
	embedder, err := newONNXEmbedder(p.cfg)
	if err != nil {
		slog.Warn("embed.init_failed", "error", err)
		return 0, nil
	}
	defer embedder.Close()

	store, err := OpenStore(p.storePath(root))
	if err != nil {
		return 0, err
	}
	defer store.Close()

	paths := make([]string, 0, len(idx))
	for path := range idx {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	var chunks []Chunk
	for _, path := range paths {
		chunks = append(chunks, ChunkFile(filepath.Join(root, path), idx[path])...)
	}

	total := indexChunks(embedder, store, chunks)
	slog.Info("embed.indexed", "chunks", total, "files", len(paths))
	return total, nil
}

// indexChunks embeds and upserts chunks in batches and returns the total
// number of chunks processed, counting batches that failed to persist.
func indexChunks(embedder Embedder, store *Store, chunks []Chunk) int {
	for start := 0; start < len(chunks); start += upsertBatchSize {
		end := start + upsertBatchSize
		if end > len(chunks) {
			end = len(chunks)
		}
		batch := chunks[start:end]
		if err := upsert(embedder, store, batch); err != nil {
			slog.Warn("embed.batch_failed", "start", start, "count", len(batch), "error", err)
		}
	}
	return len(chunks)
}

func upsert(embedder Embedder, store *Store, batch []Chunk) error {
	texts := make([]string, len(batch))
	for i, c := range batch {
		texts[i] = c.Text
	}
	vectors, err := embedder.Embed(texts)
	if err != nil {
		return fmt.Errorf("embed batch: %w", err)
	}
	return store.UpsertBatch(batch, vectors)
}

// QueryResult is one semantic search hit.
type QueryResult struct {
	FilePath     string
	ChunkType    string
	FunctionName string
	StartLine    int
	EndLine      int
	Snippet      string
	Distance     float64
}

const snippetLen = 200

// Query embeds the text and returns the n nearest chunks. When the feature
// is unavailable it returns an empty result set with no error.
func (p *Pipeline) Query(root, text string, n int) ([]QueryResult, error) {
	if !p.available {
		return nil, nil
	}
	embedder, err := newONNXEmbedder(p.cfg)
	if err != nil {
		slog.Warn("embed.init_failed", "error", err)
		return nil, nil
	}
	defer embedder.Close()

	vectors, err := embedder.Embed([]string{text})
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}
	store, err := OpenStore(p.storePath(root))
	if err != nil {
		return nil, err
	}
	defer store.Close()

	hits, err := store.Search(vectors[0], n)
	if err != nil {
		return nil, err
	}
	results := make([]QueryResult, len(hits))
	for i, h := range hits {
		snippet := h.Chunk.Text
		if len(snippet) > snippetLen {
			snippet = snippet[:snippetLen]
		}
		results[i] = QueryResult{
			FilePath:     h.Chunk.FilePath,
			ChunkType:    h.Chunk.ChunkType,
			FunctionName: h.Chunk.FunctionName,
			StartLine:    h.Chunk.StartLine,
			EndLine:      h.Chunk.EndLine,
			Snippet:      snippet,
			Distance:     h.Distance,
		}
	}
	return results, nil
}

func (p *Pipeline) storePath(root string) string {
	if p.cfg.StorePath != "" {
		return p.cfg.StorePath
	}
	return filepath.Join(root, ".indexgen.db")
}
