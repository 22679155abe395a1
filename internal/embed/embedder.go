package embed

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/knights-analytics/hugot"
	"github.com/knights-analytics/hugot/options"
	"github.com/knights-analytics/hugot/pipelines"

	"github.com/saddle-tools/indexgen/internal/config"
)

// Embedder turns text into vectors.
type Embedder interface {
	Embed(texts []string) ([][]float32, error)
	Close() error
}

// Available is the capability predicate for the optional pipeline: the ONNX
// runtime shared library must be resolvable and the embedding model present
// on disk. Every pipeline operation is a no-op when this returns false;
// callers branch on it, never on errors.
func Available(cfg config.EmbedConfig) bool {
	if ortLibraryDir(cfg.ORTLibraryPath) == "" {
		return false
	}
	if cfg.ModelPath == "" {
		return false
	}
	info, err := os.Stat(cfg.ModelPath)
	return err == nil && info.IsDir()
}

// ortLibraryDir resolves the directory holding the onnxruntime shared
// library, probing the usual install locations when no explicit path is
// configured.
func ortLibraryDir(explicit string) string {
	if explicit != "" {
		if _, err := os.Stat(filepath.Join(explicit, ortLibraryName())); err == nil {
			return explicit
		}
		return ""
	}

	candidates := []string{
		"/usr/lib",
		"/usr/local/lib",
		"/usr/lib/x86_64-linux-gnu",
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".indexgen", "lib"))
	}

	for _, dir := range candidates {
		if _, err := os.Stat(filepath.Join(dir, ortLibraryName())); err == nil {
			return dir
		}
	}
	return ""
}

func ortLibraryName() string {
	if runtime.GOOS == "darwin" {
		return "libonnxruntime.dylib"
	}
	return "libonnxruntime.so"
}

// onnxEmbedder runs a hugot feature-extraction pipeline over the local
// model.
type onnxEmbedder struct {
	session  *hugot.Session
	pipeline *pipelines.FeatureExtractionPipeline
}

// newONNXEmbedder loads the model. Call only after Available returned true.
func newONNXEmbedder(cfg config.EmbedConfig) (*onnxEmbedder, error) {
	sessionOpts := []options.WithOption{
		options.WithIntraOpNumThreads(runtime.NumCPU()),
	}
	if dir := ortLibraryDir(cfg.ORTLibraryPath); dir != "" {
		sessionOpts = append(sessionOpts, options.WithOnnxLibraryPath(dir))
	}

	session, err := hugot.NewORTSession(sessionOpts...)
	if err != nil {
		return nil, fmt.Errorf("create ORT session: %w", err)
	}

	pipeline, err := hugot.NewPipeline(session, hugot.FeatureExtractionConfig{
		ModelPath: cfg.ModelPath,
		Name:      "indexgen-embedder",
	})
	if err != nil {
		session.Destroy()
		return nil, fmt.Errorf("create pipeline: %w", err)
	}

	return &onnxEmbedder{session: session, pipeline: pipeline}, nil
}

func (e *onnxEmbedder) Embed(texts []string) ([][]float32, error) {
	output, err := e.pipeline.RunPipeline(texts)
	if err != nil {
		return nil, fmt.Errorf("inference: %w", err)
	}
	return output.Embeddings, nil
}

func (e *onnxEmbedder) Close() error {
	if e.session != nil {
		e.session.Destroy()
		e.session = nil
	}
	e.pipeline = nil
	return nil
}
