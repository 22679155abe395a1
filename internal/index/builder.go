package index

import (
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/saddle-tools/indexgen/internal/discover"
	"github.com/saddle-tools/indexgen/internal/extract"
	"github.com/saddle-tools/indexgen/internal/gitdiff"
	"github.com/saddle-tools/indexgen/internal/lang"
)

// baselineRef is the revision incremental runs diff against.
const baselineRef = "HEAD~1"

// Builder produces CodebaseIndex values from a source tree. Files are
// processed strictly sequentially in selector order.
type Builder struct {
	Registry *lang.Registry
	Selector *discover.Selector
	Root     string
}

// NewBuilder wires a builder over an absolute or relative root path.
func NewBuilder(registry *lang.Registry, selector *discover.Selector, root string) *Builder {
	return &Builder{Registry: registry, Selector: selector, Root: root}
}

// BuildFull re-parses every selected file and returns a fresh index.
func (b *Builder) BuildFull() CodebaseIndex {
	idx := make(CodebaseIndex)
	for _, f := range b.Selector.Select(b.Root) {
		if fi := b.ParseFile(f.Path, f.RelPath, f.Language); fi != nil {
			idx[f.RelPath] = fi
		}
	}
	return idx
}

// BuildIncremental merges re-parsed entries for files changed since the
// baseline revision into the prior index. Entries for unchanged files are
// left untouched; entries for deleted files are not pruned here (see Prune).
// A nil prior index degrades to a full rebuild.
func (b *Builder) BuildIncremental(prior CodebaseIndex) CodebaseIndex {
	if prior == nil {
		slog.Debug("index.incremental.no_prior")
		return b.BuildFull()
	}

	changed := gitdiff.ChangedFiles(b.Root, baselineRef)
	slog.Debug("index.incremental", "changed", len(changed))

	for _, rel := range changed {
		abs := filepath.Join(b.Root, filepath.FromSlash(rel))
		if _, err := os.Stat(abs); err != nil {
			continue
		}
		language, ok := b.Registry.LanguageForExtension(filepath.Ext(rel))
		if !ok {
			continue
		}
		if fi := b.ParseFile(abs, filepath.ToSlash(rel), language); fi != nil {
			prior[filepath.ToSlash(rel)] = fi
		}
	}
	return prior
}

// Prune drops entries whose backing file no longer exists under the root.
// It runs only during full rebuilds; incremental merges never remove
// entries.
func Prune(idx CodebaseIndex, root string) {
	for rel := range idx {
		if _, err := os.Stat(filepath.Join(root, filepath.FromSlash(rel))); err != nil {
			slog.Debug("index.prune", "path", rel)
			delete(idx, rel)
		}
	}
}

// ParseFile extracts one FileIndex. Returns nil when the strategy yields no
// facts (unreadable or invalid input).
func (b *Builder) ParseFile(path, relPath string, language lang.Language) *FileIndex {
	spec := b.Registry.ForLanguage(language)
	if spec == nil {
		return nil
	}

	facts := extract.ForLanguage(spec).Extract(path)
	if facts == nil {
		slog.Debug("index.parse.skip", "path", relPath)
		return nil
	}

	return &FileIndex{
		Path:           relPath,
		Language:       string(facts.Language),
		Functions:      emptyNotNil(facts.Functions),
		Classes:        emptyNotNil(facts.Classes),
		Imports:        emptyNotNil(facts.Imports),
		Decorators:     emptyNotNil(facts.Decorators),
		Docstring:      facts.Docstring,
		ClassMethods:   facts.ClassMethods,
		AsyncFunctions: facts.AsyncFunctions,
		LastModified:   lastModified(path),
		LinesOfCode:    extract.CountLinesOfCode(path, spec.Comments),
	}
}

// lastModified returns the file mtime in ISO form, empty when unavailable.
func lastModified(path string) string {
	info, err := os.Stat(path)
	if err != nil {
		return ""
	}
	return info.ModTime().Format("2006-01-02T15:04:05.999999")
}

// emptyNotNil keeps JSON output stable: absent lists serialize as [] rather
// than null.
func emptyNotNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// ParseTime parses a LastModified value back into a time.
func ParseTime(iso string) (time.Time, bool) {
	for _, layout := range []string{"2006-01-02T15:04:05.999999", time.RFC3339, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, iso); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
