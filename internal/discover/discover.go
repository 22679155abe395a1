package discover

import (
	"bufio"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobwas/glob"

	"github.com/saddle-tools/indexgen/internal/lang"
)

// FileInfo represents a selected source file.
type FileInfo struct {
	Path     string        // absolute path
	RelPath  string        // relative to the indexed root, slash-separated
	Language lang.Language // detected language
}

// Selector walks a root directory and returns the candidate files for
// indexing. Exclusion tables are injected at construction so tests can swap
// them without touching shared state.
type Selector struct {
	registry *lang.Registry
	exclude  []string
	ignore   string // ignore-file name, looked up under the root
}

// NewSelector builds a Selector over the given registry and exclusion
// substrings.
func NewSelector(registry *lang.Registry, excludePatterns []string, ignoreFile string) *Selector {
	return &Selector{
		registry: registry,
		exclude:  excludePatterns,
		ignore:   ignoreFile,
	}
}

// Select walks root and returns every regular file whose path matches no
// exclusion substring and whose extension maps to a supported language.
// The result is sorted by path string so downstream processing order is
// reproducible. A missing root yields an empty result, not an error.
func (s *Selector) Select(root string) []FileInfo {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil
	}
	if info, err := os.Stat(absRoot); err != nil || !info.IsDir() {
		return nil
	}

	ignoreGlobs := s.loadIgnoreGlobs(absRoot)

	var files []FileInfo
	_ = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(absRoot, path)
		if err != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)

		if matchesAny(rel, s.exclude) {
			return nil
		}
		for _, g := range ignoreGlobs {
			if g.Match(rel) {
				return nil
			}
		}

		language, ok := s.registry.LanguageForExtension(filepath.Ext(path))
		if !ok {
			return nil
		}

		files = append(files, FileInfo{
			Path:     path,
			RelPath:  rel,
			Language: language,
		})
		return nil
	})

	sort.Slice(files, func(i, j int) bool { return files[i].RelPath < files[j].RelPath })
	return files
}

// matchesAny reports whether any exclusion pattern occurs as a substring of
// the path.
func matchesAny(path string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(path, p) {
			return true
		}
	}
	return false
}

// loadIgnoreGlobs compiles the optional ignore file under root. Unreadable
// files and invalid patterns are skipped.
func (s *Selector) loadIgnoreGlobs(root string) []glob.Glob {
	if s.ignore == "" {
		return nil
	}
	f, err := os.Open(filepath.Join(root, s.ignore))
	if err != nil {
		return nil
	}
	defer f.Close()

	var globs []glob.Glob
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		g, err := glob.Compile(line, '/')
		if err != nil {
			continue
		}
		globs = append(globs, g)
	}
	return globs
}
