package graph

import (
	"path/filepath"
	"strings"

	"github.com/saddle-tools/indexgen/internal/index"
)

// Graph maps a derived module name to the file's project-internal import
// targets. It is a heuristic proxy for internal coupling: edges are the
// denylist-filtered imports verbatim, with no resolution against the index.
type Graph map[string][]string

// denylist holds standard-library and common third-party prefixes whose
// imports never count as project-internal.
var denylist = []string{
	"os", "sys", "re", "json", "typing", "pathlib",
	"numpy", "pandas", "requests", "flask", "django",
}

// Build rebuilds the graph in full from the current index. Files whose
// filtered import list is empty do not become nodes.
func Build(idx index.CodebaseIndex) Graph {
	g := make(Graph)
	for relPath, fi := range idx {
		var internal []string
		for _, imp := range fi.Imports {
			if denylisted(imp) {
				continue
			}
			internal = append(internal, imp)
		}
		if len(internal) > 0 {
			g[ModuleName(relPath)] = internal
		}
	}
	return g
}

// ModuleName derives a module-style name from a relative path: separators
// become dots and the extension is stripped ("pkg/auth/session.py" ->
// "pkg.auth.session").
func ModuleName(relPath string) string {
	name := filepath.ToSlash(relPath)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	return strings.ReplaceAll(name, "/", ".")
}

// Referenced reports whether any edge value textually contains, or is
// contained by, the module name.
func (g Graph) Referenced(moduleName string) bool {
	return g.ReferenceCount(moduleName) > 0
}

// ReferenceCount counts the edges matching the module name under the same
// containment test.
func (g Graph) ReferenceCount(moduleName string) int {
	count := 0
	for _, edges := range g {
		for _, e := range edges {
			if strings.Contains(e, moduleName) || strings.Contains(moduleName, e) {
				count++
			}
		}
	}
	return count
}

func denylisted(imp string) bool {
	for _, prefix := range denylist {
		if strings.HasPrefix(imp, prefix) {
			return true
		}
	}
	return false
}
