package report

import (
	"fmt"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/saddle-tools/indexgen/internal/index"
	"github.com/saddle-tools/indexgen/internal/stale"
)

// truncationMarker closes a report that exceeded its line budget.
const truncationMarker = "*Index truncated for brevity*"

// entryPointStems are file stems treated as likely entry points.
var entryPointStems = map[string]bool{
	"main": true, "app": true, "cli": true, "server": true, "index": true,
}

// Render produces the bounded Markdown summary. It is purely derived and
// read-only with respect to its inputs; there are no error conditions.
func Render(idx index.CodebaseIndex, staleFiles map[string]*stale.Record, now time.Time, maxLines int) string {
	stats := idx.Stats()
	lines := []string{"# Codebase Index", ""}
	lines = append(lines, fmt.Sprintf("Generated: %s", now.Format("2006-01-02T15:04:05")))
	lines = append(lines, "")

	lines = append(lines, renderStatistics(stats)...)
	lines = append(lines, renderStructure(idx)...)
	lines = append(lines, renderEntryPoints(idx)...)
	lines = append(lines, renderKeyModules(idx)...)
	lines = append(lines, renderRecentlyModified(idx)...)
	lines = append(lines, renderStale(staleFiles)...)

	if len(lines) > maxLines {
		lines = append(lines[:maxLines], "", truncationMarker)
	}
	return strings.Join(lines, "\n")
}

func renderStatistics(stats index.Statistics) []string {
	return []string{
		"## Statistics",
		"",
		fmt.Sprintf("- **Total files**: %d", stats.TotalFiles),
		fmt.Sprintf("- **Total lines of code**: %d", stats.TotalLOC),
		fmt.Sprintf("- **Total functions**: %d", stats.TotalFunctions),
		fmt.Sprintf("- **Total classes**: %d", stats.TotalClasses),
		"",
	}
}

// renderStructure lists the first five files per top-level directory with an
// overflow count.
func renderStructure(idx index.CodebaseIndex) []string {
	dirs := make(map[string][]string)
	for _, relPath := range sortedPaths(idx) {
		dir := "."
		if i := strings.IndexByte(relPath, '/'); i >= 0 {
			dir = relPath[:i]
		}
		dirs[dir] = append(dirs[dir], relPath)
	}

	dirNames := make([]string, 0, len(dirs))
	for d := range dirs {
		dirNames = append(dirNames, d)
	}
	sort.Strings(dirNames)

	lines := []string{"## Structure", "", "```"}
	for _, dir := range dirNames {
		files := dirs[dir]
		if dir == "." {
			for i, f := range files {
				if i == 5 {
					break
				}
				lines = append(lines, "  "+f)
			}
			continue
		}
		lines = append(lines, dir+"/")
		for i, f := range files {
			if i == 5 {
				break
			}
			lines = append(lines, "  "+strings.TrimPrefix(f, dir+"/"))
		}
		if len(files) > 5 {
			lines = append(lines, fmt.Sprintf("  ... and %d more files", len(files)-5))
		}
	}
	return append(lines, "```", "")
}

func renderEntryPoints(idx index.CodebaseIndex) []string {
	lines := []string{"## Key Entry Points", ""}
	for _, relPath := range sortedPaths(idx) {
		stem := strings.TrimSuffix(path.Base(relPath), path.Ext(relPath))
		if !entryPointStems[stem] {
			continue
		}
		funcs := idx[relPath].Functions
		if len(funcs) > 3 {
			funcs = funcs[:3]
		}
		desc := "entry point"
		if len(funcs) > 0 {
			desc = strings.Join(funcs, ", ")
		}
		lines = append(lines, fmt.Sprintf("- `%s`: %s", relPath, desc))
	}
	return append(lines, "")
}

// renderKeyModules lists the ten files with the most combined functions and
// classes.
func renderKeyModules(idx index.CodebaseIndex) []string {
	paths := sortedPaths(idx)
	sort.SliceStable(paths, func(i, j int) bool {
		a, b := idx[paths[i]], idx[paths[j]]
		return len(a.Functions)+len(a.Classes) > len(b.Functions)+len(b.Classes)
	})

	lines := []string{"## Key Modules", ""}
	for i, relPath := range paths {
		if i == 10 {
			break
		}
		fi := idx[relPath]
		var parts []string
		if len(fi.Classes) > 0 {
			parts = append(parts, "classes: "+strings.Join(firstN(fi.Classes, 3), ", "))
		}
		if len(fi.Functions) > 0 {
			parts = append(parts, "functions: "+strings.Join(firstN(fi.Functions, 3), ", "))
		}
		if len(parts) > 0 {
			lines = append(lines, fmt.Sprintf("- `%s`: %s", relPath, strings.Join(parts, "; ")))
		}
	}
	return append(lines, "")
}

func renderRecentlyModified(idx index.CodebaseIndex) []string {
	var paths []string
	for _, p := range sortedPaths(idx) {
		if idx[p].LastModified != "" {
			paths = append(paths, p)
		}
	}
	sort.SliceStable(paths, func(i, j int) bool {
		return idx[paths[i]].LastModified > idx[paths[j]].LastModified
	})

	lines := []string{"## Recently Modified", ""}
	for i, relPath := range paths {
		if i == 5 {
			break
		}
		date := idx[relPath].LastModified
		if len(date) > 10 {
			date = date[:10]
		}
		lines = append(lines, fmt.Sprintf("- `%s` (%s)", relPath, date))
	}
	return append(lines, "")
}

func renderStale(staleFiles map[string]*stale.Record) []string {
	if len(staleFiles) == 0 {
		return nil
	}
	paths := make([]string, 0, len(staleFiles))
	for p := range staleFiles {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	lines := []string{"## Potentially Stale", ""}
	for i, relPath := range paths {
		if i == 5 {
			break
		}
		rec := staleFiles[relPath]
		lines = append(lines, fmt.Sprintf("- `%s` (score: %.2g, %d days old)", relPath, rec.StalenessScore, rec.DaysSinceModified))
	}
	return append(lines, "")
}

func sortedPaths(idx index.CodebaseIndex) []string {
	paths := make([]string, 0, len(idx))
	for p := range idx {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

func firstN(s []string, n int) []string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
