package extract

import (
	"os"
	"regexp"

	"github.com/saddle-tools/indexgen/internal/lang"
)

// ScriptFallback is the regex-based JS/TS extractor used when no grammar is
// linked in for the language. It implements the same five categories as
// ScriptStrategy with materially lower precision: it has no scoping
// awareness and may over- or under-match. This is a first-class degraded
// mode, not an error path.
type ScriptFallback struct {
	Language lang.Language
}

var (
	reFunctionDecl = regexp.MustCompile(`function\s+(\w+)\s*\(`)
	reArrowAssign  = regexp.MustCompile(`(?:const|let|var)\s+(\w+)\s*=\s*(?:async\s*)?\(`)
	reClassDecl    = regexp.MustCompile(`class\s+(\w+)`)
	reModuleImport = regexp.MustCompile(`import\s+.*?from\s+['"](.+?)['"]`)
	reRequireCall  = regexp.MustCompile(`require\s*\(\s*['"](.+?)['"]\s*\)`)
	reNamedExport  = regexp.MustCompile(`export\s+(?:default\s+)?(?:const|let|var|function|class)\s+(\w+)`)
)

// Extract runs the regex extractors. Returns nil only on unreadable input.
func (s *ScriptFallback) Extract(path string) *FileFacts {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	text := string(source)

	functions := submatches(reFunctionDecl, text)
	functions = append(functions, submatches(reArrowAssign, text)...)

	imports := submatches(reModuleImport, text)
	imports = append(imports, submatches(reRequireCall, text)...)

	facts := &FileFacts{
		Language:  s.Language,
		Functions: sortedSet(functions),
		Classes:   sortedSet(submatches(reClassDecl, text)),
		Imports:   sortedSet(imports),
		Exports:   sortedSet(submatches(reNamedExport, text)),
	}
	facts.Components = componentCandidates(facts.Functions)
	return facts
}

func submatches(re *regexp.Regexp, text string) []string {
	var out []string
	for _, m := range re.FindAllStringSubmatch(text, -1) {
		if len(m) > 1 {
			out = append(out, m[1])
		}
	}
	return out
}
