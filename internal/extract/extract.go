package extract

import (
	"sort"

	"github.com/saddle-tools/indexgen/internal/lang"
	"github.com/saddle-tools/indexgen/internal/parser"
)

// FileFacts is the structured result of one extraction pass over one file.
// A nil *FileFacts means the file was unreadable or unparseable; strategies
// never return errors to the caller.
type FileFacts struct {
	Language       lang.Language
	Functions      []string
	Classes        []string
	ClassMethods   map[string][]string
	AsyncFunctions []string
	Imports        []string
	Decorators     []string
	Exports        []string
	Components     []string
	Docstring      string
}

// Strategy extracts structural facts from a source file.
type Strategy interface {
	Extract(path string) *FileFacts
}

// ForLanguage selects the strategy for a language. The choice is a pure
// function of the language class and grammar availability, decided once per
// file.
func ForLanguage(spec *lang.LanguageSpec) Strategy {
	switch spec.Class {
	case lang.ClassPrimary:
		return &PythonStrategy{}
	case lang.ClassScripting:
		if parser.HasGrammar(spec.Language) {
			return &ScriptStrategy{Language: spec.Language}
		}
		return &ScriptFallback{Language: spec.Language}
	default:
		return &GenericStrategy{Spec: spec}
	}
}

// dedupe removes duplicates while preserving first-appearance order.
func dedupe(names []string) []string {
	if len(names) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(names))
	out := names[:0]
	for _, n := range names {
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

// sortedSet removes duplicates and sorts, for strategies whose extraction
// order is not meaningful.
func sortedSet(names []string) []string {
	out := dedupe(names)
	sort.Strings(out)
	return out
}

// capitalized reports whether a name starts with an upper-case letter.
func capitalized(name string) bool {
	if name == "" {
		return false
	}
	c := name[0]
	return c >= 'A' && c <= 'Z'
}
