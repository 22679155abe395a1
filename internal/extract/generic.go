package extract

import (
	"os"

	"github.com/saddle-tools/indexgen/internal/lang"
	"github.com/saddle-tools/indexgen/internal/parser"
)

// GenericStrategy handles every other supported language through the
// per-language query table in its LanguageSpec. Missing grammars, missing queries,
// and parse failures all yield an empty but language-tagged result so the
// file is still counted without structural detail.
type GenericStrategy struct {
	Spec *lang.LanguageSpec
}

// Extract parses with the languages's table queries. Returns nil only on
// unreadable input.
func (s *GenericStrategy) Extract(path string) *FileFacts {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	facts := &FileFacts{Language: s.Spec.Language}
	if !parser.HasGrammar(s.Spec.Language) {
		return facts
	}

	tree, err := parser.Parse(s.Spec.Language, source)
	if err != nil {
		return facts
	}
	defer tree.Close()
	root := tree.RootNode()

	if s.Spec.FunctionQuery != "" {
		facts.Functions = sortedSet(parser.CaptureTexts(s.Spec.Language, root, source, s.Spec.FunctionQuery, "func"))
	}
	if s.Spec.ClassQuery != "" {
		facts.Classes = sortedSet(parser.CaptureTexts(s.Spec.Language, root, source, s.Spec.ClassQuery, "class"))
	}
	return facts
}
