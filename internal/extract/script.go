package extract

import (
	"os"
	"strings"

	"github.com/saddle-tools/indexgen/internal/lang"
	"github.com/saddle-tools/indexgen/internal/parser"
)

// ScriptStrategy covers JavaScript/TypeScript through tree-sitter queries.
// It extracts five categories: function declarations (plus arrow functions
// bound to a declaration), classes, import sources from both module-style
// and require() forms, named exports bound to declarations, and a heuristic
// UI-component pass over capitalized function names.
type ScriptStrategy struct {
	Language lang.Language
}

const (
	scriptFunctionQuery = `
(function_declaration name: (identifier) @func_name)
`
	scriptArrowQuery = `
(lexical_declaration
  (variable_declarator
    name: (identifier) @var_name
    value: (arrow_function)))
(variable_declaration
  (variable_declarator
    name: (identifier) @var_name
    value: (arrow_function)))
`
	// Class names are (identifier) in the JavaScript grammar but
	// (type_identifier) in TypeScript/TSX, so the class and export queries
	// come in two variants. A single alternation would not compile on the
	// JavaScript grammar, which has no type_identifier node.
	scriptClassQueryJS = `
(class_declaration name: (identifier) @class_name)
`
	scriptClassQueryTS = `
(class_declaration name: (type_identifier) @class_name)
`
	scriptImportQuery = `
(import_statement source: (string) @source)
`
	scriptRequireQuery = `
(call_expression
  function: (identifier) @func (#eq? @func "require")
  arguments: (arguments (string) @source))
`
	scriptExportQueryJS = `
(export_statement
  declaration: (lexical_declaration
    (variable_declarator name: (identifier) @export_name)))
(export_statement
  declaration: (function_declaration name: (identifier) @export_name))
(export_statement
  declaration: (class_declaration name: (identifier) @export_name))
`
	scriptExportQueryTS = `
(export_statement
  declaration: (lexical_declaration
    (variable_declarator name: (identifier) @export_name)))
(export_statement
  declaration: (function_declaration name: (identifier) @export_name))
(export_statement
  declaration: (class_declaration name: (type_identifier) @export_name))
`
)

// classQuery and exportQuery pick the grammar-matching variant.
func (s *ScriptStrategy) classQuery() string {
	if s.Language == lang.JavaScript {
		return scriptClassQueryJS
	}
	return scriptClassQueryTS
}

func (s *ScriptStrategy) exportQuery() string {
	if s.Language == lang.JavaScript {
		return scriptExportQueryJS
	}
	return scriptExportQueryTS
}

// Extract parses a JS/TS file with the toolkit. Returns nil on unreadable
// input or a hard parse failure.
func (s *ScriptStrategy) Extract(path string) *FileFacts {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	tree, err := parser.Parse(s.Language, source)
	if err != nil {
		return nil
	}
	defer tree.Close()
	root := tree.RootNode()

	funcs := parser.CaptureTexts(s.Language, root, source, scriptFunctionQuery, "func_name")
	funcs = append(funcs, parser.CaptureTexts(s.Language, root, source, scriptArrowQuery, "var_name")...)

	imports := parser.CaptureTexts(s.Language, root, source, scriptImportQuery, "source")
	imports = append(imports, parser.CaptureTexts(s.Language, root, source, scriptRequireQuery, "source")...)
	for i, imp := range imports {
		imports[i] = strings.Trim(imp, `"'`)
	}

	facts := &FileFacts{
		Language:  s.Language,
		Functions: sortedSet(funcs),
		Classes:   sortedSet(parser.CaptureTexts(s.Language, root, source, s.classQuery(), "class_name")),
		Imports:   sortedSet(imports),
		Exports:   sortedSet(parser.CaptureTexts(s.Language, root, source, s.exportQuery(), "export_name")),
	}
	facts.Components = componentCandidates(facts.Functions)
	return facts
}

// componentCandidates applies the UI-component heuristic: any extracted
// function whose name is capitalized.
func componentCandidates(functions []string) []string {
	var components []string
	for _, name := range functions {
		if capitalized(name) {
			components = append(components, name)
		}
	}
	return components
}
