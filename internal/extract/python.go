package extract

import (
	"os"
	"strings"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/saddle-tools/indexgen/internal/lang"
	"github.com/saddle-tools/indexgen/internal/parser"
)

// PythonStrategy is the precise strategy for the primary language. It parses
// the native syntax tree and extracts module-top-level definitions only:
// nested functions and classes are deliberately excluded, while each class's
// direct methods are listed separately.
type PythonStrategy struct{}

// Extract parses a Python file. Returns nil on unreadable or unparseable
// input.
func (s *PythonStrategy) Extract(path string) *FileFacts {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	tree, err := parser.Parse(lang.Python, source)
	if err != nil {
		return nil
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		return nil
	}

	facts := &FileFacts{
		Language:     lang.Python,
		ClassMethods: make(map[string][]string),
	}

	for i := uint(0); i < root.NamedChildCount(); i++ {
		child := root.NamedChild(i)
		if child == nil {
			continue
		}
		def := child
		if child.Kind() == "decorated_definition" {
			def = child.ChildByFieldName("definition")
			if def == nil {
				continue
			}
		}
		switch def.Kind() {
		case "function_definition":
			name := defName(def, source)
			if name == "" {
				continue
			}
			facts.Functions = append(facts.Functions, name)
			if isAsyncDef(def) {
				facts.AsyncFunctions = append(facts.AsyncFunctions, name)
			}
		case "class_definition":
			name := defName(def, source)
			if name == "" {
				continue
			}
			facts.Classes = append(facts.Classes, name)
			facts.ClassMethods[name] = classMethods(def, source)
		}
	}

	facts.Functions = dedupe(facts.Functions)
	facts.Classes = dedupe(facts.Classes)
	facts.AsyncFunctions = dedupe(facts.AsyncFunctions)
	facts.Imports = pythonImports(root, source)
	facts.Decorators = pythonDecorators(root, source)
	facts.Docstring = moduleDocstring(root, source)
	return facts
}

func defName(node *tree_sitter.Node, source []byte) string {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return ""
	}
	return parser.NodeText(nameNode, source)
}

// isAsyncDef reports whether a function_definition carries the async keyword.
func isAsyncDef(node *tree_sitter.Node) bool {
	first := node.Child(0)
	return first != nil && first.Kind() == "async"
}

// classMethods lists the direct method names of a class body, including
// decorated and async methods. Nested classes' methods are not included.
func classMethods(class *tree_sitter.Node, source []byte) []string {
	body := class.ChildByFieldName("body")
	if body == nil {
		return nil
	}
	var methods []string
	for i := uint(0); i < body.NamedChildCount(); i++ {
		child := body.NamedChild(i)
		if child == nil {
			continue
		}
		def := child
		if child.Kind() == "decorated_definition" {
			def = child.ChildByFieldName("definition")
			if def == nil {
				continue
			}
		}
		if def.Kind() == "function_definition" {
			if name := defName(def, source); name != "" {
				methods = append(methods, name)
			}
		}
	}
	return dedupe(methods)
}

// pythonImports extracts every import statement in the file, not just the
// top-level ones. `from X import Y` is normalized to "X.Y" and wildcard
// imports become "X.*".
func pythonImports(root *tree_sitter.Node, source []byte) []string {
	var imports []string

	parser.Walk(root, func(node *tree_sitter.Node) bool {
		switch node.Kind() {
		case "import_statement":
			imports = append(imports, plainImportNames(node, source)...)
			return false
		case "import_from_statement":
			imports = append(imports, fromImportNames(node, source)...)
			return false
		}
		return true
	})

	return dedupe(imports)
}

// plainImportNames handles "import a.b, c as d" forms.
func plainImportNames(node *tree_sitter.Node, source []byte) []string {
	var names []string
	for i := uint(0); i < node.NamedChildCount(); i++ {
		child := node.NamedChild(i)
		if child == nil {
			continue
		}
		switch child.Kind() {
		case "dotted_name":
			names = append(names, parser.NodeText(child, source))
		case "aliased_import":
			// The imported module name, not the alias.
			if orig := child.ChildByFieldName("name"); orig != nil {
				names = append(names, parser.NodeText(orig, source))
			}
		}
	}
	return names
}

// fromImportNames handles "from X import Y [as Z], *" forms.
func fromImportNames(node *tree_sitter.Node, source []byte) []string {
	module := ""
	moduleNode := node.ChildByFieldName("module_name")
	if moduleNode != nil {
		module = strings.Trim(parser.NodeText(moduleNode, source), ".")
	}

	var names []string
	appendName := func(name string) {
		if name == "" {
			return
		}
		if module != "" {
			names = append(names, module+"."+name)
		} else {
			names = append(names, name)
		}
	}

	for i := uint(0); i < node.NamedChildCount(); i++ {
		child := node.NamedChild(i)
		if child == nil || (moduleNode != nil && child.StartByte() == moduleNode.StartByte()) {
			continue
		}
		switch child.Kind() {
		case "wildcard_import":
			appendName("*")
		case "dotted_name":
			appendName(parser.NodeText(child, source))
		case "aliased_import":
			if orig := child.ChildByFieldName("name"); orig != nil {
				appendName(parser.NodeText(orig, source))
			}
		}
	}
	return names
}

// pythonDecorators collects decorator usage across the whole file. All three
// syntactic forms (bare name, dotted attribute, call expression) reduce to
// the innermost identifier, so "@app.route('/x')" yields "route". The result
// is a sorted set; it supports downstream detection of routing/fixture/
// dataclass patterns without hardcoding frameworks.
func pythonDecorators(root *tree_sitter.Node, source []byte) []string {
	var decorators []string
	parser.Walk(root, func(node *tree_sitter.Node) bool {
		if node.Kind() != "decorator" {
			return true
		}
		if name := decoratorName(parser.NodeText(node, source)); name != "" {
			decorators = append(decorators, name)
		}
		return false
	})
	return sortedSet(decorators)
}

// decoratorName reduces a decorator expression to its innermost identifier.
func decoratorName(text string) string {
	text = strings.TrimSpace(strings.TrimPrefix(text, "@"))
	if idx := strings.IndexByte(text, '('); idx >= 0 {
		text = text[:idx]
	}
	if idx := strings.LastIndexByte(text, '.'); idx >= 0 {
		text = text[idx+1:]
	}
	return strings.TrimSpace(text)
}

// moduleDocstring returns the module's leading documentation string, if any.
func moduleDocstring(root *tree_sitter.Node, source []byte) string {
	if root.NamedChildCount() == 0 {
		return ""
	}
	first := root.NamedChild(0)
	if first == nil || first.Kind() != "expression_statement" || first.NamedChildCount() == 0 {
		return ""
	}
	strNode := first.NamedChild(0)
	if strNode == nil || strNode.Kind() != "string" {
		return ""
	}
	return cleanDocstring(parser.NodeText(strNode, source))
}

// cleanDocstring strips triple-quote delimiters and normalizes indentation.
func cleanDocstring(s string) string {
	for _, delim := range []string{`"""`, `'''`} {
		if strings.HasPrefix(s, delim) && strings.HasSuffix(s, delim) && len(s) >= 6 {
			s = s[3 : len(s)-3]
			break
		}
	}
	lines := strings.Split(s, "\n")
	if len(lines) <= 1 {
		return strings.TrimSpace(s)
	}
	minIndent := -1
	for _, line := range lines[1:] {
		trimmed := strings.TrimLeft(line, " \t")
		if trimmed == "" {
			continue
		}
		indent := len(line) - len(trimmed)
		if minIndent < 0 || indent < minIndent {
			minIndent = indent
		}
	}
	if minIndent > 0 {
		for i := 1; i < len(lines); i++ {
			if len(lines[i]) >= minIndent {
				lines[i] = lines[i][minIndent:]
			}
		}
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
