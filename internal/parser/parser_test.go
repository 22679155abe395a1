package parser

import (
	"reflect"
	"testing"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/saddle-tools/indexgen/internal/lang"
)

func TestParseAndWalk(t *testing.T) {
	source := []byte("def hello():\n    pass\n")
	tree, err := Parse(lang.Python, source)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	defer tree.Close()

	found := false
	Walk(tree.RootNode(), func(node *tree_sitter.Node) bool {
		if node.Kind() == "function_definition" {
			found = true
		}
		return true
	})
	if !found {
		t.Error("function_definition not reached by Walk")
	}
}

func TestParseUnsupportedLanguage(t *testing.T) {
	if _, err := Parse(lang.Language("cobol"), []byte("x")); err == nil {
		t.Fatal("expected error for unsupported language")
	}
	if HasGrammar(lang.Language("cobol")) {
		t.Error("HasGrammar should be false for cobol")
	}
	if !HasGrammar(lang.Python) {
		t.Error("HasGrammar should be true for python")
	}
}

func TestCaptureTexts(t *testing.T) {
	source := []byte("package x\n\nfunc A() {}\nfunc B() {}\n")
	tree, err := Parse(lang.Go, source)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	defer tree.Close()

	got := CaptureTexts(lang.Go, tree.RootNode(), source,
		"(function_declaration name: (identifier) @func)", "func")
	if want := []string{"A", "B"}; !reflect.DeepEqual(got, want) {
		t.Errorf("CaptureTexts = %v, want %v", got, want)
	}
}

func TestCaptureTextsInvalidQuery(t *testing.T) {
	source := []byte("package x\n")
	tree, err := Parse(lang.Go, source)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	defer tree.Close()

	if got := CaptureTexts(lang.Go, tree.RootNode(), source, "(nonsense_node) @x", "x"); got != nil {
		t.Errorf("expected nil for invalid query, got %v", got)
	}
}

func TestParseConcurrent(t *testing.T) {
	source := []byte("def f():\n    pass\n")
	done := make(chan error, 8)
	for i := 0; i < 8; i++ {
		go func() {
			tree, err := Parse(lang.Python, source)
			if err == nil {
				tree.Close()
			}
			done <- err
		}()
	}
	for i := 0; i < 8; i++ {
		if err := <-done; err != nil {
			t.Errorf("concurrent Parse: %v", err)
		}
	}
}
