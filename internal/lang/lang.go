package lang

import "strings"

// Language represents a supported programming language.
type Language string

const (
	Python     Language = "python"
	JavaScript Language = "javascript"
	TypeScript Language = "typescript"
	TSX        Language = "tsx"
	Go         Language = "go"
	Rust       Language = "rust"
	Ruby       Language = "ruby"
	Java       Language = "java"
	C          Language = "c"
	CPP        Language = "cpp"
	CSharp     Language = "c-sharp"
	PHP        Language = "php"
	Kotlin     Language = "kotlin"
	Scala      Language = "scala"
	Lua        Language = "lua"
	Bash       Language = "bash"
	OCaml      Language = "ocaml"
	Swift      Language = "swift"
	R          Language = "r"
	Julia      Language = "julia"
	Elixir     Language = "elixir"
	Erlang     Language = "erlang"
	Haskell    Language = "haskell"
	Vim        Language = "vim"
	Fish       Language = "fish"
)

// Class selects the extraction strategy for a language.
type Class int

const (
	// ClassPrimary is the native-AST strategy (Python).
	ClassPrimary Class = iota
	// ClassScripting is the toolkit strategy with a regex fallback (JS/TS).
	ClassScripting
	// ClassGeneric is the table-driven query strategy for everything else.
	ClassGeneric
)

// CommentStyle drives the line-of-code counter for a language.
type CommentStyle struct {
	// LinePrefixes are single-line comment markers ("//", "#", "--", ";").
	LinePrefixes []string
	// BlockStart/BlockEnd delimit block comments ("/*", "*/"). Empty means none.
	BlockStart string
	BlockEnd   string
	// TrackTripleQuotes enables Python-style triple-quoted string tracking.
	TrackTripleQuotes bool
}

// LanguageSpec describes how one language is detected, parsed, and counted.
type LanguageSpec struct {
	Language       Language
	Class          Class
	FileExtensions []string

	// FunctionQuery and ClassQuery are tree-sitter query strings used by the
	// generic strategy. Empty for languages the primary/scripting strategies own.
	FunctionQuery string
	ClassQuery    string

	Comments CommentStyle
}

// Registry maps file extensions to language specs. It is an explicit value
// handed to the selector and the strategies so tests can inject alternate
// tables instead of mutating shared state.
type Registry struct {
	byExt  map[string]*LanguageSpec
	byLang map[Language]*LanguageSpec
}

// NewRegistry returns a registry populated with the built-in language specs.
func NewRegistry() *Registry {
	r := &Registry{
		byExt:  make(map[string]*LanguageSpec),
		byLang: make(map[Language]*LanguageSpec),
	}
	for _, spec := range builtinSpecs() {
		r.Register(spec)
	}
	return r
}

// NewEmptyRegistry returns a registry with no specs (for tests).
func NewEmptyRegistry() *Registry {
	return &Registry{
		byExt:  make(map[string]*LanguageSpec),
		byLang: make(map[Language]*LanguageSpec),
	}
}

// Register adds a LanguageSpec to the registry.
func (r *Registry) Register(spec *LanguageSpec) {
	for _, ext := range spec.FileExtensions {
		r.byExt[strings.ToLower(ext)] = spec
	}
	r.byLang[spec.Language] = spec
}

// ForExtension returns the LanguageSpec for a file extension (e.g. ".py").
// Lookup is case-insensitive.
func (r *Registry) ForExtension(ext string) *LanguageSpec {
	return r.byExt[strings.ToLower(ext)]
}

// ForLanguage returns the LanguageSpec for a language.
func (r *Registry) ForLanguage(l Language) *LanguageSpec {
	return r.byLang[l]
}

// LanguageForExtension returns the Language for a file extension.
func (r *Registry) LanguageForExtension(ext string) (Language, bool) {
	spec := r.ForExtension(ext)
	if spec == nil {
		return "", false
	}
	return spec.Language, true
}

func builtinSpecs() []*LanguageSpec {
	return []*LanguageSpec{
		pythonSpec(),
		javascriptSpec(),
		typescriptSpec(),
		tsxSpec(),
		goSpec(),
		rustSpec(),
		rubySpec(),
		javaSpec(),
		cSpec(),
		cppSpec(),
		csharpSpec(),
		phpSpec(),
		kotlinSpec(),
		scalaSpec(),
		luaSpec(),
		bashSpec(),
		ocamlSpec(),
		swiftSpec(),
		rSpec(),
		juliaSpec(),
		elixirSpec(),
		erlangSpec(),
		haskellSpec(),
		vimSpec(),
		fishSpec(),
	}
}

// cStyleComments is shared by most brace languages.
func cStyleComments() CommentStyle {
	return CommentStyle{
		LinePrefixes: []string{"//"},
		BlockStart:   "/*",
		BlockEnd:     "*/",
	}
}
