package lang

func phpSpec() *LanguageSpec {
	return &LanguageSpec{
		Language:       PHP,
		Class:          ClassGeneric,
		FileExtensions: []string{".php"},
		FunctionQuery:  "(function_definition name: (name) @func)",
		ClassQuery:     "(class_declaration name: (name) @class)",
		Comments: CommentStyle{
			LinePrefixes: []string{"//", "#"},
			BlockStart:   "/*",
			BlockEnd:     "*/",
		},
	}
}
