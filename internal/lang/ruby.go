package lang

func rubySpec() *LanguageSpec {
	return &LanguageSpec{
		Language:       Ruby,
		Class:          ClassGeneric,
		FileExtensions: []string{".rb"},
		FunctionQuery:  "(method name: (identifier) @func)",
		ClassQuery:     "(class name: (constant) @class)",
		Comments: CommentStyle{
			LinePrefixes: []string{"#"},
		},
	}
}
