package lang

func luaSpec() *LanguageSpec {
	return &LanguageSpec{
		Language:       Lua,
		Class:          ClassGeneric,
		FileExtensions: []string{".lua"},
		FunctionQuery:  "(function_declaration name: (identifier) @func)",
		Comments: CommentStyle{
			LinePrefixes: []string{"--"},
		},
	}
}
