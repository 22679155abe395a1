package lang

func bashSpec() *LanguageSpec {
	return &LanguageSpec{
		Language:       Bash,
		Class:          ClassGeneric,
		FileExtensions: []string{".sh", ".bash", ".zsh"},
		FunctionQuery:  "(function_definition name: (word) @func)",
		Comments: CommentStyle{
			LinePrefixes: []string{"#"},
		},
	}
}
