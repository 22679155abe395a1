package lang

func erlangSpec() *LanguageSpec {
	return &LanguageSpec{
		Language:       Erlang,
		Class:          ClassGeneric,
		FileExtensions: []string{".erl"},
		Comments: CommentStyle{
			LinePrefixes: []string{"%"},
		},
	}
}
