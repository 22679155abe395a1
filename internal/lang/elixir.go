package lang

func elixirSpec() *LanguageSpec {
	return &LanguageSpec{
		Language:       Elixir,
		Class:          ClassGeneric,
		FileExtensions: []string{".ex", ".exs"},
		Comments: CommentStyle{
			LinePrefixes: []string{"#"},
		},
	}
}
