package lang

func fishSpec() *LanguageSpec {
	return &LanguageSpec{
		Language:       Fish,
		Class:          ClassGeneric,
		FileExtensions: []string{".fish"},
		Comments: CommentStyle{
			LinePrefixes: []string{"#"},
		},
	}
}
