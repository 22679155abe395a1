package lang

func rSpec() *LanguageSpec {
	return &LanguageSpec{
		Language:       R,
		Class:          ClassGeneric,
		FileExtensions: []string{".r"},
		Comments: CommentStyle{
			LinePrefixes: []string{"#"},
		},
	}
}
