package lang

func vimSpec() *LanguageSpec {
	return &LanguageSpec{
		Language:       Vim,
		Class:          ClassGeneric,
		FileExtensions: []string{".vim"},
		Comments: CommentStyle{
			LinePrefixes: []string{`"`},
		},
	}
}
