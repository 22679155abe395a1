package lang

func pythonSpec() *LanguageSpec {
	return &LanguageSpec{
		Language:       Python,
		Class:          ClassPrimary,
		FileExtensions: []string{".py"},
		Comments: CommentStyle{
			LinePrefixes:      []string{"#"},
			TrackTripleQuotes: true,
		},
	}
}
