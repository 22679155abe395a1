package lang

func haskellSpec() *LanguageSpec {
	return &LanguageSpec{
		Language:       Haskell,
		Class:          ClassGeneric,
		FileExtensions: []string{".hs"},
		Comments: CommentStyle{
			LinePrefixes: []string{"--"},
			BlockStart:   "{-",
			BlockEnd:     "-}",
		},
	}
}
