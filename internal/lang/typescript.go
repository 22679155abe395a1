package lang

func typescriptSpec() *LanguageSpec {
	return &LanguageSpec{
		Language:       TypeScript,
		Class:          ClassScripting,
		FileExtensions: []string{".ts"},
		Comments:       cStyleComments(),
	}
}

func tsxSpec() *LanguageSpec {
	return &LanguageSpec{
		Language:       TSX,
		Class:          ClassScripting,
		FileExtensions: []string{".tsx"},
		Comments:       cStyleComments(),
	}
}
