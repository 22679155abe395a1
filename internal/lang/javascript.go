package lang

func javascriptSpec() *LanguageSpec {
	return &LanguageSpec{
		Language:       JavaScript,
		Class:          ClassScripting,
		FileExtensions: []string{".js", ".jsx", ".mjs", ".cjs"},
		Comments:       cStyleComments(),
	}
}
