package lang

func kotlinSpec() *LanguageSpec {
	return &LanguageSpec{
		Language:       Kotlin,
		Class:          ClassGeneric,
		FileExtensions: []string{".kt", ".kts"},
		FunctionQuery:  "(function_declaration (simple_identifier) @func)",
		ClassQuery:     "(class_declaration (type_identifier) @class)",
		Comments:       cStyleComments(),
	}
}
