package lang

func cSpec() *LanguageSpec {
	return &LanguageSpec{
		Language:       C,
		Class:          ClassGeneric,
		FileExtensions: []string{".c", ".h"},
		FunctionQuery:  "(function_definition declarator: (function_declarator declarator: (identifier) @func))",
		Comments:       cStyleComments(),
	}
}
